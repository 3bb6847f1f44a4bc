// This file is part of es40storage.
//
// es40storage is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// es40storage is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with es40storage.  If not, see <https://www.gnu.org/licenses/>.

// Package digest produces fingerprints of emulated component state. The
// fingerprint can be used to compare the result of subsequent executions. If
// a new fingerprint differs from a previously recorded value then something
// has changed.
package digest

// Digest implementations should return a hash in response to a Hash()
// request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
