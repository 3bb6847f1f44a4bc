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

package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/es40emu/storage/curated"
	"github.com/es40emu/storage/savestate"
)

// StateError is the sentinal pattern for errors returned by State.Update().
const StateError = "digest: %v"

// State is a Digest of the saved state of one or more components. Each call
// to Update() chains the new fingerprint to the previous one.
type State struct {
	components []savestate.Stater
	digest     uint64
}

// NewState is the preferred method of initialisation for the State type.
func NewState(components ...savestate.Stater) *State {
	return &State{
		components: components,
	}
}

// Update the digest with the current state of the components.
func (dig *State) Update() error {
	h := xxhash.New()

	// chain fingerprints by writing the previous value first
	var prev [8]byte
	binary.LittleEndian.PutUint64(prev[:], dig.digest)
	_, _ = h.Write(prev[:])

	for _, c := range dig.components {
		if err := c.SaveState(h); err != nil {
			return curated.Errorf(StateError, err)
		}
	}

	dig.digest = h.Sum64()

	return nil
}

// Hash implements digest.Digest interface.
func (dig State) Hash() string {
	return fmt.Sprintf("%016x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *State) ResetDigest() {
	dig.digest = 0
}
