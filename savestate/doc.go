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

// Package savestate writes and reads the state of a group of emulated
// components to a single file.
//
// A component is anything that implements the Stater interface. The state of
// each component is written in turn with no framing between them, so the
// components must be restored in the same order as they were saved. The file
// starts with a header line and ends with an eight byte xxhash digest of
// everything before it. The digest is checked before any component is
// restored.
//
//	err := savestate.Save("es40.state", flashDevice)
//	...
//	err = savestate.Restore("es40.state", flashDevice)
package savestate
