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

package flash

// Mode is the state of the command decoder. The numeric values are used in
// saved state files and must not change.
type Mode int32

// List of valid Mode values.
const (
	Read Mode = iota
	Unlock1
	Unlock2
	Autoselect
	Program
	EraseUnlock1
	EraseUnlock2
	EraseConfirmPending
	EraseStatus0
	EraseStatus1

	numModes
)

func (m Mode) String() string {
	switch m {
	case Read:
		return "read"
	case Unlock1:
		return "unlock 1"
	case Unlock2:
		return "unlock 2"
	case Autoselect:
		return "autoselect"
	case Program:
		return "program"
	case EraseUnlock1:
		return "erase unlock 1"
	case EraseUnlock2:
		return "erase unlock 2"
	case EraseConfirmPending:
		return "erase confirm"
	case EraseStatus0:
		return "erase status 0"
	case EraseStatus1:
		return "erase status 1"
	}
	return "unknown mode"
}

// Valid returns false if the value is not one of the listed modes.
func (m Mode) Valid() bool {
	return m >= Read && m < numModes
}
