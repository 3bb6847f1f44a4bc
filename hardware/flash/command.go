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

// Effect is the side effect on the storage array of a command.
type Effect int

// List of valid Effect values.
const (
	NoEffect Effect = iota

	// the data byte is stored at the index
	ProgramByte

	// the entire array is filled with the erased value
	ChipErase

	// the 64KB sector containing the index is filled with the erased value
	SectorErase
)

func (e Effect) String() string {
	switch e {
	case NoEffect:
		return "none"
	case ProgramByte:
		return "program byte"
	case ChipErase:
		return "chip erase"
	case SectorErase:
		return "sector erase"
	}
	return "unknown effect"
}

// Any matches every index or data value in a Command.
const Any = -1

// Command is a single entry in the command table. A write in the From mode
// that matches the Index and Data fields moves the decoder to the To mode and
// causes the Effect.
type Command struct {
	From   Mode
	Index  int64
	Data   int64
	To     Mode
	Effect Effect
}

func (c Command) matches(index uint32, data uint64) bool {
	if c.Index != Any && uint64(c.Index) != uint64(index) {
		return false
	}
	if c.Data != Any && uint64(c.Data) != data {
		return false
	}
	return true
}

// the command addresses of the unlock cycles
const (
	unlockIndex1 = 0x5555
	unlockIndex2 = 0x2aaa
)

// commandTable is the complete command set. Entries for the same mode are
// tested in order. A write that matches no entry returns the decoder to the
// Read mode with no effect.
//
// The Program mode has no command of its own so every write is a program
// cycle. The two erase status modes are treated the same way.
var commandTable = []Command{
	{From: Read, Index: unlockIndex1, Data: 0xaa, To: Unlock1},
	{From: Autoselect, Index: unlockIndex1, Data: 0xaa, To: Unlock1},

	{From: Unlock1, Index: unlockIndex2, Data: 0x55, To: Unlock2},

	{From: Unlock2, Index: unlockIndex1, Data: 0x90, To: Autoselect},
	{From: Unlock2, Index: unlockIndex1, Data: 0xa0, To: Program},
	{From: Unlock2, Index: unlockIndex1, Data: 0x80, To: EraseUnlock1},

	{From: EraseUnlock1, Index: unlockIndex1, Data: 0xaa, To: EraseUnlock2},
	{From: EraseUnlock2, Index: unlockIndex2, Data: 0x55, To: EraseConfirmPending},

	{From: EraseConfirmPending, Index: unlockIndex1, Data: 0x10, To: EraseStatus1, Effect: ChipErase},
	{From: EraseConfirmPending, Index: Any, Data: 0x30, To: EraseStatus1, Effect: SectorErase},

	{From: Program, Index: Any, Data: Any, To: Read, Effect: ProgramByte},
	{From: EraseStatus1, Index: Any, Data: Any, To: Read, Effect: ProgramByte},
	{From: EraseStatus0, Index: Any, Data: Any, To: Read, Effect: ProgramByte},
}

// commands indexed by the From mode
var commandsByMode [numModes][]Command

func init() {
	for _, c := range commandTable {
		commandsByMode[c.From] = append(commandsByMode[c.From], c)
	}
}

// Transition returns the next mode and the effect on the storage array of a
// write of data at the protocol index.
func Transition(mode Mode, index uint32, data uint64) (Mode, Effect) {
	if !mode.Valid() {
		return Read, NoEffect
	}
	for _, c := range commandsByMode[mode] {
		if c.matches(index, data) {
			return c.To, c.Effect
		}
	}
	return Read, NoEffect
}

// CommandTable returns a copy of the command table.
func CommandTable() []Command {
	t := make([]Command, len(commandTable))
	copy(t, commandTable)
	return t
}
