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

import (
	"encoding/binary"
	"io"

	"github.com/es40emu/storage/curated"
)

// StateRestore is the sentinal pattern for errors returned by RestoreState().
const StateRestore = "flash: restore state: %v"

// StateSize is the number of bytes written by SaveState().
const StateSize = Size + 4

// SaveState writes the storage array followed by the mode as a 32bit little
// endian integer. There is no header.
func (fl *Flash) SaveState(w io.Writer) error {
	if _, err := w.Write(fl.storage[:]); err != nil {
		return curated.Errorf("flash: save state: %v", err)
	}
	if err := binary.Write(w, binary.LittleEndian, int32(fl.mode)); err != nil {
		return curated.Errorf("flash: save state: %v", err)
	}
	return nil
}

// RestoreState reads state in the format written by SaveState(). The flash
// is unchanged if an error is returned.
func (fl *Flash) RestoreState(r io.Reader) error {
	storage := make([]uint8, Size)
	if _, err := io.ReadFull(r, storage); err != nil {
		return curated.Errorf(StateRestore, err)
	}

	var m int32
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return curated.Errorf(StateRestore, err)
	}

	mode := Mode(m)
	if !mode.Valid() {
		return curated.Errorf(StateRestore, curated.Errorf("unknown mode (%d)", m))
	}

	copy(fl.storage[:], storage)
	fl.mode = mode

	return nil
}
