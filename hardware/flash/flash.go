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
	"fmt"

	"github.com/es40emu/storage/curated"
	"github.com/es40emu/storage/environment"
	"github.com/es40emu/storage/hardware/memory/bus"
	"github.com/es40emu/storage/logger"
)

// Size of the flash in bytes.
const Size = 2 * 1024 * 1024

// SectorSize is the erase granularity.
const SectorSize = 1 << 16

// The physical address range of the flash in the ES40 memory map. The range
// is 64 times the size of the flash because of the protocol window.
const (
	Origin       = uint64(0x0000080100000000)
	MappedLength = uint64(0x8000000)
)

// the number of low bits of the offset discarded to form the protocol index
const indexShift = 6

// Autoselect identification values.
const (
	ManufacturerID = 0x01
	DeviceID       = 0xad
)

// value returned by reads in the erase status modes
const eraseComplete = 0x80

// value of an erased byte
const erased = 0xff

// Flash is the flash ROM device. It implements the bus.Device and
// bus.DebuggerBus interfaces.
//
// Flash does no locking. If the device is accessed from more than one
// goroutine then the system bus must serialise access.
type Flash struct {
	env *environment.Environment

	storage [Size]uint8
	mode    Mode
}

// NewFlash is the preferred method of initialisation for the Flash type. The
// flash is created in the erased state.
func NewFlash(env *environment.Environment) *Flash {
	fl := &Flash{
		env:  env,
		mode: Read,
	}
	fl.erase(0, Size)

	logger.Log(fl.env, "flash", "flash ROM emulator initialised")

	return fl
}

func (fl *Flash) String() string {
	return fmt.Sprintf("flash: %dKB mode=%s", Size/1024, fl.mode)
}

// Mode returns the current mode of the command decoder.
func (fl *Flash) Mode() Mode {
	return fl.mode
}

// Index converts a bus offset into a protocol index. Offsets beyond the
// mapped length wrap around.
func Index(offset uint64) uint32 {
	return uint32(offset>>indexShift) & (Size - 1)
}

// ReadMem implements the bus.Device interface. The access size is ignored and
// a single byte is always returned.
func (fl *Flash) ReadMem(offset uint64, size int) uint64 {
	idx := Index(offset)

	switch fl.mode {
	case Autoselect:
		switch idx {
		case 0:
			return ManufacturerID
		case 1:
			return DeviceID
		}
		return 0

	case EraseStatus1:
		fl.mode = EraseStatus0
		return eraseComplete

	case EraseStatus0:
		fl.mode = Read
		return eraseComplete
	}

	return uint64(fl.storage[idx])
}

// WriteMem implements the bus.Device interface. The access size is ignored.
// Only the low byte of data is stored by a program cycle but the full value is
// compared against the command bytes.
func (fl *Flash) WriteMem(offset uint64, size int, data uint64) {
	idx := Index(offset)

	next, effect := Transition(fl.mode, idx, data)

	switch effect {
	case ProgramByte:
		fl.storage[idx] = uint8(data)

	case ChipErase:
		fl.erase(0, Size)
		if fl.logErase() {
			logger.Log(fl.env, "flash", "chip erase")
		}

	case SectorErase:
		base := (idx >> 16) << 16
		fl.erase(base, SectorSize)
		if fl.logErase() {
			logger.Logf(fl.env, "flash", "sector erase at %#x", base)
		}
	}

	fl.mode = next
}

func (fl *Flash) erase(base uint32, length uint32) {
	s := fl.storage[base : base+length]
	for i := range s {
		s[i] = erased
	}
}

func (fl *Flash) logErase() bool {
	if fl.env == nil || fl.env.Prefs == nil {
		return true
	}
	return fl.env.Prefs.Flash.LogErase.Get().(bool)
}

// Peek implements the bus.DebuggerBus interface. The address is a protocol
// index and the command decoder is not affected.
func (fl *Flash) Peek(address uint32) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(bus.AddressError, address)
	}
	return fl.storage[address], nil
}

// Poke implements the bus.DebuggerBus interface. The address is a protocol
// index and the command decoder is not affected.
func (fl *Flash) Poke(address uint32, value uint8) error {
	if address >= Size {
		return curated.Errorf(bus.AddressError, address)
	}
	fl.storage[address] = value
	return nil
}
