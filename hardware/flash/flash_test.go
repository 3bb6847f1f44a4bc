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

package flash_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/es40emu/storage/curated"
	"github.com/es40emu/storage/environment"
	"github.com/es40emu/storage/hardware/flash"
	"github.com/es40emu/storage/hardware/memory/bus"
	"github.com/es40emu/storage/hardware/memory/memorymap"
	"github.com/es40emu/storage/hardware/preferences"
	"github.com/es40emu/storage/logger"
	"github.com/es40emu/storage/prefs"
	"github.com/es40emu/storage/test"
)

var _ bus.Device = (*flash.Flash)(nil)
var _ bus.DebuggerBus = (*flash.Flash)(nil)

// write to the protocol index with the byte lane set to an arbitrary value
// to show that the low six bits of the offset are ignored
func write(fl *flash.Flash, index uint32, data uint64) {
	fl.WriteMem(uint64(index)<<6|0x15, bus.Byte, data)
}

func read(fl *flash.Flash, index uint32) uint64 {
	return fl.ReadMem(uint64(index)<<6|0x2a, bus.Byte)
}

func unlock(fl *flash.Flash) {
	write(fl, 0x5555, 0xaa)
	write(fl, 0x2aaa, 0x55)
}

func program(fl *flash.Flash, index uint32, data uint8) {
	unlock(fl)
	write(fl, 0x5555, 0xa0)
	write(fl, index, uint64(data))
}

// stops after the first cycle of the second unlock, in the EraseUnlock2 mode
func eraseUnlock(fl *flash.Flash) {
	unlock(fl)
	write(fl, 0x5555, 0x80)
	write(fl, 0x5555, 0xaa)
}

// leaves the decoder waiting for the erase confirm command
func eraseSequence(fl *flash.Flash) {
	eraseUnlock(fl)
	write(fl, 0x2aaa, 0x55)
}

// the two status reads that follow an erase
func status(fl *flash.Flash) {
	read(fl, 0x0000)
	read(fl, 0x0000)
}

func TestNewFlash(t *testing.T) {
	logger.Clear()

	fl := flash.NewFlash(nil)
	test.ExpectEquality(t, fl.Mode(), flash.Read)

	for _, idx := range []uint32{0, 1, 0x5555, flash.Size - 1} {
		test.ExpectEquality(t, read(fl, idx), uint64(0xff), idx)
	}

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "flash: flash ROM emulator initialised"))
}

func TestIndex(t *testing.T) {
	test.ExpectEquality(t, flash.Index(0x5555<<6), uint32(0x5555))
	test.ExpectEquality(t, flash.Index(0x5555<<6|0x3f), uint32(0x5555))
	test.ExpectEquality(t, flash.Index(0x5555), uint32(0x155))
	test.ExpectEquality(t, flash.Index(flash.MappedLength-1), uint32(flash.Size-1))

	// offsets beyond the mapped length wrap
	test.ExpectEquality(t, flash.Index(flash.MappedLength), uint32(0))
	test.ExpectEquality(t, flash.Index(flash.MappedLength+0x40), uint32(1))
}

func TestProgram(t *testing.T) {
	fl := flash.NewFlash(nil)

	unlock(fl)
	test.ExpectEquality(t, fl.Mode(), flash.Unlock2)
	write(fl, 0x5555, 0xa0)
	test.ExpectEquality(t, fl.Mode(), flash.Program)
	write(fl, 0x1234, 0x42)
	test.ExpectEquality(t, fl.Mode(), flash.Read)
	test.ExpectEquality(t, read(fl, 0x1234), uint64(0x42))

	// only the low byte is stored
	program(fl, 0x1235, 0x42)
	test.ExpectEquality(t, read(fl, 0x1235), uint64(0x42))
	unlock(fl)
	write(fl, 0x5555, 0xa0)
	write(fl, 0x1236, 0x1ff)
	test.ExpectEquality(t, read(fl, 0x1236), uint64(0xff))

	// programming can raise bits as well as clear them
	program(fl, 0x1234, 0x00)
	program(fl, 0x1234, 0x81)
	test.ExpectEquality(t, read(fl, 0x1234), uint64(0x81))

	// writes in read mode do not change storage
	write(fl, 0x1234, 0x00)
	test.ExpectEquality(t, read(fl, 0x1234), uint64(0x81))
}

func TestChipErase(t *testing.T) {
	logger.Clear()

	fl := flash.NewFlash(nil)
	program(fl, 0x0000, 0x00)
	program(fl, 0x1234, 0x00)
	program(fl, flash.Size-1, 0x00)

	eraseSequence(fl)
	test.ExpectEquality(t, fl.Mode(), flash.EraseConfirmPending)
	write(fl, 0x5555, 0x10)
	test.ExpectEquality(t, fl.Mode(), flash.EraseStatus1)

	// the erase is complete before the status reads
	for _, idx := range []uint32{0x0000, 0x1234, flash.Size - 1} {
		v, err := fl.Peek(idx)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(0xff), idx)
	}

	// two status reads then normal reads
	test.ExpectEquality(t, read(fl, 0x1234), uint64(0x80))
	test.ExpectEquality(t, fl.Mode(), flash.EraseStatus0)
	test.ExpectEquality(t, read(fl, 0x1234), uint64(0x80))
	test.ExpectEquality(t, fl.Mode(), flash.Read)
	test.ExpectEquality(t, read(fl, 0x1234), uint64(0xff))

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "flash: chip erase"))
}

func TestSectorErase(t *testing.T) {
	fl := flash.NewFlash(nil)

	for _, idx := range []uint32{0x0ffff, 0x10000, 0x12345, 0x1ffff, 0x20000} {
		program(fl, idx, 0x00)
	}

	eraseSequence(fl)
	write(fl, 0x12345, 0x30)
	test.ExpectEquality(t, fl.Mode(), flash.EraseStatus1)

	expected := map[uint32]uint8{
		0x0ffff: 0x00,
		0x10000: 0xff,
		0x12345: 0xff,
		0x1ffff: 0xff,
		0x20000: 0x00,
	}
	for idx, v := range expected {
		p, err := fl.Peek(idx)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, v, idx)
	}

	// a sector erase at the unlock index erases the sector containing it
	status(fl)
	program(fl, 0x0000, 0x00)
	eraseSequence(fl)
	write(fl, 0x5555, 0x30)
	p, _ := fl.Peek(0x0000)
	test.ExpectEquality(t, p, uint8(0xff))
	p, _ = fl.Peek(0x0ffff)
	test.ExpectEquality(t, p, uint8(0xff))
	p, _ = fl.Peek(0x20000)
	test.ExpectEquality(t, p, uint8(0x00))
}

func TestEraseLogPreference(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Flash.LogErase.Set(false))

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	logger.Clear()
	fl := flash.NewFlash(env)
	eraseSequence(fl)
	write(fl, 0x0000, 0x30)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectFailure(t, strings.Contains(w.String(), "sector erase"))

	test.DemandSuccess(t, p.Flash.LogErase.Set(true))
	status(fl)
	eraseSequence(fl)
	write(fl, 0x10000, 0x30)

	w.Reset()
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "flash: sector erase at 0x10000"))
}

func TestEraseStatusWrite(t *testing.T) {
	fl := flash.NewFlash(nil)

	// a write while waiting for the status reads is a program cycle
	eraseSequence(fl)
	write(fl, 0x5555, 0x10)
	write(fl, 0x0100, 0x12)
	test.ExpectEquality(t, fl.Mode(), flash.Read)
	test.ExpectEquality(t, read(fl, 0x0100), uint64(0x12))

	eraseSequence(fl)
	write(fl, 0x5555, 0x10)
	read(fl, 0x0000)
	test.ExpectEquality(t, fl.Mode(), flash.EraseStatus0)
	write(fl, 0x0101, 0x34)
	test.ExpectEquality(t, fl.Mode(), flash.Read)
	test.ExpectEquality(t, read(fl, 0x0101), uint64(0x34))
}

func TestAutoselect(t *testing.T) {
	fl := flash.NewFlash(nil)
	program(fl, 0x0002, 0x77)

	unlock(fl)
	write(fl, 0x5555, 0x90)
	test.ExpectEquality(t, fl.Mode(), flash.Autoselect)

	test.ExpectEquality(t, read(fl, 0x0000), uint64(flash.ManufacturerID))
	test.ExpectEquality(t, read(fl, 0x0001), uint64(flash.DeviceID))
	test.ExpectEquality(t, read(fl, 0x0002), uint64(0))
	test.ExpectEquality(t, read(fl, 0x5555), uint64(0))

	// reads do not leave autoselect mode
	test.ExpectEquality(t, fl.Mode(), flash.Autoselect)

	// any write other than the first unlock cycle returns to read mode
	write(fl, 0x0000, 0xf0)
	test.ExpectEquality(t, fl.Mode(), flash.Read)
	test.ExpectEquality(t, read(fl, 0x0002), uint64(0x77))

	// a new command can start directly from autoselect
	unlock(fl)
	write(fl, 0x5555, 0x90)
	unlock(fl)
	write(fl, 0x5555, 0xa0)
	test.ExpectEquality(t, fl.Mode(), flash.Program)
}

func TestMalformedSequence(t *testing.T) {
	fl := flash.NewFlash(nil)
	program(fl, 0x2aaa, 0x00)

	write(fl, 0x5555, 0xaa)
	test.ExpectEquality(t, fl.Mode(), flash.Unlock1)
	write(fl, 0x2aaa, 0x99)
	test.ExpectEquality(t, fl.Mode(), flash.Read)

	// storage is untouched by the bad write
	test.ExpectEquality(t, read(fl, 0x2aaa), uint64(0x00))

	// the wrong index in the second cycle
	write(fl, 0x5555, 0xaa)
	write(fl, 0x5555, 0x55)
	test.ExpectEquality(t, fl.Mode(), flash.Read)

	// a bad command byte
	unlock(fl)
	write(fl, 0x5555, 0x00)
	test.ExpectEquality(t, fl.Mode(), flash.Read)

	// a bad erase confirm
	eraseSequence(fl)
	write(fl, 0x1234, 0x10)
	test.ExpectEquality(t, fl.Mode(), flash.Read)
	test.ExpectEquality(t, read(fl, 0x2aaa), uint64(0x00))
}

func TestPeekPoke(t *testing.T) {
	fl := flash.NewFlash(nil)

	test.ExpectSuccess(t, fl.Poke(0x100, 0x55))
	v, err := fl.Peek(0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x55))
	test.ExpectEquality(t, read(fl, 0x100), uint64(0x55))

	// debugger access does not disturb the command decoder
	write(fl, 0x5555, 0xaa)
	test.ExpectSuccess(t, fl.Poke(0x5555, 0x00))
	test.ExpectEquality(t, fl.Mode(), flash.Unlock1)

	_, err = fl.Peek(flash.Size)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressError))
	err = fl.Poke(flash.Size, 0x00)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressError))
}

func TestMemoryMap(t *testing.T) {
	fl := flash.NewFlash(nil)

	var m memorymap.Map
	test.DemandSuccess(t, m.Add("flash", flash.Origin, flash.MappedLength, fl))

	addr := func(index uint32) uint64 {
		return flash.Origin + uint64(index)<<6
	}

	test.ExpectSuccess(t, m.Write(addr(0x5555), bus.Byte, 0xaa))
	test.ExpectSuccess(t, m.Write(addr(0x2aaa), bus.Byte, 0x55))
	test.ExpectSuccess(t, m.Write(addr(0x5555), bus.Byte, 0xa0))
	test.ExpectSuccess(t, m.Write(addr(0x0040), bus.Byte, 0x42))

	v, err := m.Read(addr(0x0040), bus.Byte)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(0x42))

	_, err = m.Read(flash.Origin+flash.MappedLength, bus.Byte)
	test.ExpectSuccess(t, curated.Is(err, memorymap.Unmapped))
}

func TestDumpCommandTable(t *testing.T) {
	b := &bytes.Buffer{}
	flash.DumpCommandTable(b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
}
