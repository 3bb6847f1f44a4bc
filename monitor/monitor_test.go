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

package monitor_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/es40emu/storage/curated"
	"github.com/es40emu/storage/environment"
	"github.com/es40emu/storage/hardware/disk/ramdisk"
	"github.com/es40emu/storage/hardware/flash"
	"github.com/es40emu/storage/hardware/preferences"
	"github.com/es40emu/storage/logger"
	"github.com/es40emu/storage/monitor"
	"github.com/es40emu/storage/prefs"
	"github.com/es40emu/storage/test"
)

func newMonitor(t *testing.T, script string) (*monitor.Monitor, *flash.Flash, *test.CompareWriter) {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.RamDisk.Size.Set(1))

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	dsk, err := ramdisk.NewRamDisk(env, "ide0.0")
	test.DemandSuccess(t, err)
	t.Cleanup(dsk.Close)

	fl := flash.NewFlash(env)

	out := &test.CompareWriter{}
	mon, err := monitor.NewMonitor(env, fl, dsk, strings.NewReader(script), out)
	test.DemandSuccess(t, err)

	return mon, fl, out
}

func TestFlashCommands(t *testing.T) {
	script := `flash mode
flash write 0x155540 0xaa
flash write 0xaaa80 0x55
flash write 0x155540 0xa0
flash write 0x100 0x42
flash read 0x100
flash read 0x13f
flash peek 4
flash poke 5 0x12
flash read 0x140
`
	mon, _, out := newMonitor(t, script)
	test.DemandSuccess(t, mon.Run())

	expected := "read\n" +
		"mode: unlock 1\n" +
		"mode: unlock 2\n" +
		"mode: program\n" +
		"mode: read\n" +
		"0x42\n" +
		"0x42\n" +
		"0x42\n" +
		"0x12\n"
	test.ExpectSuccess(t, out.Compare(expected), out.String())
}

func TestDiskCommands(t *testing.T) {
	script := `disk geometry
disk seek 16
disk write 0102030405
disk seek 0x10
disk read 5
disk seek 0xffffe
disk read 10
disk seek 0x100000
DISK READ 2
`
	mon, _, out := newMonitor(t, script)
	test.DemandSuccess(t, mon.Run())

	expected := "ES40RAMDISK: 1048576 bytes, C/H/S 8/8/32, 512 byte blocks\n" +
		"5 bytes\n" +
		"5 bytes: 01 02 03 04 05\n" +
		"1 bytes: 00\n" +
		fmt.Sprintf("error: %s\n", curated.Errorf(ramdisk.OutOfRangeSeek, 0x100000)) +
		"0 bytes: \n"
	test.ExpectSuccess(t, out.Compare(expected), out.String())
}

func TestErrors(t *testing.T) {
	mon, _, _ := newMonitor(t, "")

	_, err := mon.Execute("flash erase")
	test.ExpectSuccess(t, curated.Is(err, monitor.UnknownCommand))

	_, err = mon.Execute("flash read")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArguments))

	_, err = mon.Execute("flash read zero")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadNumber))

	_, err = mon.Execute("flash peek 0x200000")
	test.ExpectFailure(t, err)

	_, err = mon.Execute("disk write 123")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArguments))

	_, err = mon.Execute("disk seek -1")
	test.ExpectSuccess(t, curated.Is(err, ramdisk.OutOfRangeSeek))

	quit, err := mon.Execute("# a comment")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)

	quit, err = mon.Execute("  ")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
}

func TestQuit(t *testing.T) {
	mon, fl, out := newMonitor(t, "flash write 0x155540 0xaa\nquit\nflash write 0xaaa80 0x55\n")
	mon.Prompt = "> "
	test.DemandSuccess(t, mon.Run())

	// commands after quit are not executed
	test.ExpectEquality(t, fl.Mode(), flash.Unlock1)
	test.ExpectSuccess(t, out.Compare("> mode: unlock 1\n> "), out.String())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.state")

	mon, fl, out := newMonitor(t, "")

	_, err := mon.Execute("flash poke 0x10 0x99")
	test.DemandSuccess(t, err)
	_, err = mon.Execute("flash write 0x155540 0xaa")
	test.DemandSuccess(t, err)
	_, err = mon.Execute(fmt.Sprintf("save %s", path))
	test.DemandSuccess(t, err)

	_, err = mon.Execute("digest")
	test.DemandSuccess(t, err)
	saved := out.String()

	// change the flash and then restore the saved state
	_, err = mon.Execute("flash poke 0x10 0x00")
	test.DemandSuccess(t, err)
	_, err = mon.Execute("flash write 0x00 0x00")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, fl.Mode(), flash.Read)

	_, err = mon.Execute(fmt.Sprintf("load %s", path))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fl.Mode(), flash.Unlock1)
	v, _ := fl.Peek(0x10)
	test.ExpectEquality(t, v, uint8(0x99))

	// the digest of the restored state is the same as the digest of the
	// saved state
	out.Clear()
	_, err = mon.Execute("digest")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), strings.TrimPrefix(saved, "mode: unlock 1\n"))

	_, err = mon.Execute("load " + filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
}

func TestLogAndHelp(t *testing.T) {
	logger.Clear()

	mon, _, out := newMonitor(t, "")
	out.Clear()

	_, err := mon.Execute("log 1")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("flash: flash ROM emulator initialised\n"), out.String())

	out.Clear()
	_, err = mon.Execute("map")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("0000080100000000 -> 0000080107ffffff\tflash\n"), out.String())

	out.Clear()
	_, err = mon.Execute("help")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "  flash read <offset>\n"))
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "  quit\n"))
}

func TestPreferences(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.RamDisk.Size.Set(1))
	test.DemandSuccess(t, p.Flash.LogErase.Set(false))

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	dsk, err := ramdisk.NewRamDisk(env, "ide0.0")
	test.DemandSuccess(t, err)
	defer dsk.Close()

	out := &test.CompareWriter{}
	mon, err := monitor.NewMonitor(env, flash.NewFlash(env), dsk, strings.NewReader(""), out)
	test.DemandSuccess(t, err)

	_, err = mon.Execute("prefs save")
	test.DemandSuccess(t, err)

	// a change that has not been saved is reverted by loading
	test.DemandSuccess(t, p.Flash.LogErase.Set(true))
	_, err = mon.Execute("prefs load")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Flash.LogErase.Get().(bool), false)

	_, err = mon.Execute("prefs")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "flash.logErase :: false\n"), out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "ramdisk.size :: 1\n"), out.String())

	_, err = mon.Execute("prefs reload")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArguments))
}
