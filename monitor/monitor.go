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

package monitor

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/es40emu/storage/curated"
	"github.com/es40emu/storage/digest"
	"github.com/es40emu/storage/environment"
	"github.com/es40emu/storage/hardware/disk"
	"github.com/es40emu/storage/hardware/flash"
	"github.com/es40emu/storage/hardware/memory/bus"
	"github.com/es40emu/storage/hardware/memory/memorymap"
	"github.com/es40emu/storage/logger"
	"github.com/es40emu/storage/savestate"
)

// Sentinal error patterns.
const (
	UnknownCommand = "monitor: unknown command: %s"
	BadArguments   = "monitor: %s: usage: %s"
	BadNumber      = "monitor: not a number: %s"
)

// the number of log entries shown by the log command when no count is given
const defaultLogTail = 10

// largest transfer for a single disk read command
const maxDiskRead = 4096

// Monitor is the command console.
type Monitor struct {
	env *environment.Environment

	flash *flash.Flash
	disk  disk.Disk
	mem   memorymap.Map

	// fingerprint of the flash state. updated by the digest command
	digest *digest.State

	input  *bufio.Scanner
	output io.Writer

	// printed before reading each line. the empty string for no prompt
	Prompt string
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The flash is placed in the memory map at its physical address.
func NewMonitor(env *environment.Environment, fl *flash.Flash, dsk disk.Disk, input io.Reader, output io.Writer) (*Monitor, error) {
	mon := &Monitor{
		env:    env,
		flash:  fl,
		disk:   dsk,
		digest: digest.NewState(fl),
		input:  bufio.NewScanner(input),
		output: output,
	}

	if err := mon.mem.Add("flash", flash.Origin, flash.MappedLength, fl); err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	return mon, nil
}

// Run reads and executes commands until the quit command or the end of the
// input.
func (mon *Monitor) Run() error {
	for {
		if mon.Prompt != "" {
			io.WriteString(mon.output, mon.Prompt)
		}

		if !mon.input.Scan() {
			if err := mon.input.Err(); err != nil {
				return curated.Errorf("monitor: %v", err)
			}
			return nil
		}

		quit, err := mon.Execute(mon.input.Text())
		if err != nil {
			fmt.Fprintf(mon.output, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

type command struct {
	name  string
	usage string
	nargs int
	fn    func(mon *Monitor, args []string) error
}

// commands indexed by the first one or two words of the input line
var commands = map[string]command{}

// the order in which commands are listed by the help command
var commandList []command

func init() {
	commandList = []command{
		{"flash read", "flash read <offset>", 1, (*Monitor).flashRead},
		{"flash write", "flash write <offset> <data>", 2, (*Monitor).flashWrite},
		{"flash mode", "flash mode", 0, (*Monitor).flashMode},
		{"flash peek", "flash peek <index>", 1, (*Monitor).flashPeek},
		{"flash poke", "flash poke <index> <value>", 2, (*Monitor).flashPoke},
		{"map", "map", 0, (*Monitor).showMap},
		{"disk seek", "disk seek <offset>", 1, (*Monitor).diskSeek},
		{"disk read", "disk read <count>", 1, (*Monitor).diskRead},
		{"disk write", "disk write <hex bytes>", 1, (*Monitor).diskWrite},
		{"disk geometry", "disk geometry", 0, (*Monitor).diskGeometry},
		{"prefs", "prefs", 0, (*Monitor).showPrefs},
		{"prefs load", "prefs load", 0, (*Monitor).loadPrefs},
		{"prefs save", "prefs save", 0, (*Monitor).savePrefs},
		{"save", "save <file>", 1, (*Monitor).save},
		{"load", "load <file>", 1, (*Monitor).load},
		{"digest", "digest", 0, (*Monitor).showDigest},
		{"log", "log [count]", -1, (*Monitor).showLog},
		{"help", "help", 0, (*Monitor).help},
	}

	for _, c := range commandList {
		commands[c.name] = c
	}
}

// Execute a single command line. Returns true if the command was quit.
func (mon *Monitor) Execute(line string) (bool, error) {
	f := strings.Fields(line)
	if len(f) == 0 || strings.HasPrefix(f[0], "#") {
		return false, nil
	}

	name := strings.ToLower(f[0])
	if name == "quit" {
		return true, nil
	}

	// two word commands take precedence
	var c command
	var ok bool
	var args []string
	if len(f) > 1 {
		c, ok = commands[name+" "+strings.ToLower(f[1])]
		args = f[2:]
	}
	if !ok {
		c, ok = commands[name]
		args = f[1:]
	}
	if !ok {
		return false, curated.Errorf(UnknownCommand, strings.Join(f, " "))
	}

	if c.nargs >= 0 && len(args) != c.nargs {
		return false, curated.Errorf(BadArguments, c.name, c.usage)
	}

	return false, c.fn(mon, args)
}

func parseNumber(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, curated.Errorf(BadNumber, s)
	}
	return v, nil
}

func (mon *Monitor) flashRead(args []string) error {
	offset, err := parseNumber(args[0], 64)
	if err != nil {
		return err
	}
	v, err := mon.mem.Read(flash.Origin+offset, bus.Byte)
	if err != nil {
		return err
	}
	fmt.Fprintf(mon.output, "0x%02x\n", v)
	return nil
}

func (mon *Monitor) flashWrite(args []string) error {
	offset, err := parseNumber(args[0], 64)
	if err != nil {
		return err
	}
	data, err := parseNumber(args[1], 64)
	if err != nil {
		return err
	}
	if err := mon.mem.Write(flash.Origin+offset, bus.Byte, data); err != nil {
		return err
	}
	fmt.Fprintf(mon.output, "mode: %s\n", mon.flash.Mode())
	return nil
}

func (mon *Monitor) flashMode(_ []string) error {
	fmt.Fprintf(mon.output, "%s\n", mon.flash.Mode())
	return nil
}

func (mon *Monitor) flashPeek(args []string) error {
	idx, err := parseNumber(args[0], 32)
	if err != nil {
		return err
	}
	v, err := mon.flash.Peek(uint32(idx))
	if err != nil {
		return err
	}
	fmt.Fprintf(mon.output, "0x%02x\n", v)
	return nil
}

func (mon *Monitor) flashPoke(args []string) error {
	idx, err := parseNumber(args[0], 32)
	if err != nil {
		return err
	}
	v, err := parseNumber(args[1], 8)
	if err != nil {
		return err
	}
	return mon.flash.Poke(uint32(idx), uint8(v))
}

func (mon *Monitor) showMap(_ []string) error {
	io.WriteString(mon.output, mon.mem.Summary())
	return nil
}

func (mon *Monitor) diskSeek(args []string) error {
	offset, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil {
		return curated.Errorf(BadNumber, args[0])
	}
	return mon.disk.SeekByte(offset)
}

func (mon *Monitor) diskRead(args []string) error {
	n, err := parseNumber(args[0], 32)
	if err != nil {
		return err
	}
	if n > maxDiskRead {
		n = maxDiskRead
	}
	b := make([]byte, n)
	n = uint64(mon.disk.ReadBytes(b))
	fmt.Fprintf(mon.output, "%d bytes: % x\n", n, b[:n])
	return nil
}

func (mon *Monitor) diskWrite(args []string) error {
	b, err := hex.DecodeString(args[0])
	if err != nil {
		return curated.Errorf(BadArguments, "disk write", "hex bytes must be in pairs")
	}
	n := mon.disk.WriteBytes(b)
	fmt.Fprintf(mon.output, "%d bytes\n", n)
	return nil
}

func (mon *Monitor) diskGeometry(_ []string) error {
	g := mon.disk.Geometry()
	fmt.Fprintf(mon.output, "%s: %d bytes, C/H/S %s, %d byte blocks\n", mon.disk.ModelNumber(), mon.disk.Size(), g, g.BlockSize)
	return nil
}

func (mon *Monitor) showPrefs(_ []string) error {
	fmt.Fprint(mon.output, mon.env.Prefs)
	return nil
}

// the RAM disk is not reconfigured by a change of preferences. new values
// take effect the next time the disk is mounted
func (mon *Monitor) loadPrefs(_ []string) error {
	return mon.env.Prefs.Load()
}

func (mon *Monitor) savePrefs(_ []string) error {
	return mon.env.Prefs.Save()
}

func (mon *Monitor) save(args []string) error {
	if err := savestate.Save(args[0], mon.flash); err != nil {
		return err
	}
	logger.Logf(mon.env, "monitor", "state saved to %s", args[0])
	return nil
}

func (mon *Monitor) load(args []string) error {
	if err := savestate.Restore(args[0], mon.flash); err != nil {
		return err
	}
	logger.Logf(mon.env, "monitor", "state loaded from %s", args[0])
	return nil
}

func (mon *Monitor) showDigest(_ []string) error {
	mon.digest.ResetDigest()
	if err := mon.digest.Update(); err != nil {
		return err
	}
	fmt.Fprintf(mon.output, "%s\n", mon.digest.Hash())
	return nil
}

func (mon *Monitor) showLog(args []string) error {
	n := defaultLogTail
	switch len(args) {
	case 0:
	case 1:
		v, err := parseNumber(args[0], 16)
		if err != nil {
			return err
		}
		n = int(v)
	default:
		return curated.Errorf(BadArguments, "log", commands["log"].usage)
	}
	logger.Tail(mon.output, n)
	return nil
}

func (mon *Monitor) help(_ []string) error {
	for _, c := range commandList {
		fmt.Fprintf(mon.output, "  %s\n", c.usage)
	}
	fmt.Fprintln(mon.output, "  quit")
	return nil
}
