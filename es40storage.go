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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/es40emu/storage/easyterm"
	"github.com/es40emu/storage/environment"
	"github.com/es40emu/storage/hardware/disk"
	"github.com/es40emu/storage/hardware/disk/ramdisk"
	"github.com/es40emu/storage/hardware/flash"
	"github.com/es40emu/storage/hardware/preferences"
	"github.com/es40emu/storage/logger"
	"github.com/es40emu/storage/modalflag"
	"github.com/es40emu/storage/monitor"
	"github.com/es40emu/storage/prefs"
	"github.com/es40emu/storage/savestate"
	"github.com/es40emu/storage/statsview"
	"github.com/es40emu/storage/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
	exitInterrupt  = 30
)

// the label given to the RAM disk in the monitor
const diskLabel = "ide0.0"

func main() {
	// #ctrlc handler. the monitor leaves the terminal in canonical mode so
	// there is nothing to restore
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Args[1:], os.Stdin, os.Stdout)
	}()

	select {
	case <-intChan:
		fmt.Print("\r\n")
		os.Exit(exitInterrupt)
	case v := <-done:
		os.Exit(v)
	}
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "INFO", "VIZ")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "MONITOR":
		err = runMonitor(md, input, output)
	case "INFO":
		err = info(md, output)
	case "VIZ":
		err = viz(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// preference flags common to every mode that creates an environment
type prefsFlags struct {
	file     *string
	override *string
}

func addPrefsFlags(md *modalflag.Modes) prefsFlags {
	return prefsFlags{
		file:     md.AddString("prefsfile", "", "preferences file (default in the resource directory)"),
		override: md.AddString("prefs", "", "preferences for this session (eg. \"ramdisk.size::64\")"),
	}
}

// newEnvironment creates the main emulation environment. preferences given on
// the command line override those in the preferences file but are not saved
func newEnvironment(pf prefsFlags) (*environment.Environment, error) {
	if *pf.override != "" {
		prefs.PushCommandLineStack(*pf.override)
		defer prefs.PopCommandLineStack()
	}

	p, err := preferences.NewPreferences(*pf.file)
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(environment.MainEmulation, p)
}

func runMonitor(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	pf := addPrefsFlags(md)
	state := md.AddString("state", "", "restore flash state from file")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(output)
	}

	env, err := newEnvironment(pf)
	if err != nil {
		return err
	}

	dsk, err := ramdisk.NewRamDisk(env, diskLabel)
	if err != nil {
		return err
	}
	defer dsk.Close()

	fl := flash.NewFlash(env)
	if *state != "" {
		if err := savestate.Restore(*state, fl); err != nil {
			return err
		}
	}

	prompt := ""

	// use the terminal directly if input is interactive
	if f, ok := input.(*os.File); ok && easyterm.IsTerminal(f) {
		var term easyterm.Terminal
		if err := term.Initialise(f, os.Stdout); err != nil {
			return err
		}
		defer term.CleanUp()

		if err := term.CanonicalMode(); err != nil {
			return err
		}

		// anything typed while the devices were being created is discarded
		if err := term.Flush(); err != nil {
			return err
		}
		output = &term
		prompt = "> "
	}

	mon, err := monitor.NewMonitor(env, fl, dsk, input, output)
	if err != nil {
		return err
	}
	mon.Prompt = prompt

	return mon.Run()
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("an optional state file argument shows the state digest")

	pf := addPrefsFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment(pf)
	if err != nil {
		return err
	}

	fmt.Fprint(output, env.Prefs)

	// the geometry the RAM disk will have. the disk is not allocated
	size := int64(env.Prefs.RamDisk.Size.Get().(int)) * 1024 * 1024
	g := disk.NewGeometry(size, env.Prefs.RamDisk.BlockSize.Get().(int), ramdisk.DefaultSectors, ramdisk.DefaultHeads)
	fmt.Fprintf(output, "ramdisk: %s %d bytes (C/H/S %s)\n", env.Prefs.RamDisk.ModelNumber.String(), size, g)
	fmt.Fprintf(output, "flash: %dKB at 0x%016x (%#x bytes mapped)\n", flash.Size/1024, flash.Origin, flash.MappedLength)

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		d, err := savestate.Digest(md.GetArg(0))
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "state: %s digest %016x\n", md.GetArg(0), d)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func viz(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the flash command table is written as a Graphviz graph to the\nnamed file or to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		flash.DumpCommandTable(output)
	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		flash.DumpCommandTable(f)
		return f.Close()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
