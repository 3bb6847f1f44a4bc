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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios functions with friendlier names.
//
// The monitor uses a Terminal when standard input is an interactive
// terminal. The terminal is put into canonical mode so that line editing is
// handled by the tty driver, and is restored when CleanUp() is called.
package easyterm

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	// the attributes in place when Initialise() was called. restored by
	// CleanUp()
	origAttr syscall.Termios

	canAttr syscall.Termios
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	var attr syscall.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.origAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// canonical mode is the original attributes with line editing and echo
	// forced on
	pt.canAttr = pt.origAttr
	pt.canAttr.Lflag |= syscall.ICANON | syscall.ECHO

	return nil
}

// CleanUp restores the terminal attributes.
func (pt *Terminal) CleanUp() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.origAttr)
}

// Write implements the io.Writer interface. Output is synced immediately.
func (pt *Terminal) Write(p []byte) (int, error) {
	n, err := pt.output.Write(p)
	if err != nil {
		return n, err
	}
	return n, pt.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// Flush discards input that has been typed but not read and output that has
// been written but not transmitted.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
