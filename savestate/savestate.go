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

package savestate

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/es40emu/storage/curated"
)

// Sentinal error patterns.
const (
	FileError      = "savestate: file error: %v"
	BadHeader      = "savestate: not a state file"
	DigestMismatch = "savestate: digest mismatch"
	ComponentError = "savestate: component %d: %v"
	TrailingData   = "savestate: %d bytes of unused state"
)

// Header is the first line of every state file.
const Header = "es40storage state\n"

// length of the digest at the end of the file
const digestLen = 8

// Stater is implemented by components that can save and restore their state.
type Stater interface {
	SaveState(w io.Writer) error
	RestoreState(r io.Reader) error
}

// Save the state of the components to the named file. An existing file is
// overwritten.
func Save(path string, components ...Stater) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(FileError, err)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Write(w, components...); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

// Restore the state of the components from the named file.
func Restore(path string, components ...Stater) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f), components...)
}

// Write the header, the state of each component and the digest.
func Write(w io.Writer, components ...Stater) error {
	h := xxhash.New()
	mw := io.MultiWriter(w, h)

	if _, err := io.WriteString(mw, Header); err != nil {
		return curated.Errorf(FileError, err)
	}

	for i, c := range components {
		if err := c.SaveState(mw); err != nil {
			return curated.Errorf(ComponentError, i, err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, h.Sum64()); err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

// Read state written by Write() and restore each component in turn. Nothing
// is restored if the header or digest is wrong.
//
// A component that fails to restore stops the process but any components
// before it will have been restored.
func Read(r io.Reader, components ...Stater) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	body, err := verify(data)
	if err != nil {
		return err
	}

	br := bytes.NewReader(body)
	for i, c := range components {
		if err := c.RestoreState(br); err != nil {
			return curated.Errorf(ComponentError, i, err)
		}
	}

	if br.Len() > 0 {
		return curated.Errorf(TrailingData, br.Len())
	}

	return nil
}

// Digest returns the digest recorded in a state file. The digest is checked
// against the contents of the file.
func Digest(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, curated.Errorf(FileError, err)
	}
	if _, err := verify(data); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data[len(data)-digestLen:]), nil
}

// verify the header and digest of the data and return the component state.
func verify(data []byte) ([]byte, error) {
	if len(data) < len(Header)+digestLen || !bytes.HasPrefix(data, []byte(Header)) {
		return nil, curated.Errorf(BadHeader)
	}

	n := len(data) - digestLen
	if xxhash.Sum64(data[:n]) != binary.LittleEndian.Uint64(data[n:]) {
		return nil, curated.Errorf(DigestMismatch)
	}

	return data[len(Header):n], nil
}
