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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/es40emu/storage/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while es40storage is running ***"

// the separator between key and value in the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	FileError      = "prefs: file error: %v"
	InvalidKey     = "prefs: invalid key: %s"
	DuplicateKey   = "prefs: key already added: %s"
	MalformedEntry = "prefs: %s: malformed entry: %s"
)

// Disk binds preference values to keys and saves/loads them to and from a
// file. More than one Disk can share a file. Entries for keys that have not
// been added to a Disk are preserved when that Disk saves.
type Disk struct {
	path    string
	entries map[string]pref

	// values to save in place of the current value. used for keys that have
	// been set from the command line for the current session only
	preserve map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:     path,
		entries:  make(map[string]pref),
		preserve: make(map[string]string),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Add a preference value to the Disk under the specified key.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, keySep) || strings.ContainsAny(key, "\n;") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// readFile returns the key/value pairs in the preferences file. A missing file
// is not an error and results in an empty map.
func (dsk *Disk) readFile() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vals, nil
		}
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(MalformedEntry, dsk.path, scanner.Text())
	}

	for scanner.Scan() {
		l := scanner.Text()
		if strings.TrimSpace(l) == "" {
			continue
		}
		kv := strings.SplitN(l, keySep, 2)
		if len(kv) != 2 {
			return nil, curated.Errorf(MalformedEntry, dsk.path, l)
		}
		vals[strings.TrimSpace(kv[0])] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	return vals, nil
}

// Load preference values from disk. Values on the command line stack (see
// PushCommandLineStack()) take precedence over the values in the file. If
// saveCommandLine is false then command line values will be used but will not
// be stored on the next call to Save().
func (dsk *Disk) Load(saveCommandLine bool) error {
	vals, err := dsk.readFile()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if v, ok := vals[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(MalformedEntry, dsk.path, err)
			}
		}

		if ok, v := GetCommandLinePref(k); ok {
			if saveCommandLine {
				delete(dsk.preserve, k)
			} else {
				dsk.preserve[k] = p.String()
			}
			if err := p.Set(v); err != nil {
				return curated.Errorf(MalformedEntry, "command line", err)
			}
		}
	}

	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	vals, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := dsk.preserve[k]; ok {
			vals[k] = v
		} else {
			vals[k] = p.String()
		}
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	err = dsk.write(f, keys, vals)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf(FileError, cerr)
	}

	return err
}

func (dsk *Disk) write(w io.Writer, keys []string, vals map[string]string) error {
	if _, err := fmt.Fprintln(w, WarningBoilerPlate); err != nil {
		return curated.Errorf(FileError, err)
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", k, keySep, vals[k]); err != nil {
			return curated.Errorf(FileError, err)
		}
	}
	return nil
}
