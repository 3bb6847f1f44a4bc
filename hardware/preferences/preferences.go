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

// Package preferences collates the preference values for the emulated storage
// peripherals. All values are stored in the same preferences file.
package preferences

import (
	"github.com/es40emu/storage/paths"
	"github.com/es40emu/storage/prefs"
)

// Preferences for all storage peripherals.
type Preferences struct {
	RamDisk *RamDiskPreferences
	Flash   *FlashPreferences
}

func (p *Preferences) String() string {
	return p.RamDisk.String() + p.Flash.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty the default preferences file in the resource
// directory is used. Values are loaded from the file if it exists.
func NewPreferences(path string) (*Preferences, error) {
	if path == "" {
		var err error
		path, err = paths.ResourcePath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p := &Preferences{}

	var err error

	p.RamDisk, err = newRamDiskPreferences(path)
	if err != nil {
		return nil, err
	}

	p.Flash, err = newFlashPreferences(path)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RamDisk.SetDefaults()
	p.Flash.SetDefaults()
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if err := p.RamDisk.Load(); err != nil {
		return err
	}
	return p.Flash.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if err := p.RamDisk.Save(); err != nil {
		return err
	}
	return p.Flash.Save()
}
