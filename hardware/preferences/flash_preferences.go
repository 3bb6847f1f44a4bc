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

package preferences

import (
	"github.com/es40emu/storage/prefs"
)

// FlashPreferences are the configuration values for the flash ROM.
type FlashPreferences struct {
	dsk *prefs.Disk

	// add a log entry for every completed erase command
	LogErase prefs.Bool
}

func (p *FlashPreferences) String() string {
	return p.dsk.String()
}

func newFlashPreferences(path string) (*FlashPreferences, error) {
	p := &FlashPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("flash.logErase", &p.LogErase)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all flash preferences to their default values.
func (p *FlashPreferences) SetDefaults() {
	_ = p.LogErase.Set(true)
}

// Load flash preferences from disk.
func (p *FlashPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save flash preferences to disk.
func (p *FlashPreferences) Save() error {
	return p.dsk.Save()
}
