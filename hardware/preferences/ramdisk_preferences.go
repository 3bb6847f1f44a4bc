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
	"fmt"

	"github.com/es40emu/storage/prefs"
)

// default values for the RAM disk
const (
	DefaultRamDiskSize      = 512 // megabytes
	DefaultRamDiskBlockSize = 512
	DefaultModelNumber      = "ES40RAMDISK"
)

// the model number is reported in the 40 character field of the ATA
// identification response
const modelNumberLen = 40

// RamDiskPreferences are the configuration values for a RAM disk.
type RamDiskPreferences struct {
	dsk *prefs.Disk

	// size of the disk in megabytes. the value is read when the disk is
	// created and has no effect on an existing disk
	Size prefs.Int

	// block size reported to the disk controller
	BlockSize prefs.Int

	// model number reported in the identification response
	ModelNumber prefs.String
}

func (p *RamDiskPreferences) String() string {
	return p.dsk.String()
}

func newRamDiskPreferences(path string) (*RamDiskPreferences, error) {
	p := &RamDiskPreferences{}

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("value must be positive (%d)", v.(int))
		}
		return nil
	}
	p.Size.SetHookPre(positive)
	p.BlockSize.SetHookPre(positive)
	p.ModelNumber.SetMaxLen(modelNumberLen)

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("ramdisk.size", &p.Size)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("ramdisk.blockSize", &p.BlockSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("ramdisk.modelNumber", &p.ModelNumber)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all RAM disk preferences to their default values.
func (p *RamDiskPreferences) SetDefaults() {
	_ = p.Size.Set(DefaultRamDiskSize)
	_ = p.BlockSize.Set(DefaultRamDiskBlockSize)
	_ = p.ModelNumber.Set(DefaultModelNumber)
}

// Load RAM disk preferences from disk.
func (p *RamDiskPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save RAM disk preferences to disk.
func (p *RamDiskPreferences) Save() error {
	return p.dsk.Save()
}
