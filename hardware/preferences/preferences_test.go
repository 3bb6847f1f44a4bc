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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/es40emu/storage/hardware/preferences"
	"github.com/es40emu/storage/prefs"
	"github.com/es40emu/storage/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.RamDisk.Size.Get().(int), preferences.DefaultRamDiskSize)
	test.ExpectEquality(t, p.RamDisk.BlockSize.Get().(int), preferences.DefaultRamDiskBlockSize)
	test.ExpectEquality(t, p.RamDisk.ModelNumber.String(), preferences.DefaultModelNumber)
	test.ExpectEquality(t, p.Flash.LogErase.Get().(bool), true)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.RamDisk.Size.Set(64))
	test.ExpectSuccess(t, p.RamDisk.ModelNumber.Set("SCRATCH"))
	test.ExpectSuccess(t, p.Flash.LogErase.Set(false))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.RamDisk.Size.Get().(int), 64)
	test.ExpectEquality(t, q.RamDisk.ModelNumber.String(), "SCRATCH")
	test.ExpectEquality(t, q.Flash.LogErase.Get().(bool), false)

	q.SetDefaults()
	test.ExpectEquality(t, q.RamDisk.Size.Get().(int), preferences.DefaultRamDiskSize)
}

func TestInvalidValues(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.RamDisk.Size.Set(0))
	test.ExpectFailure(t, p.RamDisk.BlockSize.Set(-512))
	test.ExpectEquality(t, p.RamDisk.Size.Get().(int), preferences.DefaultRamDiskSize)

	// model numbers are cropped to the length of the identification field
	test.ExpectSuccess(t, p.RamDisk.ModelNumber.Set("0123456789012345678901234567890123456789EXTRA"))
	test.ExpectEquality(t, len(p.RamDisk.ModelNumber.String()), 40)
}
