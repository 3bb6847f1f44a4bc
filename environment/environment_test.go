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

package environment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/es40emu/storage/environment"
	"github.com/es40emu/storage/hardware/preferences"
	"github.com/es40emu/storage/logger"
	"github.com/es40emu/storage/prefs"
	"github.com/es40emu/storage/test"
)

func TestLoggingPermission(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("inspect", p)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectFailure(t, other.IsMainEmulation())

	log := logger.NewLogger(10)
	log.Log(main, "main", "allowed")
	log.Log(other, "other", "not allowed")

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "main: allowed\n")

	// preferences are shared
	test.ExpectSuccess(t, main.Prefs.RamDisk.Size.Set(1))
	test.ExpectEquality(t, other.Prefs.RamDisk.Size.Get().(int), 1)
	other.Normalise()
	test.ExpectEquality(t, main.Prefs.RamDisk.Size.Get().(int), preferences.DefaultRamDiskSize)
}
