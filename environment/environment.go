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

package environment

import (
	"github.com/es40emu/storage/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label of the main emulation.
const MainEmulation = Label("")

// Environment provides context for the emulated devices. More than one
// environment can exist at once, for example when a saved state is inspected
// alongside the running emulation.
type Environment struct {
	Label Label

	// the peripheral preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created from the default preferences file. Providing a non-nil value
// allows the preferences to be shared between environments.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise puts the preferences into a known default state. Useful for
// tests where the device configuration must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is for the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log. A nil environment is always allowed to log.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return true
	}
	return env.IsMainEmulation()
}
