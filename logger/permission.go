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

package logger

// Permission is consulted before every new entry. The environment of an
// emulated device implements Permission so that only the main emulation adds
// to the log.
type Permission interface {
	AllowLogging() bool
}

type always bool

func (a always) AllowLogging() bool {
	return bool(a)
}

// Allow is a Permission that is always granted. For code that runs outside
// of any emulation, such as the monitor.
const Allow = always(true)

// a nil Permission is treated the same as Allow
func permitted(perm Permission) bool {
	return perm == nil || perm.AllowLogging()
}
