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

// Package flash emulates the 2MB flash ROM of the ES40. The flash is mapped
// into the physical address space and is programmed by software with the
// JEDEC command sequences common to parallel flash chips.
//
// Every bus offset is reduced to a protocol index by discarding the low six
// bits. In other words, each byte of the flash occupies a 64 byte window of
// the address space:
//
//	index := offset >> 6
//
// Writes are not stored directly. They are fed to the command decoder, which
// moves between the modes listed by the Mode type. A byte is only stored when
// the decoder is in the Program mode. The command sequences are:
//
//	autoselect    5555/AA 2AAA/55 5555/90
//	program       5555/AA 2AAA/55 5555/A0 addr/data
//	chip erase    5555/AA 2AAA/55 5555/80 5555/AA 2AAA/55 5555/10
//	sector erase  5555/AA 2AAA/55 5555/80 5555/AA 2AAA/55 sector/30
//
// Any write that does not continue a sequence returns the decoder to the Read
// mode. Malformed sequences are not errors.
//
// The command table is held in a single list of Command values. The
// Transition() function looks up the table and has no side effects, which
// means the decoder can be tested without a Flash instance.
//
// The complete state of the device is the storage array and the mode.
// SaveState() and RestoreState() write and read exactly those two things.
package flash
