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

// Package logger is the central log for es40storage. Entries are made up of a
// tag and a detail. The tag is usually the name of the device or package
// making the entry and the detail is the message.
//
//	logger.Logf(env, "flash", "sector erase at %#06x", base)
//
// Every request carries a Permission. The environment.Environment type
// implements Permission and only allows logging for the main emulation, which
// keeps test and preview instances out of the log. Use logger.Allow when an
// entry should always be made.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count.
package logger
