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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows a different set of flags for
// each mode.
//
// Unlike flag.FlagSet, the arguments are given once with NewArgs() and then
// Parse() is called with no arguments. This is so that the arguments can be
// parsed in layers, one layer for each mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "INFO", "VIZ")
//	prefsFile := md.AddString("prefs", "", "preferences file")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		...
//	}
//
// A mode is a command line argument that puts the program into a different
// mode of operation. The first sub-mode added with AddSubModes() is the
// default mode and is selected when the first non-flag argument is not one of
// the listed sub-modes. All sub-mode comparisons are case insensitive.
//
// After a call to Parse() the non-flag arguments that follow the mode
// selector are returned by RemainingArgs() and GetArg(). Calling NewMode()
// starts a new layer of flags which will be parsed from the remaining
// arguments on the next call to Parse().
package modalflag
