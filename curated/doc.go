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

// Package curated provides the error type used throughout es40storage.
//
// A curated error is created with Errorf(). Unlike fmt.Errorf() the pattern
// string is kept alongside the values and it is the pattern that identifies
// the error. Packages export their patterns as constants so that callers can
// test for a specific failure:
//
//	const OutOfRangeSeek = "ramdisk: seek beyond end of file: %d"
//
//	err := dsk.SeekByte(offset)
//	if curated.Is(err, ramdisk.OutOfRangeSeek) {
//		...
//	}
//
// Has() is the same as Is() except that it searches the entire chain of
// curated errors that have been wrapped with the %v verb.
//
// The Error() function removes duplicate adjacent parts from the message.
// Parts are the sub-strings separated by ": ". This means that a function can
// wrap an error with its own context without worrying whether the callee has
// already added the same context.
//
//	e := curated.Errorf("flash: %v", curated.Errorf("flash: bad mode"))
//	fmt.Println(e)
//
// Will print "flash: bad mode" and not "flash: flash: bad mode".
package curated
