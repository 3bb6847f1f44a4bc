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

// Package memorymap routes physical addresses to memory-mapped devices.
//
// A Map is a local value owned by whatever is playing the part of the system
// bus. There is no package level registry. Each device is added with the origin
// and length of its address range and accesses are handed to the device with
// the origin removed:
//
//	var m memorymap.Map
//	m.Add("flash", flash.Origin, flash.MappedLength, fl)
//	v, err := m.Read(flash.Origin|0x155540, bus.Byte)
//
// The Summary() function describes the map and is useful for reference.
package memorymap
