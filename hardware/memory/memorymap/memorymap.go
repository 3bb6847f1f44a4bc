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

package memorymap

import (
	"sort"

	"github.com/es40emu/storage/curated"
	"github.com/es40emu/storage/hardware/memory/bus"
)

// Sentinal error patterns.
const (
	Unmapped = "memorymap: unmapped address: %#016x"
	Overlap  = "memorymap: %s overlaps %s"
	Empty    = "memorymap: %s has no length"
	Overflow = "memorymap: %s extends beyond the end of the address space"
)

// Area is a range of the physical address space occupied by a device.
type Area struct {
	Name   string
	Origin uint64
	Length uint64
	Device bus.Device
}

// Memtop is the last address in the area.
func (a Area) Memtop() uint64 {
	return a.Origin + a.Length - 1
}

func (a Area) contains(address uint64) bool {
	return address >= a.Origin && address <= a.Memtop()
}

// Map is an ordered list of areas. The zero value is an empty map.
type Map struct {
	areas []Area
}

// Add a device to the map. Areas cannot overlap.
func (m *Map) Add(name string, origin uint64, length uint64, dev bus.Device) error {
	a := Area{
		Name:   name,
		Origin: origin,
		Length: length,
		Device: dev,
	}

	if length == 0 {
		return curated.Errorf(Empty, name)
	}

	// Memtop() is only meaningful if the area does not wrap
	if a.Memtop() < origin {
		return curated.Errorf(Overflow, name)
	}

	for _, b := range m.areas {
		if a.Origin <= b.Memtop() && b.Origin <= a.Memtop() {
			return curated.Errorf(Overlap, name, b.Name)
		}
	}

	m.areas = append(m.areas, a)
	sort.Slice(m.areas, func(i, j int) bool {
		return m.areas[i].Origin < m.areas[j].Origin
	})

	return nil
}

// MapAddress returns the area containing the address and the offset of the
// address from the start of the area.
func (m *Map) MapAddress(address uint64) (Area, uint64, bool) {
	i := sort.Search(len(m.areas), func(i int) bool {
		return m.areas[i].Memtop() >= address
	})
	if i < len(m.areas) && m.areas[i].contains(address) {
		return m.areas[i], address - m.areas[i].Origin, true
	}
	return Area{}, 0, false
}

// Read from the device mapped at the address.
func (m *Map) Read(address uint64, size int) (uint64, error) {
	a, offset, ok := m.MapAddress(address)
	if !ok {
		return 0, curated.Errorf(Unmapped, address)
	}
	return a.Device.ReadMem(offset, size), nil
}

// Write to the device mapped at the address.
func (m *Map) Write(address uint64, size int, data uint64) error {
	a, offset, ok := m.MapAddress(address)
	if !ok {
		return curated.Errorf(Unmapped, address)
	}
	a.Device.WriteMem(offset, size, data)
	return nil
}
