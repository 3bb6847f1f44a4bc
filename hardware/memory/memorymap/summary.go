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
	"fmt"
	"strings"
)

// Summary returns a multiline string detailing all the areas in the map.
func (m *Map) Summary() string {
	s := strings.Builder{}
	for _, a := range m.areas {
		s.WriteString(fmt.Sprintf("%016x -> %016x\t%s\n", a.Origin, a.Memtop(), a.Name))
	}
	return s.String()
}
