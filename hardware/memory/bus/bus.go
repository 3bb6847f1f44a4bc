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

package bus

// Access sizes, in bits, as used by the Alpha architecture. The flash
// decodes single bytes and the system bus uses longword accesses.
const (
	Byte     = 8
	Longword = 32
)

// Device defines the operations of a memory-mapped device. The offset is
// relative to the start of the device's address range. The size is the
// access size in bits (see the Byte and Longword constants).
type Device interface {
	ReadMem(offset uint64, size int) uint64
	WriteMem(offset uint64, size int, data uint64)
}

// DebuggerBus defines the meta-operations for a device. The address is a
// device specific index and not the bus offset.
type DebuggerBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}

// AddressError is the sentinal pattern for Peek() and Poke() requests that
// fall outside of the device.
const AddressError = "bus: address out of range: %#x"
