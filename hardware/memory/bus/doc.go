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

// Package bus defines how the system bus accesses memory-mapped devices.
//
// The system bus decodes the physical address and hands the device an offset
// relative to the start of the device's address range. Devices never see the
// physical address and never need to find themselves in a global device
// table.
//
// The DebuggerBus is for the exclusive use of debugging tools such as the
// monitor. It bypasses any protocol the device implements on its normal
// read/write path.
package bus
