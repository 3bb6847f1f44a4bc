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

// Package monitor is a line oriented console for the storage peripherals. It
// drives a flash ROM through the system memory map and a disk through the
// disk interface, in the same way as the emulated firmware and disk
// controller would.
//
// One command is read per line. Numbers can be written in any form accepted
// by the Go language (eg. 0x5555, 0o17, 21845). Errors are printed and the
// monitor continues with the next line.
package monitor
