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

// Package disk defines the contract between a disk backing medium and the
// disk controller that presents it to the emulated machine. The controller
// turns ATA/ATAPI and SCSI commands into byte level seeks, reads and writes.
//
// The ramdisk sub-package is an implementation of the Disk interface.
package disk

import "fmt"

// Disk is implemented by all disk backing media.
type Disk interface {
	// SeekByte moves the cursor to the byte offset. An error is returned if
	// the offset is outside the disk. The controller must abandon the
	// operation in progress if an error is returned.
	SeekByte(offset int64) error

	// ReadBytes copies bytes from the cursor into dest and advances the
	// cursor. Returns the number of bytes copied, which may be less than the
	// length of dest.
	ReadBytes(dest []byte) int

	// WriteBytes copies bytes from src to the cursor and advances the cursor.
	// Returns the number of bytes copied, which may be less than the length
	// of src.
	WriteBytes(src []byte) int

	// Geometry returns the disk geometry for identification responses.
	Geometry() Geometry

	// ModelNumber returns the model number for identification responses.
	ModelNumber() string

	// Size returns the capacity of the disk in bytes.
	Size() int64
}

// Geometry describes a disk in cylinder/head/sector terms. It is for
// presentation only and has no effect on how the disk is addressed.
type Geometry struct {
	Cylinders int64
	Heads     int
	Sectors   int
	BlockSize int
}

// NewGeometry returns the Geometry for a disk of the specified capacity.
// Cylinders is the number of whole cylinders that fit in the capacity.
func NewGeometry(capacity int64, blockSize int, sectors int, heads int) Geometry {
	g := Geometry{
		Heads:     heads,
		Sectors:   sectors,
		BlockSize: blockSize,
	}
	g.Cylinders = capacity / int64(blockSize) / int64(heads) / int64(sectors)
	return g
}

// Valid returns false if any of the geometry parameters are not positive. The
// number of cylinders is not considered.
func (g Geometry) Valid() bool {
	return g.Heads > 0 && g.Sectors > 0 && g.BlockSize > 0
}

func (g Geometry) String() string {
	return fmt.Sprintf("%d/%d/%d", g.Cylinders, g.Heads, g.Sectors)
}
