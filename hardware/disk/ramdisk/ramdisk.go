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

// Package ramdisk implements a disk that is backed by memory rather than by a
// file. The contents of the disk are lost when the disk is closed.
//
// The disk has a byte cursor that is moved with SeekByte() and advanced by
// ReadBytes() and WriteBytes(). Reads and writes never reach the final byte
// of the disk. A transfer that would reach it is shortened so that it stops
// one byte before the end.
package ramdisk

import (
	"fmt"
	"math"

	"github.com/es40emu/storage/curated"
	"github.com/es40emu/storage/environment"
	"github.com/es40emu/storage/hardware/disk"
	"github.com/es40emu/storage/logger"
)

// default geometry parameters
const (
	DefaultSectors = 32
	DefaultHeads   = 8
)

const megabyte = 1024 * 1024

// the mount log entry counts 512 byte blocks whatever the configured block
// size
const logBlockSize = 512

// Sentinal error patterns.
const (
	// the memory for the disk could not be allocated. fatal to the creation
	// of the disk
	AllocationFailure = "ramdisk: allocation failure: %v"

	// the seek offset is outside of the disk. the operation that issued the
	// seek must be abandoned
	OutOfRangeSeek = "ramdisk: seek beyond end of file: %d"

	InvalidGeometry = "ramdisk: invalid geometry: %v"
)

// RamDisk is a disk backed by memory. It implements the disk.Disk interface.
//
// RamDisk does no locking. If the disk is accessed from more than one
// goroutine then the disk controller must serialise access.
type RamDisk struct {
	env   *environment.Environment
	label string
	model string

	data []byte
	size int64

	// the current byte offset. never greater than size
	pos int64

	geometry disk.Geometry
}

// NewRamDisk is the preferred method of initialisation for the RamDisk type.
// The size, block size and model number are taken from the environment's
// preferences. The label identifies the disk in log entries (eg. "ide0.0").
func NewRamDisk(env *environment.Environment, label string) (*RamDisk, error) {
	prf := env.Prefs.RamDisk

	r := &RamDisk{
		env:   env,
		label: label,
		model: prf.ModelNumber.String(),
	}

	size := int64(prf.Size.Get().(int)) * megabyte
	blockSize := prf.BlockSize.Get().(int)

	err := r.Configure(size, blockSize, DefaultSectors, DefaultHeads)
	if err != nil {
		return nil, err
	}

	logger.Logf(r.env, r.label, "mounted RAMDISK, %d blocks, %s", r.size/logBlockSize, r.geometry)

	return r, nil
}

func (r *RamDisk) String() string {
	return fmt.Sprintf("%s: %s %d bytes (%s)", r.label, r.model, r.size, r.geometry)
}

// Label returns the device identification string.
func (r *RamDisk) Label() string {
	return r.label
}

// Configure allocates new memory for the disk and sets the geometry. Any
// existing contents are discarded and the cursor is moved to the start of the
// disk.
func (r *RamDisk) Configure(capacity int64, blockSize int, sectors int, heads int) error {
	g := disk.Geometry{
		Heads:     heads,
		Sectors:   sectors,
		BlockSize: blockSize,
	}
	if !g.Valid() {
		return curated.Errorf(InvalidGeometry, g)
	}

	data, err := allocate(capacity)
	if err != nil {
		return err
	}

	r.data = data
	r.size = capacity
	r.pos = 0
	r.geometry = disk.NewGeometry(r.size, blockSize, sectors, heads)

	return nil
}

// allocate memory of the requested size. a failed allocation is returned as an
// error rather than a panic.
func allocate(capacity int64) (data []byte, err error) {
	if capacity <= 0 || uint64(capacity) > math.MaxInt {
		return nil, curated.Errorf(AllocationFailure, fmt.Sprintf("invalid capacity (%d)", capacity))
	}

	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = curated.Errorf(AllocationFailure, r)
		}
	}()

	return make([]byte, capacity), nil
}

// SetBlockSize changes the block size and recalculates the geometry. The
// disk memory is not touched.
func (r *RamDisk) SetBlockSize(blockSize int) error {
	g := r.geometry
	g.BlockSize = blockSize
	if !g.Valid() {
		return curated.Errorf(InvalidGeometry, g)
	}
	r.geometry = disk.NewGeometry(r.size, blockSize, g.Sectors, g.Heads)
	return nil
}

// Close releases the disk memory. Calling Close() more than once has no
// effect. A closed disk has a size of zero.
func (r *RamDisk) Close() {
	if r.data == nil {
		return
	}
	r.data = nil
	r.size = 0
	r.pos = 0
	logger.Logf(r.env, r.label, "RAMDISK freed")
}

// SeekByte implements the disk.Disk interface.
func (r *RamDisk) SeekByte(offset int64) error {
	if offset < 0 || offset >= r.size {
		logger.Logf(r.env, r.label, "seek beyond end of file (%d)", offset)
		return curated.Errorf(OutOfRangeSeek, offset)
	}
	r.pos = offset
	return nil
}

// transferLength returns the number of bytes that can be transferred from
// the cursor. the transfer always stops short of the last byte in the disk.
func (r *RamDisk) transferLength(n int) int {
	if r.pos >= r.size {
		return 0
	}
	if r.pos+int64(n) >= r.size {
		return int(r.size - r.pos - 1)
	}
	return n
}

// ReadBytes implements the disk.Disk interface.
func (r *RamDisk) ReadBytes(dest []byte) int {
	n := r.transferLength(len(dest))
	if n == 0 {
		return 0
	}
	copy(dest[:n], r.data[r.pos:])
	r.pos += int64(n)
	return n
}

// WriteBytes implements the disk.Disk interface.
func (r *RamDisk) WriteBytes(src []byte) int {
	n := r.transferLength(len(src))
	if n == 0 {
		return 0
	}
	copy(r.data[r.pos:], src[:n])
	r.pos += int64(n)
	return n
}

// Tell returns the current byte offset of the cursor.
func (r *RamDisk) Tell() int64 {
	return r.pos
}

// Geometry implements the disk.Disk interface.
func (r *RamDisk) Geometry() disk.Geometry {
	return r.geometry
}

// ModelNumber implements the disk.Disk interface.
func (r *RamDisk) ModelNumber() string {
	return r.model
}

// Size implements the disk.Disk interface.
func (r *RamDisk) Size() int64 {
	return r.size
}
