// SPDX-License-Identifier: MIT

// Package mmfile stores a matrix in a memory-mapped file.
//
// File layout (little-endian):
//
//	offset  size  field
//	0       4     magic "BLAM"
//	4       4     element size in bytes
//	8       4     width
//	12      4     height
//	16      ...   width*height elements, column-major (the container's storage order)
//
// The element type T MUST match the type the file was created with; only the
// element size is checked. Views returned by Matrix alias the mapping and must not
// be used after Close.
package mmfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/bla/matrix"
)

const (
	magic      = "BLAM"
	headerSize = 16
)

var (
	// ErrBadHeader is returned when the file does not start with a valid header.
	ErrBadHeader = errors.New("mmfile: bad header")

	// ErrItemSize is returned when the stored element size differs from sizeof(T).
	ErrItemSize = errors.New("mmfile: invalid item size")

	// ErrFileSize is returned when the file length disagrees with the header.
	ErrFileSize = errors.New("mmfile: invalid file size")
)

// File is an open memory-mapped matrix file.
type File[T matrix.Scalar] struct {
	path     string
	file     *os.File
	data     mmap.MMap
	width    int
	height   int
	readOnly bool
}

func itemSize[T matrix.Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func fileSize[T matrix.Scalar](width, height int) int64 {
	return int64(headerSize + itemSize[T]()*width*height)
}

// Create makes (or truncates) path, sizes it for width×height elements, maps it
// read-write and writes the header. Elements start as zero.
func Create[T matrix.Scalar](path string, width, height int) (_ *File[T], err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mmfile: create %s: %w", path, matrix.ErrInvalidDimensions)
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			fh.Close()
		}
	}()

	if err = fh.Truncate(fileSize[T](width, height)); err != nil {
		return nil, err
	}
	data, err := mmap.Map(fh, mmap.RDWR, 0)
	if err != nil {
		return nil, err
	}

	hdr := data[:headerSize]
	copy(hdr, magic)
	binary.LittleEndian.PutUint32(hdr[4:], uint32(itemSize[T]()))
	binary.LittleEndian.PutUint32(hdr[8:], uint32(width))
	binary.LittleEndian.PutUint32(hdr[12:], uint32(height))
	if err = data.Flush(); err != nil {
		data.Unmap()
		return nil, err
	}
	log().Debug().Str("path", path).Int("width", width).Int("height", height).Msg("mmfile created")

	return &File[T]{path: path, file: fh, data: data, width: width, height: height}, nil
}

// Open maps an existing file read-write.
func Open[T matrix.Scalar](path string) (*File[T], error) {
	return open[T](path, false)
}

// OpenReadOnly maps an existing file read-only. Writing through the returned
// view faults.
func OpenReadOnly[T matrix.Scalar](path string) (*File[T], error) {
	return open[T](path, true)
}

func open[T matrix.Scalar](path string, readOnly bool) (_ *File[T], err error) {
	flag, prot := os.O_RDWR, mmap.RDWR
	if readOnly {
		flag, prot = os.O_RDONLY, mmap.RDONLY
	}
	fh, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			fh.Close()
		}
	}()

	info, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < headerSize {
		return nil, fmt.Errorf("mmfile: open %s: %w", path, ErrFileSize)
	}
	f := &File[T]{path: path, file: fh, readOnly: readOnly}
	if f.data, err = mmap.Map(fh, prot, 0); err != nil {
		return nil, err
	}
	if err = f.readHeader(info.Size()); err != nil {
		f.data.Unmap()
		return nil, fmt.Errorf("mmfile: open %s: %w", path, err)
	}
	log().Debug().Str("path", path).Bool("readOnly", readOnly).Msg("mmfile opened")

	return f, nil
}

func (f *File[T]) readHeader(size int64) error {
	hdr := f.data[:headerSize]
	if string(hdr[:4]) != magic {
		return ErrBadHeader
	}
	if int(binary.LittleEndian.Uint32(hdr[4:])) != itemSize[T]() {
		return ErrItemSize
	}
	f.width = int(binary.LittleEndian.Uint32(hdr[8:]))
	f.height = int(binary.LittleEndian.Uint32(hdr[12:]))
	if size != fileSize[T](f.width, f.height) {
		return ErrFileSize
	}

	return nil
}

// Width returns the stored matrix width.
func (f *File[T]) Width() int { return f.width }

// Height returns the stored matrix height.
func (f *File[T]) Height() int { return f.height }

// Path returns the file path.
func (f *File[T]) Path() string { return f.path }

// Matrix returns a full view over the mapped payload. Writes (on a read-write
// mapping) land in the file after Flush or Close.
func (f *File[T]) Matrix() *matrix.View[T] {
	n := f.width * f.height
	var payload []T
	if n > 0 {
		payload = unsafe.Slice((*T)(unsafe.Pointer(&f.data[headerSize])), n)
	}
	// the header guarantees len(payload) == width*height
	v, _ := matrix.NewView(f.width, f.height, payload)

	return v
}

// Flush writes dirty pages back to the file.
func (f *File[T]) Flush() error {
	if f.readOnly {
		return nil
	}

	return f.data.Flush()
}

// Close flushes, unmaps and closes the file. Views from Matrix become invalid.
func (f *File[T]) Close() error {
	if f.data == nil {
		return nil
	}
	ferr := f.Flush()
	uerr := f.data.Unmap()
	cerr := f.file.Close()
	f.data = nil
	log().Debug().Str("path", f.path).Msg("mmfile closed")

	return errors.Join(ferr, uerr, cerr)
}
