// SPDX-License-Identifier: MIT

// Package matrix - binary state of containers.
//
// State layout:
//   - payload is exactly count*sizeof(T) bytes, little-endian, in storage order
//     (x outer, y inner for matrices; index order for vectors).
//   - MarshalBinary prefixes the payload with a fixed header:
//     magic "BLA1", element size, width, height (uint32 each, little-endian).

package matrix

import (
	"encoding/binary"
	"fmt"
)

const (
	ctxState     = "FromState"
	ctxUnmarshal = "UnmarshalBinary"

	stateMagic      = "BLA1"
	stateHeaderSize = 16
)

// elemSize returns sizeof(T) in bytes.
func elemSize[T Scalar]() int {
	var zero T
	return binary.Size(zero)
}

// State returns the dimensions and a copy of the raw element bytes.
func (m *Matrix[T]) State() (width, height int, payload []byte) {
	payload, _ = binary.Append(make([]byte, 0, len(m.data)*elemSize[T]()), binary.LittleEndian, m.data)

	return m.Width(), m.Height(), payload
}

// MatrixFromState rebuilds a container from State output.
// Errors: ErrInvalidDimensions for negative extents, ErrBadShape when
// len(payload) != width*height*sizeof(T).
func MatrixFromState[T Scalar](width, height int, payload []byte) (*Matrix[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxState, width, height, ErrInvalidDimensions)
	}
	if want := width * height * elemSize[T](); len(payload) != want {
		return nil, fmt.Errorf("%s: payload %d bytes, want %d: %w", ctxState, len(payload), want, ErrBadShape)
	}
	m := newMatrix[T](width, height)
	if len(payload) == 0 {
		return m, nil
	}
	if _, err := binary.Decode(payload, binary.LittleEndian, m.data); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxState, err)
	}

	return m, nil
}

// MarshalBinary encodes the header followed by the State payload.
func (m *Matrix[T]) MarshalBinary() ([]byte, error) {
	w, h, payload := m.State()
	buf := make([]byte, 0, stateHeaderSize+len(payload))
	buf = append(buf, stateMagic...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(elemSize[T]()))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(w))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h))

	return append(buf, payload...), nil
}

// UnmarshalBinary replaces m's content with the decoded container.
// Views previously derived from m keep the old buffer.
func (m *Matrix[T]) UnmarshalBinary(data []byte) error {
	w, h, payload, err := decodeHeader[T](data)
	if err != nil {
		return err
	}
	out, err := MatrixFromState[T](w, h, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxUnmarshal, err)
	}
	m.View = out.View

	return nil
}

// State returns the element count and a copy of the raw element bytes.
func (v *Vector[T]) State() (size int, payload []byte) {
	payload, _ = binary.Append(make([]byte, 0, len(v.data)*elemSize[T]()), binary.LittleEndian, v.data)

	return v.size, payload
}

// VectorFromState rebuilds a vector from State output.
func VectorFromState[T Scalar](size int, payload []byte) (*Vector[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxState, size, ErrInvalidDimensions)
	}
	if want := size * elemSize[T](); len(payload) != want {
		return nil, fmt.Errorf("%s: payload %d bytes, want %d: %w", ctxState, len(payload), want, ErrBadShape)
	}
	v := newVector[T](size)
	if len(payload) == 0 {
		return v, nil
	}
	if _, err := binary.Decode(payload, binary.LittleEndian, v.data); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxState, err)
	}

	return v, nil
}

// MarshalBinary encodes a vector as a 1-wide matrix header plus payload.
func (v *Vector[T]) MarshalBinary() ([]byte, error) {
	n, payload := v.State()
	buf := make([]byte, 0, stateHeaderSize+len(payload))
	buf = append(buf, stateMagic...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(elemSize[T]()))
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(n))

	return append(buf, payload...), nil
}

// UnmarshalBinary replaces v's content with the decoded vector.
func (v *Vector[T]) UnmarshalBinary(data []byte) error {
	w, h, payload, err := decodeHeader[T](data)
	if err != nil {
		return err
	}
	if w != 1 {
		return fmt.Errorf("%s: width %d: %w", ctxUnmarshal, w, ErrBadShape)
	}
	out, err := VectorFromState[T](h, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxUnmarshal, err)
	}
	v.VectorView = out.VectorView

	return nil
}

func decodeHeader[T Scalar](data []byte) (w, h int, payload []byte, err error) {
	if len(data) < stateHeaderSize || string(data[:4]) != stateMagic {
		return 0, 0, nil, fmt.Errorf("%s: header: %w", ctxUnmarshal, ErrBadShape)
	}
	if es := int(binary.LittleEndian.Uint32(data[4:8])); es != elemSize[T]() {
		return 0, 0, nil, fmt.Errorf("%s: element size %d, want %d: %w", ctxUnmarshal, es, elemSize[T](), ErrBadShape)
	}
	w = int(binary.LittleEndian.Uint32(data[8:12]))
	h = int(binary.LittleEndian.Uint32(data[12:16]))

	return w, h, data[stateHeaderSize:], nil
}
