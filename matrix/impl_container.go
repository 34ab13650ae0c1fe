// SPDX-License-Identifier: MIT

// Package matrix - owning containers.
//
// Matrix owns a compact width×height buffer and is itself a full-window,
// unit-stride View over it, so every view operation (At/Set, Window, Col/Row,
// Assign, composition) is available directly on a container.
//
// Ownership rules:
//   - Clone deep-copies; Move transfers the buffer and leaves the source empty
//     (Width()==Height()==0, IsEmpty()==true); Release drops the buffer.
//   - Views derived from a container alias its buffer and must not outlive a Move
//     or Release of that container.

package matrix

import "fmt"

const (
	ctxNewMatrix = "NewMatrix"
	ctxIdentity  = "Identity"
	ctxFromRows  = "FromRows"
)

// Matrix is an owning, compact, column-major container.
// Invariant: len(data) == width*height, window == full extents, strides == 1.
type Matrix[T Scalar] struct {
	View[T]
}

var _ Expr[float64] = (*Matrix[float64])(nil)

// newMatrix allocates a zero-filled container; zero extents are allowed.
func newMatrix[T Scalar](width, height int) *Matrix[T] {
	return &Matrix[T]{View: View[T]{
		data:    make([]T, width*height),
		fullW:   width,
		fullH:   height,
		winW:    width,
		winH:    height,
		strideX: 1,
		strideY: 1,
	}}
}

// emptyView is the state of a moved-from or released container.
func emptyView[T Scalar]() View[T] {
	return View[T]{strideX: 1, strideY: 1}
}

// NewMatrix allocates a width×height container.
// Elements are zero-initialized.
// Errors: ErrInvalidDimensions when width or height is not positive.
func NewMatrix[T Scalar](width, height int) (*Matrix[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewMatrix, width, height, ErrInvalidDimensions)
	}

	return newMatrix[T](width, height), nil
}

// Zeros is an alias of NewMatrix that reads better at call sites building
// accumulators.
func Zeros[T Scalar](width, height int) (*Matrix[T], error) {
	return NewMatrix[T](width, height)
}

// Identity returns the n×n identity matrix.
func Identity[T Scalar](n int) (*Matrix[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, ErrInvalidDimensions)
	}
	m := newMatrix[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a container from row-major literals: rows[y][x] becomes (x,y).
// All rows must have the same, non-zero length.
func FromRows[T Scalar](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	h, w := len(rows), len(rows[0])
	m := newMatrix[T](w, h)
	var x, y int
	for y = 0; y < h; y++ {
		if len(rows[y]) != w {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, y, len(rows[y]), w, ErrBadShape)
		}
		for x = 0; x < w; x++ {
			m.data[x*h+y] = rows[y][x]
		}
	}

	return m, nil
}

// Materialize evaluates any expression into a freshly allocated container.
// Products go through the blocked kernel. A nil expression yields an empty container.
func Materialize[T Scalar](e Expr[T]) *Matrix[T] {
	if isNilExpr(e) {
		return &Matrix[T]{View: emptyView[T]()}
	}
	m := newMatrix[T](e.Width(), e.Height())
	// shapes agree by construction; Assign cannot fail here
	_ = m.Assign(e)

	return m
}

// IsEmpty reports whether the container holds no buffer (moved, released or zero-valued).
func (m *Matrix[T]) IsEmpty() bool { return m.data == nil }

// Clone returns a deep copy with its own buffer. Cloning an empty container
// yields an empty container.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m.data == nil {
		return &Matrix[T]{View: emptyView[T]()}
	}
	c := newMatrix[T](m.Width(), m.Height())
	copy(c.data, m.data)

	return c
}

// Move transfers ownership of the buffer to a new container and empties m.
// Views previously derived from m keep aliasing the buffer, now owned by the result.
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{View: m.View}
	m.View = emptyView[T]()

	return out
}

// Release drops the buffer. The container stays usable as an empty value;
// calling Release twice is a no-op.
func (m *Matrix[T]) Release() {
	m.View = emptyView[T]()
}

// Transpose returns a new container with (x,y) swapped.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	w, h := m.Width(), m.Height()
	t := newMatrix[T](h, w)
	var x, y int
	for x = 0; x < w; x++ {
		for y = 0; y < h; y++ {
			t.data[y*w+x] = m.data[x*h+y]
		}
	}

	return t
}
