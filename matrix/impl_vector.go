// SPDX-License-Identifier: MIT

// Package matrix - one-dimensional views and containers.
//
// A VectorView addresses element i at data[dist*(i+offset)]. Rows and columns of a
// 2D view are vector views (see View.Row/View.Col), as are Range and Slice
// selections; none of them copy.

package matrix

import "fmt"

const (
	ctxNewVectorView = "NewVectorView"
	ctxNewVector     = "NewVector"
	ctxRange         = "VectorView.Range"
	ctxSlice         = "VectorView.Slice"
	ctxVecItem       = "VectorView.Item"
	ctxVecSetItem    = "VectorView.SetItem"
	ctxVecSpan       = "VectorView.SetSpan"
)

// VectorView is a non-owning strided 1D descriptor.
type VectorView[T Scalar] struct {
	data   []T
	size   int // logical element count
	dist   int // distance between consecutive elements (>= 1)
	offset int // origin shift in elements
}

// Vector owns a compact buffer and is a unit-distance VectorView over it.
type Vector[T Scalar] struct {
	VectorView[T]
}

var (
	_ VecExpr[float64] = (*VectorView[float64])(nil)
	_ VecExpr[float64] = (*Vector[float64])(nil)
)

// NewVectorView creates a contiguous view over the first size elements of data.
func NewVectorView[T Scalar](size int, data []T) (*VectorView[T], error) {
	return NewStridedVectorView(size, 1, 0, data)
}

// NewStridedVectorView creates a view whose element i lives at data[dist*(i+offset)].
// Errors:
//   - ErrInvalidDimensions for negative size/offset or dist < 1.
//   - ErrBadShape when the last element falls outside data.
func NewStridedVectorView[T Scalar](size, dist, offset int, data []T) (*VectorView[T], error) {
	if size < 0 || offset < 0 || dist < 1 {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxNewVectorView, size, dist, offset, ErrInvalidDimensions)
	}
	if size > 0 && dist*(size-1+offset) >= len(data) {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxNewVectorView, size, dist, offset, ErrBadShape)
	}

	return &VectorView[T]{data: data, size: size, dist: dist, offset: offset}, nil
}

// Size returns the logical element count.
func (v *VectorView[T]) Size() int { return v.size }

// Dist returns the distance between consecutive elements.
func (v *VectorView[T]) Dist() int { return v.dist }

// Offset returns the origin shift.
func (v *VectorView[T]) Offset() int { return v.offset }

// Data returns the backing slice (shared).
func (v *VectorView[T]) Data() []T { return v.data }

// At returns element i (unchecked).
func (v *VectorView[T]) At(i int) T { return v.data[v.dist*(i+v.offset)] }

// Set stores val at i (unchecked).
func (v *VectorView[T]) Set(i int, val T) { v.data[v.dist*(i+v.offset)] = val }

// Fill broadcasts val into every element.
func (v *VectorView[T]) Fill(val T) {
	p := v.dist * v.offset
	for i := 0; i < v.size; i++ {
		v.data[p] = val
		p += v.dist
	}
}

// Assign evaluates e element-wise into the view.
// Errors: ErrNilExpr, ErrDimensionMismatch (no partial writes).
func (v *VectorView[T]) Assign(e VecExpr[T]) error {
	if err := ValidateSameSize[T](v, e); err != nil {
		return matrixErrorf(opAssign, err)
	}
	p := v.dist * v.offset
	for i := 0; i < v.size; i++ {
		v.data[p] = e.At(i)
		p += v.dist
	}

	return nil
}

// Range returns elements [start, stop) as a view sharing the buffer.
// Errors: ErrOutOfRange unless 0 <= start <= stop <= Size().
func (v *VectorView[T]) Range(start, stop int) (*VectorView[T], error) {
	if start < 0 || stop < start || stop > v.size {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxRange, start, stop, ErrOutOfRange)
	}

	return &VectorView[T]{data: v.data, size: stop - start, dist: v.dist, offset: v.offset + start}, nil
}

// Slice returns every step-th element starting at first.
// The result is rebased so that its distance is dist*step and its offset is zero;
// its size is ceil((Size()-first)/step).
// Errors: ErrOutOfRange for first outside [0, Size()], ErrInvalidDimensions for step < 1.
func (v *VectorView[T]) Slice(first, step int) (*VectorView[T], error) {
	if step < 1 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxSlice, first, step, ErrInvalidDimensions)
	}
	if first < 0 || first > v.size {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxSlice, first, step, ErrOutOfRange)
	}
	n := (v.size - first + step - 1) / step
	if n == 0 {
		return &VectorView[T]{dist: v.dist * step}, nil
	}

	return &VectorView[T]{
		data: v.data[v.dist*(first+v.offset):],
		size: n,
		dist: v.dist * step,
	}, nil
}

// Item is the checked accessor; a negative index wraps once (i += Size()).
func (v *VectorView[T]) Item(i int) (T, error) {
	j, err := wrapIndex(i, v.size)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s(%d): %w", ctxVecItem, i, err)
	}

	return v.At(j), nil
}

// SetItem is the checked setter with the same wrap rule as Item.
func (v *VectorView[T]) SetItem(i int, val T) error {
	j, err := wrapIndex(i, v.size)
	if err != nil {
		return fmt.Errorf("%s(%d): %w", ctxVecSetItem, i, err)
	}
	v.Set(j, val)

	return nil
}

// SetSpan broadcasts val over the selected elements (slice-style assignment).
func (v *VectorView[T]) SetSpan(s Span, val T) error {
	start, step, n, err := s.Resolve(v.size)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxVecSpan, err)
	}
	for k := 0; k < n; k++ {
		v.Set(start+k*step, val)
	}

	return nil
}

// Strided exposes the view in BLAS level-1 form: element i is data[i*inc].
func (v *VectorView[T]) Strided() (data []T, n, inc int) {
	if v.size == 0 {
		return nil, 0, v.dist
	}

	return v.data[v.dist*v.offset:], v.size, v.dist
}

// Dot returns Σ v(i)*w(i).
func (v *VectorView[T]) Dot(w VecExpr[T]) (T, error) {
	var acc T
	if err := ValidateSameSize[T](v, w); err != nil {
		return acc, matrixErrorf(opDot, err)
	}
	for i := 0; i < v.size; i++ {
		acc += v.At(i) * w.At(i)
	}

	return acc, nil
}

// ---------- Vector container ----------

// newVector allocates a zero-filled vector; n may be zero.
func newVector[T Scalar](n int) *Vector[T] {
	return &Vector[T]{VectorView: VectorView[T]{data: make([]T, n), size: n, dist: 1}}
}

// NewVector allocates an n-element zero-filled vector.
// Errors: ErrInvalidDimensions when n is not positive.
func NewVector[T Scalar](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewVector, n, ErrInvalidDimensions)
	}

	return newVector[T](n), nil
}

// VectorOf copies values into a new vector.
func VectorOf[T Scalar](values ...T) *Vector[T] {
	v := newVector[T](len(values))
	copy(v.data, values)

	return v
}

// MaterializeVector evaluates any vector expression into a new container.
func MaterializeVector[T Scalar](e VecExpr[T]) *Vector[T] {
	if isNilVecExpr(e) {
		return &Vector[T]{VectorView: VectorView[T]{dist: 1}}
	}
	v := newVector[T](e.Size())
	for i := range v.data {
		v.data[i] = e.At(i)
	}

	return v
}

// IsEmpty reports whether the container holds no buffer.
func (v *Vector[T]) IsEmpty() bool { return v.data == nil }

// Clone returns a deep copy; an empty vector clones to an empty vector.
func (v *Vector[T]) Clone() *Vector[T] {
	if v.data == nil {
		return &Vector[T]{VectorView: VectorView[T]{dist: 1}}
	}
	c := newVector[T](v.size)
	copy(c.data, v.data)

	return c
}

// Move transfers the buffer to a new container and empties v.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{VectorView: v.VectorView}
	v.VectorView = VectorView[T]{dist: 1}

	return out
}

// Release drops the buffer; the container stays usable as an empty value.
func (v *Vector[T]) Release() {
	v.VectorView = VectorView[T]{dist: 1}
}

// Values returns a copy of the elements in index order.
func (v *VectorView[T]) Values() []T {
	out := make([]T, v.size)
	for i := range out {
		out[i] = v.At(i)
	}

	return out
}

// wrapIndex applies a single negative wrap and bounds-checks the result.
func wrapIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrOutOfRange
	}

	return i, nil
}
