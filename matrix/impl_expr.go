// SPDX-License-Identifier: MIT
// Package matrix - lazy expression nodes.
//
// Purpose:
//   - Represent A+B, s*A and A*B as small read-only nodes that satisfy Expr.
//   - Defer all arithmetic until the tree is assigned into a container.
//   - Route products through the blocked kernel on assignment.
//
// Contract:
//   - Composition validates shapes once, eagerly, and returns ErrDimensionMismatch
//     before any node is built.
//   - Leaf views are captured by value (descriptor copy, shared buffer), so a node
//     stays valid when the caller's view variable is reassigned. The buffer itself is
//     shared: writes into an operand before assignment are visible to the node.
//   - Nodes hold no resources; dropping them is free.
//
// AI-Hints:
//   - Prefer A.Add(B), A.Scale(s), A.Mul(B) (methods) over building nodes by hand.
//   - Evaluate with dst.Assign(expr) to reuse storage or expr.Eval() to allocate.

package matrix

import (
	"fmt"
	"unsafe"
)

// Operation tags for error wrapping.
const (
	opAdd     = "Add"
	opScale   = "Scale"
	opMul     = "Mul"
	opMulAdd  = "MulAdd"
	opMulInto = "MulInto"
	opInverse = "Inverse"
	opDot     = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use it at every facade boundary so that callers can errors.Is the sentinel and
// still read which operation failed:
//
//	if err := ValidateSameShape[T](a, b); err != nil {
//		return nil, matrixErrorf(opAdd, err)
//	}
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SumExpr is the lazy element-wise sum of two equally shaped expressions.
type SumExpr[T Scalar] struct {
	a, b Expr[T]
}

// ScaleExpr is the lazy product of a scalar and an expression.
type ScaleExpr[T Scalar] struct {
	s T
	v Expr[T]
}

// ProductExpr is the lazy matrix product A*B with
//
//	Width()  = B.Width()
//	Height() = A.Height()
//	At(x, y) = Σ_i A.At(i, y) * B.At(x, i),  i ∈ [0, A.Width())
//
// At is the O(k) reference evaluation. Assigning the node into a view uses the
// cache-blocked kernel instead (see MulAdd).
type ProductExpr[T Scalar] struct {
	a, b Expr[T]
	opts []Option
}

var (
	_ Expr[float64] = (*SumExpr[float64])(nil)
	_ Expr[float64] = (*ScaleExpr[float64])(nil)
	_ Expr[float64] = (*ProductExpr[float64])(nil)
)

// capture snapshots leaf descriptors so that nodes own their view copies.
func capture[T Scalar](e Expr[T]) Expr[T] {
	if isNilExpr(e) {
		return e
	}
	switch t := e.(type) {
	case *View[T]:
		c := *t
		return &c
	case *Matrix[T]:
		c := t.View
		return &c
	}

	return e
}

// ---------- composers ----------

func add[T Scalar](a, b Expr[T]) (*SumExpr[T], error) {
	if err := ValidateSameShape[T](a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &SumExpr[T]{a: capture[T](a), b: capture[T](b)}, nil
}

func scale[T Scalar](s T, v Expr[T]) *ScaleExpr[T] {
	return &ScaleExpr[T]{s: s, v: capture[T](v)}
}

func mul[T Scalar](a, b Expr[T]) (*ProductExpr[T], error) {
	if err := ValidateMulCompatible[T](a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &ProductExpr[T]{a: capture[T](a), b: capture[T](b)}, nil
}

// Add composes the lazy sum a+b after checking both operands have equal shape.
func Add[T Scalar](a, b Expr[T]) (*SumExpr[T], error) { return add[T](a, b) }

// Scale composes the lazy scalar product s*v.
func Scale[T Scalar](s T, v Expr[T]) *ScaleExpr[T] { return scale[T](s, v) }

// Mul composes the lazy matrix product a*b after checking a.Width() == b.Height().
func Mul[T Scalar](a, b Expr[T]) (*ProductExpr[T], error) { return mul[T](a, b) }

// ---------- SumExpr ----------

// Width returns the shared width of both operands.
func (s *SumExpr[T]) Width() int { return s.a.Width() }

// Height returns the shared height of both operands.
func (s *SumExpr[T]) Height() int { return s.a.Height() }

// At returns a(x,y) + b(x,y).
func (s *SumExpr[T]) At(x, y int) T { return s.a.At(x, y) + s.b.At(x, y) }

// Add composes (s)+b.
func (s *SumExpr[T]) Add(b Expr[T]) (*SumExpr[T], error) { return add[T](s, b) }

// Scale composes k*(s).
func (s *SumExpr[T]) Scale(k T) *ScaleExpr[T] { return scale[T](k, s) }

// Mul composes (s)*b.
func (s *SumExpr[T]) Mul(b Expr[T]) (*ProductExpr[T], error) { return mul[T](s, b) }

// Eval materializes the sum into a new container.
func (s *SumExpr[T]) Eval() *Matrix[T] { return Materialize[T](s) }

// String renders the evaluated sum row by row.
func (s *SumExpr[T]) String() string { return sprint[T](s) }

// ---------- ScaleExpr ----------

// Width returns the operand width.
func (s *ScaleExpr[T]) Width() int { return s.v.Width() }

// Height returns the operand height.
func (s *ScaleExpr[T]) Height() int { return s.v.Height() }

// At returns s * v(x,y).
func (s *ScaleExpr[T]) At(x, y int) T { return s.s * s.v.At(x, y) }

// Factor returns the scalar multiplier.
func (s *ScaleExpr[T]) Factor() T { return s.s }

// Add composes (s)+b.
func (s *ScaleExpr[T]) Add(b Expr[T]) (*SumExpr[T], error) { return add[T](s, b) }

// Scale composes k*(s).
func (s *ScaleExpr[T]) Scale(k T) *ScaleExpr[T] { return scale[T](k, s) }

// Mul composes (s)*b.
func (s *ScaleExpr[T]) Mul(b Expr[T]) (*ProductExpr[T], error) { return mul[T](s, b) }

// Eval materializes the scaled operand into a new container.
func (s *ScaleExpr[T]) Eval() *Matrix[T] { return Materialize[T](s) }

// String renders the evaluated node row by row.
func (s *ScaleExpr[T]) String() string { return sprint[T](s) }

// ---------- ProductExpr ----------

// Width returns B.Width().
func (p *ProductExpr[T]) Width() int { return p.b.Width() }

// Height returns A.Height().
func (p *ProductExpr[T]) Height() int { return p.a.Height() }

// At evaluates one output element as a dot product over the inner dimension.
func (p *ProductExpr[T]) At(x, y int) T {
	var acc T
	k := p.a.Width()
	for i := 0; i < k; i++ {
		acc += p.a.At(i, y) * p.b.At(x, i)
	}

	return acc
}

// With returns a copy of the node that evaluates with the given kernel options
// (panel sizes, workers) when assigned.
func (p *ProductExpr[T]) With(opts ...Option) *ProductExpr[T] {
	c := *p
	c.opts = append(append([]Option(nil), p.opts...), opts...)

	return &c
}

// Add composes (p)+b.
func (p *ProductExpr[T]) Add(b Expr[T]) (*SumExpr[T], error) { return add[T](p, b) }

// Scale composes k*(p).
func (p *ProductExpr[T]) Scale(k T) *ScaleExpr[T] { return scale[T](k, p) }

// Mul composes (p)*b.
func (p *ProductExpr[T]) Mul(b Expr[T]) (*ProductExpr[T], error) { return mul[T](p, b) }

// Eval materializes the product through the blocked kernel.
func (p *ProductExpr[T]) Eval() *Matrix[T] { return Materialize[T](p) }

// String renders the evaluated product row by row.
func (p *ProductExpr[T]) String() string { return sprint[T](p) }

// evalInto computes dst = A*B with the blocked kernel.
// Implementation:
//   - Stage 1: operands that are not plain views (nested expressions) are
//     materialized once, so the kernel only ever sees strided views.
//   - Stage 2: when dst's memory overlaps an operand's, the product is computed
//     into a temporary and copied, since MulInto clears dst first.
//   - Stage 3: MulInto(dst, A, B).
//
// Notes:
//   - Overlap is judged on the capacity ranges of the backing slices, so views
//     built on capped sub-slices (data[i:j:j]) of the same buffer are detected too.
func (p *ProductExpr[T]) evalInto(dst *View[T]) error {
	a := asView[T](p.a)
	b := asView[T](p.b)
	if overlaps(dst.data, a.data) || overlaps(dst.data, b.data) {
		tmp := newMatrix[T](dst.Width(), dst.Height())
		if err := MulInto(&tmp.View, a, b, p.opts...); err != nil {
			return err
		}
		return dst.Assign(tmp)
	}

	return MulInto(dst, a, b, p.opts...)
}

// asView returns e as a strided view, materializing non-view expressions.
func asView[T Scalar](e Expr[T]) *View[T] {
	switch t := e.(type) {
	case *View[T]:
		return t
	case *Matrix[T]:
		return &t.View
	}

	return &Materialize[T](e).View
}

// overlaps reports whether the capacity ranges of two slices share memory.
func overlaps[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	return a0 < b0+uintptr(cap(b))*size && b0 < a0+uintptr(cap(a))*size
}

// productReads reports whether a product somewhere in e reads memory that
// overlaps data. Such a product reads whole rows/columns of its operands per
// element, so writing into data while evaluating e would feed it partial results.
// Sums and scales at the top level read only their own position and are not
// reported.
func productReads[T Scalar](e Expr[T], data []T, inProduct bool) bool {
	switch t := e.(type) {
	case *SumExpr[T]:
		return productReads(t.a, data, inProduct) || productReads(t.b, data, inProduct)
	case *ScaleExpr[T]:
		return productReads(t.v, data, inProduct)
	case *ProductExpr[T]:
		return productReads(t.a, data, true) || productReads(t.b, data, true)
	case *View[T]:
		return inProduct && t != nil && overlaps(t.data, data)
	case *Matrix[T]:
		return inProduct && t != nil && overlaps(t.data, data)
	}

	return false
}

// ---------- View composition ----------

// Add composes the lazy sum v+b.
func (v *View[T]) Add(b Expr[T]) (*SumExpr[T], error) { return add[T](v, b) }

// Scale composes the lazy scalar product s*v.
func (v *View[T]) Scale(s T) *ScaleExpr[T] { return scale[T](s, v) }

// Mul composes the lazy product v*b.
func (v *View[T]) Mul(b Expr[T]) (*ProductExpr[T], error) { return mul[T](v, b) }

// Eval copies the visible elements into a new compact container.
func (v *View[T]) Eval() *Matrix[T] { return Materialize[T](v) }

// String renders the view row by row (", " between values, "\n" after each row).
func (v *View[T]) String() string { return sprint[T](v) }
