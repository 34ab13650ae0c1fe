// SPDX-License-Identifier: MIT

package matrix

// VecSumExpr is the lazy element-wise sum of two equally sized vector expressions.
type VecSumExpr[T Scalar] struct {
	a, b VecExpr[T]
}

// VecScaleExpr is the lazy product of a scalar and a vector expression.
type VecScaleExpr[T Scalar] struct {
	s T
	v VecExpr[T]
}

var (
	_ VecExpr[float64] = (*VecSumExpr[float64])(nil)
	_ VecExpr[float64] = (*VecScaleExpr[float64])(nil)
)

func captureVec[T Scalar](e VecExpr[T]) VecExpr[T] {
	switch t := e.(type) {
	case *VectorView[T]:
		c := *t
		return &c
	case *Vector[T]:
		c := t.VectorView
		return &c
	}

	return e
}

func addVec[T Scalar](a, b VecExpr[T]) (*VecSumExpr[T], error) {
	if err := ValidateSameSize[T](a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &VecSumExpr[T]{a: captureVec[T](a), b: captureVec[T](b)}, nil
}

func scaleVec[T Scalar](s T, v VecExpr[T]) *VecScaleExpr[T] {
	return &VecScaleExpr[T]{s: s, v: captureVec[T](v)}
}

// Size returns the shared operand size.
func (e *VecSumExpr[T]) Size() int { return e.a.Size() }

// At returns a(i) + b(i).
func (e *VecSumExpr[T]) At(i int) T { return e.a.At(i) + e.b.At(i) }

// Add composes (e)+b.
func (e *VecSumExpr[T]) Add(b VecExpr[T]) (*VecSumExpr[T], error) { return addVec[T](e, b) }

// Scale composes k*(e).
func (e *VecSumExpr[T]) Scale(k T) *VecScaleExpr[T] { return scaleVec[T](k, e) }

// Eval materializes the sum.
func (e *VecSumExpr[T]) Eval() *Vector[T] { return MaterializeVector[T](e) }

// String renders the evaluated sum as one row.
func (e *VecSumExpr[T]) String() string { return sprintVec[T](e) }

// Size returns the operand size.
func (e *VecScaleExpr[T]) Size() int { return e.v.Size() }

// At returns s * v(i).
func (e *VecScaleExpr[T]) At(i int) T { return e.s * e.v.At(i) }

// Add composes (e)+b.
func (e *VecScaleExpr[T]) Add(b VecExpr[T]) (*VecSumExpr[T], error) { return addVec[T](e, b) }

// Scale composes k*(e).
func (e *VecScaleExpr[T]) Scale(k T) *VecScaleExpr[T] { return scaleVec[T](k, e) }

// Eval materializes the scaled vector.
func (e *VecScaleExpr[T]) Eval() *Vector[T] { return MaterializeVector[T](e) }

// String renders the evaluated node as one row.
func (e *VecScaleExpr[T]) String() string { return sprintVec[T](e) }

// Add composes the lazy sum v+b.
func (v *VectorView[T]) Add(b VecExpr[T]) (*VecSumExpr[T], error) { return addVec[T](v, b) }

// Scale composes the lazy scalar product s*v.
func (v *VectorView[T]) Scale(s T) *VecScaleExpr[T] { return scaleVec[T](s, v) }

// Eval copies the elements into a new compact vector.
func (v *VectorView[T]) Eval() *Vector[T] { return MaterializeVector[T](v) }

// String renders the elements as one row.
func (v *VectorView[T]) String() string { return sprintVec[T](v) }
