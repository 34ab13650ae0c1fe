// SPDX-License-Identifier: MIT
// Package matrix - element-wise reductions and comparisons over expressions.
//
// Every function accepts any Expr, so views, containers and unevaluated nodes can
// be compared or reduced without materializing them first.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(w*h). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN elements or tolerances never compare close and yield (false, nil).
func AllClose[T Float](a, b Expr[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape[T](a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	w, h := a.Width(), a.Height()
	var x, y int
	var av, bv float64
	for x = 0; x < w; x++ {
		for y = 0; y < h; y++ {
			av, bv = float64(a.At(x, y)), float64(b.At(x, y))
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a(x,y) - b(x,y)|, 0 for empty operands.
func MaxAbsDiff[T Float](a, b Expr[T]) (float64, error) {
	if err := ValidateSameShape[T](a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	var best float64
	w, h := a.Width(), a.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			best = math.Max(best, math.Abs(float64(a.At(x, y)-b.At(x, y))))
		}
	}

	return best, nil
}

// Trace returns Σ e(i,i) of a square expression.
func Trace[T Scalar](e Expr[T]) (T, error) {
	var s T
	if err := ValidateSquare[T](e); err != nil {
		return s, matrixErrorf("Trace", err)
	}
	for i := 0; i < e.Width(); i++ {
		s += e.At(i, i)
	}

	return s, nil
}

// ColSums returns the sum of every column (length Width()).
func ColSums[T Scalar](e Expr[T]) ([]T, error) {
	if err := ValidateNotNil[T](e); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	w, h := e.Width(), e.Height()
	out := make([]T, w)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			out[x] += e.At(x, y)
		}
	}

	return out, nil
}

// RowSums returns the sum of every row (length Height()).
func RowSums[T Scalar](e Expr[T]) ([]T, error) {
	if err := ValidateNotNil[T](e); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	w, h := e.Width(), e.Height()
	out := make([]T, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			out[y] += e.At(x, y)
		}
	}

	return out, nil
}
