// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Inverse returns m⁻¹ computed by Gauss–Jordan elimination.
// MAIN DESCRIPTION:
//   - Reduce [A | I] to [I | A⁻¹] with row operations on private copies; m is
//     never modified.
//
// Implementation:
//   - Stage 1: ValidateSquare (ErrNonSquare before any work).
//   - Stage 2: for each pivot column i, if |A(i,i)| is below the pivot tolerance,
//     swap row i with the first row below it whose entry in column i clears the
//     tolerance; none → ErrSingular.
//   - Stage 3: normalize the pivot row, then eliminate column i from every other row.
//
// Behavior highlights:
//   - Rows are swapped only when the pivot is near zero, not to maximize |pivot|.
//   - Options: WithPivotTolerance (default DefaultPivotTolerance).
//
// Errors:
//   - ErrNilExpr, ErrNonSquare, ErrSingular (wrapped with "Inverse").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T Float](m *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilExpr)
	}
	if err := ValidateSquare[T](m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	tol := o.pivotTol

	n := m.Width()
	a := m.Clone().data // column-major: (col c, row r) at a[c*n+r]
	inv := newMatrix[T](n, n)
	id := inv.data
	for i := 0; i < n; i++ {
		id[i*n+i] = 1
	}

	var i, r, c int
	for i = 0; i < n; i++ {
		if math.Abs(float64(a[i*n+i])) < tol {
			sw := i + 1
			for sw < n && math.Abs(float64(a[i*n+sw])) < tol {
				sw++
			}
			if sw == n {
				return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", i, ErrSingular))
			}
			for c = 0; c < n; c++ {
				a[c*n+i], a[c*n+sw] = a[c*n+sw], a[c*n+i]
				id[c*n+i], id[c*n+sw] = id[c*n+sw], id[c*n+i]
			}
		}

		pivot := a[i*n+i]
		for c = 0; c < n; c++ {
			a[c*n+i] /= pivot
			id[c*n+i] /= pivot
		}

		for r = 0; r < n; r++ {
			if r == i {
				continue
			}
			f := a[i*n+r]
			if f == 0 {
				continue
			}
			for c = 0; c < n; c++ {
				a[c*n+r] -= f * a[c*n+i]
				id[c*n+r] -= f * id[c*n+i]
			}
		}
	}

	return inv, nil
}
