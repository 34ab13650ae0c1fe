// SPDX-License-Identifier: MIT

package lapack

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/bla/matrix"
)

const (
	routineGetrf = "getrf"
	routineGetri = "getri"
)

// Inverse returns m⁻¹ through LU factorization (Getrf) and triangular inversion
// (Getri).
// Blueprint:
//
//	Stage 1 (Validate): non-nil, square.
//	Stage 2 (Prepare): copy into a float64 workspace; the column-major buffer read
//	                   as row-major is mᵀ, and (mᵀ)⁻¹ read back column-major is m⁻¹.
//	Stage 3 (Factor):  Getrf; a zero pivot is reported with its 1-based index.
//	Stage 4 (Invert):  workspace query, then Getri.
//	Stage 5 (Finalize): convert back to T.
//
// float32 input is promoted to float64 for the factorization.
// Complexity: O(n³) time, O(n²) memory.
func Inverse[T matrix.Float](m *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("Inverse: %w", matrix.ErrNilExpr)
	}
	if m.Width() != m.Height() {
		return nil, fmt.Errorf("Inverse: %w", matrix.ErrNonSquare)
	}
	n := m.Width()
	if n == 0 {
		return nil, fmt.Errorf("Inverse: %w", matrix.ErrEmpty)
	}

	src := m.Data()
	work := make([]float64, n*n)
	for i, v := range src[:n*n] {
		work[i] = float64(v)
	}
	g := blas64.General{Rows: n, Cols: n, Stride: n, Data: work}
	ipiv := make([]int, n)

	if err := getrf(g, ipiv); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	if err := getri(g, ipiv); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	out, err := matrix.NewMatrix[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	dst := out.Data()
	for i, v := range work {
		dst[i] = T(v)
	}

	return out, nil
}

func getrf(g blas64.General, ipiv []int) (err error) {
	defer guard(routineGetrf, &err)
	if lapack64.Getrf(g, ipiv) {
		return nil
	}

	return status(routineGetrf, firstZeroPivot(g))
}

func getri(g blas64.General, ipiv []int) (err error) {
	defer guard(routineGetri, &err)
	query := make([]float64, 1)
	lapack64.Getri(g, ipiv, query, -1)
	lwork := max(int(query[0]), g.Rows)
	if lapack64.Getri(g, ipiv, make([]float64, lwork), lwork) {
		return nil
	}

	return status(routineGetri, firstZeroPivot(g))
}

// firstZeroPivot returns the 1-based index of the first zero on U's diagonal
// (LAPACK info convention), or 1 when none is found.
func firstZeroPivot(g blas64.General) int {
	for i := 0; i < g.Rows; i++ {
		if g.Data[i*g.Stride+i] == 0 {
			return i + 1
		}
	}

	return 1
}
