// SPDX-License-Identifier: MIT

package lapack

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/bla/matrix"
)

const (
	routineAxpy = "axpy"
	routineGemm = "gemm"
)

// Use registers impl as the float64 BLAS used by every routine in this package
// (and by gonum's lapack64). Passing a netlib-backed implementation moves the hot
// loops to a system BLAS.
func Use(impl blas.Float64) { blas64.Use(impl) }

// Use32 is the float32 counterpart of Use.
func Use32(impl blas.Float32) { blas32.Use(impl) }

// Axpy computes y += alpha*x.
// Errors: matrix.ErrNilExpr, matrix.ErrDimensionMismatch, ErrUnsupportedType,
// *StatusError (code -1) when the BLAS rejects the arguments.
func Axpy[T matrix.Float](alpha T, x, y *matrix.VectorView[T]) (err error) {
	if x == nil || y == nil {
		return fmt.Errorf("Axpy: %w", matrix.ErrNilExpr)
	}
	if x.Size() != y.Size() {
		return fmt.Errorf("Axpy: %w", matrix.ErrDimensionMismatch)
	}
	xd, n, incX := x.Strided()
	yd, _, incY := y.Strided()
	if n == 0 {
		return nil
	}
	defer guard(routineAxpy, &err)

	switch xs := any(xd).(type) {
	case []float64:
		ys := any(yd).([]float64)
		blas64.Axpy(float64(alpha),
			blas64.Vector{N: n, Inc: incX, Data: xs},
			blas64.Vector{N: n, Inc: incY, Data: ys})
	case []float32:
		ys := any(yd).([]float32)
		blas32.Axpy(float32(alpha),
			blas32.Vector{N: n, Inc: incX, Data: xs},
			blas32.Vector{N: n, Inc: incY, Data: ys})
	default:
		return fmt.Errorf("Axpy: %T: %w", xd, ErrUnsupportedType)
	}

	return nil
}

// Gemm computes C = alpha*A*B + beta*C on column-major views.
// MAIN DESCRIPTION:
//   - A is K wide and M high, B is N wide and K high, C is N wide and M high.
//
// Implementation:
//   - Stage 1: shape checks and ColMajor hand-off (unit row stride required).
//   - Stage 2: a column-major block with leading dimension ld is the row-major
//     General of its transpose, so the call is Cᵀ = alpha*Bᵀ·Aᵀ + beta*Cᵀ.
//
// Errors:
//   - matrix.ErrNilExpr, matrix.ErrDimensionMismatch, matrix.ErrNotContiguous,
//     ErrUnsupportedType, *StatusError (code -1).
func Gemm[T matrix.Float](alpha T, a, b *matrix.View[T], beta T, c *matrix.View[T]) (err error) {
	if a == nil || b == nil || c == nil {
		return fmt.Errorf("Gemm: %w", matrix.ErrNilExpr)
	}
	if a.Width() != b.Height() || c.Width() != b.Width() || c.Height() != a.Height() {
		return fmt.Errorf("Gemm: %w", matrix.ErrDimensionMismatch)
	}
	ad, am, ak, lda, err := a.ColMajor()
	if err != nil {
		return fmt.Errorf("Gemm: A: %w", err)
	}
	bd, _, bn, ldb, err := b.ColMajor()
	if err != nil {
		return fmt.Errorf("Gemm: B: %w", err)
	}
	cd, _, _, ldc, err := c.ColMajor()
	if err != nil {
		return fmt.Errorf("Gemm: C: %w", err)
	}
	if am == 0 || bn == 0 {
		return nil
	}
	if ak == 0 {
		// empty inner dimension: C = beta*C
		return c.Assign(c.Scale(beta))
	}
	defer guard(routineGemm, &err)

	switch as := any(ad).(type) {
	case []float64:
		at := blas64.General{Rows: ak, Cols: am, Stride: lda, Data: as}
		bt := blas64.General{Rows: bn, Cols: ak, Stride: ldb, Data: any(bd).([]float64)}
		ct := blas64.General{Rows: bn, Cols: am, Stride: ldc, Data: any(cd).([]float64)}
		blas64.Gemm(blas.NoTrans, blas.NoTrans, float64(alpha), bt, at, float64(beta), ct)
	case []float32:
		at := blas32.General{Rows: ak, Cols: am, Stride: lda, Data: as}
		bt := blas32.General{Rows: bn, Cols: ak, Stride: ldb, Data: any(bd).([]float32)}
		ct := blas32.General{Rows: bn, Cols: am, Stride: ldc, Data: any(cd).([]float32)}
		blas32.Gemm(blas.NoTrans, blas.NoTrans, float32(alpha), bt, at, float32(beta), ct)
	default:
		return fmt.Errorf("Gemm: %T: %w", ad, ErrUnsupportedType)
	}

	return nil
}
