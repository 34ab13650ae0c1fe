// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and a reference product for kernels.
//   - Keep all data finite and well-formed so float comparisons stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bla/matrix"
)

// Tolerances used by float comparisons across the test suite.
const (
	rtol = 1e-12
	atol = 1e-9
)

// hide wraps an expression to hide its concrete type, forcing the generic
// (non-view) evaluation paths in code under test.
type hide[T matrix.Scalar] struct{ matrix.Expr[T] }

// mustMatrix allocates a w×h container or fails the test.
func mustMatrix[T matrix.Scalar](tb testing.TB, w, h int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewMatrix[T](w, h)
	require.NoError(tb, err)

	return m
}

// mustRows builds a container from row-major literals or fails the test.
func mustRows[T matrix.Scalar](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// fillRand fills every visible element with a deterministic value in [-1, 1).
func fillRand(v *matrix.View[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for x := 0; x < v.Width(); x++ {
		for y := 0; y < v.Height(); y++ {
			v.Set(x, y, rng.Float64()*2-1)
		}
	}
}

// fillSeq sets (x,y) to x*h+y+1 (distinct, exact in every element type).
func fillSeq[T matrix.Scalar](v *matrix.View[T]) {
	h := v.Height()
	for x := 0; x < v.Width(); x++ {
		for y := 0; y < h; y++ {
			v.Set(x, y, T(x*h+y+1))
		}
	}
}

// naiveMul is the O(M*N*K) reference: c(x,y) = Σ_i a(i,y)*b(x,i).
func naiveMul[T matrix.Scalar](tb testing.TB, a, b matrix.Expr[T]) *matrix.Matrix[T] {
	tb.Helper()
	c := mustMatrix[T](tb, b.Width(), a.Height())
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			var s T
			for i := 0; i < a.Width(); i++ {
				s += a.At(i, y) * b.At(x, i)
			}
			c.Set(x, y, s)
		}
	}

	return c
}

// requireClose asserts element-wise closeness of two float64 expressions.
func requireClose(tb testing.TB, want, got matrix.Expr[float64]) {
	tb.Helper()
	ok, err := matrix.AllClose[float64](got, want, rtol, atol)
	require.NoError(tb, err)
	if !ok {
		d, _ := matrix.MaxAbsDiff[float64](got, want)
		require.Failf(tb, "matrices differ", "max |diff| = %g\nwant:\n%vgot:\n%v", d, want, got)
	}
}

// requireEqual asserts exact element-wise equality.
func requireEqual[T matrix.Scalar](tb testing.TB, want, got matrix.Expr[T]) {
	tb.Helper()
	require.Equal(tb, want.Width(), got.Width(), "width")
	require.Equal(tb, want.Height(), got.Height(), "height")
	for x := 0; x < want.Width(); x++ {
		for y := 0; y < want.Height(); y++ {
			require.Equalf(tb, want.At(x, y), got.At(x, y), "(%d,%d)", x, y)
		}
	}
}
