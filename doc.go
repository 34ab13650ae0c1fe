// Package bla is a small dense linear-algebra toolkit for Go: strided matrix and
// vector views, lazily evaluated expressions and a cache-blocked multiply.
//
// What is inside?
//
//	matrix/          View, Matrix, VectorView, Vector; Add/Scale/Mul expression
//	                 nodes; blocked MulAdd; Gauss–Jordan Inverse; formatting and
//	                 binary state
//	matrix/lapack/   hand-off of views to gonum's BLAS (Axpy, Gemm) and LAPACK
//	                 (Getrf/Getri inverse) with a status-code contract
//	matrix/mmfile/   matrices stored in memory-mapped files
//	examples/        a runnable least-squares fit that touches every package
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{10, 20}, {30, 40}})
//	sum, _ := a.Add(b.Scale(2))        // nothing computed yet
//	p, _ := a.Mul(sum)                 // still lazy
//	fmt.Print(p.Eval())                // blocked kernel runs here
//
// Element types are int32, int64, float32 and float64 (matrix.Scalar); the numerical
// routines accept only the float types (matrix.Float).
package bla
