// SPDX-License-Identifier: MIT

// Package lapack delegates dense kernels of the matrix package to gonum's BLAS and
// LAPACK implementations.
//
// Operands are handed over without copying where the layouts agree:
//
//   - vector views become blas64/blas32 Vectors (n, inc) through VectorView.Strided;
//   - column-major views become row-major Generals of the transpose through
//     View.ColMajor, so C = A*B is issued as Cᵀ = Bᵀ·Aᵀ.
//
// Status contract:
//
//	0   success
//	>0  LAPACK info: 1-based index of the first zero pivot (unwraps to matrix.ErrSingular)
//	-1  BLAS argument error (recovered panic)
//
// Only float32 and float64 element types are supported; named float types return
// ErrUnsupportedType. The package logs failures at debug level through a zerolog
// logger that is silent by default (see SetLogger).
package lapack
