// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics on a
// user-triggered error condition; option constructors panic on nonsensical values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites add the
// operation name with matrixErrorf(op, err); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// dimensions -> window/shape -> operand mismatch -> numerical failure.

var (
	// ErrInvalidDimensions indicates negative extents or non-positive strides.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrBadShape is returned when a view descriptor maps outside its backing buffer,
	// when a serialized payload does not match the declared dimensions, or when a
	// slice span is malformed (zero step).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a checked index is outside valid bounds.
	// Item/SetItem MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add with
	// different shapes, or Mul where a.Width() != b.Height().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inversion cannot find a pivot whose magnitude
	// clears the pivot tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotContiguous is returned when a flat, unit-inner-stride buffer is required
	// (external BLAS/LAPACK hand-off) but the view has a non-unit inner stride.
	ErrNotContiguous = errors.New("matrix: view is not contiguous")

	// ErrNilExpr indicates that a nil view, container or expression was passed in.
	ErrNilExpr = errors.New("matrix: nil operand")

	// ErrEmpty indicates an operation on a container that was moved or released.
	ErrEmpty = errors.New("matrix: empty container")
)
