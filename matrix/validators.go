// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for operand checks.
//   - Keep composers and kernels minimal by delegating nil/shape checks here.
//   - Return sentinel errors tagged with the validator name so call sites can wrap
//     uniformly with matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Generic validators take Expr/VecExpr; call them with an explicit type
//     argument when passing concrete views (ValidateSameShape[float64](a, b)).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilExpr reports a nil interface or a nil pointer of one of the package's
// expression types stored in the interface.
func isNilExpr[T Scalar](e Expr[T]) bool {
	switch t := e.(type) {
	case nil:
		return true
	case *View[T]:
		return t == nil
	case *Matrix[T]:
		return t == nil
	case *SumExpr[T]:
		return t == nil
	case *ScaleExpr[T]:
		return t == nil
	case *ProductExpr[T]:
		return t == nil
	}

	return false
}

// isNilVecExpr is the vector counterpart of isNilExpr.
func isNilVecExpr[T Scalar](e VecExpr[T]) bool {
	switch t := e.(type) {
	case nil:
		return true
	case *VectorView[T]:
		return t == nil
	case *Vector[T]:
		return t == nil
	case *VecSumExpr[T]:
		return t == nil
	case *VecScaleExpr[T]:
		return t == nil
	}

	return false
}

// ValidateNotNil ensures the expression reference is non-nil.
// Returns ErrNilExpr for a nil interface or a typed nil pointer.
func ValidateNotNil[T Scalar](e Expr[T]) error {
	if isNilExpr(e) {
		return validatorErrorf("ValidateNotNil", ErrNilExpr)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal logical extents.
//
// Inputs: two Expr values.
// Return: nil, ErrNilExpr or ErrDimensionMismatch (tagged).
// Complexity: O(1).
// AI-Hints: Use for Add and Assign guards.
func ValidateSameShape[T Scalar](a, b Expr[T]) error {
	if isNilExpr(a) || isNilExpr(b) {
		return validatorErrorf("ValidateSameShape", ErrNilExpr)
	}
	if a.Width() != b.Width() {
		return validatorErrorf("ValidateSameShape: Width", ErrDimensionMismatch)
	}
	if a.Height() != b.Height() {
		return validatorErrorf("ValidateSameShape: Height", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a*b is defined: a.Width() == b.Height().
// The product then has width b.Width() and height a.Height().
func ValidateMulCompatible[T Scalar](a, b Expr[T]) error {
	if isNilExpr(a) || isNilExpr(b) {
		return validatorErrorf("ValidateMulCompatible", ErrNilExpr)
	}
	if a.Width() != b.Height() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that e is non-nil and square (Width == Height).
// Errors: ErrNilExpr if nil, ErrNonSquare if not square.
func ValidateSquare[T Scalar](e Expr[T]) error {
	if isNilExpr(e) {
		return validatorErrorf("ValidateSquare", ErrNilExpr)
	}
	if e.Width() != e.Height() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameSize is the vector counterpart of ValidateSameShape.
func ValidateSameSize[T Scalar](a, b VecExpr[T]) error {
	if isNilVecExpr(a) || isNilVecExpr(b) {
		return validatorErrorf("ValidateSameSize", ErrNilExpr)
	}
	if a.Size() != b.Size() {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// validateMulAdd checks C += A*B on concrete views:
// A.Width()==B.Height(), C.Width()==B.Width(), C.Height()==A.Height().
func validateMulAdd[T Scalar](c, a, b *View[T]) error {
	if c == nil || a == nil || b == nil {
		return validatorErrorf("validateMulAdd", ErrNilExpr)
	}
	if a.Width() != b.Height() {
		return validatorErrorf("validateMulAdd: inner", ErrDimensionMismatch)
	}
	if c.Width() != b.Width() || c.Height() != a.Height() {
		return validatorErrorf("validateMulAdd: output", ErrDimensionMismatch)
	}

	return nil
}
