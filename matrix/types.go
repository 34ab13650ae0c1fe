// SPDX-License-Identifier: MIT

// Package matrix: element constraints and the read-only indexing contracts shared
// by views, containers and expression nodes.
package matrix

// Scalar lists the element types a View can hold. Every member has a fixed size so
// containers serialize to exactly count*sizeof(T) bytes.
type Scalar interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Float restricts numerical routines (inversion, tolerance checks) to real types.
type Float interface {
	~float32 | ~float64
}

// Expr is the read-only two-dimensional indexing contract.
// Views, containers and the lazy nodes SumExpr, ScaleExpr and ProductExpr all
// implement it, which lets expression trees nest arbitrarily.
//
// Complexity notes: Width/Height are O(1); At is O(1) for views and sums, O(k) for
// products with inner dimension k.
type Expr[T Scalar] interface {
	// Width returns the logical number of columns.
	Width() int

	// Height returns the logical number of rows.
	Height() int

	// At evaluates element (x, y), 0 ≤ x < Width(), 0 ≤ y < Height().
	At(x, y int) T
}

// VecExpr is the one-dimensional counterpart of Expr.
type VecExpr[T Scalar] interface {
	// Size returns the logical number of elements.
	Size() int

	// At evaluates element i, 0 ≤ i < Size().
	At(i int) T
}
