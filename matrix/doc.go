// Package matrix is a small dense linear-algebra engine built around three ideas:
//
//   - Strided views. A View addresses a flat backing slice with a per-axis stride,
//     an origin offset and a visible window, so sub-matrices, columns, rows and
//     every-other-element selections never copy.
//   - Lazy expressions. Add, Scale and Mul compose SumExpr, ScaleExpr and
//     ProductExpr nodes that share the read-only Expr contract of a view. Nothing is
//     computed until the tree is assigned into a container (Assign, Eval) or printed,
//     so A + 2*B is evaluated in a single pass without intermediate matrices.
//   - A cache-blocked multiply. MulAdd tiles C += A*B into panels, packs the left
//     operand panel into an aligned contiguous scratch buffer and accumulates with a
//     4×4 register-tiled micro-kernel. Assigning a ProductExpr always takes this path.
//
// Addressing:
//
//	index(x, y) = strideX*(x+offsetX)*fullHeight + strideY*(y+offsetY)
//
// x walks the width (columns), y walks the height (rows). The column pitch is always the
// backing buffer's full height, so every column is contiguous for unit strides.
//
// Ownership:
//
//	Matrix and Vector own their allocation; View and VectorView alias it. A view must
//	not be used after its container has been moved or released. Overlapping writes
//	from several goroutines are undefined; the package itself never locks.
//
// Errors:
//
//	Shape mismatches, singular pivots and non-square inversions are reported through
//	the sentinels in errors.go (match with errors.Is). Element access through At/Set
//	is unchecked beyond Go's slice bounds; Item/SetItem give checked access.
//
// See matrix/lapack for delegating to gonum's BLAS/LAPACK and matrix/mmfile for
// memory-mapped persistence.
package matrix
