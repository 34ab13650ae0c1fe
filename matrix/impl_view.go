// SPDX-License-Identifier: MIT

// Package matrix - strided views over flat storage.
//
// Purpose:
//   - Describe a window of a flat buffer with per-axis stride and origin offset.
//   - Keep the single addressing rule in one place:
//     index(x,y) = strideX*(x+offX)*fullH + strideY*(y+offY).
//   - Derive sub-windows, rows and columns without copying.
//
// Complexity quicksheet:
//   - Constructors, Window, Row, Col: O(1); At/Set: O(1); Assign/Fill: O(w*h).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNewView = "NewView"
	ctxWindow  = "View.Window"
	ctxRow     = "View.Row"
	ctxCol     = "View.Col"
	ctxItem    = "View.Item"
	ctxSetItem = "View.SetItem"
	ctxBlock   = "View.SetBlock"
	opAssign   = "Assign"
)

// viewErrorf wraps an error with a uniform View context and the offending arguments.
func viewErrorf(method string, args []int, err error) error {
	return fmt.Errorf("%s%v: %w", method, args, err)
}

// View is a non-owning strided descriptor over a flat buffer.
//   - fullW, fullH are the backing extents; fullH is the column pitch.
//   - winW, winH bound the visible window; the logical extent is min(full, win)/stride.
//   - offX, offY shift the origin (in stride units, see the addressing rule).
//
// The zero value is an empty view. A View never owns its buffer: the buffer must
// stay alive (and must not be released through its container) while the view is used.
type View[T Scalar] struct {
	data             []T // backing storage (shared)
	fullW, fullH     int // backing extents
	winW, winH       int // visible window extents
	offX, offY       int // origin shift
	strideX, strideY int // element pitch per axis (>= 1)
}

// layout is the affine form of the addressing rule: index = base + x*px + y*py.
type layout struct {
	base, px, py int
}

var _ Expr[float64] = (*View[float64])(nil)

// NewView creates a full-window, unit-stride view of a fullWidth×fullHeight buffer.
// Errors:
//   - ErrInvalidDimensions for negative extents.
//   - ErrBadShape when data is shorter than fullWidth*fullHeight.
func NewView[T Scalar](fullWidth, fullHeight int, data []T) (*View[T], error) {
	return NewStridedView(fullWidth, fullHeight, fullWidth, fullHeight, 0, 0, 1, 1, data)
}

// NewWindowView creates a unit-stride view over a window of the buffer.
// Element (x,y) of the view maps to backing element (x+offsetX, y+offsetY).
func NewWindowView[T Scalar](fullWidth, fullHeight, windowWidth, windowHeight, offsetX, offsetY int, data []T) (*View[T], error) {
	return NewStridedView(fullWidth, fullHeight, windowWidth, windowHeight, offsetX, offsetY, 1, 1, data)
}

// NewStridedView creates a view from the complete descriptor.
// MAIN DESCRIPTION:
//   - Validate the descriptor once so that every (x,y) inside Width()×Height()
//     maps inside the buffer; At/Set stay unchecked afterwards.
//
// Implementation:
//   - Stage 1: reject negative extents/offsets and strides < 1.
//   - Stage 2: compute the highest mapped index and compare with
//     min(len(data), fullWidth*fullHeight).
//
// Behavior highlights:
//   - Zero-area views are legal and skip Stage 2.
//   - The buffer is aliased, never copied.
//
// Errors:
//   - ErrInvalidDimensions (descriptor contract), ErrBadShape (mapping escapes buffer).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewStridedView[T Scalar](fullWidth, fullHeight, windowWidth, windowHeight, offsetX, offsetY, strideX, strideY int, data []T) (*View[T], error) {
	args := []int{fullWidth, fullHeight, windowWidth, windowHeight, offsetX, offsetY, strideX, strideY}
	if fullWidth < 0 || fullHeight < 0 || windowWidth < 0 || windowHeight < 0 ||
		offsetX < 0 || offsetY < 0 || strideX < 1 || strideY < 1 {
		return nil, viewErrorf(ctxNewView, args, ErrInvalidDimensions)
	}
	v := &View[T]{
		data:    data,
		fullW:   fullWidth,
		fullH:   fullHeight,
		winW:    windowWidth,
		winH:    windowHeight,
		offX:    offsetX,
		offY:    offsetY,
		strideX: strideX,
		strideY: strideY,
	}
	w, h := v.Width(), v.Height()
	if w == 0 || h == 0 {
		return v, nil
	}
	limit := min(len(data), fullWidth*fullHeight)
	if last := v.index(w-1, h-1); last >= limit {
		return nil, viewErrorf(ctxNewView, args, ErrBadShape)
	}

	return v, nil
}

// Data returns the backing slice (shared, not copied).
func (v *View[T]) Data() []T { return v.data }

// FullWidth returns the backing buffer width.
func (v *View[T]) FullWidth() int { return v.fullW }

// FullHeight returns the backing buffer height (the column pitch).
func (v *View[T]) FullHeight() int { return v.fullH }

// WindowWidth returns the visible window width before stride adjustment.
func (v *View[T]) WindowWidth() int { return v.winW }

// WindowHeight returns the visible window height before stride adjustment.
func (v *View[T]) WindowHeight() int { return v.winH }

// Offset returns the origin shift (offsetX, offsetY).
func (v *View[T]) Offset() (x, y int) { return v.offX, v.offY }

// Stride returns the element pitch (strideX, strideY).
func (v *View[T]) Stride() (x, y int) { return v.strideX, v.strideY }

// Width returns the logical column count min(fullW, winW)/strideX.
func (v *View[T]) Width() int {
	if v.strideX < 1 {
		return 0
	}
	return min(v.fullW, v.winW) / v.strideX
}

// Height returns the logical row count min(fullH, winH)/strideY.
func (v *View[T]) Height() int {
	if v.strideY < 1 {
		return 0
	}
	return min(v.fullH, v.winH) / v.strideY
}

// Shape returns (height, width), the order used by the scripting binding.
func (v *View[T]) Shape() (height, width int) { return v.Height(), v.Width() }

// index maps logical (x,y) to the backing offset.
func (v *View[T]) index(x, y int) int {
	return v.strideX*(x+v.offX)*v.fullH + v.strideY*(y+v.offY)
}

func (v *View[T]) layout() layout {
	return layout{
		base: v.index(0, 0),
		px:   v.strideX * v.fullH,
		py:   v.strideY,
	}
}

// At returns element (x,y). Indices are not checked against Width/Height.
func (v *View[T]) At(x, y int) T { return v.data[v.index(x, y)] }

// Set stores val at (x,y). Indices are not checked against Width/Height.
func (v *View[T]) Set(x, y int, val T) { v.data[v.index(x, y)] = val }

// Fill broadcasts val into every visible element.
func (v *View[T]) Fill(val T) {
	w, h := v.Width(), v.Height()
	l := v.layout()
	var x, y, col int
	for x = 0; x < w; x++ {
		col = l.base + x*l.px
		for y = 0; y < h; y++ {
			v.data[col+y*l.py] = val
		}
	}
}

// Assign evaluates e element-wise into the view.
// MAIN DESCRIPTION:
//   - The single materialisation point of the expression engine.
//
// Implementation:
//   - Stage 1: validate shapes (no partial writes on mismatch).
//   - Stage 2: ProductExpr → blocked kernel; a tree with a product reading the
//     destination → materialized into a temporary first.
//   - Stage 3: one e.At per element, x outer, y inner (storage order).
//
// Errors:
//   - ErrNilExpr, ErrDimensionMismatch.
//
// Notes:
//   - Overlap between the destination and an operand of a sum/scale is harmless
//     (each element reads only its own position). A product anywhere in the tree
//     reads whole rows and columns, so when one of its operands overlaps the
//     destination the tree is evaluated into a temporary first.
//
// Complexity:
//   - Time O(w*h*cost(e.At)); Space O(1) unless a product is involved.
func (v *View[T]) Assign(e Expr[T]) error {
	if err := ValidateSameShape[T](v, e); err != nil {
		return matrixErrorf(opAssign, err)
	}
	if p, ok := e.(*ProductExpr[T]); ok {
		return p.evalInto(v)
	}
	if productReads(e, v.data, false) {
		e = Materialize(e)
	}

	w, h := v.Width(), v.Height()
	l := v.layout()
	var x, y, col int
	for x = 0; x < w; x++ {
		col = l.base + x*l.px
		for y = 0; y < h; y++ {
			v.data[col+y*l.py] = e.At(x, y)
		}
	}

	return nil
}

// Window derives a no-copy sub-window of w×h logical elements at (x0,y0).
// The result keeps the parent's pitch and strides; writes are visible through
// the parent and vice versa.
//
// Errors:
//   - ErrBadShape when the window does not fit inside Width()×Height().
func (v *View[T]) Window(x0, y0, w, h int) (*View[T], error) {
	if x0 < 0 || y0 < 0 || w < 0 || h < 0 || x0+w > v.Width() || y0+h > v.Height() {
		return nil, viewErrorf(ctxWindow, []int{x0, y0, w, h}, ErrBadShape)
	}

	return &View[T]{
		data:    v.data,
		fullW:   v.fullW,
		fullH:   v.fullH,
		winW:    w * v.strideX,
		winH:    h * v.strideY,
		offX:    v.offX + x0,
		offY:    v.offY + y0,
		strideX: v.strideX,
		strideY: v.strideY,
	}, nil
}

// Col returns column x as a vector view (Height() elements, distance strideY).
func (v *View[T]) Col(x int) (*VectorView[T], error) {
	if x < 0 || x >= v.Width() {
		return nil, viewErrorf(ctxCol, []int{x}, ErrOutOfRange)
	}

	return &VectorView[T]{
		data:   v.data[v.strideX*(x+v.offX)*v.fullH:],
		size:   v.Height(),
		dist:   v.strideY,
		offset: v.offY,
	}, nil
}

// Row returns row y as a vector view (Width() elements, distance strideX*fullH).
func (v *View[T]) Row(y int) (*VectorView[T], error) {
	if y < 0 || y >= v.Height() {
		return nil, viewErrorf(ctxRow, []int{y}, ErrOutOfRange)
	}

	return &VectorView[T]{
		data:   v.data[v.strideY*(y+v.offY):],
		size:   v.Width(),
		dist:   v.strideX * v.fullH,
		offset: v.offX,
	}, nil
}

// Item is the checked, tuple-ordered accessor: (row, col) = (y, x).
// Negative indices are rejected rather than wrapped.
func (v *View[T]) Item(row, col int) (T, error) {
	if row < 0 || row >= v.Height() || col < 0 || col >= v.Width() {
		var zero T
		return zero, viewErrorf(ctxItem, []int{row, col}, ErrOutOfRange)
	}

	return v.At(col, row), nil
}

// SetItem is the checked, tuple-ordered setter: (row, col) = (y, x).
func (v *View[T]) SetItem(row, col int, val T) error {
	if row < 0 || row >= v.Height() || col < 0 || col >= v.Width() {
		return viewErrorf(ctxSetItem, []int{row, col}, ErrOutOfRange)
	}
	v.Set(col, row, val)

	return nil
}

// SetBlock broadcasts val over the rows×cols selection (slice-style assignment).
// Both spans are resolved with Span.Resolve before any write.
func (v *View[T]) SetBlock(rows, cols Span, val T) error {
	y0, ys, yn, err := rows.Resolve(v.Height())
	if err != nil {
		return fmt.Errorf("%s rows: %w", ctxBlock, err)
	}
	x0, xs, xn, err := cols.Resolve(v.Width())
	if err != nil {
		return fmt.Errorf("%s cols: %w", ctxBlock, err)
	}

	var i, j int
	for i = 0; i < xn; i++ {
		for j = 0; j < yn; j++ {
			v.Set(x0+i*xs, y0+j*ys, val)
		}
	}

	return nil
}
