// SPDX-License-Identifier: MIT

// Package matrix - hand-off to and from flat column-major buffers.
//
// External numerical libraries describe a matrix as (data, rows, cols, ld) with
// element (row r, col c) at data[c*ld + r]. That is exactly a unit-row-stride view
// whose pitch is ld, so both directions are O(1) and never copy.

package matrix

import "fmt"

const (
	ctxFromColMajor = "FromColMajor"
	ctxColMajor     = "View.ColMajor"
)

// FromColMajor wraps a column-major buffer as a view of cols×rows (width×height).
// Errors:
//   - ErrInvalidDimensions for negative rows/cols or ld < rows.
//   - ErrBadShape when data is too short for the last column.
func FromColMajor[T Scalar](data []T, rows, cols, ld int) (*View[T], error) {
	if rows < 0 || cols < 0 || ld < rows || ld < 1 {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxFromColMajor, rows, cols, ld, ErrInvalidDimensions)
	}
	if rows > 0 && cols > 0 && (cols-1)*ld+rows > len(data) {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxFromColMajor, rows, cols, ld, ErrBadShape)
	}
	// pitch == ld: the last column may be short, so the window bounds the height
	return &View[T]{
		data:    data,
		fullW:   cols,
		fullH:   ld,
		winW:    cols,
		winH:    rows,
		strideX: 1,
		strideY: 1,
	}, nil
}

// ColMajor describes the view as a column-major block: element (row r, col c) is
// data[c*ld + r]. data is rebased at the view origin.
// Errors: ErrNotContiguous when strideY != 1.
func (v *View[T]) ColMajor() (data []T, rows, cols, ld int, err error) {
	if v.strideY != 1 {
		return nil, 0, 0, 0, fmt.Errorf("%s: stride %d: %w", ctxColMajor, v.strideY, ErrNotContiguous)
	}
	rows, cols, ld = v.Height(), v.Width(), v.strideX*v.fullH
	if ld < 1 {
		ld = 1
	}
	if rows == 0 || cols == 0 {
		return nil, rows, cols, ld, nil
	}

	return v.data[v.index(0, 0):], rows, cols, ld, nil
}
