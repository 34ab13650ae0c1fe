// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bla/matrix"
)

func TestFromColMajor(t *testing.T) {
	// 2 rows, 3 cols, ld 3 (one padding slot per column, the last one omitted)
	data := []float64{1, 4, -1, 2, 5, -1, 3, 6}
	v, err := matrix.FromColMajor(data, 2, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Width())
	assert.Equal(t, 2, v.Height())
	assert.Equal(t, "1, 2, 3\n4, 5, 6\n", v.String())

	// zero-copy
	v.Set(2, 1, 60)
	assert.Equal(t, 60.0, data[7])

	_, err = matrix.FromColMajor(data, 4, 2, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromColMajor(data, 3, 3, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestView_ColMajor(t *testing.T) {
	m := mustMatrix[int64](t, 4, 3)
	fillSeq(&m.View)
	w, err := m.Window(1, 1, 2, 2)
	require.NoError(t, err)

	data, rows, cols, ld, err := w.ColMajor()
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 3, ld)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			assert.Equal(t, w.At(c, r), data[c*ld+r], "(%d,%d)", r, c)
		}
	}

	// and back again
	back, err := matrix.FromColMajor(data, rows, cols, ld)
	require.NoError(t, err)
	requireEqual[int64](t, w, back)
}

func TestView_ColMajorNotContiguous(t *testing.T) {
	data := make([]float64, 16)
	v, err := matrix.NewStridedView(4, 4, 4, 4, 0, 0, 1, 2, data)
	require.NoError(t, err)
	_, _, _, _, err = v.ColMajor()
	require.ErrorIs(t, err, matrix.ErrNotContiguous)

	// column strides only widen ld
	v, err = matrix.NewStridedView(4, 4, 4, 4, 0, 0, 2, 1, data)
	require.NoError(t, err)
	_, rows, cols, ld, err := v.ColMajor()
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, 2, 8}, [3]int{rows, cols, ld})
}
