// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bla/matrix"
)

func TestNewStridedView_Validation(t *testing.T) {
	data := make([]float64, 12) // 4 wide, 3 high
	cases := []struct {
		name                           string
		fw, fh, ww, wh, ox, oy, sx, sy int
		want                           error
	}{
		{"full", 4, 3, 4, 3, 0, 0, 1, 1, nil},
		{"empty window", 4, 3, 0, 0, 0, 0, 1, 1, nil},
		{"negative width", -1, 3, 4, 3, 0, 0, 1, 1, matrix.ErrInvalidDimensions},
		{"negative offset", 4, 3, 4, 3, -1, 0, 1, 1, matrix.ErrInvalidDimensions},
		{"zero stride", 4, 3, 4, 3, 0, 0, 0, 1, matrix.ErrInvalidDimensions},
		{"offset escapes", 4, 3, 4, 3, 1, 0, 1, 1, matrix.ErrBadShape},
		{"inner window", 4, 3, 2, 2, 2, 1, 1, 1, nil},
		{"every other column", 4, 3, 4, 3, 0, 0, 2, 1, nil},
		{"short buffer", 5, 3, 5, 3, 0, 0, 1, 1, matrix.ErrBadShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := matrix.NewStridedView(tc.fw, tc.fh, tc.ww, tc.wh, tc.ox, tc.oy, tc.sx, tc.sy, data)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
				require.Nil(t, v)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, v)
		})
	}
}

func TestView_Addressing(t *testing.T) {
	// index(x,y) = strideX*(x+offX)*fullH + strideY*(y+offY)
	data := make([]int64, 6*4)
	for i := range data {
		data[i] = int64(i)
	}
	v, err := matrix.NewStridedView(6, 4, 6, 4, 0, 1, 2, 1, data)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Width())
	assert.Equal(t, 4, v.Height())
	// min(fullH, winH)/strideY keeps 4 rows although offY shifts the origin, so the
	// last logical row of the last column maps to 2*2*4 + 1*(3+1) = 20.
	assert.Equal(t, int64(2*0*4+1*(0+1)), v.At(0, 0))
	assert.Equal(t, int64(2*1*4+1*(2+1)), v.At(1, 2))
	assert.Equal(t, int64(20), v.At(2, 3))

	h, w := v.Shape()
	assert.Equal(t, 4, h)
	assert.Equal(t, 3, w)
}

func TestView_RoundTripThroughIndependentViews(t *testing.T) {
	data := make([]float64, 5*5)
	a, err := matrix.NewView(5, 5, data)
	require.NoError(t, err)
	b, err := matrix.NewWindowView(5, 5, 3, 3, 1, 1, data)
	require.NoError(t, err)

	b.Set(0, 0, 42)
	assert.Equal(t, 42.0, a.At(1, 1))
	a.Set(3, 3, -7)
	assert.Equal(t, -7.0, b.At(2, 2))
}

func TestView_Window(t *testing.T) {
	m := mustMatrix[int32](t, 4, 4)
	fillSeq(&m.View)

	w, err := m.Window(1, 2, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Width())
	assert.Equal(t, 2, w.Height())
	assert.Equal(t, m.At(1, 2), w.At(0, 0))
	assert.Equal(t, m.At(3, 3), w.At(2, 1))

	// nested window keeps addressing the same buffer
	ww, err := w.Window(1, 1, 2, 1)
	require.NoError(t, err)
	ww.Fill(0)
	assert.Equal(t, int32(0), m.At(2, 3))
	assert.Equal(t, int32(0), m.At(3, 3))
	assert.NotEqual(t, int32(0), m.At(1, 3))

	_, err = m.Window(2, 2, 3, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Window(-1, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestView_StridedWindow(t *testing.T) {
	// every other column and every other row of a 6×6 buffer
	m := mustMatrix[int64](t, 6, 6)
	fillSeq(&m.View)
	v, err := matrix.NewStridedView(6, 6, 6, 6, 0, 0, 2, 2, m.Data())
	require.NoError(t, err)
	require.Equal(t, 3, v.Width())
	require.Equal(t, 3, v.Height())
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, m.At(2*x, 2*y), v.At(x, y))
		}
	}

	w, err := v.Window(1, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, m.At(2, 2), w.At(0, 0))
	assert.Equal(t, m.At(4, 4), w.At(1, 1))
}

func TestView_ColRow(t *testing.T) {
	m := mustMatrix[float64](t, 3, 4)
	fillSeq(&m.View)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, 4, col.Size())
	for y := 0; y < 4; y++ {
		assert.Equal(t, m.At(1, y), col.At(y))
	}

	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, 3, row.Size())
	for x := 0; x < 3; x++ {
		assert.Equal(t, m.At(x, 2), row.At(x))
	}

	row.Set(0, 100)
	assert.Equal(t, 100.0, m.At(0, 2))

	// a column of a window starts at the window origin
	w, err := m.Window(1, 1, 2, 3)
	require.NoError(t, err)
	wc, err := w.Col(1)
	require.NoError(t, err)
	assert.Equal(t, 3, wc.Size())
	assert.Equal(t, m.At(2, 1), wc.At(0))
	assert.Equal(t, m.At(2, 3), wc.At(2))
	wr, err := w.Row(2)
	require.NoError(t, err)
	assert.Equal(t, m.At(1, 3), wr.At(0))
	assert.Equal(t, m.At(2, 3), wr.At(1))

	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestView_ItemIsTupleOrdered(t *testing.T) {
	m := mustMatrix[float64](t, 3, 2) // 2 rows, 3 columns
	require.NoError(t, m.SetItem(1, 2, 9))
	assert.Equal(t, 9.0, m.At(2, 1))

	v, err := m.Item(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = m.Item(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Item(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetItem(0, 3, 1), matrix.ErrOutOfRange)
}

func TestView_SetBlock(t *testing.T) {
	m := mustMatrix[int32](t, 4, 3)
	require.NoError(t, m.SetBlock(matrix.Span{Start: 0, Stop: 3, Step: 2}, matrix.Span{Start: 1, Stop: 3, Step: 1}, 7))
	want := mustRows(t, [][]int32{
		{0, 7, 7, 0},
		{0, 0, 0, 0},
		{0, 7, 7, 0},
	})
	requireEqual[int32](t, want, m)

	require.ErrorIs(t, m.SetBlock(matrix.Span{Step: 0}, matrix.All(), 1), matrix.ErrBadShape)
}

func TestView_AssignShapeMismatchWritesNothing(t *testing.T) {
	dst := mustMatrix[float64](t, 2, 2)
	dst.Fill(5)
	src := mustMatrix[float64](t, 3, 2)

	err := dst.Assign(src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			require.Equal(t, 5.0, dst.At(x, y))
		}
	}

	require.ErrorIs(t, dst.Assign(nil), matrix.ErrNilExpr)
}

func TestView_AssignIntoWindow(t *testing.T) {
	m := mustMatrix[float64](t, 4, 4)
	src := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	w, err := m.Window(2, 1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, w.Assign(src))

	assert.Equal(t, 1.0, m.At(2, 1))
	assert.Equal(t, 2.0, m.At(3, 1))
	assert.Equal(t, 3.0, m.At(2, 2))
	assert.Equal(t, 4.0, m.At(3, 2))
	assert.Equal(t, 0.0, m.At(1, 1))
}

func TestView_ZeroValueIsEmpty(t *testing.T) {
	var v matrix.View[float64]
	assert.Equal(t, 0, v.Width())
	assert.Equal(t, 0, v.Height())
	assert.Equal(t, "", v.String())
	v.Fill(1) // no-op
}
