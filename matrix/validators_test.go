// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bla/matrix"
)

func TestValidators(t *testing.T) {
	a := mustMatrix[float64](t, 3, 2)
	b := mustMatrix[float64](t, 4, 3)
	sq := mustMatrix[float64](t, 2, 2)

	require.NoError(t, matrix.ValidateNotNil[float64](a))
	require.ErrorIs(t, matrix.ValidateNotNil[float64](nil), matrix.ErrNilExpr)

	require.NoError(t, matrix.ValidateSameShape[float64](a, a.Scale(2)))
	require.ErrorIs(t, matrix.ValidateSameShape[float64](a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape[float64](nil, b), matrix.ErrNilExpr)

	require.NoError(t, matrix.ValidateMulCompatible[float64](a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible[float64](b, a), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSquare[float64](sq))
	require.ErrorIs(t, matrix.ValidateSquare[float64](a), matrix.ErrNonSquare)

	x := matrix.VectorOf[float64](1, 2)
	require.NoError(t, matrix.ValidateSameSize[float64](x, x))
	require.ErrorIs(t, matrix.ValidateSameSize[float64](x, matrix.VectorOf[float64](1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameSize[float64](x, nil), matrix.ErrNilExpr)
}

func TestValidators_TypedNil(t *testing.T) {
	var nilView *matrix.View[float64]
	var nilMatrix *matrix.Matrix[float64]
	var nilVec *matrix.VectorView[float64]
	b := mustMatrix[float64](t, 2, 2)

	_, err := matrix.Add[float64](nilView, b)
	require.ErrorIs(t, err, matrix.ErrNilExpr)
	_, err = matrix.Mul[float64](b, nilMatrix)
	require.ErrorIs(t, err, matrix.ErrNilExpr)
	require.ErrorIs(t, matrix.ValidateSquare[float64](nilMatrix), matrix.ErrNilExpr)
	require.ErrorIs(t, matrix.ValidateNotNil[float64](nilView), matrix.ErrNilExpr)
	require.ErrorIs(t, b.Assign(nilView), matrix.ErrNilExpr)

	x := matrix.VectorOf[float64](1, 2)
	_, err = x.Add(nilVec)
	require.ErrorIs(t, err, matrix.ErrNilExpr)
	require.ErrorIs(t, matrix.ValidateSameSize[float64](x, nilVec), matrix.ErrNilExpr)

	assert.True(t, matrix.Materialize[float64](nilView).IsEmpty())
}
