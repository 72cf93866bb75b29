package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	CompareExact(t, src, m)

	src[0][0] = 100 // input is copied, not retained
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewFromRowsErrors(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "row 1 has 1 cols, want 2")

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewFromRows([][]float64{{1, math.NaN()}}) // policy off by default
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, m, 0, 1)))
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRawRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	rows := m.RawRows()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	rows[1][1] = 40 // export is a copy
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))

	require.Empty(t, matrix.NewEmpty().RawRows())
}
