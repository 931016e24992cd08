package matrix_test

import (
	"testing"

	"github.com/RaoulLuque/tsp-go/matrix"
	"github.com/stretchr/testify/require"
)

func TestSetSymmetric_BothCellsUpdated(t *testing.T) {
	m, err := matrix.NewMatrix[int](5)
	require.NoError(t, err)

	m.SetSymmetric(1, 3, 42)
	require.Equal(t, 42, m.Get(1, 3))
	require.Equal(t, 42, m.Get(3, 1))
}

func TestRow_AliasesBackingArray(t *testing.T) {
	m, err := matrix.NewMatrix[int](4)
	require.NoError(t, err)

	row := m.Row(2)
	require.Len(t, row, 4)
	row[1] = 7
	require.Equal(t, 7, m.Get(2, 1))
}

func TestSplitFirstRow_RoundTrip(t *testing.T) {
	m, err := matrix.NewMatrix[int](4)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, r*10+c)
		}
	}

	row0, rest := m.SplitFirstRow()
	require.Equal(t, m.Row(0), row0)
	for v := 1; v < 4; v++ {
		require.Equal(t, m.Row(v), rest.AdjacencyList(v))
	}
}

func TestNewMatrix_RejectsNonPositiveN(t *testing.T) {
	_, err := matrix.NewMatrix[int](0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewMatrixFromData_RejectsSizeMismatch(t *testing.T) {
	_, err := matrix.NewMatrixFromData[int](3, make([]int, 4))
	require.ErrorIs(t, err, matrix.ErrDataSizeMismatch)
}
