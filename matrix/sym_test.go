package matrix_test

import (
	"testing"

	"github.com/RaoulLuque/tsp-go/matrix"
	"github.com/stretchr/testify/require"
)

func TestMatrixSym_GetIsOrderIndependent(t *testing.T) {
	m, err := matrix.NewMatrixSym[int](6)
	require.NoError(t, err)

	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			m.Set(r, c, r*100+c)
		}
	}
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			require.Equal(t, m.Get(r, c), m.Get(c, r))
		}
	}
}

func TestMatrixSym_GetFromBiggerMatchesGet(t *testing.T) {
	m, err := matrix.NewMatrixSym[int](5)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c <= r; c++ {
			m.SetFromBigger(r, c, r-c)
		}
	}
	for r := 0; r < 5; r++ {
		for c := 0; c <= r; c++ {
			require.Equal(t, m.Get(r, c), m.GetFromBigger(r, c))
			require.Equal(t, m.Get(c, r), m.GetToBigger(c, r))
		}
	}
}

func TestMatrixSym_RestrictToFirstN(t *testing.T) {
	m, err := matrix.NewMatrixSym[int](6)
	require.NoError(t, err)
	for r := 0; r < 6; r++ {
		for c := 0; c <= r; c++ {
			m.SetFromBigger(r, c, r*10+c)
		}
	}

	view, err := m.RestrictToFirstN(3)
	require.NoError(t, err)
	require.Equal(t, 3, view.Dim())
	for r := 0; r < 3; r++ {
		for c := 0; c <= r; c++ {
			require.Equal(t, m.Get(r, c), view.Get(r, c))
		}
	}
}

func TestNewMatrixFromSym_DuplicatesLowerTriangle(t *testing.T) {
	sym, err := matrix.NewMatrixSym[int](4)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c <= r; c++ {
			sym.SetFromBigger(r, c, r+c)
		}
	}

	full := matrix.NewMatrixFromSym(sym)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, sym.Get(r, c), full.Get(r, c))
			require.Equal(t, full.Get(r, c), full.Get(c, r))
		}
	}
}
