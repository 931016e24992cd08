package tsplib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempInstance(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.tsp")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

const square4 = `NAME: square4
TYPE: TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 0 3
3 4 3
4 4 0
EOF
`

func TestParseInstance_EUC2D(t *testing.T) {
	path := writeTempInstance(t, square4)

	inst, err := ParseInstance(path, Symmetric)
	require.NoError(t, err)
	require.Equal(t, 4, inst.Dim())
	require.Equal(t, "square4", inst.Metadata.Name)
	require.EqualValues(t, 3, inst.Get(0, 1))
	require.EqualValues(t, 5, inst.Get(0, 2))
	require.EqualValues(t, 4, inst.Get(0, 3))
	require.EqualValues(t, 4, inst.Get(1, 2))
	require.EqualValues(t, 5, inst.Get(1, 3))
	require.EqualValues(t, 3, inst.Get(2, 3))
	require.EqualValues(t, 0, inst.Get(0, 0))
}

func TestParseInstance_SymmetricAndFullAgree(t *testing.T) {
	path := writeTempInstance(t, square4)

	sym, err := ParseInstance(path, Symmetric)
	require.NoError(t, err)
	full, err := ParseInstance(path, Full)
	require.NoError(t, err)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, sym.Get(r, c), full.Get(r, c))
		}
	}
}

func TestParseInstance_MissingDimension(t *testing.T) {
	body := `NAME: bad
TYPE: TSP
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
EOF
`
	path := writeTempInstance(t, body)
	_, err := ParseInstance(path, Symmetric)
	require.ErrorIs(t, err, ErrMissingDimension)
}

func TestParseInstance_UnknownKeyword(t *testing.T) {
	body := `NAME: bad
TYPE: TSP
DIMENSION: 1
FROBNICATE: 1
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
EOF
`
	path := writeTempInstance(t, body)
	_, err := ParseInstance(path, Symmetric)
	require.ErrorIs(t, err, ErrInvalidKeyword)
}

func TestParseInstance_NonTSPIsUnimplemented(t *testing.T) {
	body := `NAME: bad
TYPE: ATSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 0 3
3 4 3
4 4 0
EOF
`
	path := writeTempInstance(t, body)
	_, err := ParseInstance(path, Symmetric)
	require.ErrorIs(t, err, ErrUnimplemented)
}

func TestParseInstance_ExplicitIsUnimplemented(t *testing.T) {
	body := `NAME: bad
TYPE: TSP
DIMENSION: 2
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: FULL_MATRIX
EDGE_WEIGHT_SECTION
0 1
1 0
EOF
`
	path := writeTempInstance(t, body)
	_, err := ParseInstance(path, Symmetric)
	require.ErrorIs(t, err, ErrUnimplemented)
}

func TestParseInstance_DimensionMismatchIsInvalidInput(t *testing.T) {
	body := `NAME: bad
TYPE: TSP
DIMENSION: 5
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 0 3
3 4 3
4 4 0
EOF
`
	path := writeTempInstance(t, body)
	_, err := ParseInstance(path, Symmetric)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseInstance_IoErrorOnMissingFile(t *testing.T) {
	_, err := ParseInstance(filepath.Join(t.TempDir(), "nope.tsp"), Symmetric)
	require.ErrorIs(t, err, ErrIoError)
}
