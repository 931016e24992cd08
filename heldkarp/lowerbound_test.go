package heldkarp

import (
	"testing"

	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
	"github.com/stretchr/testify/require"
)

// ringDistances builds an n-node ring where consecutive nodes (mod n)
// cost 1 and every other pair costs 10: the unique minimum-cost 1-tree
// under zero penalties is the ring itself, already a tour.
func ringDistances(t *testing.T, n int) (*matrix.MatrixSym[fixedpoint.Distance], *matrix.MatrixSym[fixedpoint.ScaledDistance], *matrix.MatrixSym[EdgeState]) {
	t.Helper()
	raw, err := matrix.NewMatrixSym[fixedpoint.Distance](n)
	require.NoError(t, err)
	scaled, err := matrix.NewMatrixSym[fixedpoint.ScaledDistance](n)
	require.NoError(t, err)
	states, err := matrix.NewMatrixSym[EdgeState](n)
	require.NoError(t, err)

	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			d := fixedpoint.Distance(10)
			if r == c+1 || (c == 0 && r == n-1) {
				d = 1
			}
			raw.Set(r, c, d)
			scaled.Set(r, c, fixedpoint.FromDistance(d))
			states.Set(r, c, Available)
		}
	}

	return raw, scaled, states
}

func TestLowerBound_RingYieldsTourImmediately(t *testing.T) {
	const n = 8
	raw, scaled, states := ringDistances(t, n)
	pi := make([]fixedpoint.ScaledDistance, n)

	result := lowerBound(n, raw, scaled, states, pi, fixedpoint.MaxDistance, rootMaxIters, rootBeta, nil)
	require.Equal(t, outcomeTour, result.outcome)
	require.EqualValues(t, n, result.tour.Cost)
	require.Len(t, result.tour.Edges, n)
}

func TestLowerBound_TightUpperBoundPrunes(t *testing.T) {
	const n = 8
	raw, scaled, states := ringDistances(t, n)
	pi := make([]fixedpoint.ScaledDistance, n)

	// An upper bound below the true optimum (n) forces an immediate
	// prune: the lower bound must still be returned, never a false tour.
	result := lowerBound(n, raw, scaled, states, pi, fixedpoint.Distance(n-1), rootMaxIters, rootBeta, nil)
	require.Equal(t, outcomeLowerBound, result.outcome)
	require.GreaterOrEqual(t, result.bound, fixedpoint.Distance(n-1))
}

func TestLowerBound_InfeasibleWhenNoOneTreeExists(t *testing.T) {
	const n = 6
	raw, scaled, states := ringDistances(t, n)
	for v := 1; v < n; v++ {
		states.Set(0, v, Excluded)
	}
	pi := make([]fixedpoint.ScaledDistance, n)

	result := lowerBound(n, raw, scaled, states, pi, fixedpoint.MaxDistance, rootMaxIters, rootBeta, nil)
	require.Equal(t, outcomeInfeasible, result.outcome)
}
