package heldkarp

import (
	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
)

// oneTree computes a minimum 1-tree: a minimum spanning tree over nodes
// [1, n) plus the two cheapest Available-or-Fixed edges from node 0 to
// that tree. Every Hamiltonian cycle is a 1-tree whose every node has
// degree 2, so the minimum 1-tree's cost lower-bounds the optimal tour.
// Returns (edges, true) on success, or (nil, false) if no 1-tree exists
// under the current edge states (MST infeasible, more than two Fixed
// edges at node 0, or fewer than two usable edges at node 0).
func oneTree(
	n int,
	scaled *matrix.MatrixSym[fixedpoint.ScaledDistance],
	states *matrix.MatrixSym[EdgeState],
	pi []fixedpoint.ScaledDistance,
) ([]UnEdge, bool) {
	tree, ok := minimumSpanningTree(n, scaled, states, pi)
	if !ok {
		return nil, false
	}

	var (
		dA, dB = fixedpoint.MaxScaled, fixedpoint.MaxScaled
		nA, nB = Node(-1), Node(-1)
	)

	for v := 1; v < n; v++ {
		var d fixedpoint.ScaledDistance
		switch states.Get(0, v) {
		case Excluded:
			continue
		case Available:
			d = scaled.Get(0, v).Sub(pi[0]).Sub(pi[v])
		case Fixed:
			if dB == fixedpoint.MinScaled {
				// A third Fixed edge at node 0: infeasible.
				return nil, false
			}
			d = fixedpoint.MinScaled
		}

		if d < dA {
			dB, nB = dA, nA
			dA, nA = d, Node(v)
		} else if d < dB {
			dB, nB = d, Node(v)
		}
	}
	if nB == Node(-1) {
		return nil, false
	}

	result := make([]UnEdge, 0, len(tree)+2)
	result = append(result, tree...)
	result = append(result, NewUnEdge(0, nA), NewUnEdge(0, nB))

	return result, true
}
