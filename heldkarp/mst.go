package heldkarp

import (
	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
)

// minimumSpanningTree computes a minimum spanning tree over nodes
// [1, n) under the given edge states and node penalties, via a Prim
// variant that honors Available/Excluded/Fixed edge states. Node 0
// is the 1-tree's distinguished node and is never part of this MST.
//
// Returns (tree, true) on success, or (nil, false) if the states make no
// spanning tree possible: either a Fixed edge would revisit an
// already-reached node (a Fixed cycle), or some node is unreachable
// (disconnected under the current states).
func minimumSpanningTree(
	n int,
	scaled *matrix.MatrixSym[fixedpoint.ScaledDistance],
	states *matrix.MatrixSym[EdgeState],
	pi []fixedpoint.ScaledDistance,
) ([]UnEdge, bool) {
	remaining := make([]Node, 0, n-2)
	for v := 2; v < n; v++ {
		remaining = append(remaining, Node(v))
	}

	bestCost := make([]fixedpoint.ScaledDistance, n)
	bestPred := make([]Node, n)
	for v := 2; v < n; v++ {
		bestCost[v] = fixedpoint.MaxScaled
	}

	tree := make([]UnEdge, 0, n-2)
	curr := Node(1)

	for step := 0; step < n-2; step++ {
		currPi := pi[curr]

		for _, v := range remaining {
			switch states.Get(int(curr), int(v)) {
			case Excluded:
				continue
			case Available:
				d := scaled.Get(int(curr), int(v)).Sub(currPi).Sub(pi[v])
				if d < bestCost[v] {
					bestCost[v] = d
					bestPred[v] = curr
				}
			case Fixed:
				if bestCost[v] == fixedpoint.MinScaled {
					return nil, false
				}
				bestCost[v] = fixedpoint.MinScaled
				bestPred[v] = curr
			}
		}

		bestIdx := -1
		best := fixedpoint.MaxScaled
		for i, v := range remaining {
			if bestCost[v] < best {
				best = bestCost[v]
				bestIdx = i
			}
		}
		if bestIdx == -1 || best == fixedpoint.MaxScaled {
			return nil, false
		}

		chosen := remaining[bestIdx]
		tree = append(tree, NewUnEdge(bestPred[chosen], chosen))
		remaining[bestIdx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		curr = chosen
	}

	return tree, true
}
