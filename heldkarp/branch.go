package heldkarp

import (
	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
)

// branchingEdge picks the edge to branch on: among the 1-tree's
// Available edges, the one with the smallest reduced scaled distance,
// ties broken by traversal order (the 1-tree's own edge order, which is
// itself deterministic). Fixed edges already decided the branch; they
// are never candidates. Returns false if the 1-tree has no Available
// edge, meaning this node is closed.
func branchingEdge(
	scaled *matrix.MatrixSym[fixedpoint.ScaledDistance],
	states *matrix.MatrixSym[EdgeState],
	pi []fixedpoint.ScaledDistance,
	tree []UnEdge,
) (UnEdge, bool) {
	best := fixedpoint.MaxScaled
	var chosen UnEdge
	found := false

	for _, e := range tree {
		if states.Get(int(e.From), int(e.To)) != Available {
			continue
		}
		d := scaled.Get(int(e.From), int(e.To)).Sub(pi[e.From]).Sub(pi[e.To])
		if d < best {
			best = d
			chosen = e
			found = true
		}
	}

	return chosen, found
}
