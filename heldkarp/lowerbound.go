package heldkarp

import (
	"math"

	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
)

// Subgradient schedule constants. The root node gets a much larger
// iteration budget and a slower-decaying alpha, since the root's
// penalties start from the half-min seed and benefit most from extra
// refinement; every other node inherits tighter per-node limits to keep
// the branch-and-bound tree moving.
const (
	initialAlpha = 2.0

	rootMaxIters = 1000
	rootBeta     = 0.99

	nodeMaxIters = 10
	nodeBeta     = 0.9
)

// lowerBoundOutcome tags which of the three results a lowerBound call
// produced.
type lowerBoundOutcome int

const (
	outcomeInfeasible lowerBoundOutcome = iota
	outcomeTour
	outcomeLowerBound
)

// lowerBoundResult is a tagged union of the three things a lowerBound
// call can produce: the 1-tree construction failed outright
// (Infeasible), a Hamiltonian tour fell out of the subgradient loop
// (Tour), or the loop terminated with a proven lower bound and the
// 1-tree that witnesses it (LowerBound).
type lowerBoundResult struct {
	outcome lowerBoundOutcome
	tour    UnTour
	bound   fixedpoint.Distance
	tree    []UnEdge
}

// lowerBound runs the Lagrangian subgradient loop over 1-trees for a
// single branch-and-bound node, mutating pi in place as the running
// penalty vector. maxIters and beta are selected by the caller based on
// tree depth (root vs. non-root).
//
// The node-penalty sum S and the per-iteration 1-tree objective L are
// both accumulated as int64: at the solver's intended scale (n in the
// low thousands, scaled distances up to ~3.2e8) their true values can
// exceed what int32 holds well before the final bound is narrowed back
// to a Distance, so every intermediate add/subtract on S and L happens
// in 64-bit and only the function's return value is narrowed.
func lowerBound(
	n int,
	raw *matrix.MatrixSym[fixedpoint.Distance],
	scaled *matrix.MatrixSym[fixedpoint.ScaledDistance],
	states *matrix.MatrixSym[EdgeState],
	pi []fixedpoint.ScaledDistance,
	upperBound fixedpoint.Distance,
	maxIters int,
	beta float64,
	stats *BBStats,
) lowerBoundResult {
	scaledBoundWide := int64(fixedpoint.FromDistance(upperBound))
	bestLB := int64(math.MinInt64)
	alpha := initialAlpha

	// S (the node-penalty sum) is folded in int64 rather than through
	// SumScaled: SumScaled narrows its result back to ScaledDistance, but
	// S's true value can itself exceed int32 range at n in the low
	// thousands, so it must stay widened all the way through L below.
	var s int64
	for _, p := range pi {
		s += int64(p)
	}

	deg := make([]int32, n)

	var lastTree []UnEdge

	for iter := 0; ; iter++ {
		tree, ok := oneTree(n, scaled, states, pi)
		stats.recordOneTree()
		if !ok {
			return lowerBoundResult{outcome: outcomeInfeasible}
		}
		lastTree = tree

		l := s + s
		for _, e := range tree {
			l += int64(scaled.Get(int(e.From), int(e.To)))
			l -= int64(pi[e.From])
			l -= int64(pi[e.To])
		}

		if l > bestLB {
			bestLB = l
		}

		if l >= scaledBoundWide {
			break
		}

		for v := range deg {
			deg[v] = 2
		}
		for _, e := range tree {
			deg[e.From]--
			deg[e.To]--
		}

		var squareSum int64
		for _, d := range deg {
			squareSum += int64(d) * int64(d)
		}

		if squareSum == 0 {
			var rawCost fixedpoint.Distance
			for _, e := range tree {
				rawCost += raw.Get(int(e.From), int(e.To))
			}

			return lowerBoundResult{
				outcome: outcomeTour,
				tour:    UnTour{Edges: tree, Cost: rawCost},
			}
		}

		if iter+1 >= maxIters {
			break
		}

		step := int32(alpha * float64(scaledBoundWide-l) / float64(squareSum))
		if step <= 3 {
			break
		}

		alpha *= beta
		for v := range pi {
			pi[v] = pi[v].Add(fixedpoint.ScaledDistance(step * deg[v]))
		}
	}

	return lowerBoundResult{
		outcome: outcomeLowerBound,
		bound:   fixedpoint.RoundUpWideScaled(bestLB),
		tree:    lastTree,
	}
}
