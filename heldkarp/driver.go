package heldkarp

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
	"github.com/RaoulLuque/tsp-go/tsplib"
)

// bbContext bundles the mutable state a single branch-and-bound call
// stack owns: edge states, node penalties, fixed-degree counters, and
// the running best tour. Every recursive descent mutates this in place
// and restores it on backtrack; nothing is cloned across the recursion.
type bbContext struct {
	n        int
	raw      *matrix.MatrixSym[fixedpoint.Distance]
	scaled   *matrix.MatrixSym[fixedpoint.ScaledDistance]
	states   *matrix.MatrixSym[EdgeState]
	pi       []fixedpoint.ScaledDistance
	fixedDeg []int

	upperBound fixedpoint.Distance
	bestTour   UnTour

	bbCounter int
	bbLimit   int
	stats     *BBStats
	logger    *slog.Logger
}

// Solve finds the optimal Hamiltonian cycle for instance via depth-first
// branch-and-bound bounded by Held-Karp 1-tree lower bounds.
// Precondition: instance.Dim() >= 3.
func Solve(instance *tsplib.Instance, opts Options) (*UnTour, error) {
	n := instance.Dim()
	if n < 3 {
		return nil, ErrTooFewNodes
	}

	ctx := newBBContext(n, instance, opts)
	ctx.explore(0)

	tour := ctx.bestTour

	return &tour, nil
}

// newBBContext builds the root state: raw and scaled distances, edge
// states all Available, half-min initial penalties, fixed degrees at
// zero, and the identity tour as the initial upper bound so the driver
// never has to reason about "no tour yet".
func newBBContext(n int, instance *tsplib.Instance, opts Options) *bbContext {
	raw := rawDistances(n, instance)

	// n >= 3 is guaranteed by Solve/SolveParallel's precondition check,
	// so NewMatrixSym's only error case (n <= 0) cannot occur here.
	scaled, _ := matrix.NewMatrixSym[fixedpoint.ScaledDistance](n)
	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			scaled.Set(r, c, fixedpoint.FromDistance(raw.Get(r, c)))
		}
	}

	states, _ := matrix.NewMatrixSym[EdgeState](n)
	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			states.Set(r, c, Available)
		}
	}

	identity := identityTour(n, raw)

	ctx := &bbContext{
		n:        n,
		raw:      raw,
		scaled:   scaled,
		states:   states,
		pi:       initialPenalties(n, scaled),
		fixedDeg: make([]int, n),

		upperBound: identity.Cost,
		bestTour:   identity,

		bbLimit: opts.BBLimit,
		stats:   opts.Stats,
		logger:  opts.Logger,
	}

	return ctx
}

// rawDistances materializes a MatrixSym[Distance] from instance,
// reusing its own symmetric storage when available rather than
// re-deriving every pair through Get.
func rawDistances(n int, instance *tsplib.Instance) *matrix.MatrixSym[fixedpoint.Distance] {
	if instance.Sym != nil {
		return instance.Sym
	}

	sym, _ := matrix.NewMatrixSym[fixedpoint.Distance](n)
	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			sym.Set(r, c, instance.Get(r, c))
		}
	}

	return sym
}

// identityTour builds the 0->1->...->n-1->0 cycle and its raw cost, the
// driver's initial upper bound.
func identityTour(n int, raw *matrix.MatrixSym[fixedpoint.Distance]) UnTour {
	edges := make([]UnEdge, 0, n)
	var cost fixedpoint.Distance
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, NewUnEdge(Node(i), Node(j)))
		cost += raw.Get(i, j)
	}

	return UnTour{Edges: edges, Cost: cost}
}

// initialPenalties seeds pi[v] = (1/2) * min_{u != v} scaledDist(v, u),
// which gets the subgradient loop started near a useful scale and
// sharply cuts the root node's iteration count.
func initialPenalties(n int, scaled *matrix.MatrixSym[fixedpoint.ScaledDistance]) []fixedpoint.ScaledDistance {
	pi := make([]fixedpoint.ScaledDistance, n)
	for v := 0; v < n; v++ {
		minDist := fixedpoint.MaxScaled
		for u := 0; u < n; u++ {
			if u == v {
				continue
			}
			if d := scaled.Get(v, u); d < minDist {
				minDist = d
			}
		}
		pi[v] = minDist.DivScalar(2)
	}

	return pi
}

// explore performs one depth-first branch-and-bound step: compute the
// lower bound (or a tour, or infeasibility) at this node, then recurse
// on the Excluded and Fixed branches of the chosen branching edge.
func (ctx *bbContext) explore(depth int) {
	ctx.bbCounter++
	if ctx.bbLimit != 0 && ctx.bbCounter >= ctx.bbLimit {
		return
	}
	ctx.stats.recordNode()

	maxIters, beta := nodeMaxIters, nodeBeta
	if depth == 0 {
		maxIters, beta = rootMaxIters, rootBeta
	}

	result := lowerBound(ctx.n, ctx.raw, ctx.scaled, ctx.states, ctx.pi, ctx.upperBound, maxIters, beta, ctx.stats)

	var tree []UnEdge
	switch result.outcome {
	case outcomeInfeasible:
		return
	case outcomeTour:
		if result.tour.Cost < ctx.upperBound {
			ctx.upperBound = result.tour.Cost
			ctx.bestTour = result.tour
			if ctx.logger != nil {
				ctx.logger.Debug("found improved tour", "cost", int32(result.tour.Cost), "depth", depth)
			}
		}

		return
	case outcomeLowerBound:
		if result.bound >= ctx.upperBound {
			return
		}
		tree = result.tree
	}

	edge, ok := branchingEdge(ctx.scaled, ctx.states, ctx.pi, tree)
	if !ok {
		return
	}

	// The children's lower-bound loops mutate pi; each branch starts from
	// this node's penalties, which are restored after it returns.
	savedPi := append([]fixedpoint.ScaledDistance(nil), ctx.pi...)

	// Branch 1: exclude the edge.
	ctx.states.Set(int(edge.From), int(edge.To), Excluded)
	ctx.explore(depth + 1)
	ctx.states.Set(int(edge.From), int(edge.To), Available)
	copy(ctx.pi, savedPi)

	// Branch 2: fix the edge, if doing so would not push either
	// endpoint's fixed degree past 2.
	if ctx.fixedDeg[edge.From] < 2 && ctx.fixedDeg[edge.To] < 2 {
		ctx.states.Set(int(edge.From), int(edge.To), Fixed)
		ctx.fixedDeg[edge.From]++
		ctx.fixedDeg[edge.To]++

		ctx.explore(depth + 1)

		ctx.states.Set(int(edge.From), int(edge.To), Available)
		ctx.fixedDeg[edge.From]--
		ctx.fixedDeg[edge.To]--
		copy(ctx.pi, savedPi)
	}
}

// SolveParallel is a root-parallel variant of Solve: it computes the
// root 1-tree bound once, fans the Excluded/Fixed branches of the root
// branching edge across a bounded worker pool, and reduces to the
// global best tour under a mutex. Same result contract as Solve.
func SolveParallel(instance *tsplib.Instance, opts Options) (*UnTour, error) {
	n := instance.Dim()
	if n < 3 {
		return nil, ErrTooFewNodes
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	root := newBBContext(n, instance, opts)

	result := lowerBound(root.n, root.raw, root.scaled, root.states, root.pi, root.upperBound, rootMaxIters, rootBeta, root.stats)

	switch result.outcome {
	case outcomeInfeasible:
		tour := root.bestTour
		return &tour, nil
	case outcomeTour:
		if result.tour.Cost < root.upperBound {
			root.upperBound = result.tour.Cost
			root.bestTour = result.tour
		}
		tour := root.bestTour
		return &tour, nil
	}

	if result.bound >= root.upperBound {
		tour := root.bestTour
		return &tour, nil
	}

	edge, ok := branchingEdge(root.scaled, root.states, root.pi, result.tree)
	if !ok {
		tour := root.bestTour
		return &tour, nil
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, workers)
		best     = root.bestTour
		bestCost = root.upperBound
	)

	runBranch := func(state EdgeState, deg int) {
		defer wg.Done()
		defer func() { <-sem }()

		sub := cloneBBContext(root)
		// Each worker accumulates into its own BBStats rather than
		// root.stats directly: BBStats' counters are plain ints, and two
		// goroutines incrementing the same *BBStats concurrently would
		// race. The local counts are folded into root.stats under mu
		// once this branch finishes.
		var localStats *BBStats
		if root.stats != nil {
			localStats = &BBStats{}
			sub.stats = localStats
		}
		sub.states.Set(int(edge.From), int(edge.To), state)
		if state == Fixed {
			sub.fixedDeg[edge.From] += deg
			sub.fixedDeg[edge.To] += deg
		}
		sub.explore(1)

		mu.Lock()
		if sub.bestTour.Cost < bestCost {
			bestCost = sub.bestTour.Cost
			best = sub.bestTour
		}
		if localStats != nil {
			root.stats.NodesExplored += localStats.NodesExplored
			root.stats.OneTreesComputed += localStats.OneTreesComputed
		}
		mu.Unlock()
	}

	wg.Add(1)
	sem <- struct{}{}
	go runBranch(Excluded, 0)

	if root.fixedDeg[edge.From] < 2 && root.fixedDeg[edge.To] < 2 {
		wg.Add(1)
		sem <- struct{}{}
		go runBranch(Fixed, 1)
	}

	wg.Wait()

	return &best, nil
}

// cloneBBContext deep-copies the mutable state a worker needs to run an
// independent serial DFS subtree: distances are immutable and shared by
// reference, but edge states, penalties, and fixed degrees are each
// worker's own.
func cloneBBContext(root *bbContext) *bbContext {
	states, _ := matrix.NewMatrixSym[EdgeState](root.n)
	for r := 0; r < root.n; r++ {
		for c := 0; c < r; c++ {
			states.Set(r, c, root.states.Get(r, c))
		}
	}

	pi := append([]fixedpoint.ScaledDistance(nil), root.pi...)
	fixedDeg := append([]int(nil), root.fixedDeg...)

	return &bbContext{
		n:        root.n,
		raw:      root.raw,
		scaled:   root.scaled,
		states:   states,
		pi:       pi,
		fixedDeg: fixedDeg,

		upperBound: root.upperBound,
		bestTour:   root.bestTour,

		bbLimit: root.bbLimit,
		stats:   root.stats,
		logger:  root.logger,
	}
}
