package tsplib

import (
	"math"
	"runtime"

	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
	"golang.org/x/sync/errgroup"
)

// fillParallelThreshold is the n*n cell count at or above which
// distance-matrix fill runs as a chunked parallel-for. This is a tuning
// knob, not a contract; any value in the tens of thousands is
// acceptable — below it, thread-spawn overhead would dwarf the fill
// itself.
const fillParallelThreshold = 100_000

// triFromIdx inverts the triangular-number bijection idx <-> (r, c) for
// the lower triangle (including the diagonal) of an n*n grid: idx = 0
// addresses (0,0), idx = 1 addresses (1,0), idx = 2 addresses (1,1), etc.
func triFromIdx(idx int) (r, c int) {
	r = int((-1 + math.Sqrt(1+8*float64(idx))) / 2)
	// Guard against floating-point rounding landing one row off.
	for (r+1)*(r+2)/2 <= idx {
		r++
	}
	for r*(r+1)/2 > idx {
		r--
	}
	c = idx - r*(r+1)/2

	return r, c
}

// fillDistances materializes the full lower-triangular (including
// diagonal) Distance matrix for n nodes by calling distFn(r, c) for every
// r > c; diagonal cells are left at their zero value (a node's distance
// to itself). Below fillParallelThreshold the fill runs in the calling
// goroutine; at or above it, the n*(n+1)/2 index range is partitioned
// into runtime.GOMAXPROCS(0) contiguous chunks and filled concurrently via
// errgroup, each goroutine owning a disjoint destination span with no
// locks or atomics, producing byte-identical output regardless of worker
// count (the formula is a pure function of (r, c)).
func fillDistances(n int, distFn func(r, c int) fixedpoint.Distance) (*matrix.MatrixSym[fixedpoint.Distance], error) {
	sym, err := matrix.NewMatrixSym[fixedpoint.Distance](n)
	if err != nil {
		return nil, err
	}

	total := n * (n + 1) / 2
	fillSpan := func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			r, c := triFromIdx(idx)
			if r == c {
				continue
			}
			sym.SetFromBigger(r, c, distFn(r, c))
		}
	}

	if n*n < fillParallelThreshold {
		fillSpan(0, total)

		return sym, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (total + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		lo, hi := lo, hi
		g.Go(func() error {
			fillSpan(lo, hi)

			return nil
		})
	}
	_ = g.Wait() // fillSpan never returns an error

	return sym, nil
}
