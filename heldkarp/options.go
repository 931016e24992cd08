package heldkarp

import "log/slog"

// Options controls the branch-and-bound driver. The zero value is not
// meaningful; callers should start from DefaultOptions.
type Options struct {
	// BBLimit, when non-zero, caps the number of branch-and-bound nodes
	// explored before the driver gives up and returns the best tour
	// found so far. Zero means unbounded (run to completion).
	BBLimit int

	// Workers bounds the number of goroutines SolveParallel uses to
	// explore root branches concurrently. Ignored by Solve. Zero
	// selects runtime.GOMAXPROCS(0).
	Workers int

	// Stats, when non-nil, is filled in place with branch-and-bound
	// instrumentation as the solve runs.
	Stats *BBStats

	// Logger, when non-nil, receives debug-level traces of upper-bound
	// improvements; prune decisions are not logged. A nil Logger produces no output
	// and costs nothing beyond the nil check.
	Logger *slog.Logger
}

// DefaultOptions returns the solver's default configuration: unbounded
// search, one worker per available CPU, no instrumentation.
func DefaultOptions() Options {
	return Options{}
}

// BBStats carries branch-and-bound progress counters that the original
// Rust solver printed inline (bb_counter, number_computed_one_trees).
// Exposed as an optional out-parameter so callers can opt into that
// visibility without paying for it on the hot path when nil.
type BBStats struct {
	NodesExplored    int
	OneTreesComputed int
}

func (s *BBStats) recordNode() {
	if s != nil {
		s.NodesExplored++
	}
}

func (s *BBStats) recordOneTree() {
	if s != nil {
		s.OneTreesComputed++
	}
}
