// Package tsp is the root of an exact symmetric TSP solver over
// TSPLIB95 instances.
//
// 🚀 What is tsp-go?
//
//	A branch-and-bound Held-Karp solver that proves optimality rather
//	than approximating it:
//
//	  • Fixed-point kernels: Q27.5 scaled-distance arithmetic that keeps
//	    the Lagrangian subgradient loop on integers end to end
//	  • Dense containers: a row-major Matrix[T] and a triangular
//	    MatrixSym[T] sized for node counts in the low thousands
//	  • A TSPLIB95 parser: header/coordinate-section parsing plus all
//	    nine edge-weight formulas, with a parallel chunked fill for large
//	    instances
//	  • The solver itself: depth-first branch-and-bound over edge
//	    states, bounded by minimum 1-trees under Lagrangian relaxation
//
// Everything is organized under four sibling packages plus a thin CLI:
//
//	fixedpoint/ — Distance / ScaledDistance arithmetic
//	matrix/     — Matrix[T] / MatrixSym[T] containers
//	tsplib/     — TSPLIB95 parsing and distance materialization
//	heldkarp/   — the branch-and-bound driver, MST/1-tree kernels, Solve
//	cmd/tsp-solve/ — reads an instance file, prints the optimal cost
//
// Quick shape:
//
//	instance, _ := tsplib.ParseInstance("berlin52.tsp", tsplib.Symmetric)
//	tour, _ := heldkarp.Solve(instance, heldkarp.DefaultOptions())
//
//	go get github.com/RaoulLuque/tsp-go
package tsp
