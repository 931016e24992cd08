// Package heldkarp solves the symmetric Traveling Salesperson Problem to
// proven optimality via depth-first branch-and-bound over edge states,
// bounded by a Held–Karp 1-tree lower bound under Lagrangian relaxation
// on per-node penalties.
//
// # Call structure
//
//	Solve / SolveParallel
//	  bbContext.explore            depth-first branch-and-bound
//	    lowerBound                 subgradient loop over 1-trees
//	      oneTree                  MST(1..n-1) + two cheapest node-0 edges
//	        minimumSpanningTree    Prim variant honoring edge states
//	    branchingEdge               picks the next edge to fix/exclude
//
// # Edge states
//
// Every off-diagonal edge is Available, Excluded, or Fixed. The
// branch-and-bound driver explores, for a chosen branching edge, first
// the subtree where it is Excluded, then the subtree where it is Fixed,
// mutating a single shared context in place and restoring it on
// backtrack — no state is cloned across the recursion.
//
// # Determinism
//
// No randomness anywhere in this package: Prim and 1-tree tie-breaks take
// the first candidate in a deterministic scan order, the subgradient
// schedule is purely arithmetic, and
// the branch order (Excluded before Fixed) is fixed. The same instance
// always produces a tour of the same cost.
package heldkarp
