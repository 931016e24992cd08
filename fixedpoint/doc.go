// Package fixedpoint provides the integer distance type used throughout the
// TSPLIB95 parser and the Held–Karp solver, plus a five-bit fixed-point
// scaled variant used on the solver's subgradient hot path.
//
// Rationale: the Lagrangian subgradient step computes
//
//	step = alpha * (UB - LB) / ||deg||^2
//
// With raw integer distances this truncates to zero for most instances
// within a few iterations and the bound stalls. Scaling every distance by
// 32 (five fractional bits, Q27.5) keeps the hot path on integer
// arithmetic, admits meaningful sub-unit steps, and keeps comparisons
// exact and reproducible across platforms.
package fixedpoint
