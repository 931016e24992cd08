// Package tsplib parses TSPLIB95 instance files into a tsplib.Instance
// whose distances live in one of the two dense containers from package
// matrix, ready to hand to package heldkarp.
//
// # What & why
//
// A TSPLIB95 file is a header of "KEY : VALUE" specification lines
// followed by a data section (commonly NODE_COORD_SECTION) terminated by
// an EOF token or end of file. This package tokenizes the header into a
// Metadata record, then materializes the full lower-triangular distance
// matrix from the coordinate section by applying the edge-weight formula
// named in EDGE_WEIGHT_TYPE.
//
// # Scope
//
// Only TYPE == TSP is solvable downstream; EDGE_WEIGHT_TYPE EXPLICIT,
// XRAY1, XRAY2, and SPECIAL are recognized keywords but are not
// implemented (ErrUnimplemented). ATSP/SOP/HCP/CVRP/TOUR problem types
// and FIXED_EDGES_SECTION are rejected with a clear error rather than
// silently mishandled.
//
// # Concurrency
//
// ParseInstance is otherwise sequential; distance materialization for
// n*n cells at or above a tuning threshold runs as a chunked parallel
// fill (see fill.go) via golang.org/x/sync/errgroup, with deterministic,
// byte-identical output regardless of worker count.
package tsplib
