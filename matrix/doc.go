// Package matrix provides dense, cache-friendly grid containers over an
// arbitrary cell type T: a row-major full Matrix[T] and a lower-triangular
// MatrixSym[T] for symmetric data. Both are used by the tsplib parser (to
// hold Distance cells) and the heldkarp solver (Distance, ScaledDistance,
// and EdgeState cells all live in one of these two containers).
//
// Neither type exposes cell access behind a runtime interface: Get/Set are
// concrete methods on concrete generic structs. The solver's minimum
// spanning tree kernel is the hottest loop in the whole repository, and a
// virtual dispatch on every cell read would dominate its runtime.
//
// Complexity: Rows/Cols/Dim are O(1). Get/Set/GetFromBigger/GetToBigger are
// O(1). Row returns a slice aliasing the backing array in O(1). Clone-style
// conversions (NewMatrixFromSym) are O(n^2).
package matrix
