package matrix

// Matrix is a dense, row-major n*n grid of cells of type T.
//
// Contract: the caller guarantees data.size == n*n whenever a Matrix is
// built directly from a backing slice (NewMatrixFromData); the
// zero-value constructor (NewMatrix) always allocates a correctly sized
// buffer and cannot violate this.
type Matrix[T any] struct {
	n    int
	data []T
}

// NewMatrix allocates a zero-valued n*n Matrix. n must be > 0.
func NewMatrix[T any](n int) (*Matrix[T], error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix[T]{n: n, data: make([]T, n*n)}, nil
}

// NewMatrixFromData wraps an existing n*n backing slice without copying.
// data is aliased, not cloned: mutations through the returned Matrix are
// visible in data and vice versa.
func NewMatrixFromData[T any](n int, data []T) (*Matrix[T], error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != n*n {
		return nil, ErrDataSizeMismatch
	}

	return &Matrix[T]{n: n, data: data}, nil
}

// Dim returns n (both Rows and Cols, since Matrix is always square).
func (m *Matrix[T]) Dim() int { return m.n }

// Rows returns n.
func (m *Matrix[T]) Rows() int { return m.n }

// Cols returns n.
func (m *Matrix[T]) Cols() int { return m.n }

// Get returns the cell at (r, c). No bounds checking: callers operate in
// the hot path of the MST kernel and the parser's fill loop, both of
// which already bound their own loop indices to [0, n).
func (m *Matrix[T]) Get(r, c int) T {
	return m.data[r*m.n+c]
}

// Set assigns the cell at (r, c).
func (m *Matrix[T]) Set(r, c int, v T) {
	m.data[r*m.n+c] = v
}

// SetSymmetric writes v at both (r, c) and (c, r).
func (m *Matrix[T]) SetSymmetric(r, c int, v T) {
	m.data[r*m.n+c] = v
	m.data[c*m.n+r] = v
}

// Row returns the n-length slice backing row r, aliasing the matrix's
// storage directly. The MST inner loop iterates this slice without going
// through Get, which is where dense row-major storage earns its keep
// over a pointer-chasing adjacency representation.
func (m *Matrix[T]) Row(r int) []T {
	return m.data[r*m.n : (r+1)*m.n]
}

// MatrixView is a read-only adapter over rows 1..n-1 of a Matrix[T],
// returned by SplitFirstRow. AdjacencyList(v) for v >= 1 indexes row v-1
// of the view, which is row v of the underlying matrix, letting the
// 1-tree kernel treat the
// singled-out node 0 and the interior (n-1)x(n-1) tree as disjoint
// aliases of one backing array.
type MatrixView[T any] struct {
	inner *Matrix[T]
}

// AdjacencyList returns the adjacency row for node v (v must be >= 1).
// Indexes row v-1 of the view (rows 1..n-1), i.e. it returns the
// original matrix's row v, so that v==1 addresses the first interior
// row.
func (v *MatrixView[T]) AdjacencyList(node int) []T {
	return v.inner.Row(node)
}

// Dim returns n-1, the number of interior nodes the view covers.
func (v *MatrixView[T]) Dim() int { return v.inner.n - 1 }

// SplitFirstRow returns (row0, rest) where row0 is the length-n row for
// node 0 and rest is a read-only view over rows 1..n-1. This supports
// processing the singled-out node 0 and the interior tree with disjoint
// aliasing: row0 and rest never overlap in the backing array because
// they address different rows of the same Matrix.
//
// Note: the "rest" view here addresses the *same* n-row matrix, offset
// by one row in AdjacencyList's indexing, and each row it returns still
// has n cells (column 0 included); it is not a separate (n-1)x(n-1)
// matrix.
func (m *Matrix[T]) SplitFirstRow() ([]T, *MatrixView[T]) {
	row0 := m.Row(0)

	return row0, &MatrixView[T]{inner: m}
}
