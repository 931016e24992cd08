package heldkarp

import (
	"errors"
	"sort"

	"github.com/RaoulLuque/tsp-go/fixedpoint"
)

// Node is an integer index in [0, n).
type Node int

// EdgeState is one of Available, Excluded, or Fixed. The numeric
// encoding matters: Available must be the value a freshly allocated,
// zero-initialized EdgeState matrix is explicitly seeded to (never the
// zero value itself, which is Excluded).
type EdgeState int8

const (
	Excluded EdgeState = 0
	Available EdgeState = 1
	Fixed EdgeState = -1
)

// UnEdge is an unordered pair of distinct nodes, normalized so From <= To.
type UnEdge struct {
	From, To Node
}

// NewUnEdge builds an UnEdge from two distinct nodes, normalizing order.
func NewUnEdge(a, b Node) UnEdge {
	if a > b {
		a, b = b, a
	}

	return UnEdge{From: a, To: b}
}

// Less reports whether e sorts before o under the lexicographic order on
// the normalized (From, To) pair.
func (e UnEdge) Less(o UnEdge) bool {
	if e.From != o.From {
		return e.From < o.From
	}

	return e.To < o.To
}

// UnTour is a Hamiltonian cycle: exactly n edges on nodes [0, n), plus
// its precomputed raw cost.
type UnTour struct {
	Edges []UnEdge
	Cost  fixedpoint.Distance
}

// Equal compares cost and the edge multiset, order-independent.
func (t UnTour) Equal(o UnTour) bool {
	if t.Cost != o.Cost || len(t.Edges) != len(o.Edges) {
		return false
	}
	a := append([]UnEdge(nil), t.Edges...)
	b := append([]UnEdge(nil), o.Edges...)
	sort.Slice(a, func(i, j int) bool { return a[i].Less(a[j]) })
	sort.Slice(b, func(i, j int) bool { return b[i].Less(b[j]) })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ErrTooFewNodes is returned when the instance has fewer than the three
// nodes required to form a Hamiltonian cycle.
var ErrTooFewNodes = errors.New("heldkarp: solver requires at least 3 nodes")
