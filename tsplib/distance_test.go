package tsplib

import (
	"testing"

	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/stretchr/testify/require"
)

func TestEuclidean2D(t *testing.T) {
	a := Point2D{X: 0, Y: 0}
	b := Point2D{X: 3, Y: 4}
	require.Equal(t, fixedpoint.Distance(5), euclidean2D(a, b))
}

func TestManhattan2D(t *testing.T) {
	a := Point2D{X: 0, Y: 0}
	b := Point2D{X: 3, Y: 4}
	require.Equal(t, fixedpoint.Distance(7), manhattan2D(a, b))
}

func TestMaxDistance2D(t *testing.T) {
	a := Point2D{X: 0, Y: 0}
	b := Point2D{X: 3, Y: 4}
	require.Equal(t, fixedpoint.Distance(4), maxDistance2D(a, b))
}

func TestCeil2D_RoundsUpNotNearest(t *testing.T) {
	a := Point2D{X: 0, Y: 0}
	b := Point2D{X: 1, Y: 1} // sqrt(2) ~= 1.41421
	require.Equal(t, fixedpoint.Distance(2), ceil2D(a, b))
}

func TestATT2D(t *testing.T) {
	a := Point2D{X: 0, Y: 0}
	b := Point2D{X: 0, Y: 0}
	require.Equal(t, fixedpoint.Distance(0), att2D(a, b))
}

func TestGeoDistance_IdenticalPointsIsZero(t *testing.T) {
	g := GeoPoint{Latitude: 1.0, Longitude: 2.0}
	require.Equal(t, fixedpoint.Distance(0), geoDistance(g, g))
}

func TestNint(t *testing.T) {
	require.Equal(t, int32(2), nint(1.5))
	require.Equal(t, int32(2), nint(1.9))
	require.Equal(t, int32(1), nint(1.49))
}
