package tsplib

// Point2D is a node's coordinate pair as read from a NODE_COORD_SECTION.
type Point2D struct {
	X, Y float64
}

// Point3D is a node's coordinate triple.
type Point3D struct {
	X, Y, Z float64
}

// GeoPoint holds a node's latitude/longitude already converted to
// radians, per the GEO formula's convertToGeo step.
type GeoPoint struct {
	Latitude, Longitude float64
}
