package tsplib

import (
	"bufio"
	"os"

	"github.com/RaoulLuque/tsp-go/fixedpoint"
	"github.com/RaoulLuque/tsp-go/matrix"
)

// Kind selects the storage used for an Instance's distances.
type Kind int

const (
	// Symmetric stores the lower-triangular MatrixSym[Distance].
	Symmetric Kind = iota
	// Full stores a complete row-major Matrix[Distance].
	Full
)

// Instance is a parsed TSPLIB95 problem: the specification header plus a
// materialized distance matrix, immutable once returned by ParseInstance.
type Instance struct {
	Metadata Metadata

	// Sym holds the distances when Kind == Symmetric; Dense holds them
	// when Kind == Full. Exactly one is non-nil.
	Sym   *matrix.MatrixSym[fixedpoint.Distance]
	Dense *matrix.Matrix[fixedpoint.Distance]
}

// Dim returns n, the node count.
func (inst *Instance) Dim() int { return inst.Metadata.Dimension }

// Get returns the distance between nodes r and c, regardless of which
// storage Kind the instance was parsed with.
func (inst *Instance) Get(r, c int) fixedpoint.Distance {
	if inst.Sym != nil {
		return inst.Sym.Get(r, c)
	}

	return inst.Dense.Get(r, c)
}

// ParseInstance reads the TSPLIB95 file at path and materializes its
// distances using the requested storage Kind.
func ParseInstance(path string, kind Kind) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrIoError
	}
	defer f.Close()

	return parseInstanceFrom(f, kind)
}

func parseInstanceFrom(f *os.File, kind Kind) (*Instance, error) {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	meta, dataKeyword, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	if meta.ProblemType != TSP {
		return nil, ErrUnimplemented
	}
	switch meta.EdgeWeightType {
	case EXPLICIT, XRAY1, XRAY2, SPECIAL:
		return nil, ErrUnimplemented
	}
	if dataKeyword != "NODE_COORD_SECTION" {
		return nil, ErrUnimplemented
	}

	threeD := is3D(meta.EdgeWeightType)
	points2D, points3D, err := readNodeCoordSection(sc, threeD)
	if err != nil {
		return nil, err
	}

	n := meta.Dimension
	var gotN int
	if threeD {
		gotN = len(points3D)
	} else {
		gotN = len(points2D)
	}
	if gotN != n {
		return nil, ErrInvalidInput
	}

	distFn, err := buildDistanceFunction(meta.EdgeWeightType, points2D, points3D)
	if err != nil {
		return nil, err
	}

	sym, err := fillDistances(n, distFn)
	if err != nil {
		return nil, err
	}

	inst := &Instance{Metadata: meta}
	switch kind {
	case Symmetric:
		inst.Sym = sym
	case Full:
		inst.Dense = matrix.NewMatrixFromSym(sym)
	}

	return inst, nil
}

// buildDistanceFunction returns the (r, c) -> Distance closure for the
// given edge-weight type, precomputing GEO radian coordinates once up
// front rather than on every call.
func buildDistanceFunction(ewt EdgeWeightType, p2 []Point2D, p3 []Point3D) (func(r, c int) fixedpoint.Distance, error) {
	switch ewt {
	case EUC_2D:
		return func(r, c int) fixedpoint.Distance { return euclidean2D(p2[r], p2[c]) }, nil
	case EUC_3D:
		return func(r, c int) fixedpoint.Distance { return euclidean3D(p3[r], p3[c]) }, nil
	case MAX_2D:
		return func(r, c int) fixedpoint.Distance { return maxDistance2D(p2[r], p2[c]) }, nil
	case MAX_3D:
		return func(r, c int) fixedpoint.Distance { return maxDistance3D(p3[r], p3[c]) }, nil
	case MAN_2D:
		return func(r, c int) fixedpoint.Distance { return manhattan2D(p2[r], p2[c]) }, nil
	case MAN_3D:
		return func(r, c int) fixedpoint.Distance { return manhattan3D(p3[r], p3[c]) }, nil
	case CEIL_2D:
		return func(r, c int) fixedpoint.Distance { return ceil2D(p2[r], p2[c]) }, nil
	case ATT:
		return func(r, c int) fixedpoint.Distance { return att2D(p2[r], p2[c]) }, nil
	case GEO:
		geo := make([]GeoPoint, len(p2))
		for i, p := range p2 {
			geo[i] = toGeoPoint(p)
		}

		return func(r, c int) fixedpoint.Distance { return geoDistance(geo[r], geo[c]) }, nil
	default:
		return nil, ErrUnimplemented
	}
}
