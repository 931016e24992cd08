package tsplib

import "errors"

// I/O and structural errors.
var (
	// ErrIoError indicates the instance file could not be opened or read.
	ErrIoError = errors.New("tsplib: could not read instance file")

	// ErrInvalidInput indicates a malformed header line or an unexpected
	// end of file while still inside the header.
	ErrInvalidInput = errors.New("tsplib: malformed header line or unexpected eof")

	// ErrInvalidKeyword indicates a keyword not in the TSPLIB95
	// vocabulary for either the header or the data-section marker.
	ErrInvalidKeyword = errors.New("tsplib: unrecognized keyword")
)

// Field-specific value errors, one sentinel per recognized keyword whose
// value failed to parse or fell outside its vocabulary.
var (
	ErrInvalidProblemType      = errors.New("tsplib: invalid TYPE value")
	ErrInvalidDimension        = errors.New("tsplib: invalid DIMENSION value")
	ErrInvalidCapacity         = errors.New("tsplib: invalid CAPACITY value")
	ErrInvalidEdgeWeightType   = errors.New("tsplib: invalid EDGE_WEIGHT_TYPE value")
	ErrInvalidEdgeWeightFormat = errors.New("tsplib: invalid EDGE_WEIGHT_FORMAT value")
	ErrInvalidEdgeDataFormat   = errors.New("tsplib: invalid EDGE_DATA_FORMAT value")
	ErrInvalidNodeCoordType    = errors.New("tsplib: invalid NODE_COORD_TYPE value")
	ErrInvalidDisplayDataType  = errors.New("tsplib: invalid DISPLAY_DATA_TYPE value")
)

// Missing-required-field errors, reported at end of header.
var (
	ErrMissingName           = errors.New("tsplib: missing required field NAME")
	ErrMissingProblemType    = errors.New("tsplib: missing required field TYPE")
	ErrMissingDimension      = errors.New("tsplib: missing required field DIMENSION")
	ErrMissingEdgeWeightType = errors.New("tsplib: missing required field EDGE_WEIGHT_TYPE")
)

// ErrUnimplemented is returned once the data section is reached for a
// recognized but unsupported EDGE_WEIGHT_TYPE (EXPLICIT, XRAY1, XRAY2,
// SPECIAL), a non-TSP problem TYPE, or a FIXED_EDGES_SECTION.
var ErrUnimplemented = errors.New("tsplib: unimplemented TSPLIB95 feature")
