package tsplib

import (
	"bufio"
	"strconv"
	"strings"
)

// dataSectionKeywords are the TSPLIB95 keywords that may terminate the
// header, i.e. the bare section markers. Only NODE_COORD_SECTION is
// materialized by this parser; the others are recognized so a clear
// ErrUnimplemented can be reported rather than a generic parse failure.
var dataSectionKeywords = map[string]bool{
	"NODE_COORD_SECTION":   true,
	"DEPOT_SECTION":        true,
	"DEMAND_SECTION":       true,
	"EDGE_DATA_SECTION":    true,
	"FIXED_EDGES_SECTION":  true,
	"DISPLAY_DATA_SECTION": true,
	"TOUR_SECTION":         true,
	"EDGE_WEIGHT_SECTION":  true,
}

// parseHeader consumes "KEY : VALUE" lines from sc until it reaches a
// bare data-section keyword (or EOF), returning the assembled Metadata
// and the keyword that ended the header.
func parseHeader(sc *bufio.Scanner) (Metadata, string, error) {
	var (
		meta                             Metadata
		haveName, haveType                bool
		haveDimension, haveEdgeWeightType bool
	)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if idx := strings.Index(line, ":"); idx >= 0 {
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])

			if err := applyField(&meta, key, value); err != nil {
				return Metadata{}, "", err
			}
			switch key {
			case "NAME":
				haveName = true
			case "TYPE":
				haveType = true
			case "DIMENSION":
				haveDimension = true
			case "EDGE_WEIGHT_TYPE":
				haveEdgeWeightType = true
			}
			continue
		}

		// No colon: this line is either the data-section keyword or
		// the bare EOF marker ending the instance with no data at all.
		key := strings.TrimSpace(line)
		if key == "EOF" {
			return Metadata{}, "", ErrInvalidInput
		}
		if !dataSectionKeywords[key] {
			return Metadata{}, "", ErrInvalidKeyword
		}

		if err := requireFields(haveName, haveType, haveDimension, haveEdgeWeightType); err != nil {
			return Metadata{}, "", err
		}

		return meta, key, nil
	}
	if err := sc.Err(); err != nil {
		return Metadata{}, "", ErrIoError
	}

	return Metadata{}, "", ErrInvalidInput
}

func requireFields(haveName, haveType, haveDimension, haveEdgeWeightType bool) error {
	switch {
	case !haveName:
		return ErrMissingName
	case !haveType:
		return ErrMissingProblemType
	case !haveDimension:
		return ErrMissingDimension
	case !haveEdgeWeightType:
		return ErrMissingEdgeWeightType
	}

	return nil
}

func applyField(meta *Metadata, key, value string) error {
	switch key {
	case "NAME":
		meta.Name = value
	case "TYPE":
		pt, err := parseProblemType(value)
		if err != nil {
			return err
		}
		meta.ProblemType = pt
	case "COMMENT":
		meta.Comment = value
	case "DIMENSION":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return ErrInvalidDimension
		}
		meta.Dimension = n
	case "CAPACITY":
		c, err := strconv.Atoi(value)
		if err != nil || c <= 0 {
			return ErrInvalidCapacity
		}
		meta.Capacity = c
	case "EDGE_WEIGHT_TYPE":
		ewt, err := parseEdgeWeightType(value)
		if err != nil {
			return err
		}
		meta.EdgeWeightType = ewt
	case "EDGE_WEIGHT_FORMAT":
		ewf, err := parseEdgeWeightFormat(value)
		if err != nil {
			return err
		}
		meta.EdgeWeightFormat = ewf
		meta.HasEdgeWeightFormat = true
	case "EDGE_DATA_FORMAT":
		edf, err := parseEdgeDataFormat(value)
		if err != nil {
			return err
		}
		meta.EdgeDataFormat = edf
		meta.HasEdgeDataFormat = true
	case "NODE_COORD_TYPE":
		nct, err := parseNodeCoordType(value)
		if err != nil {
			return err
		}
		meta.NodeCoordType = nct
	case "DISPLAY_DATA_TYPE":
		ddt, err := parseDisplayDataType(value)
		if err != nil {
			return err
		}
		meta.DisplayDataType = ddt
		meta.HasDisplayDataType = true
	default:
		return ErrInvalidKeyword
	}

	return nil
}

func parseProblemType(v string) (ProblemType, error) {
	switch v {
	case "TSP":
		return TSP, nil
	case "ATSP":
		return ATSP, nil
	case "SOP":
		return SOP, nil
	case "HCP":
		return HCP, nil
	case "CVRP":
		return CVRP, nil
	case "TOUR":
		return TOUR, nil
	default:
		return 0, ErrInvalidProblemType
	}
}

func parseEdgeWeightType(v string) (EdgeWeightType, error) {
	switch v {
	case "EXPLICIT":
		return EXPLICIT, nil
	case "EUC_2D":
		return EUC_2D, nil
	case "EUC_3D":
		return EUC_3D, nil
	case "MAX_2D":
		return MAX_2D, nil
	case "MAX_3D":
		return MAX_3D, nil
	case "MAN_2D":
		return MAN_2D, nil
	case "MAN_3D":
		return MAN_3D, nil
	case "CEIL_2D":
		return CEIL_2D, nil
	case "GEO":
		return GEO, nil
	case "ATT":
		return ATT, nil
	case "XRAY1":
		return XRAY1, nil
	case "XRAY2":
		return XRAY2, nil
	case "SPECIAL":
		return SPECIAL, nil
	default:
		return 0, ErrInvalidEdgeWeightType
	}
}

func parseEdgeWeightFormat(v string) (EdgeWeightFormat, error) {
	switch v {
	case "FUNCTION":
		return FUNCTION, nil
	case "FULL_MATRIX":
		return FULL_MATRIX, nil
	case "UPPER_ROW":
		return UPPER_ROW, nil
	case "LOWER_ROW":
		return LOWER_ROW, nil
	case "UPPER_DIAG_ROW":
		return UPPER_DIAG_ROW, nil
	case "LOWER_DIAG_ROW":
		return LOWER_DIAG_ROW, nil
	case "UPPER_COL":
		return UPPER_COL, nil
	case "LOWER_COL":
		return LOWER_COL, nil
	case "UPPER_DIAG_COL":
		return UPPER_DIAG_COL, nil
	case "LOWER_DIAG_COL":
		return LOWER_DIAG_COL, nil
	default:
		return 0, ErrInvalidEdgeWeightFormat
	}
}

func parseEdgeDataFormat(v string) (EdgeDataFormat, error) {
	switch v {
	case "EDGE_LIST":
		return EDGE_LIST, nil
	case "ADJ_LIST":
		return ADJ_LIST, nil
	default:
		return 0, ErrInvalidEdgeDataFormat
	}
}

func parseNodeCoordType(v string) (NodeCoordType, error) {
	switch v {
	case "TWOD_COORDS":
		return TwoDCoords, nil
	case "THREED_COORDS":
		return ThreeDCoords, nil
	case "NO_COORDS":
		return NoCoords, nil
	default:
		return 0, ErrInvalidNodeCoordType
	}
}

func parseDisplayDataType(v string) (DisplayDataType, error) {
	switch v {
	case "COORD_DISPLAY":
		return CoordDisplay, nil
	case "TWOD_DISPLAY":
		return TwoDDisplay, nil
	case "NO_DISPLAY":
		return NoDisplay, nil
	default:
		return 0, ErrInvalidDisplayDataType
	}
}
