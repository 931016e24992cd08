package tsplib

import (
	"bufio"
	"strconv"
	"strings"
)

// is3D reports whether ewt expects three coordinates per node.
func is3D(ewt EdgeWeightType) bool {
	switch ewt {
	case EUC_3D, MAX_3D, MAN_3D:
		return true
	default:
		return false
	}
}

// readNodeCoordSection reads the body of a NODE_COORD_SECTION, ignoring
// the on-line node index (nodes are taken in encounter order starting at
// 0) and stopping at the first bare EOF token or end of file. It samples
// the first data line to decide whether coordinates parse as floating
// point (x or y token containing '.') or as unsigned integers widened to
// float64. A FIXED_EDGES_SECTION marker ends the read with
// ErrUnimplemented.
func readNodeCoordSection(sc *bufio.Scanner, threeD bool) ([]Point2D, []Point3D, error) {
	var (
		points2D []Point2D
		points3D []Point3D
		sampled  bool
		isFloat  bool
	)

	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimRight(sc.Text(), "\r"))
		if line == "" {
			continue
		}
		if line == "EOF" {
			return points2D, points3D, nil
		}
		if line == "FIXED_EDGES_SECTION" {
			return nil, nil, ErrUnimplemented
		}

		fields := strings.Fields(line)
		wantFields := 3
		if threeD {
			wantFields = 4
		}
		if len(fields) < wantFields {
			return nil, nil, ErrInvalidInput
		}

		if !sampled {
			isFloat = strings.ContainsAny(fields[1], ".") || strings.ContainsAny(fields[2], ".")
			sampled = true
		}

		x, err := parseCoord(fields[1], isFloat)
		if err != nil {
			return nil, nil, ErrInvalidInput
		}
		y, err := parseCoord(fields[2], isFloat)
		if err != nil {
			return nil, nil, ErrInvalidInput
		}

		if threeD {
			z, err := parseCoord(fields[3], isFloat)
			if err != nil {
				return nil, nil, ErrInvalidInput
			}
			points3D = append(points3D, Point3D{X: x, Y: y, Z: z})
		} else {
			points2D = append(points2D, Point2D{X: x, Y: y})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, ErrIoError
	}

	return points2D, points3D, nil
}

func parseCoord(tok string, isFloat bool) (float64, error) {
	if isFloat {
		return strconv.ParseFloat(tok, 64)
	}
	u, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, err
	}

	return float64(u), nil
}
