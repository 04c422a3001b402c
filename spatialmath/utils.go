package spatialmath

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ParseVector reads a vector written as three numbers separated by commas and/or spaces, e.g. "1,2,3".
func ParseVector(s string) (r3.Vector, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return r3.Vector{}, NewShapeError("vector "+strconv.Quote(s), 3, len(fields))
	}
	var converted [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "cannot parse component %d of %q", i, s)
		}
		converted[i] = value
	}
	return r3.Vector{X: converted[0], Y: converted[1], Z: converted[2]}, nil
}

// VectorFromArray converts a slice holding (x, y, z) into a vector.
func VectorFromArray(name string, arr []float64) (r3.Vector, error) {
	if len(arr) != 3 {
		return r3.Vector{}, NewShapeError(name, 3, len(arr))
	}
	return r3.Vector{X: arr[0], Y: arr[1], Z: arr[2]}, nil
}

// VectorToArray converts a vector into a slice holding (x, y, z).
func VectorToArray(v r3.Vector) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}
