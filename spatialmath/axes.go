package spatialmath

import (
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Axis identifies one of the three coordinate axes.
type Axis int

// The coordinate axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func axisFromRune(r rune) (Axis, bool) {
	switch r {
	case 'x', 'X':
		return AxisX, true
	case 'y', 'Y':
		return AxisY, true
	case 'z', 'Z':
		return AxisZ, true
	default:
		return 0, false
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() r3.Vector {
	switch a {
	case AxisX:
		return r3.Vector{X: 1}
	case AxisY:
		return r3.Vector{Y: 1}
	default:
		return r3.Vector{Z: 1}
	}
}

// Rotation returns the elementary rotation of theta radians about the axis.
func (a Axis) Rotation(theta float64) Rotation {
	return NewRotationAboutAxis(a.Unit(), theta)
}

// RotationAxes is an ordered, duplicate free set of axes a rotation is allowed to use. Axes left out are
// constrained to zero rotation.
type RotationAxes []Axis

// ParseRotationAxes parses an axis list such as "z" or "xyz". Letters may be upper or lower case.
func ParseRotationAxes(spec string) (RotationAxes, error) {
	if spec == "" {
		return nil, errors.Wrap(ErrInvalidAxisSpec, "no rotation axes given")
	}
	if len(spec) > 3 {
		return nil, errors.Wrapf(ErrInvalidAxisSpec, "%q names more than 3 axes", spec)
	}
	axes := make(RotationAxes, 0, len(spec))
	for _, r := range spec {
		axis, ok := axisFromRune(r)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidAxisSpec, "%q contains unknown axis %q", spec, r)
		}
		if axes.Contains(axis) {
			return nil, errors.Wrapf(ErrInvalidAxisSpec, "%q repeats axis %q", spec, r)
		}
		axes = append(axes, axis)
	}
	return axes, nil
}

// Contains reports whether the axis is free to rotate.
func (ra RotationAxes) Contains(axis Axis) bool {
	return lo.Contains(ra, axis)
}

func (ra RotationAxes) String() string {
	var sb strings.Builder
	for _, a := range ra {
		sb.WriteString(a.String())
	}
	return sb.String()
}
