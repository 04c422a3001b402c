package referenceframe

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Bounds is an axis aligned box given by two opposite corners in the same frame. The corners need not be ordered.
type Bounds struct {
	min, max r3.Vector
	frame    Frame
}

// NewBounds returns the box spanned by two corners.
func NewBounds(corner1, corner2 *Position) (*Bounds, error) {
	if corner1.Frame() != corner2.Frame() {
		return nil, NewFrameMismatchError("bounds corner", corner1.Frame(), corner2.Frame())
	}
	a, b := corner1.Vector(), corner2.Vector()
	return &Bounds{
		min:   r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		max:   r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
		frame: corner1.Frame(),
	}, nil
}

// Frame returns the frame the box is expressed in.
func (b *Bounds) Frame() Frame {
	return b.frame
}

// Min returns the corner with the smallest coordinates.
func (b *Bounds) Min() *Position {
	return NewPositionFromVector(b.min, b.frame)
}

// Max returns the corner with the largest coordinates.
func (b *Bounds) Max() *Position {
	return NewPositionFromVector(b.max, b.frame)
}

// Contains reports whether p lies inside the box, boundary included. p must be in the box's frame.
func (b *Bounds) Contains(p *Position) (bool, error) {
	if p.Frame() != b.frame {
		return false, NewFrameMismatchError("position", b.frame, p.Frame())
	}
	v := p.Vector()
	return v.X >= b.min.X && v.X <= b.max.X &&
		v.Y >= b.min.Y && v.Y <= b.max.Y &&
		v.Z >= b.min.Z && v.Z <= b.max.Z, nil
}

// Map is a named set of reference positions in one frame, optionally limited to bounds. Reference positions of
// two maps of the same site are paired by index to align the maps' frames.
type Map struct {
	name               string
	referencePositions *Positions
	frame              Frame
	bounds             *Bounds
}

// NewMap returns a map. The reference positions and the bounds, which may be nil, must be in the map's frame.
func NewMap(name string, referencePositions *Positions, frame Frame, bounds *Bounds) (*Map, error) {
	if referencePositions == nil {
		return nil, errors.Errorf("map %q has no reference positions", name)
	}
	if referencePositions.Frame() != frame {
		return nil, NewFrameMismatchError("reference positions", frame, referencePositions.Frame())
	}
	if bounds != nil && bounds.Frame() != frame {
		return nil, NewFrameMismatchError("bounds", frame, bounds.Frame())
	}
	return &Map{name: name, referencePositions: referencePositions, frame: frame, bounds: bounds}, nil
}

// Name returns the name of the map.
func (m *Map) Name() string {
	return m.name
}

// ReferencePositions returns the map's reference positions.
func (m *Map) ReferencePositions() *Positions {
	return m.referencePositions
}

// Frame returns the frame of the map.
func (m *Map) Frame() Frame {
	return m.frame
}

// Bounds returns the bounds of the map, or nil when it has none.
func (m *Map) Bounds() *Bounds {
	return m.bounds
}
