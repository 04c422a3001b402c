package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	spatial "go.viam.com/framealign/spatialmath"
	"go.viam.com/framealign/utils"
)

// defaultAlmostEqualTolerance is the absolute tolerance used when comparing coordinates and quaternion components.
const defaultAlmostEqualTolerance = 1e-10

// Position is a point observed in a frame.
type Position struct {
	point r3.Vector
	frame Frame
}

// NewPosition returns the point (x, y, z) in the given frame.
func NewPosition(x, y, z float64, frame Frame) *Position {
	return NewPositionFromVector(r3.Vector{X: x, Y: y, Z: z}, frame)
}

// NewPositionFromVector returns the point v in the given frame.
func NewPositionFromVector(v r3.Vector, frame Frame) *Position {
	return &Position{point: v, frame: frame}
}

// NewPositionFromArray returns the point held in a slice of (x, y, z).
func NewPositionFromArray(arr []float64, frame Frame) (*Position, error) {
	v, err := spatial.VectorFromArray("position", arr)
	if err != nil {
		return nil, err
	}
	return NewPositionFromVector(v, frame), nil
}

// Frame returns the frame the position is expressed in.
func (p *Position) Frame() Frame {
	return p.frame
}

// X returns the x coordinate.
func (p *Position) X() float64 {
	return p.point.X
}

// Y returns the y coordinate.
func (p *Position) Y() float64 {
	return p.point.Y
}

// Z returns the z coordinate.
func (p *Position) Z() float64 {
	return p.point.Z
}

// Vector returns the coordinates of the position.
func (p *Position) Vector() r3.Vector {
	return p.point
}

// ToArray returns the coordinates as (x, y, z).
func (p *Position) ToArray() []float64 {
	return spatial.VectorToArray(p.point)
}

// AlmostEqual reports whether other is a Position in the same frame whose coordinates are all within 1e-10.
func (p *Position) AlmostEqual(other Transformable) bool {
	p2, ok := other.(*Position)
	if !ok {
		return false
	}
	return p.frame == p2.frame && vectorsAlmostEqual(p.Vector(), p2.Vector())
}

func vectorsAlmostEqual(a, b r3.Vector) bool {
	return utils.Float64AlmostEqual(a.X, b.X, defaultAlmostEqualTolerance) &&
		utils.Float64AlmostEqual(a.Y, b.Y, defaultAlmostEqualTolerance) &&
		utils.Float64AlmostEqual(a.Z, b.Z, defaultAlmostEqualTolerance)
}

// Positions is an ordered collection of points observed in one frame. The order pairs points across frames when
// aligning, so it is always preserved.
type Positions struct {
	points []r3.Vector
	frame  Frame
}

// NewPositions returns the given points in the given frame. At least one point is required.
func NewPositions(points []r3.Vector, frame Frame) (*Positions, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(ErrShape, "positions must hold at least one point")
	}
	return &Positions{points: append([]r3.Vector(nil), points...), frame: frame}, nil
}

// NewPositionsFromArray returns the points held in an N x 3 array.
func NewPositionsFromArray(arr [][]float64, frame Frame) (*Positions, error) {
	points := make([]r3.Vector, 0, len(arr))
	for i, row := range arr {
		v, err := spatial.VectorFromArray("position", row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		points = append(points, v)
	}
	return NewPositions(points, frame)
}

// NewPositionsFromPositions collects single positions, all of which must be in the given frame.
func NewPositionsFromPositions(positions []*Position, frame Frame) (*Positions, error) {
	for _, p := range positions {
		if p.Frame() != frame {
			return nil, NewFrameMismatchError("position", frame, p.Frame())
		}
	}
	return NewPositions(lo.Map(positions, func(p *Position, _ int) r3.Vector { return p.Vector() }), frame)
}

// Frame returns the frame the positions are expressed in.
func (ps *Positions) Frame() Frame {
	return ps.frame
}

// Len returns the number of points.
func (ps *Positions) Len() int {
	return len(ps.points)
}

// At returns the i-th point as a Position.
func (ps *Positions) At(i int) *Position {
	return NewPositionFromVector(ps.points[i], ps.frame)
}

// Positions returns every point as a Position, in order.
func (ps *Positions) Positions() []*Position {
	return lo.Map(ps.points, func(v r3.Vector, _ int) *Position { return NewPositionFromVector(v, ps.frame) })
}

// Vectors returns a copy of the points.
func (ps *Positions) Vectors() []r3.Vector {
	return append([]r3.Vector(nil), ps.points...)
}

// ToArray returns the points as an N x 3 array.
func (ps *Positions) ToArray() [][]float64 {
	return lo.Map(ps.points, func(v r3.Vector, _ int) []float64 { return spatial.VectorToArray(v) })
}

// AlmostEqual reports whether other holds the same number of points, in the same frame, each within 1e-10.
func (ps *Positions) AlmostEqual(other Transformable) bool {
	ps2, ok := other.(*Positions)
	if !ok {
		return false
	}
	if ps.frame != ps2.frame || len(ps.points) != len(ps2.points) {
		return false
	}
	for i := range ps.points {
		if !vectorsAlmostEqual(ps.points[i], ps2.points[i]) {
			return false
		}
	}
	return true
}

// Translation is the offset of a transform, expressed in the frame the transform maps into.
type Translation struct {
	offset   r3.Vector
	from, to Frame
}

// NewTranslation returns the offset (x, y, z) of a transform from one frame to another.
func NewTranslation(x, y, z float64, from, to Frame) Translation {
	return NewTranslationFromVector(r3.Vector{X: x, Y: y, Z: z}, from, to)
}

// NewTranslationFromVector returns the offset v of a transform from one frame to another.
func NewTranslationFromVector(v r3.Vector, from, to Frame) Translation {
	return Translation{offset: v, from: from, to: to}
}

// NewTranslationFromArray returns the offset held in a slice of (x, y, z).
func NewTranslationFromArray(arr []float64, from, to Frame) (Translation, error) {
	v, err := spatial.VectorFromArray("translation", arr)
	if err != nil {
		return Translation{}, err
	}
	return NewTranslationFromVector(v, from, to), nil
}

// From returns the frame the translation maps from.
func (t Translation) From() Frame {
	return t.from
}

// To returns the frame the translation maps to and is expressed in.
func (t Translation) To() Frame {
	return t.to
}

// Vector returns the offset.
func (t Translation) Vector() r3.Vector {
	return t.offset
}

// ToArray returns the offset as (x, y, z).
func (t Translation) ToArray() []float64 {
	return spatial.VectorToArray(t.offset)
}
