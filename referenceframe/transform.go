package referenceframe

import (
	"github.com/golang/geo/r3"

	spatial "go.viam.com/framealign/spatialmath"
)

// Direction says how a transform relates a requested pair of frames.
type Direction int

const (
	// Unrelated means the transform maps between neither ordering of the frames.
	Unrelated Direction = iota
	// Forward means the frames are the transform's own (from, to).
	Forward
	// Inverse means the frames are the transform's (to, from).
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unrelated"
	}
}

// Transform is the rigid motion taking coordinates in one frame to another: p_to = R * p_from + t, where the
// translation t is expressed in the to frame. A Transform is immutable.
type Transform struct {
	rotation    spatial.Rotation
	translation Translation
	from, to    Frame
}

// NewTransform pairs a rotation with a translation. The translation must map between the same frames as the
// transform.
func NewTransform(translation Translation, rotation spatial.Rotation, from, to Frame) (*Transform, error) {
	if translation.From() != from {
		return nil, NewFrameMismatchError("translation source", from, translation.From())
	}
	if translation.To() != to {
		return nil, NewFrameMismatchError("translation destination", to, translation.To())
	}
	return &Transform{rotation: rotation, translation: translation, from: from, to: to}, nil
}

// NewTransformFromEuler builds the rotation from euler angles applied in seq. An empty seq means intrinsic ZYX,
// i.e. yaw psi, then pitch theta, then roll phi.
func NewTransformFromEuler(translation Translation, euler *Euler, seq string, from, to Frame) (*Transform, error) {
	rot, err := euler.Rotation(seq)
	if err != nil {
		return nil, err
	}
	return NewTransform(translation, rot, from, to)
}

// NewTransformFromQuaternion builds the rotation from a quaternion.
func NewTransformFromQuaternion(translation Translation, quaternion *Quaternion, from, to Frame) (*Transform, error) {
	rot, err := quaternion.Rotation()
	if err != nil {
		return nil, err
	}
	return NewTransform(translation, rot, from, to)
}

// NewTransformFromQuaternionArray builds the rotation from a slice of (x, y, z, w). Any other length fails with
// ErrInvalidQuaternion.
func NewTransformFromQuaternionArray(translation Translation, quaternion []float64, from, to Frame) (*Transform, error) {
	rot, err := spatial.NewRotationFromQuaternionArray(quaternion)
	if err != nil {
		return nil, err
	}
	return NewTransform(translation, rot, from, to)
}

// NewTransformFromPointCorrespondence estimates the transform taking from onto to. See EstimateAlignment.
func NewTransformFromPointCorrespondence(from, to *Positions, rotationAxes string, opts ...AlignOption) (*Transform, error) {
	return AlignPositions(from, to, rotationAxes, opts...)
}

// Rotation returns the rotation of the transform.
func (tf *Transform) Rotation() spatial.Rotation {
	return tf.rotation
}

// Translation returns the translation of the transform.
func (tf *Transform) Translation() Translation {
	return tf.translation
}

// From returns the frame the transform maps from.
func (tf *Transform) From() Frame {
	return tf.from
}

// To returns the frame the transform maps to.
func (tf *Transform) To() Frame {
	return tf.to
}

// Direction reports whether moving data from one frame to the other uses the transform as is, its inverse, or
// is not possible with this transform. The inverse is checked first.
func (tf *Transform) Direction(from, to Frame) Direction {
	switch {
	case from == tf.to && to == tf.from:
		return Inverse
	case from == tf.from && to == tf.to:
		return Forward
	default:
		return Unrelated
	}
}

// Inverse returns the transform mapping back from tf's to frame into its from frame.
func (tf *Transform) Inverse() *Transform {
	inv := tf.rotation.Inverse()
	t := inv.Apply(tf.translation.Vector(), false).Mul(-1)
	return &Transform{
		rotation:    inv,
		translation: NewTranslationFromVector(t, tf.to, tf.from),
		from:        tf.to,
		to:          tf.from,
	}
}

// Compose returns the transform applying tf and then next. next must map from tf's to frame.
func (tf *Transform) Compose(next *Transform) (*Transform, error) {
	if next.from != tf.to {
		return nil, NewFrameMismatchError("composed transform source", tf.to, next.from)
	}
	t := next.rotation.Apply(tf.translation.Vector(), false).Add(next.translation.Vector())
	return &Transform{
		rotation:    next.rotation.Compose(tf.rotation),
		translation: NewTranslationFromVector(t, tf.from, next.to),
		from:        tf.from,
		to:          next.to,
	}, nil
}

// apply moves a point along the transform in the given direction.
func (tf *Transform) apply(p r3.Vector, direction Direction) r3.Vector {
	if direction == Inverse {
		return tf.rotation.Apply(p.Sub(tf.translation.Vector()), true)
	}
	return tf.rotation.Apply(p, false).Add(tf.translation.Vector())
}

// rotate composes an input rotation with the transform's rotation in the given direction.
func (tf *Transform) rotate(rot spatial.Rotation, direction Direction) spatial.Rotation {
	if direction == Inverse {
		return rot.Compose(tf.rotation.Inverse())
	}
	return rot.Compose(tf.rotation)
}

// AlmostEqual reports whether two transforms map between the same frames with almost equal rotation and
// translation.
func (tf *Transform) AlmostEqual(other *Transform) bool {
	return tf.from == other.from && tf.to == other.to &&
		tf.rotation.AlmostEqual(other.rotation, defaultAlmostEqualTolerance) &&
		vectorsAlmostEqual(tf.translation.Vector(), other.translation.Vector())
}
