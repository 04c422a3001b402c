package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/framealign/utils"
)

// direction validates that data tagged with frame can be moved from one frame to the other with tf. It returns
// Unrelated with a nil error when from and to are the same frame, in which case nothing needs to move.
func direction(tf *Transform, frame, from, to Frame, what string) (Direction, error) {
	if frame != from {
		return Unrelated, NewFrameMismatchError(what, from, frame)
	}
	if from == to {
		return Unrelated, nil
	}
	d := tf.Direction(from, to)
	if d == Unrelated {
		return Unrelated, NewUnspecifiedTransformError(tf, from, to)
	}
	return d, nil
}

// TransformPosition moves a position from one frame to the other. The position must be in from. When from and to
// are the same frame the position is returned unchanged.
func TransformPosition(tf *Transform, p *Position, from, to Frame) (*Position, error) {
	d, err := direction(tf, p.Frame(), from, to, "position")
	if err != nil {
		return nil, err
	}
	if from == to {
		return p, nil
	}
	return NewPositionFromVector(tf.apply(p.Vector(), d), to), nil
}

// TransformPositions moves every point of a collection from one frame to the other, preserving their order.
func TransformPositions(tf *Transform, ps *Positions, from, to Frame) (*Positions, error) {
	d, err := direction(tf, ps.Frame(), from, to, "positions")
	if err != nil {
		return nil, err
	}
	if from == to {
		return ps, nil
	}
	moved := lo.Map(ps.points, func(v r3.Vector, _ int) r3.Vector { return tf.apply(v, d) })
	return &Positions{points: moved, frame: to}, nil
}

// TransformOrientation re-expresses an orientation in the other frame. Translation plays no part.
func TransformOrientation(tf *Transform, o *Orientation, from, to Frame) (*Orientation, error) {
	d, err := direction(tf, o.Frame(), from, to, "orientation")
	if err != nil {
		return nil, err
	}
	if from == to {
		return o, nil
	}
	return NewOrientation(tf.rotate(o.Rotation(), d), to), nil
}

// TransformQuaternion re-expresses a quaternion in the other frame.
func TransformQuaternion(tf *Transform, q *Quaternion, from, to Frame) (*Quaternion, error) {
	d, err := direction(tf, q.Frame(), from, to, "quaternion")
	if err != nil {
		return nil, err
	}
	if from == to {
		return q, nil
	}
	rot, err := q.Rotation()
	if err != nil {
		return nil, err
	}
	moved := tf.rotate(rot, d).Quaternion()
	return NewQuaternion(moved[0], moved[1], moved[2], moved[3], to), nil
}

// TransformEuler re-expresses euler angles in the other frame. The angles are read and written in seq; an empty
// seq means intrinsic ZYX.
func TransformEuler(tf *Transform, e *Euler, from, to Frame, seq string) (*Euler, error) {
	d, err := direction(tf, e.Frame(), from, to, "euler angles")
	if err != nil {
		return nil, err
	}
	if from == to {
		return e, nil
	}
	rot, err := e.Rotation(seq)
	if err != nil {
		return nil, err
	}
	angles, err := tf.rotate(rot, d).Euler(eulerSequence(seq), false)
	if err != nil {
		return nil, err
	}
	return NewEuler(angles[0], angles[1], angles[2], to), nil
}

// TransformPose moves the position and re-expresses the orientation of a pose in the other frame.
func TransformPose(tf *Transform, p *Pose, from, to Frame) (*Pose, error) {
	if _, err := direction(tf, p.Frame(), from, to, "pose"); err != nil {
		return nil, err
	}
	if from == to {
		return p, nil
	}
	moved, err := p.Position().Transform(tf, from, to)
	if err != nil {
		return nil, err
	}
	position, err := singlePosition(moved)
	if err != nil {
		return nil, err
	}
	orientation, err := TransformOrientation(tf, p.Orientation(), from, to)
	if err != nil {
		return nil, err
	}
	return NewPose(position, orientation, to)
}

func singlePosition(t Transformable) (*Position, error) {
	p, ok := t.(*Position)
	if !ok {
		return nil, errors.Wrap(ErrMixedPositionCollection, utils.NewUnexpectedTypeError(p, t).Error())
	}
	return p, nil
}
