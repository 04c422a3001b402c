package referenceframe

// Pose is a position and an orientation observed in the same frame.
type Pose struct {
	position    *Position
	orientation *Orientation
	frame       Frame
}

// NewPose returns the pose in the given frame. The position and orientation must both be in that frame.
func NewPose(position *Position, orientation *Orientation, frame Frame) (*Pose, error) {
	if position.Frame() != frame {
		return nil, NewFrameMismatchError("pose position", frame, position.Frame())
	}
	if orientation.Frame() != frame {
		return nil, NewFrameMismatchError("pose orientation", frame, orientation.Frame())
	}
	return &Pose{position: position, orientation: orientation, frame: frame}, nil
}

// Frame returns the frame the pose is expressed in.
func (p *Pose) Frame() Frame {
	return p.frame
}

// Position returns the position of the pose.
func (p *Pose) Position() *Position {
	return p.position
}

// Orientation returns the orientation of the pose.
func (p *Pose) Orientation() *Orientation {
	return p.orientation
}

// AlmostEqual reports whether other is a Pose in the same frame with almost equal position and orientation.
func (p *Pose) AlmostEqual(other Transformable) bool {
	p2, ok := other.(*Pose)
	if !ok {
		return false
	}
	return p.frame == p2.frame && p.position.AlmostEqual(p2.position) && p.orientation.AlmostEqual(p2.orientation)
}
