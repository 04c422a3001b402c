package referenceframe

// Transformable is implemented by every frame-tagged type that a Transform can move between frames.
type Transformable interface {
	Frame() Frame
	Transform(tf *Transform, from, to Frame) (Transformable, error)
	AlmostEqual(Transformable) bool
}

// TransformTo moves t from the frame it is tagged with into the frame to.
func TransformTo(tf *Transform, t Transformable, to Frame) (Transformable, error) {
	return t.Transform(tf, t.Frame(), to)
}

// Transform moves the position between frames. See TransformPosition.
func (p *Position) Transform(tf *Transform, from, to Frame) (Transformable, error) {
	moved, err := TransformPosition(tf, p, from, to)
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// Transform moves the positions between frames. See TransformPositions.
func (ps *Positions) Transform(tf *Transform, from, to Frame) (Transformable, error) {
	moved, err := TransformPositions(tf, ps, from, to)
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// Transform re-expresses the orientation in another frame. See TransformOrientation.
func (o *Orientation) Transform(tf *Transform, from, to Frame) (Transformable, error) {
	moved, err := TransformOrientation(tf, o, from, to)
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// Transform re-expresses the quaternion in another frame. See TransformQuaternion.
func (q *Quaternion) Transform(tf *Transform, from, to Frame) (Transformable, error) {
	moved, err := TransformQuaternion(tf, q, from, to)
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// Transform re-expresses intrinsic ZYX euler angles in another frame. See TransformEuler.
func (e *Euler) Transform(tf *Transform, from, to Frame) (Transformable, error) {
	moved, err := TransformEuler(tf, e, from, to, "")
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// Transform moves the pose between frames. See TransformPose.
func (p *Pose) Transform(tf *Transform, from, to Frame) (Transformable, error) {
	moved, err := TransformPose(tf, p, from, to)
	if err != nil {
		return nil, err
	}
	return moved, nil
}
