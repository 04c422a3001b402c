package referenceframe

import (
	spatial "go.viam.com/framealign/spatialmath"
)

// QuaternionToEuler converts a quaternion into euler angles for the given sequence, in degrees if requested.
// The result stays in the quaternion's frame.
func QuaternionToEuler(q *Quaternion, seq string, degrees bool) (*Euler, error) {
	rot, err := q.Rotation()
	if err != nil {
		return nil, err
	}
	angles, err := rot.Euler(eulerSequence(seq), degrees)
	if err != nil {
		return nil, err
	}
	return NewEuler(angles[0], angles[1], angles[2], q.Frame()), nil
}

// EulerToQuaternion converts euler angles, given in degrees if requested, into a quaternion.
func EulerToQuaternion(e *Euler, seq string, degrees bool) (*Quaternion, error) {
	rot, err := spatial.NewRotationFromEuler(eulerSequence(seq), e.angles(), degrees)
	if err != nil {
		return nil, err
	}
	q := rot.Quaternion()
	return NewQuaternion(q[0], q[1], q[2], q[3], e.Frame()), nil
}
