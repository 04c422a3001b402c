package referenceframe

import (
	spatial "go.viam.com/framealign/spatialmath"
	"go.viam.com/framealign/utils"
)

// Euler holds rotations of psi, theta and phi radians about the z, y and x axes respectively. Arrays of euler
// angles are always ordered [psi, theta, phi].
type Euler struct {
	psi, theta, phi float64
	frame           Frame
}

// NewEuler returns the euler angles in the given frame.
func NewEuler(psi, theta, phi float64, frame Frame) *Euler {
	return &Euler{psi: psi, theta: theta, phi: phi, frame: frame}
}

// NewEulerFromArray returns the angles held in a slice of [psi, theta, phi].
func NewEulerFromArray(arr []float64, frame Frame) (*Euler, error) {
	v, err := spatial.VectorFromArray("euler angles", arr)
	if err != nil {
		return nil, err
	}
	return NewEuler(v.X, v.Y, v.Z, frame), nil
}

// Frame returns the frame the angles are expressed in.
func (e *Euler) Frame() Frame {
	return e.frame
}

// Psi returns the rotation about z.
func (e *Euler) Psi() float64 {
	return e.psi
}

// Theta returns the rotation about y.
func (e *Euler) Theta() float64 {
	return e.theta
}

// Phi returns the rotation about x.
func (e *Euler) Phi() float64 {
	return e.phi
}

// ToArray returns [psi, theta, phi].
func (e *Euler) ToArray() []float64 {
	return []float64{e.psi, e.theta, e.phi}
}

func (e *Euler) angles() [3]float64 {
	return [3]float64{e.psi, e.theta, e.phi}
}

// Rotation returns the rotation described by applying the angles in the given sequence.
func (e *Euler) Rotation(seq string) (spatial.Rotation, error) {
	return spatial.NewRotationFromEuler(eulerSequence(seq), e.angles(), false)
}

// AlmostEqual reports whether other holds the same angles, within 1e-10, in the same frame.
func (e *Euler) AlmostEqual(other Transformable) bool {
	e2, ok := other.(*Euler)
	if !ok {
		return false
	}
	return e.frame == e2.frame &&
		utils.Float64AlmostEqual(e.psi, e2.psi, defaultAlmostEqualTolerance) &&
		utils.Float64AlmostEqual(e.theta, e2.theta, defaultAlmostEqualTolerance) &&
		utils.Float64AlmostEqual(e.phi, e2.phi, defaultAlmostEqualTolerance)
}

func eulerSequence(seq string) string {
	if seq == "" {
		return spatial.DefaultEulerSequence
	}
	return seq
}

// Quaternion is a rotation quaternion in a frame. Arrays of quaternion components are ordered (x, y, z, w).
type Quaternion struct {
	x, y, z, w float64
	frame      Frame
}

// NewQuaternion returns the quaternion in the given frame.
func NewQuaternion(x, y, z, w float64, frame Frame) *Quaternion {
	return &Quaternion{x: x, y: y, z: z, w: w, frame: frame}
}

// NewQuaternionFromArray returns the quaternion held in a slice of (x, y, z, w).
func NewQuaternionFromArray(arr []float64, frame Frame) (*Quaternion, error) {
	if len(arr) != 4 {
		return nil, spatial.NewShapeError("quaternion", 4, len(arr))
	}
	return NewQuaternion(arr[0], arr[1], arr[2], arr[3], frame), nil
}

// Frame returns the frame the quaternion is expressed in.
func (q *Quaternion) Frame() Frame {
	return q.frame
}

// X returns the first imaginary component.
func (q *Quaternion) X() float64 {
	return q.x
}

// Y returns the second imaginary component.
func (q *Quaternion) Y() float64 {
	return q.y
}

// Z returns the third imaginary component.
func (q *Quaternion) Z() float64 {
	return q.z
}

// W returns the real component.
func (q *Quaternion) W() float64 {
	return q.w
}

// ToArray returns (x, y, z, w).
func (q *Quaternion) ToArray() []float64 {
	return []float64{q.x, q.y, q.z, q.w}
}

// Rotation returns the rotation the quaternion describes.
func (q *Quaternion) Rotation() (spatial.Rotation, error) {
	return spatial.NewRotationFromQuaternion(q.x, q.y, q.z, q.w)
}

// AlmostEqual reports whether other holds the same components, within 1e-10, in the same frame.
func (q *Quaternion) AlmostEqual(other Transformable) bool {
	q2, ok := other.(*Quaternion)
	if !ok {
		return false
	}
	return q.frame == q2.frame &&
		utils.Float64AlmostEqual(q.x, q2.x, defaultAlmostEqualTolerance) &&
		utils.Float64AlmostEqual(q.y, q2.y, defaultAlmostEqualTolerance) &&
		utils.Float64AlmostEqual(q.z, q2.z, defaultAlmostEqualTolerance) &&
		utils.Float64AlmostEqual(q.w, q2.w, defaultAlmostEqualTolerance)
}

// Orientation is a rotation in a frame.
type Orientation struct {
	rotation spatial.Rotation
	frame    Frame
}

// NewOrientation returns the rotation in the given frame.
func NewOrientation(rotation spatial.Rotation, frame Frame) *Orientation {
	return &Orientation{rotation: rotation, frame: frame}
}

// NewOrientationFromQuaternionArray returns the orientation described by a slice of (x, y, z, w).
func NewOrientationFromQuaternionArray(arr []float64, frame Frame) (*Orientation, error) {
	rot, err := spatial.NewRotationFromQuaternionArray(arr)
	if err != nil {
		return nil, err
	}
	return NewOrientation(rot, frame), nil
}

// NewOrientationFromEulerArray returns the orientation described by three angles applied in the given sequence.
// An empty sequence means intrinsic ZYX, i.e. [yaw, pitch, roll].
func NewOrientationFromEulerArray(arr []float64, frame Frame, degrees bool, seq string) (*Orientation, error) {
	v, err := spatial.VectorFromArray("euler angles", arr)
	if err != nil {
		return nil, err
	}
	rot, err := spatial.NewRotationFromEuler(eulerSequence(seq), [3]float64{v.X, v.Y, v.Z}, degrees)
	if err != nil {
		return nil, err
	}
	return NewOrientation(rot, frame), nil
}

// Frame returns the frame the orientation is expressed in.
func (o *Orientation) Frame() Frame {
	return o.frame
}

// Rotation returns the underlying rotation.
func (o *Orientation) Rotation() spatial.Rotation {
	return o.rotation
}

// ToQuaternionArray returns the orientation as (x, y, z, w).
func (o *Orientation) ToQuaternionArray() []float64 {
	q := o.rotation.Quaternion()
	return q[:]
}

// ToEulerArray returns the orientation as euler angles in the given sequence, [yaw, pitch, roll] for the default
// intrinsic ZYX. Angles lie in (-pi, pi]; when wrap is set they are mapped to [0, 2pi), or [0, 360) in degrees.
func (o *Orientation) ToEulerArray(degrees, wrap bool, seq string) ([]float64, error) {
	angles, err := o.rotation.Euler(eulerSequence(seq), degrees)
	if err != nil {
		return nil, err
	}
	if wrap {
		for i, angle := range angles {
			if degrees {
				angles[i] = utils.ModAngDeg(angle)
			} else {
				angles[i] = utils.ModAngRad(angle)
			}
		}
	}
	return angles[:], nil
}

// AlmostEqual reports whether other is an Orientation in the same frame whose quaternion components are within
// 1e-10. The quaternions q and -q describe the same physical rotation but do not compare equal here.
func (o *Orientation) AlmostEqual(other Transformable) bool {
	o2, ok := other.(*Orientation)
	if !ok {
		return false
	}
	return o.frame == o2.frame && o.rotation.AlmostEqual(o2.rotation, defaultAlmostEqualTolerance)
}
