// Package spatialmath defines spatial mathematical operations: rotations, their conversions between
// parameterizations, and least-squares rigid fitting of paired point sets.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Rotation is an immutable rotation in 3D Euclidean space, stored as a unit quaternion.
// The zero value is the identity rotation.
type Rotation struct {
	q quat.Number
}

// NewZeroRotation returns a rotation which signifies no rotation.
func NewZeroRotation() Rotation {
	return Rotation{quat.Number{Real: 1}}
}

// NewRotationFromQuat creates a rotation from a gonum quaternion. The quaternion is normalized; a zero or
// non-finite quaternion is rejected.
func NewRotationFromQuat(q quat.Number) (Rotation, error) {
	norm := quat.Abs(q)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return Rotation{}, errors.Wrapf(ErrInvalidQuaternion, "cannot normalize quaternion %v", q)
	}
	return Rotation{quat.Scale(1/norm, q)}, nil
}

// NewRotationFromQuaternion creates a rotation from quaternion components given in (x, y, z, w) order.
func NewRotationFromQuaternion(x, y, z, w float64) (Rotation, error) {
	return NewRotationFromQuat(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z})
}

// NewRotationFromQuaternionArray creates a rotation from a slice holding (x, y, z, w).
func NewRotationFromQuaternionArray(q []float64) (Rotation, error) {
	if len(q) != 4 {
		return Rotation{}, fmt.Errorf("%w: %w", ErrInvalidQuaternion, NewShapeError("quaternion", 4, len(q)))
	}
	return NewRotationFromQuaternion(q[0], q[1], q[2], q[3])
}

// NewRotationAboutAxis returns the rotation of theta radians about the given axis.
func NewRotationAboutAxis(axis r3.Vector, theta float64) Rotation {
	aa := &R4AA{Theta: theta, RX: axis.X, RY: axis.Y, RZ: axis.Z}
	return Rotation{aa.ToQuat()}
}

// NewRotationFromMatrix converts a 3x3 proper rotation matrix into a Rotation.
func NewRotationFromMatrix(m mat.Matrix) (Rotation, error) {
	if rows, cols := m.Dims(); rows != 3 || cols != 3 {
		return Rotation{}, NewShapeError("rotation matrix", 9, rows*cols)
	}
	if det := mat.Det(m); math.Abs(det-1) > 1e-6 {
		return Rotation{}, errors.Errorf("matrix is not a proper rotation, determinant is %f", det)
	}
	rows := make([]mgl64.Vec3, 3)
	for i := range rows {
		rows[i] = mgl64.Vec3{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
	}
	mq := mgl64.Mat4ToQuat(mgl64.Mat3FromRows(rows[0], rows[1], rows[2]).Mat4())
	return NewRotationFromQuat(quat.Number{Real: mq.W, Imag: mq.V[0], Jmag: mq.V[1], Kmag: mq.V[2]})
}

// Quat returns the rotation as a unit gonum quaternion.
func (r Rotation) Quat() quat.Number {
	if r.q == (quat.Number{}) {
		return quat.Number{Real: 1}
	}
	return r.q
}

// Quaternion returns the rotation's quaternion components in (x, y, z, w) order.
func (r Rotation) Quaternion() [4]float64 {
	q := r.Quat()
	return [4]float64{q.Imag, q.Jmag, q.Kmag, q.Real}
}

// Apply rotates v. When inverse is set the inverse rotation is applied instead.
func (r Rotation) Apply(v r3.Vector, inverse bool) r3.Vector {
	q := r.Quat()
	if inverse {
		q = quat.Conj(q)
	}
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vector{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// Compose returns the rotation equivalent to applying other first and then r, i.e. the matrix product R_r * R_other.
func (r Rotation) Compose(other Rotation) Rotation {
	q := quat.Mul(r.Quat(), other.Quat())
	return Rotation{quat.Scale(1/quat.Abs(q), q)}
}

// Inverse returns the inverse rotation.
func (r Rotation) Inverse() Rotation {
	return Rotation{quat.Conj(r.Quat())}
}

// Matrix returns the 3x3 rotation matrix.
func (r Rotation) Matrix() *mat.Dense {
	q := r.Quat()
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

// AxisAngles returns the rotation in axis angle representation.
func (r Rotation) AxisAngles() *R4AA {
	aa := QuatToR4AA(r.Quat())
	return &aa
}

// AlmostEqual compares the quaternion components of two rotations. Note that q and -q describe the same physical
// rotation but are not considered equal here.
func (r Rotation) AlmostEqual(other Rotation, tol float64) bool {
	return QuaternionAlmostEqual(r.Quat(), other.Quat(), tol)
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return scalar.EqualWithinAbs(a.Real, b.Real, tol) &&
		scalar.EqualWithinAbs(a.Imag, b.Imag, tol) &&
		scalar.EqualWithinAbs(a.Jmag, b.Jmag, tol) &&
		scalar.EqualWithinAbs(a.Kmag, b.Kmag, tol)
}

// AngleBetween returns the angle in radians of the smallest rotation taking a to b.
func AngleBetween(a, b Rotation) float64 {
	return math.Abs(QuatToR4AA(quat.Mul(b.Quat(), quat.Conj(a.Quat()))).Theta)
}
