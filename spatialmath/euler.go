package spatialmath

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/framealign/utils"
)

// DefaultEulerSequence is the intrinsic yaw-pitch-roll sequence: rotate about z, then the new y, then the new x.
const DefaultEulerSequence = "ZYX"

// gimbalLockEpsilon is how close the middle angle may get to a singularity before the first and last angles
// are considered coupled.
const gimbalLockEpsilon = 1e-7

// EulerSequence describes the order of the three elementary rotations making up a set of euler angles.
// Upper case sequences ("ZYX") are intrinsic, rotating about the axes of the moving body; lower case
// sequences ("xyz") are extrinsic, rotating about the fixed axes.
type EulerSequence struct {
	name      string
	axes      [3]Axis
	intrinsic bool
}

// ParseEulerSequence validates a three letter euler sequence.
func ParseEulerSequence(seq string) (EulerSequence, error) {
	if len(seq) != 3 {
		return EulerSequence{}, errors.Wrapf(ErrInvalidEulerSequence, "%q must have exactly 3 axes", seq)
	}
	intrinsic := seq == strings.ToUpper(seq)
	if !intrinsic && seq != strings.ToLower(seq) {
		return EulerSequence{}, errors.Wrapf(ErrInvalidEulerSequence, "%q mixes intrinsic and extrinsic axes", seq)
	}
	es := EulerSequence{name: seq, intrinsic: intrinsic}
	for i, r := range strings.ToLower(seq) {
		axis, ok := axisFromRune(r)
		if !ok {
			return EulerSequence{}, errors.Wrapf(ErrInvalidEulerSequence, "%q contains unknown axis %q", seq, r)
		}
		if i > 0 && es.axes[i-1] == axis {
			return EulerSequence{}, errors.Wrapf(ErrInvalidEulerSequence, "%q repeats axis %q consecutively", seq, r)
		}
		es.axes[i] = axis
	}
	return es, nil
}

// Intrinsic reports whether the rotations are about the axes of the moving body.
func (es EulerSequence) Intrinsic() bool {
	return es.intrinsic
}

func (es EulerSequence) String() string {
	return es.name
}

// proper reports whether the sequence repeats its first axis last, e.g. "ZXZ".
func (es EulerSequence) proper() bool {
	return es.axes[0] == es.axes[2]
}

// NewRotationFromEuler builds a rotation from three euler angles applied in the given sequence.
func NewRotationFromEuler(seq string, angles [3]float64, degrees bool) (Rotation, error) {
	es, err := ParseEulerSequence(seq)
	if err != nil {
		return Rotation{}, err
	}
	q := quat.Number{Real: 1}
	for i, axis := range es.axes {
		angle := angles[i]
		if degrees {
			angle = utils.DegToRad(angle)
		}
		elementary := axis.Rotation(angle).Quat()
		if es.intrinsic {
			q = quat.Mul(q, elementary)
		} else {
			q = quat.Mul(elementary, q)
		}
	}
	return NewRotationFromQuat(q)
}

// Euler returns the rotation as three angles for the given sequence. Angles lie in (-pi, pi]; the middle
// angle lies in [-pi/2, pi/2] for Tait-Bryan sequences and [0, pi] for proper ones. In gimbal lock the last
// angle is reported as zero.
//
// This follows Bernardes and Viollet, "Quaternion to Euler angles conversion: A direct, general and
// computationally efficient method" (2022), which works for any sequence directly from the quaternion.
func (r Rotation) Euler(seq string, degrees bool) ([3]float64, error) {
	es, err := ParseEulerSequence(seq)
	if err != nil {
		return [3]float64{}, err
	}
	extrinsic := !es.intrinsic

	// the method is formulated for extrinsic rotations; an intrinsic sequence is the reversed extrinsic one
	i, j, k := int(es.axes[0]), int(es.axes[1]), int(es.axes[2])
	if !extrinsic {
		i, k = k, i
	}
	proper := i == k
	if proper {
		k = 3 - i - j
	}
	sign := float64((i - j) * (j - k) * (k - i) / 2)

	q := r.Quat()
	v := [3]float64{q.Imag, q.Jmag, q.Kmag}
	var a, b, c, d float64
	if proper {
		a, b, c, d = q.Real, v[i], v[j], v[k]*sign
	} else {
		a = q.Real - v[j]
		b = v[i] + v[k]*sign
		c = v[j] + q.Real
		d = v[k]*sign - v[i]
	}

	var angles [3]float64
	angles[1] = 2 * math.Atan2(math.Hypot(c, d), math.Hypot(a, b))
	halfSum := math.Atan2(b, a)
	halfDiff := math.Atan2(d, c)

	lockedLow := math.Abs(angles[1]) <= gimbalLockEpsilon
	lockedHigh := math.Abs(angles[1]-math.Pi) <= gimbalLockEpsilon
	switch {
	case !lockedLow && !lockedHigh:
		angles[0] = halfSum - halfDiff
		angles[2] = halfSum + halfDiff
	case extrinsic:
		// the last angle reported to the caller is angles[2]
		angles[2] = 0
		if lockedLow {
			angles[0] = 2 * halfSum
		} else {
			angles[0] = -2 * halfDiff
		}
	default:
		// angles[0] becomes the last angle once the intrinsic order is restored
		angles[0] = 0
		if lockedLow {
			angles[2] = 2 * halfSum
		} else {
			angles[2] = 2 * halfDiff
		}
	}

	if !proper {
		angles[2] *= sign
		angles[1] -= math.Pi / 2
	}
	if !extrinsic {
		angles[0], angles[2] = angles[2], angles[0]
	}

	for idx, angle := range angles {
		angle = wrapToPi(angle)
		if degrees {
			angle = utils.RadToDeg(angle)
		}
		angles[idx] = angle
	}
	return angles, nil
}

// wrapToPi maps an angle already within (-3pi, 3pi) into (-pi, pi].
func wrapToPi(angle float64) float64 {
	if angle <= -math.Pi {
		return angle + 2*math.Pi
	}
	if angle > math.Pi {
		return angle - 2*math.Pi
	}
	return angle
}
