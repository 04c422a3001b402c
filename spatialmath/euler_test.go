package spatialmath

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestParseEulerSequence(t *testing.T) {
	es, err := ParseEulerSequence("ZYX")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, es.Intrinsic(), test.ShouldBeTrue)
	test.That(t, es.String(), test.ShouldEqual, "ZYX")

	es, err = ParseEulerSequence("zxz")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, es.Intrinsic(), test.ShouldBeFalse)
	test.That(t, es.proper(), test.ShouldBeTrue)

	for _, bad := range []string{"", "ZY", "XYZW", "ZyX", "ZZX", "abc", "xwz"} {
		_, err := ParseEulerSequence(bad)
		test.That(t, errors.Is(err, ErrInvalidEulerSequence), test.ShouldBeTrue)
	}
}

func TestEulerToQuaternion(t *testing.T) {
	rot, err := NewRotationFromEuler("ZYX", [3]float64{1, 1, 1}, false)
	test.That(t, err, test.ShouldBeNil)
	q := rot.Quat()
	test.That(t, q.Real, test.ShouldAlmostEqual, 0.7860666291368439)
	test.That(t, q.Imag, test.ShouldAlmostEqual, 0.16751879124639693)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, 0.5709414713577319)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, 0.16751879124639693)

	deg, err := NewRotationFromEuler("ZYX", [3]float64{90, 0, 0}, true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, deg.AlmostEqual(AxisZ.Rotation(math.Pi/2), 1e-12), test.ShouldBeTrue)

	_, err = NewRotationFromEuler("ZYZY", [3]float64{}, false)
	test.That(t, errors.Is(err, ErrInvalidEulerSequence), test.ShouldBeTrue)
}

func TestExtrinsicMirrorsIntrinsic(t *testing.T) {
	angles := [3]float64{0.4, -0.2, 1.1}
	extrinsic, err := NewRotationFromEuler("xyz", angles, false)
	test.That(t, err, test.ShouldBeNil)
	intrinsic, err := NewRotationFromEuler("ZYX", [3]float64{angles[2], angles[1], angles[0]}, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, extrinsic.AlmostEqual(intrinsic, 1e-12), test.ShouldBeTrue)
}

func TestEulerRoundTrip(t *testing.T) {
	//nolint:gosec
	rng := rand.New(rand.NewSource(1))
	sequences := []string{
		"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX",
		"XYX", "XZX", "YXY", "YZY", "ZXZ", "ZYZ",
		"xyz", "xzy", "yxz", "yzx", "zxy", "zyx",
		"xyx", "xzx", "yxy", "yzy", "zxz", "zyz",
	}
	for _, seq := range sequences {
		t.Run(seq, func(t *testing.T) {
			es, err := ParseEulerSequence(seq)
			test.That(t, err, test.ShouldBeNil)
			for i := 0; i < 50; i++ {
				angles := [3]float64{
					(rng.Float64()*2 - 1) * 3,
					(rng.Float64()*2 - 1) * 1.4,
					(rng.Float64()*2 - 1) * 3,
				}
				if es.proper() {
					angles[1] = 0.1 + rng.Float64()*2.9
				}
				rot, err := NewRotationFromEuler(seq, angles, false)
				test.That(t, err, test.ShouldBeNil)
				back, err := rot.Euler(seq, false)
				test.That(t, err, test.ShouldBeNil)
				for j := range angles {
					test.That(t, back[j], test.ShouldAlmostEqual, angles[j], 1e-9)
				}
			}
		})
	}
}

func TestEulerDegrees(t *testing.T) {
	rot := AxisZ.Rotation(math.Pi / 2)
	angles, err := rot.Euler("ZYX", true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, angles[0], test.ShouldAlmostEqual, 90)
	test.That(t, angles[1], test.ShouldAlmostEqual, 0)
	test.That(t, angles[2], test.ShouldAlmostEqual, 0)
}

func TestEulerGimbalLock(t *testing.T) {
	for _, tc := range []struct {
		seq    string
		angles [3]float64
		want   [3]float64
	}{
		{"ZYX", [3]float64{0.3, math.Pi / 2, 0.2}, [3]float64{0.1, math.Pi / 2, 0}},
		{"xyz", [3]float64{0.3, math.Pi / 2, 0.2}, [3]float64{0.1, math.Pi / 2, 0}},
		{"ZXZ", [3]float64{0.3, 0, 0.2}, [3]float64{0.5, 0, 0}},
	} {
		t.Run(tc.seq, func(t *testing.T) {
			rot, err := NewRotationFromEuler(tc.seq, tc.angles, false)
			test.That(t, err, test.ShouldBeNil)
			got, err := rot.Euler(tc.seq, false)
			test.That(t, err, test.ShouldBeNil)
			for i := range got {
				test.That(t, got[i], test.ShouldAlmostEqual, tc.want[i], 1e-6)
			}

			// the reported angles still describe the same rotation
			back, err := NewRotationFromEuler(tc.seq, got, false)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, AngleBetween(rot, back), test.ShouldBeLessThan, 1e-6)
			v := r3.Vector{X: 1, Y: 2, Z: 3}
			test.That(t, R3VectorAlmostEqual(rot.Apply(v, false), back.Apply(v, false), 1e-6), test.ShouldBeTrue)
		})
	}
}

func TestWrapToPi(t *testing.T) {
	test.That(t, wrapToPi(math.Pi), test.ShouldEqual, math.Pi)
	test.That(t, wrapToPi(-math.Pi), test.ShouldEqual, math.Pi)
	test.That(t, wrapToPi(1.5*math.Pi), test.ShouldAlmostEqual, -0.5*math.Pi)
	test.That(t, wrapToPi(-1.5*math.Pi), test.ShouldAlmostEqual, 0.5*math.Pi)
	test.That(t, wrapToPi(0.25), test.ShouldEqual, 0.25)
}
