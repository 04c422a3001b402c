package referenceframe

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	spatial "go.viam.com/framealign/spatialmath"
)

func newTestTransform(t *testing.T, psi, theta, phi float64, translation r3.Vector, from, to Frame) *Transform {
	t.Helper()
	tf, err := NewTransformFromEuler(
		NewTranslationFromVector(translation, from, to),
		NewEuler(psi, theta, phi, from),
		"",
		from,
		to,
	)
	test.That(t, err, test.ShouldBeNil)
	return tf
}

func TestNewTransform(t *testing.T) {
	t.Run("frames must match the translation", func(t *testing.T) {
		translation := NewTranslation(1, 1, 0, robotFrame, assetFrame)
		_, err := NewTransformFromEuler(translation, NewEuler(0, 0, 0, robotFrame), "", assetFrame, robotFrame)
		test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)

		// a single mismatched frame is enough
		_, err = NewTransform(translation, spatial.NewZeroRotation(), robotFrame, NewFrame("map"))
		test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
		_, err = NewTransform(translation, spatial.NewZeroRotation(), NewFrame("map"), assetFrame)
		test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
	})

	t.Run("from quaternion", func(t *testing.T) {
		translation := NewTranslation(0, 0, 0, robotFrame, assetFrame)
		tf, err := NewTransformFromQuaternion(translation, NewQuaternion(0, 0, 0, 1, robotFrame), robotFrame, assetFrame)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, tf.Rotation().Quaternion(), test.ShouldResemble, [4]float64{0, 0, 0, 1})
		test.That(t, tf.From(), test.ShouldResemble, robotFrame)
		test.That(t, tf.To(), test.ShouldResemble, assetFrame)
		test.That(t, tf.Translation().Vector(), test.ShouldResemble, r3.Vector{})

		_, err = NewTransformFromQuaternion(translation, NewQuaternion(0, 0, 0, 0, robotFrame), robotFrame, assetFrame)
		test.That(t, errors.Is(err, ErrInvalidQuaternion), test.ShouldBeTrue)
	})

	t.Run("from quaternion array", func(t *testing.T) {
		translation := NewTranslation(0, 0, 0, robotFrame, assetFrame)
		tf, err := NewTransformFromQuaternionArray(translation, []float64{0, 0, 1, 0}, robotFrame, assetFrame)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, tf.Rotation().Quaternion(), test.ShouldResemble, [4]float64{0, 0, 1, 0})

		for _, bad := range [][]float64{{0, 0, 1}, {0, 0, 0, 1, 0}} {
			_, err = NewTransformFromQuaternionArray(translation, bad, robotFrame, assetFrame)
			test.That(t, errors.Is(err, ErrInvalidQuaternion), test.ShouldBeTrue)
		}
	})

	t.Run("bad euler sequence", func(t *testing.T) {
		translation := NewTranslation(0, 0, 0, robotFrame, assetFrame)
		_, err := NewTransformFromEuler(translation, NewEuler(0, 0, 0, robotFrame), "ZXx", robotFrame, assetFrame)
		test.That(t, errors.Is(err, ErrInvalidEulerSequence), test.ShouldBeTrue)
	})
}

func TestDirection(t *testing.T) {
	tf := newTestTransform(t, 0, 0, 0, r3.Vector{}, robotFrame, assetFrame)
	test.That(t, tf.Direction(robotFrame, assetFrame), test.ShouldEqual, Forward)
	test.That(t, tf.Direction(assetFrame, robotFrame), test.ShouldEqual, Inverse)
	test.That(t, tf.Direction(robotFrame, NewFrame("map")), test.ShouldEqual, Unrelated)
	test.That(t, tf.Direction(robotFrame, robotFrame), test.ShouldEqual, Unrelated)
	test.That(t, Forward.String(), test.ShouldEqual, "forward")
	test.That(t, Inverse.String(), test.ShouldEqual, "inverse")
	test.That(t, Unrelated.String(), test.ShouldEqual, "unrelated")
}

func TestTransformInverse(t *testing.T) {
	tf := newTestTransform(t, 0.4, 0.2, 1, r3.Vector{Y: 10, Z: 2}, robotFrame, assetFrame)
	inv := tf.Inverse()
	test.That(t, inv.From(), test.ShouldResemble, assetFrame)
	test.That(t, inv.To(), test.ShouldResemble, robotFrame)
	test.That(t, inv.Translation().From(), test.ShouldResemble, assetFrame)
	test.That(t, inv.Translation().To(), test.ShouldResemble, robotFrame)

	p := NewPosition(1, 2, 3, robotFrame)
	inAsset, err := TransformPosition(tf, p, robotFrame, assetFrame)
	test.That(t, err, test.ShouldBeNil)

	// the inverse transform applied forwards matches the transform applied backwards
	viaInverse, err := TransformPosition(inv, inAsset, assetFrame, robotFrame)
	test.That(t, err, test.ShouldBeNil)
	viaBackwards, err := TransformPosition(tf, inAsset, assetFrame, robotFrame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.R3VectorAlmostEqual(viaInverse.Vector(), p.Vector(), 1e-9), test.ShouldBeTrue)
	test.That(t, spatial.R3VectorAlmostEqual(viaBackwards.Vector(), p.Vector(), 1e-9), test.ShouldBeTrue)

	roundTrip := inv.Inverse()
	test.That(t, roundTrip.From(), test.ShouldResemble, robotFrame)
	test.That(t, spatial.R3VectorAlmostEqual(roundTrip.Translation().Vector(), r3.Vector{Y: 10, Z: 2}, 1e-9), test.ShouldBeTrue)
}

func TestTransformCompose(t *testing.T) {
	mapFrame := NewFrame("map")
	robotToAsset := newTestTransform(t, math.Pi/2, 0, 0, r3.Vector{X: 1, Y: 2}, robotFrame, assetFrame)
	assetToMap := newTestTransform(t, 0.3, -0.1, 0.2, r3.Vector{X: -4, Z: 7}, assetFrame, mapFrame)

	robotToMap, err := robotToAsset.Compose(assetToMap)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, robotToMap.From(), test.ShouldResemble, robotFrame)
	test.That(t, robotToMap.To(), test.ShouldResemble, mapFrame)

	p := NewPosition(1, 2, 3, robotFrame)
	inAsset, err := TransformPosition(robotToAsset, p, robotFrame, assetFrame)
	test.That(t, err, test.ShouldBeNil)
	stepwise, err := TransformPosition(assetToMap, inAsset, assetFrame, mapFrame)
	test.That(t, err, test.ShouldBeNil)
	direct, err := TransformPosition(robotToMap, p, robotFrame, mapFrame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.R3VectorAlmostEqual(stepwise.Vector(), direct.Vector(), 1e-9), test.ShouldBeTrue)

	identity, err := robotToAsset.Compose(robotToAsset.Inverse())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.AngleBetween(identity.Rotation(), spatial.NewZeroRotation()), test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, identity.Translation().Vector().Norm(), test.ShouldAlmostEqual, 0, 1e-9)

	_, err = assetToMap.Compose(robotToAsset)
	test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
}

func TestTransformAlmostEqual(t *testing.T) {
	a := newTestTransform(t, 0.1, 0, 0, r3.Vector{X: 1}, robotFrame, assetFrame)
	b := newTestTransform(t, 0.1, 0, 0, r3.Vector{X: 1}, robotFrame, assetFrame)
	c := newTestTransform(t, 0.1, 0, 0, r3.Vector{X: 1}, assetFrame, robotFrame)
	test.That(t, a.AlmostEqual(b), test.ShouldBeTrue)
	test.That(t, a.AlmostEqual(c), test.ShouldBeFalse)
	test.That(t, a.AlmostEqual(a.Inverse().Inverse()), test.ShouldBeTrue)
}
