package referenceframe

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	spatial "go.viam.com/framealign/spatialmath"
)

func TestPose(t *testing.T) {
	position := NewPosition(1, 2, 3, robotFrame)
	orientation := NewOrientation(spatial.NewRotationAboutAxis(r3.Vector{Z: 1}, math.Pi/2), robotFrame)

	pose, err := NewPose(position, orientation, robotFrame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.Frame(), test.ShouldResemble, robotFrame)
	test.That(t, pose.Position(), test.ShouldEqual, position)
	test.That(t, pose.Orientation(), test.ShouldEqual, orientation)

	same, err := NewPose(NewPosition(1, 2, 3, robotFrame), NewOrientation(orientation.Rotation(), robotFrame), robotFrame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.AlmostEqual(same), test.ShouldBeTrue)
	test.That(t, pose.AlmostEqual(position), test.ShouldBeFalse)

	moved, err := NewPose(NewPosition(1, 2, 4, robotFrame), orientation, robotFrame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.AlmostEqual(moved), test.ShouldBeFalse)

	t.Run("frames must agree", func(t *testing.T) {
		_, err := NewPose(NewPosition(1, 2, 3, assetFrame), orientation, robotFrame)
		test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)

		_, err = NewPose(position, NewOrientation(orientation.Rotation(), assetFrame), robotFrame)
		test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
	})
}
