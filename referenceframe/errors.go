package referenceframe

import (
	"github.com/pkg/errors"

	spatial "go.viam.com/framealign/spatialmath"
)

var (
	// ErrFrameMismatch is returned when an operand is tagged with a frame other than the one an operation requires.
	ErrFrameMismatch = errors.New("frame mismatch")

	// ErrUnspecifiedTransform is returned when a transform relates neither direction of a requested frame pair.
	ErrUnspecifiedTransform = errors.New("transform not specified")

	// ErrMixedPositionCollection is returned when a pose's position resolves to a collection of points.
	ErrMixedPositionCollection = errors.New("pose can only contain a single position, not positions")
)

// Errors produced by the rotation and alignment math.
var (
	ErrShape                = spatial.ErrShape
	ErrInvalidQuaternion    = spatial.ErrInvalidQuaternion
	ErrInvalidEulerSequence = spatial.ErrInvalidEulerSequence
	ErrInvalidAxisSpec      = spatial.ErrInvalidAxisSpec
	ErrDegenerateGeometry   = spatial.ErrDegenerateGeometry
	ErrAlignment            = spatial.ErrAlignment
)

// NewFrameMismatchError returns an error indicating that what was expected in frame want was found in frame got.
func NewFrameMismatchError(what string, want, got Frame) error {
	return errors.Wrapf(ErrFrameMismatch, "expected %s in frame %q, got frame %q", what, want.Name(), got.Name())
}

// NewUnspecifiedTransformError returns an error indicating that tf cannot move data from one frame to the other.
func NewUnspecifiedTransformError(tf *Transform, from, to Frame) error {
	return errors.Wrapf(ErrUnspecifiedTransform, "transform between %q and %q cannot map %q to %q",
		tf.From().Name(), tf.To().Name(), from.Name(), to.Name())
}
