package spatialmath

import "github.com/pkg/errors"

var (
	// ErrShape is returned when an array does not have the fixed number of components a type requires.
	ErrShape = errors.New("invalid shape")

	// ErrInvalidQuaternion is returned when a quaternion cannot describe a rotation.
	ErrInvalidQuaternion = errors.New("invalid quaternion")

	// ErrInvalidEulerSequence is returned for an unusable euler axis sequence.
	ErrInvalidEulerSequence = errors.New("invalid euler sequence")

	// ErrInvalidAxisSpec is returned when a rotation axis specification is empty, unknown or repeats an axis.
	ErrInvalidAxisSpec = errors.New("invalid rotation axis specification")

	// ErrDegenerateGeometry is returned when a point set cannot determine the requested rotation.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrAlignment is returned when point correspondences violate the preconditions of an alignment.
	ErrAlignment = errors.New("alignment failed")
)

// NewShapeError returns an error indicating that name needed want components but got got.
func NewShapeError(name string, want, got int) error {
	return errors.Wrapf(ErrShape, "%s must have %d components, got %d", name, want, got)
}

// NewDegenerateGeometryError returns an error describing why a point set could not determine a rotation.
func NewDegenerateGeometryError(reason string) error {
	return errors.Wrap(ErrDegenerateGeometry, reason)
}
