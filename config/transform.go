package config

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/framealign/referenceframe"
	spatial "go.viam.com/framealign/spatialmath"
	"go.viam.com/framealign/utils"
)

// TransformConfig describes the transform taking coordinates in frame From to frame To. The rotation is given
// either as a quaternion (x, y, z, w) or as euler angles applied in Sequence, intrinsic ZYX when empty.
type TransformConfig struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Translation []float64 `json:"translation"`
	Quaternion  []float64 `json:"quaternion,omitempty"`
	Euler       []float64 `json:"euler,omitempty"`
	Sequence    string    `json:"sequence,omitempty"`
	Degrees     bool      `json:"degrees,omitempty"`
}

// Validate returns every problem with the transform config, prefixed with path.
func (c *TransformConfig) Validate(path string) error {
	var allErrs error
	if c.From == "" {
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationFieldRequiredError(path, "from"))
	}
	if c.To == "" {
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationFieldRequiredError(path, "to"))
	}
	if c.From != "" && c.From == c.To {
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
			path, errors.Errorf("from and to are both %q", c.From)))
	}
	if len(c.Translation) != 3 {
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
			path+".translation", errors.Errorf("expected 3 coordinates, got %d", len(c.Translation))))
	}

	switch {
	case c.Quaternion == nil && c.Euler == nil:
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
			path, errors.New(`one of "quaternion" or "euler" is required`)))
	case c.Quaternion != nil && c.Euler != nil:
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
			path, errors.New(`only one of "quaternion" or "euler" may be set`)))
	case c.Quaternion != nil:
		if len(c.Quaternion) != 4 {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
				path+".quaternion", errors.Errorf("expected 4 components, got %d", len(c.Quaternion))))
		}
		if c.Sequence != "" || c.Degrees {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
				path, errors.New(`"sequence" and "degrees" only apply to "euler"`)))
		}
	default:
		if len(c.Euler) != 3 {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
				path+".euler", errors.Errorf("expected 3 angles, got %d", len(c.Euler))))
		}
	}

	if c.Sequence != "" {
		if _, err := spatial.ParseEulerSequence(c.Sequence); err != nil {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(path+".sequence", err))
		}
	}
	return allErrs
}

// ToTransform validates the config and builds the transform it describes.
func (c *TransformConfig) ToTransform() (*referenceframe.Transform, error) {
	if err := c.Validate("transform"); err != nil {
		return nil, err
	}
	from := referenceframe.NewFrame(c.From)
	to := referenceframe.NewFrame(c.To)
	translation, err := referenceframe.NewTranslationFromArray(c.Translation, from, to)
	if err != nil {
		return nil, err
	}
	if c.Quaternion != nil {
		return referenceframe.NewTransformFromQuaternionArray(translation, c.Quaternion, from, to)
	}

	seq := c.Sequence
	if seq == "" {
		seq = spatial.DefaultEulerSequence
	}
	rot, err := spatial.NewRotationFromEuler(seq, [3]float64{c.Euler[0], c.Euler[1], c.Euler[2]}, c.Degrees)
	if err != nil {
		return nil, err
	}
	return referenceframe.NewTransform(translation, rot, from, to)
}

// NewTransformConfig returns the config describing tf with its rotation as a quaternion.
func NewTransformConfig(tf *referenceframe.Transform) *TransformConfig {
	q := tf.Rotation().Quaternion()
	return &TransformConfig{
		From:        tf.From().Name(),
		To:          tf.To().Name(),
		Translation: tf.Translation().ToArray(),
		Quaternion:  q[:],
	}
}
