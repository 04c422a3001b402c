package referenceframe

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/framealign/logging"
	spatial "go.viam.com/framealign/spatialmath"
)

// DefaultMaxResidual is the largest residual coordinate an alignment accepts unless told otherwise. Reference
// points that are related by a rigid motion fit far better than this; a larger residual usually means points
// were paired with the wrong partner.
const DefaultMaxResidual = 0.4

type alignOptions struct {
	maxResidual float64
	logger      logging.Logger
}

// AlignOption configures EstimateAlignment.
type AlignOption func(*alignOptions)

// WithMaxResidual sets the largest accepted absolute residual coordinate. A value <= 0 accepts any residual.
func WithMaxResidual(tol float64) AlignOption {
	return func(o *alignOptions) {
		o.maxResidual = tol
	}
}

// WithLogger reports the fitted transform and its residuals to logger at debug level.
func WithLogger(logger logging.Logger) AlignOption {
	return func(o *alignOptions) {
		o.logger = logger
	}
}

// Alignment is a transform estimated from point correspondences together with how well it fits them.
type Alignment struct {
	Transform *Transform
	// Residuals holds to[i] - Transform(from[i]) for every pair, expressed in the to frame.
	Residuals []r3.Vector
	// RMS, Mean and Max summarize the lengths of the residuals.
	RMS, Mean, Max float64
}

// EstimateAlignment finds the rigid transform from from's frame to to's frame that best maps each point of from
// onto the point of to with the same index, in the least squares sense. Rotation is only estimated about the axes
// named in rotationAxes, e.g. "z" or "xyz"; the other axes are held at zero rotation.
//
// The collections must be in different frames and have the same number of points, at least 2. Point sets that
// cannot determine the requested rotation fail with ErrDegenerateGeometry, and fits leaving a residual larger than
// the maximum residual fail with ErrAlignment.
func EstimateAlignment(from, to *Positions, rotationAxes string, opts ...AlignOption) (*Alignment, error) {
	o := alignOptions{maxResidual: DefaultMaxResidual}
	for _, opt := range opts {
		opt(&o)
	}

	axes, err := spatial.ParseRotationAxes(rotationAxes)
	if err != nil {
		return nil, err
	}
	if from.Frame() == to.Frame() {
		return nil, errors.Wrapf(ErrFrameMismatch, "cannot align frame %q with itself", from.Frame().Name())
	}
	if from.Len() != to.Len() {
		return nil, errors.Wrapf(ErrAlignment, "expected the same number of points in %q and %q, got %d and %d",
			from.Frame().Name(), to.Frame().Name(), from.Len(), to.Len())
	}

	rot, t, err := spatial.FitRigidTransform(from.points, to.points, axes)
	if err != nil {
		return nil, err
	}
	tf, err := NewTransform(NewTranslationFromVector(t, from.Frame(), to.Frame()), rot, from.Frame(), to.Frame())
	if err != nil {
		return nil, err
	}

	alignment, err := summarize(tf, spatial.Residuals(from.points, to.points, rot, t))
	if err != nil {
		return nil, err
	}
	if o.logger != nil {
		o.logger.Debugw("estimated alignment",
			"from", from.Frame().Name(),
			"to", to.Frame().Name(),
			"axes", axes.String(),
			"quaternion", rot.Quaternion(),
			"translation", spatial.VectorToArray(t),
			"rms_residual", alignment.RMS,
			"max_residual", alignment.Max,
		)
	}

	if o.maxResidual > 0 {
		for i, r := range alignment.Residuals {
			if worst := math.Max(math.Abs(r.X), math.Max(math.Abs(r.Y), math.Abs(r.Z))); worst > o.maxResidual {
				return nil, errors.Wrapf(ErrAlignment,
					"point %d is %.3f off after alignment, more than the allowed %.3f; check that the points are paired correctly",
					i, worst, o.maxResidual)
			}
		}
	}
	return alignment, nil
}

func summarize(tf *Transform, residuals []r3.Vector) (*Alignment, error) {
	norms := lo.Map(residuals, func(r r3.Vector, _ int) float64 { return r.Norm() })
	squares := lo.Map(norms, func(n float64, _ int) float64 { return n * n })

	mean, err := stats.Mean(norms)
	if err != nil {
		return nil, err
	}
	meanSquare, err := stats.Mean(squares)
	if err != nil {
		return nil, err
	}
	maxNorm, err := stats.Max(norms)
	if err != nil {
		return nil, err
	}
	return &Alignment{
		Transform: tf,
		Residuals: residuals,
		RMS:       math.Sqrt(meanSquare),
		Mean:      mean,
		Max:       maxNorm,
	}, nil
}

// AlignPositions estimates the transform taking from onto to. See EstimateAlignment.
func AlignPositions(from, to *Positions, rotationAxes string, opts ...AlignOption) (*Transform, error) {
	alignment, err := EstimateAlignment(from, to, rotationAxes, opts...)
	if err != nil {
		return nil, err
	}
	return alignment.Transform, nil
}

// AlignMaps estimates the transform from one map's frame to another's by pairing their reference positions.
func AlignMaps(from, to *Map, rotationAxes string, opts ...AlignOption) (*Transform, error) {
	return AlignPositions(from.ReferencePositions(), to.ReferencePositions(), rotationAxes, opts...)
}
