package spatialmath

import (
	"math"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// degenerateTolerance is the relative magnitude, compared to the cross-covariance, below which the
// information determining a rotation angle is treated as absent.
const degenerateTolerance = 1e-9

const (
	maxAscentSweeps   = 100
	ascentConvergence = 1e-12
	twoAxisGridSteps  = 8
)

// FitRigidTransform returns the rotation R and translation t minimizing sum |R*from[i] + t - to[i]|^2 over
// rotations about the given axes only. The point sets are paired by index.
//
// With all three axes free this is the orthogonal Procrustes (Kabsch) problem, solved by an SVD of the
// cross-covariance of the centred point sets. With fewer axes the rotation is found in closed form about a
// single axis, or by coordinate ascent over the two allowed angles.
func FitRigidTransform(from, to []r3.Vector, axes RotationAxes) (Rotation, r3.Vector, error) {
	if _, err := ParseRotationAxes(axes.String()); err != nil {
		return Rotation{}, r3.Vector{}, err
	}
	if len(from) != len(to) {
		return Rotation{}, r3.Vector{}, errors.Wrapf(ErrAlignment,
			"point sets must be paired, got %d and %d points", len(from), len(to))
	}
	if len(from) < 2 {
		return Rotation{}, r3.Vector{}, errors.Wrapf(ErrAlignment,
			"at least 2 point pairs are needed to estimate a rotation, got %d", len(from))
	}

	fromCentroid := Centroid(from)
	toCentroid := Centroid(to)
	h := crossCovariance(from, to, fromCentroid, toCentroid)

	var rot Rotation
	var err error
	switch len(axes) {
	case 1:
		rot, err = fitAboutAxis(h, axes[0])
	case 2:
		rot, err = fitAboutTwoAxes(h, axes[0], axes[1])
	default:
		rot, err = fitUnconstrained(h)
	}
	if err != nil {
		return Rotation{}, r3.Vector{}, err
	}
	return rot, toCentroid.Sub(rot.Apply(fromCentroid, false)), nil
}

// Centroid returns the mean of the points.
func Centroid(points []r3.Vector) r3.Vector {
	var sum r3.Vector
	for _, p := range points {
		sum = sum.Add(p)
	}
	if len(points) == 0 {
		return sum
	}
	return sum.Mul(1 / float64(len(points)))
}

// Residuals returns to[i] - (rot*from[i] + translation) for every pair. from and to must have the same length.
func Residuals(from, to []r3.Vector, rot Rotation, translation r3.Vector) []r3.Vector {
	residuals := make([]r3.Vector, len(from))
	for i, p := range from {
		residuals[i] = to[i].Sub(rot.Apply(p, false).Add(translation))
	}
	return residuals
}

// crossCovariance returns H = sum (from[i]-fromCentroid)(to[i]-toCentroid)^T.
func crossCovariance(from, to []r3.Vector, fromCentroid, toCentroid r3.Vector) *mat.Dense {
	h := mat.NewDense(3, 3, nil)
	for i := range from {
		h.RankOne(h, 1, vecDense(from[i].Sub(fromCentroid)), vecDense(to[i].Sub(toCentroid)))
	}
	return h
}

func vecDense(v r3.Vector) *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
}

// fitUnconstrained maximizes tr(R*H) over all proper rotations.
func fitUnconstrained(h *mat.Dense) (Rotation, error) {
	var svd mat.SVD
	if ok := svd.Factorize(h, mat.SVDFull); !ok {
		return Rotation{}, errors.New("failed to factorize cross-covariance")
	}
	values := svd.Values(nil)
	if values[0] == 0 || values[1] <= degenerateTolerance*values[0] {
		return Rotation{}, NewDegenerateGeometryError("points are collinear or coincident so a full rotation is undetermined")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// R = V * diag(1, 1, d) * U^T where d flips the weakest direction if V*U^T would be a reflection
	var vut mat.Dense
	vut.Mul(&v, u.T())
	correction := mat.NewDiagDense(3, []float64{1, 1, 1})
	if mat.Det(&vut) < 0 {
		correction.SetDiag(2, -1)
	}
	var vd, r mat.Dense
	vd.Mul(&v, correction)
	r.Mul(&vd, u.T())
	return NewRotationFromMatrix(&r)
}

// fitAboutAxis maximizes tr(R*H) over rotations about a single axis.
func fitAboutAxis(h *mat.Dense, axis Axis) (Rotation, error) {
	theta, amplitude := bestAngleAbout(h, axis)
	if amplitude <= degenerateTolerance*mat.Norm(h, 2) {
		return Rotation{}, NewDegenerateGeometryError(
			"every centred point lies on the " + axis.String() + " rotation axis so the rotation is undetermined")
	}
	return axis.Rotation(theta), nil
}

// fitAboutTwoAxes maximizes tr(Rfirst(a)*Rsecond(b)*H) by coordinate ascent. The objective can have several
// local maxima on the torus of angle pairs, so the ascent runs from both euler branches of the unconstrained
// optimum and from a grid of start angles, keeping the best result.
func fitAboutTwoAxes(h *mat.Dense, first, second Axis) (Rotation, error) {
	best := ascent{score: math.Inf(-1)}
	for _, start := range twoAxisStarts(h, first, second) {
		if result := ascend(h, first, second, start[0], start[1]); result.score > best.score {
			best = result
		}
	}

	limit := degenerateTolerance * mat.Norm(h, 2)
	if best.firstAmplitude <= limit || best.secondAmplitude <= limit {
		return Rotation{}, NewDegenerateGeometryError(
			"points do not constrain rotation about both the " + first.String() + " and " + second.String() + " axes")
	}
	return best.rotation(first, second), nil
}

// twoAxisStarts returns the start angles for the two axis ascent.
func twoAxisStarts(h *mat.Dense, first, second Axis) [][2]float64 {
	var starts [][2]float64
	if seed, err := fitUnconstrained(h); err == nil {
		third := Axis(3 - int(first) - int(second))
		seq := strings.ToUpper(first.String() + second.String() + third.String())
		if angles, err := seed.Euler(seq, false); err == nil {
			// every Tait-Bryan rotation has a second decomposition with the middle angle outside [-pi/2, pi/2]
			starts = append(starts,
				[2]float64{angles[0], angles[1]},
				[2]float64{wrapToPi(angles[0] + math.Pi), wrapToPi(math.Pi - angles[1])},
			)
		}
	}
	for i := 0; i < twoAxisGridSteps; i++ {
		for j := 0; j < twoAxisGridSteps; j++ {
			step := 2 * math.Pi / twoAxisGridSteps
			starts = append(starts, [2]float64{wrapToPi(float64(i) * step), wrapToPi(float64(j) * step)})
		}
	}
	return starts
}

type ascent struct {
	alpha, beta                     float64
	firstAmplitude, secondAmplitude float64
	score                           float64
}

func (a ascent) rotation(first, second Axis) Rotation {
	return first.Rotation(a.alpha).Compose(second.Rotation(a.beta))
}

// ascend alternately solves for one angle with the other held. Each step cannot decrease the objective.
func ascend(h *mat.Dense, first, second Axis, alpha, beta float64) ascent {
	result := ascent{alpha: alpha, beta: beta}
	for sweep := 0; sweep < maxAscentSweeps; sweep++ {
		var m mat.Dense
		m.Mul(second.Rotation(result.beta).Matrix(), h)
		newAlpha, a1 := bestAngleAbout(&m, first)

		var n mat.Dense
		n.Mul(h, first.Rotation(newAlpha).Matrix())
		newBeta, a2 := bestAngleAbout(&n, second)

		delta := math.Max(math.Abs(wrapToPi(newAlpha-result.alpha)), math.Abs(wrapToPi(newBeta-result.beta)))
		result.alpha, result.beta = newAlpha, newBeta
		result.firstAmplitude, result.secondAmplitude = a1, a2
		if delta < ascentConvergence {
			break
		}
	}

	var rh mat.Dense
	rh.Mul(result.rotation(first, second).Matrix(), h)
	result.score = mat.Trace(&rh)
	return result
}

// bestAngleAbout returns the angle theta maximizing tr(R_axis(theta)*M), together with the amplitude of that
// objective as a function of theta. Writing R = I*cos + [a]x*sin + (1-cos)*a*a^T gives
// tr(R*M) = cos*(tr(M) - a^T*M*a) + sin*tr([a]x*M) + a^T*M*a.
func bestAngleAbout(m mat.Matrix, axis Axis) (float64, float64) {
	i := int(axis)
	j, k := (i+1)%3, (i+2)%3
	c := mat.Trace(m) - m.At(i, i)
	s := m.At(j, k) - m.At(k, j)
	return math.Atan2(s, c), math.Hypot(s, c)
}
