package antenna

import (
	"math"

	"github.com/wiless/vlib"
)

// epsilon guards the theta=0,pi and psi=0 singularities. The limit value is
// approximated, not computed exactly.
const epsilon = 1e-9

// ComputePattern evaluates the raw (unnormalized) far-field gain of the
// configured antenna on every sample of the grid. The result is always
// finite and non-negative; NaN or Inf produced by floating-point edge cases
// is forced to 0 before returning.
func ComputePattern(s Setting, g ThetaGrid) (vlib.VectorF, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var gain vlib.VectorF
	switch s.Kind {
	case Dipole, Monopole:
		gain = ElementPattern(s.NormalizedLength(), g.Theta)
	case UniformLinearArray:
		gain = ArrayFactor(s.N, s.SpacingLambda, s.PhaseDeg, g.Theta)
	default:
		gain = GenericPattern(g.Theta)
	}
	return NaNToNum(gain), nil
}

// ElementPattern is the classical thin-wire dipole pattern
//
//	|cos(pi*L*cos(theta)) - cos(pi*L)| / sin(theta)
//
// with L the element length in wavelengths. A monopole over a ground plane
// shares the same shape over the upper half-space by image theory.
func ElementPattern(lengthLambda float64, theta vlib.VectorF) vlib.VectorF {
	k := 2.0 * math.Pi
	result := vlib.NewVectorF(theta.Size())
	for i, th := range theta {
		numerator := math.Abs(math.Cos(k*lengthLambda/2.0*math.Cos(th)) - math.Cos(k*lengthLambda/2.0))
		result[i] = numerator / (math.Sin(th) + epsilon)
	}
	return result
}

// ArrayFactor evaluates the uniform linear array factor
//
//	|sin(N*psi/2) / sin(psi/2)|,  psi = 2*pi*d*cos(theta) + phase
//
// self-normalized by its own maximum. This local normalization is part of
// the model itself and independent of the pipeline-level normalizer.
// N=1 degenerates to the isotropic constant 1 at every angle.
func ArrayFactor(n int, spacingLambda, phaseDeg float64, theta vlib.VectorF) vlib.VectorF {
	result := vlib.NewVectorF(theta.Size())
	if n == 1 {
		for i := range result {
			result[i] = 1.0
		}
		return result
	}
	phaseRad := Radian(phaseDeg)
	for i, th := range theta {
		psi := 2.0*math.Pi*spacingLambda*math.Cos(th) + phaseRad
		af := math.Sin(float64(n)*psi/2.0) / (math.Sin(psi/2.0) + epsilon)
		result[i] = math.Abs(af)
	}
	result = NaNToNum(result)
	maxaf := vlib.Max(result)
	if maxaf > 0 {
		for i := range result {
			result[i] /= maxaf
		}
	}
	return result
}

// GenericPattern is the |cos^3(theta)| stand-in used when no closed-form
// model applies. It is a placeholder archetype, not an accurate model of
// any physical antenna.
func GenericPattern(theta vlib.VectorF) vlib.VectorF {
	result := vlib.NewVectorF(theta.Size())
	for i, th := range theta {
		c := math.Cos(th)
		result[i] = math.Abs(c * c * c)
	}
	return result
}

// NaNToNum replaces NaN and +/-Inf samples with 0.
func NaNToNum(v vlib.VectorF) vlib.VectorF {
	for i, val := range v {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			v[i] = 0
		}
	}
	return v
}

// Radian converts degree to radians
func Radian(degree float64) float64 {
	return degree * math.Pi / 180.0
}
