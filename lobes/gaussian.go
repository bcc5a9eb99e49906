// Package lobes extracts main-lobe and sidelobe metrics from a normalized
// far-field pattern by fitting a Gaussian around its peak.
package lobes

import (
	"math"

	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/optimize"
)

// MaxFitIterations bounds the nonlinear solver so a pathological fit
// terminates instead of looping.
var MaxFitIterations = 1000

// Gaussian evaluates a*exp(-(x-mu)^2/(2*sigma^2)) + offset.
func Gaussian(x, a, mu, sigma, offset float64) float64 {
	d := x - mu
	return a*math.Exp(-d*d/(2.0*sigma*sigma)) + offset
}

// FitOutcome is the explicit result of one Gaussian fit attempt. Failed fits
// carry a Reason and are consumed by a branch, never by panicking or by an
// error reaching the caller.
type FitOutcome struct {
	OK     bool
	A      float64
	Mu     float64
	Sigma  float64
	Offset float64
	Reason string
}

// FitGaussian fits the 4-parameter Gaussian to (x,y) by nonlinear least
// squares, seeded from seed = [a, mu, sigma, offset]. The solver is a
// Nelder-Mead simplex minimizing the sum of squared residuals, bounded by
// MaxFitIterations.
func FitGaussian(x, y vlib.VectorF, seed [4]float64) FitOutcome {
	if x.Size() != y.Size() || x.Size() == 0 {
		return FitOutcome{Reason: "mismatched or empty data"}
	}
	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			if p[2] == 0 {
				return math.Inf(1)
			}
			var sse float64
			for i, xi := range x {
				r := Gaussian(xi, p[0], p[1], p[2], p[3]) - y[i]
				sse += r * r
			}
			return sse
		},
	}
	settings := &optimize.Settings{
		MajorIterations: MaxFitIterations,
		FuncEvaluations: 4 * MaxFitIterations,
	}
	x0 := []float64{seed[0], seed[1], seed[2], seed[3]}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return FitOutcome{Reason: err.Error()}
	}
	switch result.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit,
		optimize.RuntimeLimit, optimize.NotTerminated:
		return FitOutcome{Reason: "solver did not converge: " + result.Status.String()}
	}
	for _, p := range result.X {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return FitOutcome{Reason: "non-finite fit parameters"}
		}
	}
	return FitOutcome{
		OK:     true,
		A:      result.X[0],
		Mu:     result.X[1],
		Sigma:  result.X[2],
		Offset: result.X[3],
	}
}
