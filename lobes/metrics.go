package lobes

import (
	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
)

// WindowDeg is the half-width of the fitting window around the peak.
const WindowDeg = 20.0

// MinFitSamples is the least number of in-window samples for a feasible fit.
const MinFitSamples = 5

// FWHMFactor converts a Gaussian sigma to full width at half maximum,
// 2*sqrt(2*ln 2).
const FWHMFactor = 2.3548

// Metrics are the interpretable numbers derived from one normalized pattern.
// AngularWidthDeg and SideLobeLevel are nil exactly when no reliable
// Gaussian fit exists and the fallback policy produced the record.
type Metrics struct {
	MainLobeMagnitude    float64  `json:"MainLobeMagnitude"`
	MainLobeDirectionDeg float64  `json:"MainLobeDirectionDeg"`
	AngularWidthDeg      *float64 `json:"AngularWidthDeg,omitempty"`
	SideLobeLevel        *float64 `json:"SideLobeLevel,omitempty"`
}

// ExtractMetrics derives lobe metrics from a normalized pattern sampled on
// the thetaDeg axis (degrees). It fits a Gaussian in a +/-20 degree window
// around the peak; when the window is too sparse or the fit does not
// converge it degrades to FallbackMetrics. With two or more equal-height
// peaks the lowest-angle one is taken.
func ExtractMetrics(thetaDeg, pattern vlib.VectorF) Metrics {
	if pattern.Size() == 0 || thetaDeg.Size() != pattern.Size() {
		return FallbackMetrics(thetaDeg, pattern)
	}
	maxIdx := floats.MaxIdx(pattern)
	peakDeg := thetaDeg[maxIdx]

	var xdata, ydata vlib.VectorF
	for i, deg := range thetaDeg {
		if deg >= peakDeg-WindowDeg && deg <= peakDeg+WindowDeg {
			xdata.AppendAtEnd(deg)
			ydata.AppendAtEnd(pattern[i])
		}
	}
	if xdata.Size() < MinFitSamples {
		log.Debugf("lobes: only %d samples in the fit window, using fallback metrics", xdata.Size())
		return FallbackMetrics(thetaDeg, pattern)
	}

	seed := [4]float64{floats.Max(ydata), peakDeg, 5.0, floats.Min(ydata)}
	fit := FitGaussian(xdata, ydata, seed)
	if !fit.OK {
		log.Debugf("lobes: gaussian fit failed (%s), using fallback metrics", fit.Reason)
		return FallbackMetrics(thetaDeg, pattern)
	}

	width := FWHMFactor * fit.Sigma
	if width < 0 {
		width = -width
	}
	sll := 0.0
	for i, deg := range thetaDeg {
		if deg < fit.Mu-WindowDeg || deg > fit.Mu+WindowDeg {
			if pattern[i] > sll {
				sll = pattern[i]
			}
		}
	}
	return Metrics{
		MainLobeMagnitude:    fit.A + fit.Offset,
		MainLobeDirectionDeg: fit.Mu,
		AngularWidthDeg:      &width,
		SideLobeLevel:        &sll,
	}
}

// FallbackMetrics is the degraded record used when no reliable fit exists:
// the raw peak sample stands in for the main lobe and the optional fields
// are absent. It always succeeds.
func FallbackMetrics(thetaDeg, pattern vlib.VectorF) Metrics {
	if pattern.Size() == 0 {
		return Metrics{}
	}
	maxIdx := floats.MaxIdx(pattern)
	m := Metrics{MainLobeMagnitude: pattern[maxIdx]}
	if maxIdx < thetaDeg.Size() {
		m.MainLobeDirectionDeg = thetaDeg[maxIdx]
	}
	return m
}
