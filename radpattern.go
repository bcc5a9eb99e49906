// Package radpattern computes antenna far-field angular gain patterns from a
// small set of geometric/electrical parameters and extracts interpretable
// lobe metrics from them. The whole pipeline is a pure function from
// (kind, parameters, angle grid) to (Pattern, Metrics); nothing is cached or
// shared between invocations.
package radpattern

import (
	"errors"

	"github.com/wiless/radpattern/antenna"
	"github.com/wiless/vlib"
)

// ErrDegeneratePattern reports a raw pattern whose maximum is 0. The zero
// pattern is returned unchanged rather than divided by zero, and metrics for
// it are of the fallback kind.
var ErrDegeneratePattern = errors.New("radpattern: degenerate all-zero pattern")

// Pattern is one far-field gain pattern: a gain sample per grid angle,
// aligned 1:1 with the grid.
type Pattern struct {
	Theta antenna.ThetaGrid
	Gain  vlib.VectorF
}

// Normalize scales the pattern so its peak gain is 1.0. A degenerate
// all-zero pattern is returned unchanged together with
// ErrDegeneratePattern; the caller decides whether that matters.
func Normalize(p Pattern) (Pattern, error) {
	maxgain := vlib.Max(p.Gain)
	if maxgain == 0 {
		return p, ErrDegeneratePattern
	}
	result := Pattern{Theta: p.Theta}
	result.Gain = vlib.NewVectorF(p.Gain.Size())
	for i, g := range p.Gain {
		result.Gain[i] = g / maxgain
	}
	return result, nil
}

// GainDb returns the pattern in dB, flooring the zero samples at floorDb.
func (p Pattern) GainDb(floorDb float64) vlib.VectorF {
	result := vlib.NewVectorF(p.Gain.Size())
	for i, g := range p.Gain {
		if g <= 0 {
			result[i] = floorDb
			continue
		}
		db := vlib.Db(g)
		if db < floorDb {
			db = floorDb
		}
		result[i] = db
	}
	return result
}
