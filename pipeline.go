package radpattern

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/radpattern/antenna"
	"github.com/wiless/radpattern/lobes"
)

// Analyze runs the full pipeline for one antenna configuration: decode and
// validate the parameter map, synthesize the raw pattern on the grid,
// normalize it to unit peak, and extract lobe metrics.
//
// The only caller-visible failures are antenna.ErrInvalidParameter (no
// pattern at all) and ErrDegeneratePattern (the zero pattern plus fallback
// metrics are still returned). Fit failures degrade internally and show up
// only as absent optional metric fields.
func Analyze(kind antenna.Kind, params map[string]interface{}, g antenna.ThetaGrid) (Pattern, lobes.Metrics, error) {
	s, err := antenna.NewSettingFromMap(kind, params)
	if err != nil {
		return Pattern{}, lobes.Metrics{}, err
	}
	return AnalyzeSetting(*s, g)
}

// AnalyzeSetting is Analyze for an already-typed Setting.
func AnalyzeSetting(s antenna.Setting, g antenna.ThetaGrid) (Pattern, lobes.Metrics, error) {
	raw, err := antenna.ComputePattern(s, g)
	if err != nil {
		return Pattern{}, lobes.Metrics{}, err
	}
	pattern, err := Normalize(Pattern{Theta: g, Gain: raw})
	if errors.Is(err, ErrDegeneratePattern) {
		log.Debugf("radpattern: %s produced a degenerate pattern", s.Kind)
		return pattern, lobes.FallbackMetrics(g.Degrees(), pattern.Gain), err
	}
	metrics := lobes.ExtractMetrics(g.Degrees(), pattern.Gain)
	return pattern, metrics, nil
}
