package radpattern

import (
	"sync"

	"github.com/wiless/radpattern/antenna"
	"github.com/wiless/radpattern/lobes"
)

// Config names one antenna configuration of a sweep.
type Config struct {
	Name    string
	Setting antenna.Setting
}

// Result pairs a sweep entry with its pattern and metrics. Err is set for
// invalid parameters or a degenerate pattern, per entry.
type Result struct {
	Config  Config
	Pattern Pattern
	Metrics lobes.Metrics
	Err     error
}

// AnalyzeBatch evaluates every configuration on the same grid, one
// goroutine per entry. The pipeline touches no shared state, so entries run
// fully in parallel; results are indexed 1:1 with configs.
func AnalyzeBatch(configs []Config, g antenna.ThetaGrid) []Result {
	results := make([]Result, len(configs))
	var wg sync.WaitGroup
	for i, cfg := range configs {
		wg.Add(1)
		go func(indx int, cfg Config) {
			defer wg.Done()
			p, m, err := AnalyzeSetting(cfg.Setting, g)
			results[indx] = Result{Config: cfg, Pattern: p, Metrics: m, Err: err}
		}(i, cfg)
	}
	wg.Wait()
	return results
}
