// patcli runs the radiation pattern pipeline for one configured antenna
// model and writes the metrics as JSON plus a MATLAB polar-plot script.
package main

import (
	"encoding/json"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/radpattern"
	"github.com/wiless/radpattern/antenna"
	"github.com/wiless/radpattern/lobes"
)

var indir string

func init() {
	flag.StringVar(&indir, "indir", ".", "Directory containing patcli.yaml")
}

func main() {
	flag.Parse()
	ReadAppConfig()

	kind := antenna.KindOfModel(Model)
	setting := antenna.NewSetting(kind)
	setting.Model = Model
	setting.FreqMHz = FreqMHz
	setting.LengthM = LengthM
	setting.N = N
	setting.SpacingLambda = SpacingLambda
	setting.PhaseDeg = PhaseDeg

	log.Infof("Model %q resolves to archetype %v", Model, kind)
	if err := setting.CheckDomain(); err != nil {
		log.Fatal(err)
	}

	grid := antenna.NewThetaGrid(NSamples)
	pattern, metrics, err := radpattern.AnalyzeSetting(*setting, grid)
	if err == radpattern.ErrDegeneratePattern {
		log.Warn("Degenerate all-zero pattern, metrics are the fallback kind")
	} else if err != nil {
		log.Fatal(err)
	}

	out := struct {
		Setting antenna.Setting `json:"Setting"`
		Metrics lobes.Metrics   `json:"Metrics"`
	}{Setting: *setting, Metrics: metrics}

	fd, ferr := os.Create(JSONName)
	if ferr != nil {
		log.Fatal(ferr)
	}
	enc := json.NewEncoder(fd)
	enc.SetIndent("", "  ")
	if ferr = enc.Encode(out); ferr != nil {
		log.Fatal(ferr)
	}
	fd.Close()

	radpattern.ExportMatlab(pattern, MfileName)
	log.Infof("Wrote %s and %s", JSONName, MfileName)
}
