package antenna

// ModelInfo describes one named antenna model from the design catalog: the
// archetype formula it resolves to and the parameters the designer can set
// for it.
type ModelInfo struct {
	Archetype Kind
	Params    []string
}

// catalog maps category -> model -> info. Only Dipole, Monopole and the
// Linear Array have closed-form formulas of their own; every other model
// falls back to the Generic archetype.
var catalog = map[string]map[string]ModelInfo{
	"Wire Antennas": {
		"Dipole Antenna":   {Dipole, []string{"LengthM", "FreqMHz"}},
		"Monopole Antenna": {Monopole, []string{"LengthM", "FreqMHz"}},
		"Loop Antenna (Small Loop)":     {Generic, []string{"FreqMHz"}},
		"Loop Antenna (Large Loop)":     {Generic, []string{"FreqMHz"}},
		"Helical Antenna (Normal-mode)": {Generic, []string{"LengthM", "FreqMHz", "PhaseDeg"}},
		"Helical Antenna (Axial-mode)":  {Generic, []string{"LengthM", "FreqMHz", "PhaseDeg"}},
	},
	"Aperture Antennas": {
		"Horn Antenna":       {Generic, []string{"FreqMHz"}},
		"Slot Antenna":       {Generic, []string{"FreqMHz"}},
		"Waveguide Aperture": {Generic, []string{"FreqMHz"}},
	},
	"Array Antennas": {
		"Linear Array":   {UniformLinearArray, []string{"N", "SpacingLambda", "PhaseDeg", "FreqMHz"}},
		"Planar Array":   {Generic, []string{"N", "SpacingLambda", "PhaseDeg", "FreqMHz"}},
		"Circular Array": {Generic, []string{"N", "SpacingLambda", "PhaseDeg", "FreqMHz"}},
		"Phased Array":   {Generic, []string{"N", "SpacingLambda", "PhaseDeg", "FreqMHz"}},
	},
	"Smart Antennas": {
		"Smart Adaptive Antenna": {Generic, []string{"N", "SpacingLambda", "FreqMHz"}},
	},
	"Reflector Antennas": {
		"Parabolic Reflector": {Generic, []string{"FreqMHz"}},
		"Corner Reflector":    {Generic, []string{"FreqMHz"}},
		"Cassegrain Antenna":  {Generic, []string{"FreqMHz"}},
	},
	"Lens Antennas": {
		"Dielectric Lens":  {Generic, []string{"FreqMHz"}},
		"Metal Plate Lens": {Generic, []string{"FreqMHz"}},
	},
	"Printed / Integrated Antennas": {
		"Microstrip Patch Antenna":         {Generic, []string{"LengthM", "FreqMHz"}},
		"Planar Inverted-F Antenna (PIFA)": {Generic, []string{"LengthM", "FreqMHz"}},
		"Slot-loaded Patch":                {Generic, []string{"FreqMHz"}},
	},
}

// Catalog returns the full category/model table.
func Catalog() map[string]map[string]ModelInfo {
	return catalog
}

// KindOfModel resolves a model name to its archetype. Unknown names resolve
// to Generic, the stand-in archetype.
func KindOfModel(model string) Kind {
	for _, models := range catalog {
		if info, ok := models[model]; ok {
			return info.Archetype
		}
	}
	return Generic
}

// Categories lists the catalog category names.
func Categories() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}
