package antenna

import (
	"errors"
	"fmt"

	ms "github.com/mitchellh/mapstructure"
)

const cspeed float64 = 3.0e8

// ErrInvalidParameter is returned when a parameter fails validation at the
// input boundary, before any pattern is synthesized.
var ErrInvalidParameter = errors.New("antenna: invalid parameter")

// Setting carries the electrical/geometric parameters of one antenna
// configuration. Exactly one length mode applies: when LengthLambda is set
// (>0) it is used directly as the normalized length, otherwise LengthM is
// divided by the wavelength derived from FreqMHz.
type Setting struct {
	Kind          Kind    `json:"Kind"`
	Model         string  `json:"Model,omitempty"`
	FreqMHz       float64 `json:"FreqMHz"`
	LengthM       float64 `json:"LengthM"`
	LengthLambda  float64 `json:"LengthLambda,omitempty"`
	N             int     `json:"N"`
	SpacingLambda float64 `json:"SpacingLambda"`
	PhaseDeg      float64 `json:"PhaseDeg"`
}

// SetDefault loads the stock slider defaults of the visualizer.
func (s *Setting) SetDefault() {
	s.FreqMHz = 900
	s.LengthM = 0.5
	s.LengthLambda = 0
	s.N = 8
	s.SpacingLambda = 0.5
	s.PhaseDeg = 0
}

func NewSetting(kind Kind) *Setting {
	result := new(Setting)
	result.SetDefault()
	result.Kind = kind
	return result
}

// NewSettingFromMap decodes a loose parameter map (as handed over by a
// presentation layer) into a typed Setting for the given kind.
func NewSettingFromMap(kind Kind, params map[string]interface{}) (*Setting, error) {
	s := NewSetting(kind)
	if params != nil {
		if err := ms.Decode(params, s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
	}
	s.Kind = kind
	return s, nil
}

// Wavelength returns c/f in metres.
func (s Setting) Wavelength() float64 {
	return cspeed / (s.FreqMHz * 1e6)
}

// NormalizedLength is the element length expressed in wavelengths.
func (s Setting) NormalizedLength() float64 {
	if s.LengthLambda > 0 {
		return s.LengthLambda
	}
	return s.LengthM / s.Wavelength()
}

// Validate rejects the fatal parameter conditions: frequency <= 0,
// length <= 0, N < 1, spacing <= 0. These must never reach the synthesis
// formulas.
func (s Setting) Validate() error {
	switch s.Kind {
	case Dipole, Monopole:
		if s.FreqMHz <= 0 {
			return fmt.Errorf("%w: FreqMHz=%v, want > 0", ErrInvalidParameter, s.FreqMHz)
		}
		if s.LengthLambda <= 0 && s.LengthM <= 0 {
			return fmt.Errorf("%w: LengthM=%v, want > 0", ErrInvalidParameter, s.LengthM)
		}
	case UniformLinearArray:
		if s.N < 1 {
			return fmt.Errorf("%w: N=%d, want >= 1", ErrInvalidParameter, s.N)
		}
		if s.SpacingLambda <= 0 {
			return fmt.Errorf("%w: SpacingLambda=%v, want > 0", ErrInvalidParameter, s.SpacingLambda)
		}
	}
	return nil
}

// CheckDomain enforces the published input ranges of the design sliders.
// Boundary consumers (patcli, a UI) call this on user input; the degenerate
// single-element array (N=1) is deliberately outside these ranges yet still
// computable through Validate/ComputePattern.
func (s Setting) CheckDomain() error {
	switch s.Kind {
	case Dipole, Monopole:
		if s.FreqMHz < 100 || s.FreqMHz > 3000 {
			return fmt.Errorf("%w: FreqMHz=%v, domain [100,3000]", ErrInvalidParameter, s.FreqMHz)
		}
		if s.LengthLambda > 0 {
			if s.LengthLambda < 0.1 || s.LengthLambda > 2.0 {
				return fmt.Errorf("%w: LengthLambda=%v, domain [0.1,2.0]", ErrInvalidParameter, s.LengthLambda)
			}
		} else if s.LengthM < 0.01 || s.LengthM > 5.0 {
			return fmt.Errorf("%w: LengthM=%v, domain [0.01,5.0]", ErrInvalidParameter, s.LengthM)
		}
	case UniformLinearArray:
		if s.N < 2 || s.N > 32 {
			return fmt.Errorf("%w: N=%d, domain [2,32]", ErrInvalidParameter, s.N)
		}
		if s.SpacingLambda < 0.1 || s.SpacingLambda > 2.0 {
			return fmt.Errorf("%w: SpacingLambda=%v, domain [0.1,2.0]", ErrInvalidParameter, s.SpacingLambda)
		}
		if s.PhaseDeg < -180 || s.PhaseDeg > 180 {
			return fmt.Errorf("%w: PhaseDeg=%v, domain [-180,180]", ErrInvalidParameter, s.PhaseDeg)
		}
	}
	return nil
}
