package antenna_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wiless/radpattern/antenna"
	"github.com/wiless/vlib"
)

func TestPatternsAreFiniteNonNegative(t *testing.T) {
	grid := antenna.DefaultThetaGrid()
	settings := []antenna.Setting{
		{Kind: antenna.Dipole, FreqMHz: 100, LengthM: 0.01},
		{Kind: antenna.Dipole, FreqMHz: 3000, LengthM: 5.0},
		{Kind: antenna.Monopole, FreqMHz: 900, LengthM: 0.5},
		{Kind: antenna.UniformLinearArray, N: 2, SpacingLambda: 0.1},
		{Kind: antenna.UniformLinearArray, N: 32, SpacingLambda: 2.0, PhaseDeg: -180},
		{Kind: antenna.UniformLinearArray, N: 8, SpacingLambda: 1.0, PhaseDeg: 180},
		{Kind: antenna.Generic},
	}
	for _, s := range settings {
		gain, err := antenna.ComputePattern(s, grid)
		if err != nil {
			t.Fatalf("%v : unexpected error %v", s.Kind, err)
		}
		if gain.Size() != grid.Size() {
			t.Fatalf("%v : pattern size %d, grid size %d", s.Kind, gain.Size(), grid.Size())
		}
		for i, g := range gain {
			if math.IsNaN(g) || math.IsInf(g, 0) || g < 0 {
				t.Fatalf("%v : bad sample %v at index %d", s.Kind, g, i)
			}
		}
	}
}

func TestHalfWaveDipoleBroadside(t *testing.T) {
	// 361 samples so theta=pi/2 is on the grid
	grid := antenna.NewThetaGrid(361)
	s := antenna.Setting{Kind: antenna.Dipole, FreqMHz: 900, LengthLambda: 0.5}
	gain, err := antenna.ComputePattern(s, grid)
	if err != nil {
		t.Fatal(err)
	}
	maxgain := vlib.Max(gain)
	mid := 180 // theta = pi/2
	if math.Abs(gain[mid]/maxgain-1.0) > 1e-9 {
		t.Errorf("broadside gain %v, want 1.0", gain[mid]/maxgain)
	}
	if gain[0] != 0 || gain[grid.Size()-1] != 0 {
		t.Errorf("endfire gain %v , %v, want 0", gain[0], gain[grid.Size()-1])
	}
}

func TestSingleElementArrayIsIsotropic(t *testing.T) {
	grid := antenna.DefaultThetaGrid()
	s := antenna.Setting{Kind: antenna.UniformLinearArray, N: 1, SpacingLambda: 0.5}
	gain, err := antenna.ComputePattern(s, grid)
	if err != nil {
		t.Fatal(err)
	}
	for i, g := range gain {
		if g != 1.0 {
			t.Fatalf("N=1 gain[%d]=%v, want 1.0", i, g)
		}
	}
}

func TestGratingLobesAtFullWavelengthSpacing(t *testing.T) {
	grid := antenna.DefaultThetaGrid()
	s := antenna.Setting{Kind: antenna.UniformLinearArray, N: 8, SpacingLambda: 1.0, PhaseDeg: 0}
	gain, err := antenna.ComputePattern(s, grid)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(vlib.Max(gain)-1.0) > 1e-9 {
		t.Fatalf("array factor not self-normalized, max=%v", vlib.Max(gain))
	}
	deg := grid.Degrees()
	lobeMax := func(lo, hi float64) float64 {
		m := 0.0
		for i, d := range deg {
			if d >= lo && d <= hi && gain[i] > m {
				m = gain[i]
			}
		}
		return m
	}
	for _, window := range [][2]float64{{0, 5}, {85, 95}, {175, 180}} {
		if m := lobeMax(window[0], window[1]); m < 0.98 {
			t.Errorf("grating lobe in [%v,%v] deg peaks at %v, want ~1.0", window[0], window[1], m)
		}
	}
}

func TestGenericPatternIsCosCubed(t *testing.T) {
	grid := antenna.NewThetaGrid(181)
	gain := antenna.GenericPattern(grid.Theta)
	for i, th := range grid.Theta {
		want := math.Abs(math.Pow(math.Cos(th), 3))
		if math.Abs(gain[i]-want) > 1e-12 {
			t.Fatalf("generic gain[%d]=%v, want %v", i, gain[i], want)
		}
	}
}

func TestNaNToNum(t *testing.T) {
	v := vlib.VectorF{1.0, math.NaN(), math.Inf(1), math.Inf(-1), 0.25}
	out := antenna.NaNToNum(v)
	want := vlib.VectorF{1.0, 0, 0, 0, 0.25}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestComputePatternRejectsInvalid(t *testing.T) {
	grid := antenna.DefaultThetaGrid()
	bad := []antenna.Setting{
		{Kind: antenna.Dipole, FreqMHz: -1, LengthM: 0.5},
		{Kind: antenna.Dipole, FreqMHz: 900, LengthM: 0},
		{Kind: antenna.UniformLinearArray, N: 0, SpacingLambda: 0.5},
		{Kind: antenna.UniformLinearArray, N: 8, SpacingLambda: 0},
	}
	for _, s := range bad {
		if _, err := antenna.ComputePattern(s, grid); !errors.Is(err, antenna.ErrInvalidParameter) {
			t.Errorf("%+v : got %v, want ErrInvalidParameter", s, err)
		}
	}
}
