package antenna

import (
	"math"

	"github.com/wiless/vlib"
)

// Nodes is the default number of angle samples over [0,pi]
var Nodes = 360

// ThetaGrid holds the elevation angle samples in radians, uniformly spaced
// over the closed interval [0,pi]. The grid is fixed for a whole session and
// every pattern is evaluated sample-for-sample on it.
type ThetaGrid struct {
	Theta vlib.VectorF
}

// NewThetaGrid creates n uniformly spaced samples covering [0,pi] inclusive.
func NewThetaGrid(n int) ThetaGrid {
	if n < 2 {
		n = Nodes
	}
	theta := vlib.NewVectorF(n)
	delTheta := math.Pi / float64(n-1)
	for i := 0; i < n; i++ {
		theta[i] = float64(i) * delTheta
	}
	theta[n-1] = math.Pi
	return ThetaGrid{Theta: theta}
}

// DefaultThetaGrid returns the standard 360-sample grid used by the app.
func DefaultThetaGrid() ThetaGrid {
	return NewThetaGrid(Nodes)
}

func (g ThetaGrid) Size() int {
	return g.Theta.Size()
}

// Degrees returns the same axis converted to degrees, the scale on which
// lobe metrics are reported.
func (g ThetaGrid) Degrees() vlib.VectorF {
	result := vlib.NewVectorF(g.Theta.Size())
	for i, v := range g.Theta {
		result[i] = v * 180.0 / math.Pi
	}
	return result
}
