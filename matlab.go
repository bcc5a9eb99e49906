package radpattern

import (
	"io"

	"github.com/wiless/vlib"
)

// MWriter redirects the matlab export when set, mainly for tests.
var MWriter io.Writer

// ExportMatlab writes a .m script that recreates the polar plot of the
// normalized pattern, in the same form the simulator scripts expect.
func ExportMatlab(p Pattern, mfileName string) {
	var matlab vlib.Matlab
	matlab.SetDefaults()
	if MWriter != nil {
		matlab.SetWriter(MWriter)
	} else {
		matlab.SetFile(mfileName)
	}
	matlab.Silent = true
	matlab.Export("Theta", p.Theta.Theta)
	matlab.Export("Gain", p.Gain)
	matlab.Command("figure;")
	matlab.Command("polar(Theta',Gain','k-')")
	matlab.Command("title('Normalized Radiation Pattern');")
	matlab.Close()
}
