package polyplot

import (
	"image"

	"github.com/fogleman/gg"
)

// Background color for rendered frames (#0a0a1a).
var bgColor = Color{R: 0x0a, G: 0x0a, B: 0x1a}

// RenderFrame rasterizes the animator's current frame as an RGBA image.
// Output is byte-identical for identical animator state and dimensions.
func RenderFrame(a *Animator, width, height int) *image.RGBA {
	dc := gg.NewContext(width, height)
	dc.SetRGB255(int(bgColor.R), int(bgColor.G), int(bgColor.B))
	dc.Clear()

	dc.SetLineWidth(1)
	for _, ln := range a.Lines(width, height) {
		dc.SetRGB255(int(ln.Color.R), int(ln.Color.G), int(ln.Color.B))
		dc.DrawLine(float64(ln.X1), float64(ln.Y1), float64(ln.X2), float64(ln.Y2))
		dc.Stroke()
	}

	return dc.Image().(*image.RGBA)
}
