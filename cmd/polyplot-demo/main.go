// Command polyplot-demo opens a resizable window and runs the polygon
// animation interactively.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/teminism/polyplot"
)

var background = color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}

type game struct {
	anim *polyplot.Animator
}

// Update is ebiten's fixed-rate tick; it advances the angle only.
func (g *game) Update() error {
	g.anim.Advance()
	return nil
}

// Draw runs at the display refresh rate, decoupled from Update.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	b := screen.Bounds()
	for _, ln := range g.anim.Lines(b.Dx(), b.Dy()) {
		c := color.RGBA{R: ln.Color.R, G: ln.Color.G, B: ln.Color.B, A: 0xff}
		vector.StrokeLine(screen,
			float32(ln.X1), float32(ln.Y1),
			float32(ln.X2), float32(ln.Y2),
			1, c, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	points := flag.Int("points", 20, "number of polygon vertices")
	flag.Parse()

	cfg := polyplot.DefaultConfig()
	cfg.Points = *points
	anim, err := polyplot.NewAnimator(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetTPS(int(time.Second / cfg.TickInterval))
	ebiten.SetWindowSize(500, 500)
	ebiten.SetWindowTitle("Polygon Plotter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{anim: anim}); err != nil {
		log.Fatal(err)
	}
}
