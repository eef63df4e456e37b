package polyplot

import (
	"math"
	"sync/atomic"
)

// Animator owns the polygon geometry and the animation state. Vertices
// lie on the unit circle in user space; each frame the current angle
// rotates them and a zoom pulse rescales the visible window, then every
// unordered vertex pair is emitted as one colored line.
//
// The vertex count and color table are fixed at construction. The angle
// is the only mutable state and is stored as atomic float64 bits, so
// Advance from a tick loop and Lines/Render from a host's draw thread
// never race.
type Animator struct {
	cfg       Config
	colors    ColorTable
	transform Transform
	angle     atomic.Uint64
}

// defaultBound pads the unit circle so the polygon fits with margin.
const defaultBound = 1.1

// NewAnimator creates an animator for cfg.Points vertices. It returns
// ErrTooFewPoints when the polygon would have fewer than two points.
func NewAnimator(cfg Config) (*Animator, error) {
	if cfg.Points < 2 {
		return nil, ErrTooFewPoints
	}
	t, err := NewTransform(600, 600, -defaultBound, defaultBound, -defaultBound, defaultBound)
	if err != nil {
		return nil, err
	}
	return &Animator{
		cfg:       cfg,
		colors:    newColorTable(cfg.Points),
		transform: *t,
	}, nil
}

// Points returns the fixed vertex count.
func (a *Animator) Points() int {
	return a.cfg.Points
}

// Colors returns the immutable pair-color table.
func (a *Animator) Colors() ColorTable {
	return a.colors
}

// Angle returns the current rotation angle, in [0, 2π).
func (a *Animator) Angle() float64 {
	return math.Float64frombits(a.angle.Load())
}

// Advance applies one animation tick: the angle grows by RotationStep
// and wraps modulo 2π. Without the wrap the animation would eventually
// stall once the angle grew past float64 precision.
func (a *Animator) Advance() {
	next := math.Mod(a.Angle()+a.cfg.RotationStep, 2*math.Pi)
	a.angle.Store(math.Float64bits(next))
}

// Lines computes the frame for the given viewport at the current angle.
// The drawing region is the largest square fitting the viewport, and the
// zoom scale is 0.5+sin(angle) — deliberately allowed to go negative,
// which mirrors the polygon as it shrinks through a point and flips.
// Exactly Points*(Points-1)/2 lines are returned, every edge and
// diagonal once, and the output is fully determined by (width, height,
// angle).
func (a *Animator) Lines(width, height int) []Line {
	angle := a.Angle()

	side := width
	if height < side {
		side = height
	}

	// Work on a copy of the transform so overlapping redraw requests
	// from the host stay reentrant; only the angle is shared state.
	tr := a.transform
	tr.Width, tr.Height = side, side

	scaling := 0.5 + math.Sin(angle)
	tr.SetScaleX(-scaling, +scaling)
	tr.SetScaleY(-scaling, +scaling)

	n := a.cfg.Points
	lines := make([]Line, 0, a.colors.Len())
	for i := 0; i < n; i++ {
		ti := angle + 2*math.Pi*float64(i)/float64(n)
		xi := tr.ScreenX(math.Cos(ti))
		yi := tr.ScreenY(math.Sin(ti))
		for j := 0; j < i; j++ {
			tj := angle + 2*math.Pi*float64(j)/float64(n)
			lines = append(lines, Line{
				X1:    xi,
				Y1:    yi,
				X2:    tr.ScreenX(math.Cos(tj)),
				Y2:    tr.ScreenY(math.Sin(tj)),
				Color: a.colors.At(i, j),
			})
		}
	}
	return lines
}

// Render draws the current frame onto a host canvas.
func (a *Animator) Render(c Canvas, width, height int) {
	for _, ln := range a.Lines(width, height) {
		c.DrawLine(ln.X1, ln.Y1, ln.X2, ln.Y2, ln.Color)
	}
}
