// Package polyplot renders a regular N-vertex polygon together with all
// of its diagonals, continuously rotating it while a zoom pulse breathes
// in and out.
//
// The package owns the geometry and color logic only: a user-space to
// screen-space transform, a triangular color table keyed by unordered
// vertex pairs, and the per-frame line production. Display is left to a
// host (a window, an image file, an HTTP response) that consumes the
// line primitives — see the Canvas interface and the commands under cmd/.
package polyplot

import (
	"math"
	"time"
)

// Color represents an RGB color value.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a CSS hex string.
func (c Color) Hex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0x0f]})
}

// Config controls the animation parameters.
type Config struct {
	// Points is the number of polygon vertices (minimum 2).
	Points int

	// RotationStep is the angle added per tick, in radians.
	RotationStep float64

	// TickInterval is the delay between animation ticks.
	TickInterval time.Duration
}

// DefaultConfig returns a sensible default configuration:
// 20 vertices, π/1000 radians per tick, 20ms between ticks.
func DefaultConfig() Config {
	return Config{
		Points:       20,
		RotationStep: math.Pi / 1000,
		TickInterval: 20 * time.Millisecond,
	}
}

// Line is a single colored line segment in screen coordinates.
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Color  Color
}

// Canvas is the drawing capability a render host provides.
// Implementations must tolerate coordinates outside their bounds;
// the zoom pulse routinely pushes vertices off-screen.
type Canvas interface {
	DrawLine(x1, y1, x2, y2 int, c Color)
}
