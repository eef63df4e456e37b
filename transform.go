package polyplot

import "math"

// Transform maps user-space coordinates into integer pixel coordinates
// given a viewport (Width, Height) and a user-space window (XMin..YMax).
// It is a plain linear map, reusable independently of the animator.
type Transform struct {
	// Dimensions of the plotting area, in pixels.
	Width, Height int
	// Dimensions of the user-space coordinate window.
	XMin, XMax float64
	YMin, YMax float64
}

// NewTransform returns a transform for the given viewport and user-space
// window. Equal or inverted bounds are rejected with ErrInvalidBounds;
// once constructed, the scale divisions below can never be zero.
func NewTransform(width, height int, xMin, xMax, yMin, yMax float64) (*Transform, error) {
	if xMin >= xMax || yMin >= yMax {
		return nil, ErrInvalidBounds
	}
	return &Transform{
		Width:  width,
		Height: height,
		XMin:   xMin,
		XMax:   xMax,
		YMin:   yMin,
		YMax:   yMax,
	}, nil
}

// ScreenX maps a user-space x coordinate to a pixel column.
func (t *Transform) ScreenX(x float64) int {
	return int(math.Floor(float64(t.Width) * (x - t.XMin) / (t.XMax - t.XMin)))
}

// ScreenY maps a user-space y coordinate to a pixel row. User-space "up"
// maps to screen "up": pixel rows grow downward, so the axis is flipped.
func (t *Transform) ScreenY(y float64) int {
	return int(math.Floor(float64(t.Height)*(t.YMin-y)/(t.YMax-t.YMin) + float64(t.Height)))
}

// SetScaleX replaces the horizontal user-space window. No validation and
// no redraw: callers that zoom every frame own both concerns.
func (t *Transform) SetScaleX(min, max float64) {
	t.XMin, t.XMax = min, max
}

// SetScaleY replaces the vertical user-space window.
func (t *Transform) SetScaleY(min, max float64) {
	t.YMin, t.YMax = min, max
}
