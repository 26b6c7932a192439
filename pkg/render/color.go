package render

// Color is an r/g/b/a quadruple with float64 channels, nominally in [0, 1].
// Channels are never clamped here; whatever consumes the color downstream
// decides how out-of-range values behave.
type Color struct {
	R, G, B, A float64
}

// Common engine colors. Clear is fully transparent black.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
	Clear = Color{0, 0, 0, 0}
)

// WithAlpha returns a copy of the color with only the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates toward another color. t is not clamped, so
// values outside [0, 1] extrapolate.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// Scaled multiplies the r/g/b channels by factor, leaving alpha alone.
// Used for brightness fades.
func (c Color) Scaled(factor float64) Color {
	return Color{
		R: c.R * factor,
		G: c.G * factor,
		B: c.B * factor,
		A: c.A,
	}
}
