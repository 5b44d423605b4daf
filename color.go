package brush

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. It is the unit exchanged
// with a Surface's DrawDab/SampleColor.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// HSV creates a color from HSV values. h is hue in [0,360), s and v
// are in [0,1].
func HSV(h, s, v float64) RGBA {
	c := colorful.Hsv(h, s, v)
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Hsv returns the color's hue ([0,360)), saturation and value ([0,1]),
// clamping out-of-gamut RGB first.
func (c RGBA) Hsv() (h, s, v float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hsv()
}

// HSL creates a color from HSL values. h is hue in [0,360), s and l
// are in [0,1].
func HSL(h, s, l float64) RGBA {
	c := colorful.Hsl(h, s, l)
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Hsl returns the color's hue ([0,360)), saturation and lightness
// ([0,1]), clamping out-of-gamut RGB first.
func (c RGBA) Hsl() (h, s, l float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hsl()
}

// Lerp performs linear interpolation between two colors, used to
// composite a dab's color into a surface pixel.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Red         = RGBA{R: 1, G: 0, B: 0, A: 1}
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
)
