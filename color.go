package rast

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	// Transparent is fully transparent black, the value uncovered pixels keep.
	Transparent = RGBA{}

	// Black is opaque black.
	Black = RGBA{A: 1}

	// White is opaque white.
	White = RGBA{R: 1, G: 1, B: 1, A: 1}

	// Red is opaque red.
	Red = RGBA{R: 1, A: 1}

	// Green is opaque green.
	Green = RGBA{G: 1, A: 1}

	// Blue is opaque blue.
	Blue = RGBA{B: 1, A: 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
// Components are quantized with Quantize.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: Quantize(c.R),
		G: Quantize(c.G),
		B: Quantize(c.B),
		A: Quantize(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float32(nrgba.R) / 255,
		G: float32(nrgba.G) / 255,
		B: float32(nrgba.B) / 255,
		A: float32(nrgba.A) / 255,
	}
}

// Quantize converts a unit-range channel to its 8-bit representation:
// round(clamp(f, 0, 1) * 255).
func Quantize(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
