package render

import (
	"image/color"
	"math"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(math.Round(clamp01(a)*255))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts c to a non-premultiplied image color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Theme colors a frame.
type Theme struct {
	Page    Color
	Overlay Color
	Surface Color
	Handle  Color
	Guide   Color
	Label   Color
	// OverlayMax is the overlay alpha at full opacity.
	OverlayMax float64
}

// DefaultTheme is a light page with a dark backdrop.
var DefaultTheme = Theme{
	Page:       RGB(0xF4, 0xF4, 0xF5),
	Overlay:    RGB(0x00, 0x00, 0x00),
	Surface:    RGB(0xFF, 0xFF, 0xFF),
	Handle:     RGB(0xD4, 0xD4, 0xD8),
	Guide:      RGB(0x3B, 0x82, 0xF6),
	Label:      RGB(0x1E, 0x3A, 0x8A),
	OverlayMax: 0.4,
}
