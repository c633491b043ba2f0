package chroma

import (
	"fmt"
	"image/color"
	"math"
)

// Color is the canonical color representation: an 8-bit sRGB triple plus an
// alpha in [0, 1]. All other color spaces are derived from and to it.
//
// Color is an immutable value type; every operation returns a new Color.
// Two Colors are equal when their channels and rounded alpha match, so
// Color values can be compared with Equal and used as map keys after
// canonicalization.
type Color struct {
	R, G, B uint8
	A       float64
}

// NewRGB creates an opaque color from 8-bit channels.
func NewRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewRGBA creates a color from 8-bit channels and an alpha in [0, 1].
// Alpha is clamped to [0, 1].
func NewRGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

// fromUnit builds a Color from unit-range [0,1] channel values, clamping
// and rounding at this single display boundary.
func fromUnit(r, g, b, a float64) Color {
	return Color{
		R: unitToByte(r),
		G: unitToByte(g),
		B: unitToByte(b),
		A: clamp01(a),
	}
}

// unitToByte clamps a unit-range value and converts to uint8 with rounding.
func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// clamp01 clamps a value to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampByte clamps a float channel value to [0, 255] and rounds.
// This is the defined overflow policy for manipulation results.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// RGBA implements the image/color.Color interface with premultiplied
// 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.A * 0xffff))
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

// FromColor converts any image/color.Color to a canonical Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: nrgba.R,
		G: nrgba.G,
		B: nrgba.B,
		A: float64(nrgba.A) / 255,
	}
}

// Equal reports whether two colors are equal after rounding alpha to 8-bit
// precision. Channel equality is exact; alpha tolerance absorbs float noise
// below the display resolution.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B &&
		unitToByte(c.A) == unitToByte(other.A)
}

// Hex returns the lowercase hex form of the color: "#rrggbb", or
// "#rrggbbaa" when the color is not fully opaque.
func (c Color) Hex() string {
	if c.A < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, unitToByte(c.A))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form of the color.
func (c Color) String() string {
	return c.Hex()
}

// WithAlpha returns the color with its alpha replaced (clamped to [0, 1]).
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// unit returns the sRGB channels as unit-range floats.
func (c Color) unit() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Common colors
var (
	Black       = NewRGB(0, 0, 0)
	White       = NewRGB(255, 255, 255)
	Gray        = NewRGB(128, 128, 128)
	Red         = NewRGB(255, 0, 0)
	Green       = NewRGB(0, 255, 0)
	Blue        = NewRGB(0, 0, 255)
	Yellow      = NewRGB(255, 255, 0)
	Cyan        = NewRGB(0, 255, 255)
	Magenta     = NewRGB(255, 0, 255)
	Transparent = NewRGBA(0, 0, 0, 0)
)
