package chroma

import (
	"fmt"
	"math"
)

// Level is a WCAG conformance level.
type Level string

// TextSize distinguishes normal from large text for threshold selection.
type TextSize string

// WCAG levels and text sizes.
const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"

	SizeNormal TextSize = "normal"
	SizeLarge  TextSize = "large"
)

// Luminance computes WCAG relative luminance from linearized channels.
func Luminance(c Color) float64 {
	r, g, b := c.linear()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio computes the WCAG contrast ratio (L1+0.05)/(L2+0.05) with
// L1 >= L2. The ratio is symmetric and ranges from 1 to 21.
func ContrastRatio(a, b Color) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastThreshold returns the minimum contrast ratio for a WCAG level
// and text size.
func ContrastThreshold(level Level, size TextSize) float64 {
	switch {
	case level == LevelAAA && size == SizeLarge:
		return 4.5
	case level == LevelAAA:
		return 7
	case size == SizeLarge:
		return 3
	default:
		return 4.5
	}
}

// IsCompliant reports whether fg on bg meets the given WCAG level and
// text size.
func IsCompliant(fg, bg Color, level Level, size TextSize) bool {
	return ContrastRatio(fg, bg) >= ContrastThreshold(level, size)
}

// autoAdjustMaxAttempts bounds each direction of the adjustment loop.
const autoAdjustMaxAttempts = 20

// autoAdjustStep is the HSL lightness increment per attempt.
const autoAdjustStep = 5.0

// AutoAdjust returns a foreground color meeting the WCAG threshold
// against the background. A compliant input is returned unchanged.
// Otherwise lightness is stepped in 5-unit increments toward the
// background's opposite pole (lighten on dark backgrounds, darken on
// light ones) for up to 20 attempts, then the opposite direction for up
// to 20 more. If neither direction succeeds, pure black or pure white is
// returned, whichever contrasts more — a defined terminal policy, not a
// failure.
func AutoAdjust(fg, bg Color, level Level, size TextSize) Color {
	threshold := ContrastThreshold(level, size)
	if ContrastRatio(fg, bg) >= threshold {
		return fg
	}

	// Dark backgrounds want lighter foregrounds.
	lighten := Luminance(bg) < 0.5

	if c, ok := stepLightness(fg, bg, threshold, lighten); ok {
		return c
	}
	if c, ok := stepLightness(fg, bg, threshold, !lighten); ok {
		return c
	}

	fallback := White
	if ContrastRatio(Black, bg) > ContrastRatio(White, bg) {
		fallback = Black
	}
	Logger().Warn("contrast auto-adjust fell back to pole color",
		"fg", fg.Hex(), "bg", bg.Hex(), "fallback", fallback.Hex())
	return fallback.WithAlpha(fg.A)
}

// stepLightness walks HSL lightness in one direction until the threshold
// is met or the attempts run out.
func stepLightness(fg, bg Color, threshold float64, lighten bool) (Color, bool) {
	hsl := fg.HSL()
	step := autoAdjustStep
	if !lighten {
		step = -step
	}
	for i := 0; i < autoAdjustMaxAttempts; i++ {
		hsl.L = math.Min(100, math.Max(0, hsl.L+step))
		candidate := FromHSLA(hsl, fg.A)
		if ContrastRatio(candidate, bg) >= threshold {
			return candidate, true
		}
		if hsl.L == 0 || hsl.L == 100 {
			break
		}
	}
	return Color{}, false
}

// Deficiency identifies a color-vision deficiency type.
type Deficiency string

// Supported color-vision deficiency types.
const (
	Protanopia    Deficiency = "protanopia"
	Protanomaly   Deficiency = "protanomaly"
	Deuteranopia  Deficiency = "deuteranopia"
	Deuteranomaly Deficiency = "deuteranomaly"
	Tritanopia    Deficiency = "tritanopia"
	Tritanomaly   Deficiency = "tritanomaly"
	Achromatopsia Deficiency = "achromatopsia"
	Achromatomaly Deficiency = "achromatomaly"
)

// Deficiencies lists every supported deficiency type in a stable order.
var Deficiencies = []Deficiency{
	Protanopia, Protanomaly, Deuteranopia, Deuteranomaly,
	Tritanopia, Tritanomaly, Achromatopsia, Achromatomaly,
}

// cvdMatrices are the fixed 3x3 channel transforms per deficiency type.
// Each row sums to approximately 1, preserving channel energy.
var cvdMatrices = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Protanomaly: {
		{0.817, 0.183, 0},
		{0.333, 0.667, 0},
		{0, 0.125, 0.875},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Deuteranomaly: {
		{0.8, 0.2, 0},
		{0.258, 0.742, 0},
		{0, 0.142, 0.858},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
	Tritanomaly: {
		{0.967, 0.033, 0},
		{0, 0.733, 0.267},
		{0, 0.183, 0.817},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
	Achromatomaly: {
		{0.618, 0.320, 0.062},
		{0.163, 0.775, 0.062},
		{0.163, 0.320, 0.516},
	},
}

// Simulate approximates how the color appears to an observer with the
// given color-vision deficiency, applying the type's channel transform in
// linear-light space and clamping the result.
func Simulate(c Color, deficiency Deficiency) (Color, error) {
	m, ok := cvdMatrices[deficiency]
	if !ok {
		return Color{}, &ParseError{
			Input:  string(deficiency),
			Reason: fmt.Sprintf("unknown deficiency type; supported: %v", Deficiencies),
		}
	}
	r, g, b := c.linear()
	return fromLinear(
		m[0][0]*r+m[0][1]*g+m[0][2]*b,
		m[1][0]*r+m[1][1]*g+m[1][2]*b,
		m[2][0]*r+m[2][1]*g+m[2][2]*b,
		c.A,
	), nil
}
