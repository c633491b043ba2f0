package chroma

import "math"

// BlendMode selects a per-channel (separable) or HSL-derived
// (non-separable) blend formula, following the W3C Compositing and
// Blending Level 1 specification plus the common Photoshop extensions.
type BlendMode string

// Supported blend modes.
const (
	BlendNormal      BlendMode = "normal"
	BlendMultiply    BlendMode = "multiply"
	BlendScreen      BlendMode = "screen"
	BlendOverlay     BlendMode = "overlay"
	BlendDarken      BlendMode = "darken"
	BlendLighten     BlendMode = "lighten"
	BlendColorDodge  BlendMode = "color-dodge"
	BlendColorBurn   BlendMode = "color-burn"
	BlendHardLight   BlendMode = "hard-light"
	BlendSoftLight   BlendMode = "soft-light"
	BlendDifference  BlendMode = "difference"
	BlendExclusion   BlendMode = "exclusion"
	BlendAverage     BlendMode = "average"
	BlendNegation    BlendMode = "negation"
	BlendSubtract    BlendMode = "subtract"
	BlendDivide      BlendMode = "divide"
	BlendLinearBurn  BlendMode = "linear-burn"
	BlendLinearDodge BlendMode = "linear-dodge"
	BlendLinearLight BlendMode = "linear-light"
	BlendVividLight  BlendMode = "vivid-light"
	BlendPinLight    BlendMode = "pin-light"
	BlendHardMix     BlendMode = "hard-mix"
	BlendHue         BlendMode = "hue"
	BlendSaturation  BlendMode = "saturation"
	BlendColor       BlendMode = "color"
	BlendLuminosity  BlendMode = "luminosity"
)

// BlendModes lists every supported mode in a stable order.
var BlendModes = []BlendMode{
	BlendNormal, BlendMultiply, BlendScreen, BlendOverlay, BlendDarken,
	BlendLighten, BlendColorDodge, BlendColorBurn, BlendHardLight,
	BlendSoftLight, BlendDifference, BlendExclusion, BlendAverage,
	BlendNegation, BlendSubtract, BlendDivide, BlendLinearBurn,
	BlendLinearDodge, BlendLinearLight, BlendVividLight, BlendPinLight,
	BlendHardMix, BlendHue, BlendSaturation, BlendColor, BlendLuminosity,
}

// Blend combines base and overlay using the given mode. Channels are
// treated as unit-range sRGB values; the result keeps the base alpha and
// clamps every channel. Unknown modes fall back to BlendNormal.
func Blend(base, overlay Color, mode BlendMode) Color {
	br, bg, bb := base.unit()
	or, og, ob := overlay.unit()

	var r, g, b float64
	if f := separableBlendFunc(mode); f != nil {
		r, g, b = f(br, or), f(bg, og), f(bb, ob)
	} else {
		r, g, b = nonSeparableBlend(mode, br, bg, bb, or, og, ob)
	}
	return fromUnit(r, g, b, base.A)
}

// separableBlendFunc returns the per-channel formula B(b, s) for separable
// modes, or nil for non-separable ones. b is the backdrop (base) channel,
// s the source (overlay) channel, both unit range.
func separableBlendFunc(mode BlendMode) func(b, s float64) float64 {
	switch mode {
	case BlendMultiply:
		return func(b, s float64) float64 { return b * s }
	case BlendScreen:
		return blendScreen
	case BlendOverlay:
		// HardLight with swapped operands.
		return func(b, s float64) float64 { return blendHardLight(s, b) }
	case BlendDarken:
		return math.Min
	case BlendLighten:
		return math.Max
	case BlendColorDodge:
		return blendColorDodge
	case BlendColorBurn:
		return blendColorBurn
	case BlendHardLight:
		return blendHardLight
	case BlendSoftLight:
		return blendSoftLight
	case BlendDifference:
		return func(b, s float64) float64 { return math.Abs(b - s) }
	case BlendExclusion:
		return func(b, s float64) float64 { return b + s - 2*b*s }
	case BlendAverage:
		return func(b, s float64) float64 { return (b + s) / 2 }
	case BlendNegation:
		return func(b, s float64) float64 { return 1 - math.Abs(1-b-s) }
	case BlendSubtract:
		return func(b, s float64) float64 { return math.Max(0, b-s) }
	case BlendDivide:
		return func(b, s float64) float64 {
			if s == 0 {
				return 1
			}
			return math.Min(1, b/s)
		}
	case BlendLinearBurn:
		return func(b, s float64) float64 { return math.Max(0, b+s-1) }
	case BlendLinearDodge:
		return func(b, s float64) float64 { return math.Min(1, b+s) }
	case BlendLinearLight:
		return blendLinearLight
	case BlendVividLight:
		return blendVividLight
	case BlendPinLight:
		return func(b, s float64) float64 {
			if s < 0.5 {
				return math.Min(b, 2*s)
			}
			return math.Max(b, 2*s-1)
		}
	case BlendHardMix:
		return func(b, s float64) float64 {
			if blendVividLight(b, s) < 0.5 {
				return 0
			}
			return 1
		}
	case BlendHue, BlendSaturation, BlendColor, BlendLuminosity:
		return nil
	default: // BlendNormal and unknown modes
		return func(_, s float64) float64 { return s }
	}
}

// blendScreen: 1 - (1-b)(1-s).
func blendScreen(b, s float64) float64 {
	return b + s - b*s
}

// blendColorDodge: b / (1-s), with the W3C endpoint cases.
func blendColorDodge(b, s float64) float64 {
	if b == 0 {
		return 0
	}
	if s == 1 {
		return 1
	}
	return math.Min(1, b/(1-s))
}

// blendColorBurn: 1 - (1-b)/s, with the W3C endpoint cases.
func blendColorBurn(b, s float64) float64 {
	if b == 1 {
		return 1
	}
	if s == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-b)/s)
}

// blendHardLight: Multiply below mid-source, Screen above.
func blendHardLight(b, s float64) float64 {
	if s <= 0.5 {
		return b * (2 * s)
	}
	return blendScreen(b, 2*s-1)
}

// blendSoftLight implements the W3C soft-light formula with its
// piecewise D(x) helper.
func blendSoftLight(b, s float64) float64 {
	if s <= 0.5 {
		return b - (1-2*s)*b*(1-b)
	}
	var d float64
	if b <= 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math.Sqrt(b)
	}
	return b + (2*s-1)*(d-b)
}

// blendLinearLight: LinearBurn below mid-source, LinearDodge above.
func blendLinearLight(b, s float64) float64 {
	v := b + 2*s - 1
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// blendVividLight: ColorBurn below mid-source, ColorDodge above.
func blendVividLight(b, s float64) float64 {
	if s < 0.5 {
		return blendColorBurn(b, 2*s)
	}
	return blendColorDodge(b, 2*s-1)
}

// Non-separable modes operate on whole colors via the W3C luminosity and
// saturation transfer functions.

// blendLum is the W3C Lum() weighting.
func blendLum(r, g, b float64) float64 {
	return 0.3*r + 0.59*g + 0.11*b
}

// clipColor pulls out-of-range channels back toward the luminosity.
func clipColor(r, g, b float64) (float64, float64, float64) {
	l := blendLum(r, g, b)
	min := math.Min(r, math.Min(g, b))
	max := math.Max(r, math.Max(g, b))
	if min < 0 && l != min {
		r = l + (r-l)*l/(l-min)
		g = l + (g-l)*l/(l-min)
		b = l + (b-l)*l/(l-min)
	}
	if max > 1 && l != max {
		r = l + (r-l)*(1-l)/(max-l)
		g = l + (g-l)*(1-l)/(max-l)
		b = l + (b-l)*(1-l)/(max-l)
	}
	return r, g, b
}

// setLum shifts a color to the target luminosity.
func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - blendLum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// sat is the W3C Sat(): channel spread.
func sat(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

// setSat rescales the channel spread to the target saturation, keeping
// channel order.
func setSat(r, g, b, s float64) (float64, float64, float64) {
	chans := [3]float64{r, g, b}
	minI, midI, maxI := 0, 1, 2
	// Order indices so chans[minI] <= chans[midI] <= chans[maxI].
	if chans[minI] > chans[midI] {
		minI, midI = midI, minI
	}
	if chans[midI] > chans[maxI] {
		midI, maxI = maxI, midI
	}
	if chans[minI] > chans[midI] {
		minI, midI = midI, minI
	}

	if chans[maxI] > chans[minI] {
		chans[midI] = (chans[midI] - chans[minI]) * s / (chans[maxI] - chans[minI])
		chans[maxI] = s
	} else {
		chans[midI] = 0
		chans[maxI] = 0
	}
	chans[minI] = 0
	return chans[0], chans[1], chans[2]
}

// nonSeparableBlend dispatches the four W3C non-separable modes.
func nonSeparableBlend(mode BlendMode, br, bg, bb, or, og, ob float64) (float64, float64, float64) {
	switch mode {
	case BlendHue:
		r, g, b := setSat(or, og, ob, sat(br, bg, bb))
		return setLum(r, g, b, blendLum(br, bg, bb))
	case BlendSaturation:
		r, g, b := setSat(br, bg, bb, sat(or, og, ob))
		return setLum(r, g, b, blendLum(br, bg, bb))
	case BlendColor:
		return setLum(or, og, ob, blendLum(br, bg, bb))
	case BlendLuminosity:
		return setLum(br, bg, bb, blendLum(or, og, ob))
	default:
		return or, og, ob
	}
}
