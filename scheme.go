package chroma

import (
	"fmt"
	"math"
	"sort"
)

// HarmonyType identifies a hue-relationship pattern.
type HarmonyType string

// Supported harmony types.
const (
	HarmonyComplementary      HarmonyType = "complementary"
	HarmonyAnalogous          HarmonyType = "analogous"
	HarmonyTriadic            HarmonyType = "triadic"
	HarmonyTetradic           HarmonyType = "tetradic"
	HarmonySquare             HarmonyType = "square"
	HarmonySplitComplementary HarmonyType = "split-complementary"
	HarmonyCompound           HarmonyType = "compound"
	HarmonyMonochromatic      HarmonyType = "monochromatic"
)

// HarmonyTypes lists every harmony type in a stable order.
var HarmonyTypes = []HarmonyType{
	HarmonyComplementary, HarmonyAnalogous, HarmonyTriadic,
	HarmonyTetradic, HarmonySquare, HarmonySplitComplementary,
	HarmonyCompound, HarmonyMonochromatic,
}

// harmonyRotations maps each hue-based harmony to its rotation pattern
// in degrees from the base hue.
var harmonyRotations = map[HarmonyType][]float64{
	HarmonyComplementary:      {180},
	HarmonyAnalogous:          {-30, 30},
	HarmonyTriadic:            {120, 240},
	HarmonyTetradic:           {60, 180, 240},
	HarmonySquare:             {90, 180, 270},
	HarmonySplitComplementary: {150, 210},
	HarmonyCompound:           {30, 180, 210},
}

// monoLightnessOffsets are the Lab lightness steps used by the
// monochromatic harmony.
var monoLightnessOffsets = []float64{-24, -12, 12, 24}

// ColorScheme is a derived harmony: the base color, the full ordered
// color list (base first), and a harmony quality score in [0, 1].
type ColorScheme struct {
	Type   HarmonyType
	Base   Color
	Colors []Color
	Score  float64
}

// SchemeOption configures scheme generation.
type SchemeOption func(*schemeOptions)

type schemeOptions struct {
	analogousStep float64
}

// WithAnalogousStep overrides the ±30° analogous rotation step.
func WithAnalogousStep(deg float64) SchemeOption {
	return func(o *schemeOptions) { o.analogousStep = deg }
}

// GenerateScheme derives a harmony scheme from a base color. The result
// includes the base as its first color and is scored by EvaluateHarmony.
func GenerateScheme(base Color, harmony HarmonyType, opts ...SchemeOption) (ColorScheme, error) {
	o := schemeOptions{analogousStep: 30}
	for _, opt := range opts {
		opt(&o)
	}

	colors := []Color{base}
	switch harmony {
	case HarmonyMonochromatic:
		lch := base.LCh()
		for _, d := range monoLightnessOffsets {
			l := math.Min(98, math.Max(2, lch.L+d))
			colors = append(colors, FromLCh(LCh{L: l, C: lch.C, H: lch.H}))
		}
	default:
		rotations, ok := harmonyRotations[harmony]
		if !ok {
			return ColorScheme{}, &RangeError{What: fmt.Sprintf("harmony type %q", string(harmony)), Value: 0}
		}
		if harmony == HarmonyAnalogous {
			rotations = []float64{-o.analogousStep, o.analogousStep}
		}
		for _, deg := range rotations {
			colors = append(colors, RotateHue(base, deg))
		}
	}

	scheme := ColorScheme{Type: harmony, Base: base, Colors: colors}
	scheme.Score = EvaluateHarmony(scheme)
	return scheme, nil
}

// GenerateAdaptiveScheme evaluates every harmony type for the base color
// and returns the one with the highest harmony score.
func GenerateAdaptiveScheme(base Color, opts ...SchemeOption) (ColorScheme, error) {
	var best ColorScheme
	for i, h := range HarmonyTypes {
		s, err := GenerateScheme(base, h, opts...)
		if err != nil {
			return ColorScheme{}, err
		}
		if i == 0 || s.Score > best.Score {
			best = s
		}
	}
	return best, nil
}

// EvaluateHarmony scores a scheme in [0, 1] by aggregating hue spacing
// regularity with saturation and lightness balance. Monochromatic schemes
// are scored on hue tightness instead of spacing.
func EvaluateHarmony(scheme ColorScheme) float64 {
	n := len(scheme.Colors)
	if n < 2 {
		return 0
	}

	hues := make([]float64, n)
	sats := make([]float64, n)
	lights := make([]float64, n)
	for i, c := range scheme.Colors {
		hsl := c.HSL()
		hues[i], sats[i], lights[i] = hsl.H, hsl.S, hsl.L
	}

	var hueScore float64
	if scheme.Type == HarmonyMonochromatic {
		// A mono scheme is harmonious when its hues barely spread.
		hueScore = 1 - hueSpread(hues)/180
	} else {
		hueScore = hueSpacingScore(hues)
	}

	// Balance terms: low channel spread reads as coherent.
	satScore := 1 - clamp01(stdDev(sats)/50)
	lightScore := 1 - clamp01(stdDev(lights)/50)

	return clamp01(0.5*hueScore + 0.25*satScore + 0.25*lightScore)
}

// hueSpacingScore measures how evenly the hues divide the wheel:
// 1 for perfectly uniform spacing, falling toward 0 as gaps collapse.
func hueSpacingScore(hues []float64) float64 {
	n := len(hues)
	sorted := make([]float64, n)
	copy(sorted, hues)
	sort.Float64s(sorted)

	ideal := 360.0 / float64(n)
	var deviation float64
	for i := 0; i < n; i++ {
		gap := sorted[(i+1)%n] - sorted[i]
		if i == n-1 {
			gap += 360
		}
		deviation += math.Abs(gap - ideal)
	}
	// Worst case: all hues coincide, deviation = 2*(360 - ideal).
	worst := 2 * (360 - ideal)
	return clamp01(1 - deviation/worst)
}

// hueSpread is the smallest wheel arc containing all hues.
func hueSpread(hues []float64) float64 {
	n := len(hues)
	if n < 2 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, hues)
	sort.Float64s(sorted)

	largestGap := sorted[0] + 360 - sorted[n-1]
	for i := 1; i < n; i++ {
		if gap := sorted[i] - sorted[i-1]; gap > largestGap {
			largestGap = gap
		}
	}
	return 360 - largestGap
}

// stdDev is the population standard deviation.
func stdDev(vals []float64) float64 {
	var mean float64
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	var sum float64
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)))
}
