package chroma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GradientStop is a color plus an optional position along the gradient
// axis in [0, 1]. Stops without explicit positions are auto-distributed
// evenly, preserving relative order.
type GradientStop struct {
	Color       Color
	Position    float64
	HasPosition bool
}

// StopAt creates a stop with an explicit position.
func StopAt(c Color, position float64) GradientStop {
	return GradientStop{Color: c, Position: position, HasPosition: true}
}

// Stops converts a color list into positionless stops.
func Stops(colors ...Color) []GradientStop {
	out := make([]GradientStop, len(colors))
	for i, c := range colors {
		out[i] = GradientStop{Color: c}
	}
	return out
}

// GradientKind selects the CSS gradient function to emit.
type GradientKind string

// Gradient kinds.
const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
	GradientConic  GradientKind = "conic"
)

// GradientOption configures gradient emission.
type GradientOption func(*gradientOptions)

type gradientOptions struct {
	angle     float64 // linear-gradient direction, degrees
	fromAngle float64 // conic-gradient starting angle, degrees
	shape     string  // radial-gradient shape
	position  string  // radial/conic center position
	space     Space   // interpolation space for smoothing
	segments  int     // inserted sub-stops per pair; 0 disables smoothing
}

func defaultGradientOptions() gradientOptions {
	return gradientOptions{
		angle:    90,
		shape:    "circle",
		position: "center",
		space:    SpaceRGB,
	}
}

// WithAngle sets the linear-gradient direction in degrees.
func WithAngle(deg float64) GradientOption {
	return func(o *gradientOptions) { o.angle = deg }
}

// WithFromAngle sets the conic-gradient starting angle in degrees.
func WithFromAngle(deg float64) GradientOption {
	return func(o *gradientOptions) { o.fromAngle = deg }
}

// WithShape sets the radial-gradient shape ("circle" or "ellipse").
func WithShape(shape string) GradientOption {
	return func(o *gradientOptions) { o.shape = shape }
}

// WithPosition sets the radial/conic center position (CSS position syntax).
func WithPosition(pos string) GradientOption {
	return func(o *gradientOptions) { o.position = pos }
}

// WithInterpolationSpace selects the space used by smoothing:
// SpaceRGB, SpaceHSL, or SpaceLab.
func WithInterpolationSpace(space Space) GradientOption {
	return func(o *gradientOptions) { o.space = space }
}

// WithSmoothing inserts the given number of Bézier-interpolated sub-stops
// between each adjacent pair, reducing banding on wide hue spans.
func WithSmoothing(segments int) GradientOption {
	return func(o *gradientOptions) { o.segments = segments }
}

// GenerateGradient builds a CSS gradient of the given kind from a plain
// color list with evenly distributed stops.
func GenerateGradient(kind GradientKind, colors []Color, opts ...GradientOption) (string, error) {
	stops := Stops(colors...)
	switch kind {
	case GradientLinear:
		return Linear(stops, opts...)
	case GradientRadial:
		return Radial(stops, opts...)
	case GradientConic:
		return Conic(stops, opts...)
	default:
		return "", &RangeError{What: fmt.Sprintf("gradient kind %q", string(kind)), Value: 0}
	}
}

// Linear emits a CSS linear-gradient() from the stop list.
func Linear(stops []GradientStop, opts ...GradientOption) (string, error) {
	o := defaultGradientOptions()
	for _, opt := range opts {
		opt(&o)
	}
	resolved, err := prepareStops(stops, o)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("linear-gradient(%sdeg, %s)", fmtFloat(o.angle), joinStops(resolved)), nil
}

// Radial emits a CSS radial-gradient() from the stop list.
func Radial(stops []GradientStop, opts ...GradientOption) (string, error) {
	o := defaultGradientOptions()
	for _, opt := range opts {
		opt(&o)
	}
	resolved, err := prepareStops(stops, o)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("radial-gradient(%s at %s, %s)", o.shape, o.position, joinStops(resolved)), nil
}

// Conic emits a CSS conic-gradient() from the stop list.
func Conic(stops []GradientStop, opts ...GradientOption) (string, error) {
	o := defaultGradientOptions()
	for _, opt := range opts {
		opt(&o)
	}
	resolved, err := prepareStops(stops, o)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("conic-gradient(from %sdeg at %s, %s)", fmtFloat(o.fromAngle), o.position, joinStops(resolved)), nil
}

// prepareStops validates and positions the stop list, then applies
// optional smoothing.
func prepareStops(stops []GradientStop, o gradientOptions) ([]GradientStop, error) {
	resolved, err := normalizeStops(stops)
	if err != nil {
		return nil, err
	}
	if o.segments > 0 {
		resolved, err = smoothStops(resolved, o.space, o.segments)
		if err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// normalizeStops validates explicit positions and auto-distributes the
// implicit ones. Explicit positions outside [0, 1] or decreasing along
// the list are an error, never a silent reorder.
func normalizeStops(stops []GradientStop) ([]GradientStop, error) {
	if len(stops) < 2 {
		return nil, &RangeError{What: "gradient stop count", Value: float64(len(stops))}
	}

	prev := math.Inf(-1)
	for _, s := range stops {
		if !s.HasPosition {
			continue
		}
		if s.Position < 0 || s.Position > 1 {
			return nil, &RangeError{What: "gradient stop position", Value: s.Position}
		}
		if s.Position < prev {
			return nil, &RangeError{What: "gradient stop position (non-monotonic)", Value: s.Position}
		}
		prev = s.Position
	}

	out := make([]GradientStop, len(stops))
	copy(out, stops)

	// Endpoints without explicit positions anchor the ends.
	if !out[0].HasPosition {
		out[0].Position, out[0].HasPosition = 0, true
	}
	if !out[len(out)-1].HasPosition {
		out[len(out)-1].Position, out[len(out)-1].HasPosition = 1, true
	}

	// Distribute each unanchored run evenly between its anchors.
	last := 0
	for i := 1; i < len(out); i++ {
		if !out[i].HasPosition {
			continue
		}
		if gap := i - last; gap > 1 {
			span := out[i].Position - out[last].Position
			for j := last + 1; j < i; j++ {
				out[j].Position = out[last].Position + span*float64(j-last)/float64(gap)
				out[j].HasPosition = true
			}
		}
		last = i
	}
	return out, nil
}

// joinStops renders "color position%" pairs.
func joinStops(stops []GradientStop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = s.Color.Hex() + " " + fmtPercent(s.Position)
	}
	return strings.Join(parts, ", ")
}

// fmtPercent renders a [0,1] position as a CSS percentage with at most
// two decimals.
func fmtPercent(p float64) string {
	return fmtFloat(math.Round(p*10000)/100) + "%"
}

// fmtFloat renders a float without trailing zeros.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stopVec is a stop's coordinates in the interpolation space.
type stopVec [3]float64

// toStopVec projects a color into the interpolation space. For HSL the
// hue is unwrapped against the previous stop so interpolation follows the
// shorter arc.
func toStopVec(c Color, space Space, prev *stopVec) (stopVec, error) {
	switch space {
	case SpaceRGB:
		return stopVec{float64(c.R), float64(c.G), float64(c.B)}, nil
	case SpaceHSL:
		hsl := c.HSL()
		h := hsl.H
		if prev != nil {
			for h-prev[0] > 180 {
				h -= 360
			}
			for h-prev[0] < -180 {
				h += 360
			}
		}
		return stopVec{h, hsl.S, hsl.L}, nil
	case SpaceLab:
		lab := c.Lab()
		return stopVec{lab.L, lab.A, lab.B}, nil
	default:
		return stopVec{}, &ConversionError{Space: space}
	}
}

// fromStopVec maps interpolation-space coordinates back to a color.
func fromStopVec(v stopVec, space Space, alpha float64) Color {
	switch space {
	case SpaceHSL:
		return FromHSLA(HSL{H: normDeg(v[0]), S: clamp100(v[1]), L: clamp100(v[2])}, alpha)
	case SpaceLab:
		return FromLab(Lab{L: v[0], A: v[1], B: v[2]}).WithAlpha(alpha)
	default:
		return NewRGBA(clampByte(v[0]), clampByte(v[1]), clampByte(v[2]), alpha)
	}
}

// clamp100 clamps to [0, 100].
func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// smoothStops inserts cubic-Bézier-interpolated sub-stops between each
// adjacent pair. Tangents are Catmull-Rom derived from neighboring stops
// and the cubic is evaluated in closed form, so the cost is linear in the
// number of emitted stops.
func smoothStops(stops []GradientStop, space Space, segments int) ([]GradientStop, error) {
	n := len(stops)
	vecs := make([]stopVec, n)
	for i, s := range stops {
		var prev *stopVec
		if i > 0 {
			prev = &vecs[i-1]
		}
		v, err := toStopVec(s.Color, space, prev)
		if err != nil {
			return nil, err
		}
		vecs[i] = v
	}

	// Catmull-Rom tangents; one-sided at the endpoints.
	tangents := make([]stopVec, n)
	for i := range vecs {
		switch i {
		case 0:
			tangents[i] = vecSub(vecs[1], vecs[0])
		case n - 1:
			tangents[i] = vecSub(vecs[n-1], vecs[n-2])
		default:
			tangents[i] = vecScale(vecSub(vecs[i+1], vecs[i-1]), 0.5)
		}
	}

	out := make([]GradientStop, 0, (n-1)*segments+1)
	for i := 0; i < n-1; i++ {
		p0, p1 := vecs[i], vecs[i+1]
		c1 := vecAdd(p0, vecScale(tangents[i], 1.0/3))
		c2 := vecSub(p1, vecScale(tangents[i+1], 1.0/3))

		out = append(out, stops[i])
		for j := 1; j < segments; j++ {
			t := float64(j) / float64(segments)
			v := cubicBezier(p0, c1, c2, p1, t)
			pos := stops[i].Position + (stops[i+1].Position-stops[i].Position)*t
			alpha := stops[i].Color.A + (stops[i+1].Color.A-stops[i].Color.A)*t
			out = append(out, StopAt(fromStopVec(v, space, alpha), pos))
		}
	}
	out = append(out, stops[n-1])
	return out, nil
}

// cubicBezier evaluates a cubic Bézier in closed form per component.
func cubicBezier(p0, c1, c2, p1 stopVec, t float64) stopVec {
	mt := 1 - t
	w0 := mt * mt * mt
	w1 := 3 * mt * mt * t
	w2 := 3 * mt * t * t
	w3 := t * t * t
	var v stopVec
	for i := 0; i < 3; i++ {
		v[i] = w0*p0[i] + w1*c1[i] + w2*c2[i] + w3*p1[i]
	}
	return v
}

func vecAdd(a, b stopVec) stopVec {
	return stopVec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func vecSub(a, b stopVec) stopVec {
	return stopVec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func vecScale(a stopVec, f float64) stopVec {
	return stopVec{a[0] * f, a[1] * f, a[2] * f}
}
