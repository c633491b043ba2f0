package chroma

import (
	"fmt"
	"math"
)

// ShadeStop is one entry of a shade configuration: a stable key (usable
// directly in CSS variable templates) and a target perceptual lightness
// (CIE Lab L, 0-100).
type ShadeStop struct {
	Key       string  `yaml:"key"`
	Lightness float64 `yaml:"lightness"`
}

// ShadeConfig is an ordered list of shade stops. Lightness must be
// strictly monotonic across the list (either direction) so the produced
// scale reads as a monotonic visual ramp.
type ShadeConfig []ShadeStop

// DefaultShadeConfig is the conventional 50-950 ramp, light to dark.
var DefaultShadeConfig = ShadeConfig{
	{Key: "50", Lightness: 97},
	{Key: "100", Lightness: 94},
	{Key: "200", Lightness: 87},
	{Key: "300", Lightness: 78},
	{Key: "400", Lightness: 67},
	{Key: "500", Lightness: 56},
	{Key: "600", Lightness: 46},
	{Key: "700", Lightness: 37},
	{Key: "800", Lightness: 28},
	{Key: "900", Lightness: 20},
	{Key: "950", Lightness: 13},
}

// Validate checks that the config is non-empty, every lightness is within
// [0, 100], and the sequence is strictly monotonic.
func (cfg ShadeConfig) Validate() error {
	if len(cfg) == 0 {
		return &RangeError{What: "shade config length", Value: 0}
	}
	for _, s := range cfg {
		if s.Lightness < 0 || s.Lightness > 100 {
			return &RangeError{What: fmt.Sprintf("shade %q lightness", s.Key), Value: s.Lightness}
		}
	}
	if len(cfg) < 2 {
		return nil
	}
	ascending := cfg[1].Lightness > cfg[0].Lightness
	for i := 1; i < len(cfg); i++ {
		d := cfg[i].Lightness - cfg[i-1].Lightness
		if d == 0 || (d > 0) != ascending {
			return &RangeError{What: fmt.Sprintf("shade %q lightness (non-monotonic)", cfg[i].Key), Value: cfg[i].Lightness}
		}
	}
	return nil
}

// ShadeEntry is one resolved entry of a Scale.
type ShadeEntry struct {
	Key   string
	Color Color
}

// Scale is an ordered mapping from shade key to color. Insertion order is
// the visual order of the ramp and is preserved by Keys and Entries.
type Scale struct {
	keys   []string
	colors map[string]Color
}

// newScale builds a scale from ordered entries.
func newScale(entries []ShadeEntry) Scale {
	s := Scale{
		keys:   make([]string, 0, len(entries)),
		colors: make(map[string]Color, len(entries)),
	}
	for _, e := range entries {
		s.keys = append(s.keys, e.Key)
		s.colors[e.Key] = e.Color
	}
	return s
}

// Len returns the number of shades.
func (s Scale) Len() int { return len(s.keys) }

// Keys returns the shade keys in ramp order.
func (s Scale) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Color returns the color for a shade key.
func (s Scale) Color(key string) (Color, bool) {
	c, ok := s.colors[key]
	return c, ok
}

// Hex returns the hex string for a shade key, or "" if absent.
func (s Scale) Hex(key string) string {
	c, ok := s.colors[key]
	if !ok {
		return ""
	}
	return c.Hex()
}

// Entries returns the resolved entries in ramp order.
func (s Scale) Entries() []ShadeEntry {
	out := make([]ShadeEntry, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, ShadeEntry{Key: k, Color: s.colors[k]})
	}
	return out
}

// ScaleOption configures shade-scale generation.
type ScaleOption func(*scaleOptions)

type scaleOptions struct {
	damping      float64 // saturation damping strength at extreme lightness
	chromaFactor float64 // global chroma multiplier
	grayChroma   float64 // residual chroma for gray scales
}

func defaultScaleOptions() scaleOptions {
	return scaleOptions{
		damping:      0.35,
		chromaFactor: 1,
		grayChroma:   3,
	}
}

// WithSaturationDamping sets how strongly chroma is damped at extreme
// lightness (0 disables damping). The default 0.35 avoids neon highlights
// and muddy near-blacks; it is a tuned preset, not a physical law.
func WithSaturationDamping(d float64) ScaleOption {
	return func(o *scaleOptions) { o.damping = math.Max(0, d) }
}

// WithChromaFactor scales the chroma carried over from the base color.
func WithChromaFactor(f float64) ScaleOption {
	return func(o *scaleOptions) { o.chromaFactor = math.Max(0, f) }
}

// WithGrayChroma sets the residual chroma used by gray-scale generation.
// A small non-zero value keeps grays from looking dead.
func WithGrayChroma(c float64) ScaleOption {
	return func(o *scaleOptions) { o.grayChroma = math.Max(0, c) }
}

// dampChroma applies the "natural" damping multiplier: full chroma within
// 25 L-units of mid-lightness, quadratic falloff beyond.
func dampChroma(chroma, lightness, damping float64) float64 {
	d := math.Abs(lightness-50) - 25
	if d <= 0 || damping == 0 {
		return chroma
	}
	f := 1 - damping*(d/25)*(d/25)
	if f < 0 {
		f = 0
	}
	return chroma * f
}

// GenerateScale builds an ordered shade scale from a base color. Hue is
// held fixed in LCh; each stop targets its configured Lab lightness, with
// chroma optionally damped at the extremes.
func GenerateScale(base Color, cfg ShadeConfig, opts ...ScaleOption) (Scale, error) {
	if err := cfg.Validate(); err != nil {
		return Scale{}, err
	}
	o := defaultScaleOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lch := base.LCh()
	chroma := lch.C * o.chromaFactor

	entries := make([]ShadeEntry, 0, len(cfg))
	for _, stop := range cfg {
		entries = append(entries, ShadeEntry{
			Key: stop.Key,
			Color: FromLCh(LCh{
				L: stop.Lightness,
				C: dampChroma(chroma, stop.Lightness, o.damping),
				H: lch.H,
			}),
		})
	}
	return newScale(entries), nil
}

// GenerateGrayScale builds a gray ramp carrying a small hue tint from the
// base color, so the grays stay visually related to the palette instead of
// reading as dead neutral.
func GenerateGrayScale(base Color, cfg ShadeConfig, opts ...ScaleOption) (Scale, error) {
	o := defaultScaleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tinted := FromLCh(LCh{L: 50, C: o.grayChroma, H: base.LCh().H})
	tintOpts := append([]ScaleOption{}, opts...)
	tintOpts = append(tintOpts, WithChromaFactor(1), WithSaturationDamping(0))
	return GenerateScale(tinted, cfg, tintOpts...)
}

// darkTargetLightness maps a light-theme target lightness to its dark
// variant: inverted, floored away from pure black, and gamma-biased so
// mid shades keep contrast against dark backgrounds. Naive inversion
// yields insufficient contrast there.
func darkTargetLightness(l float64) float64 {
	inverted := 100 - l
	return 4 + 92*math.Pow(inverted/100, 1.1)
}

// DarkVariant returns the config re-targeted for dark backgrounds.
func (cfg ShadeConfig) DarkVariant() ShadeConfig {
	out := make(ShadeConfig, len(cfg))
	for i, s := range cfg {
		out[i] = ShadeStop{Key: s.Key, Lightness: darkTargetLightness(s.Lightness)}
	}
	return out
}

// GenerateDarkScale builds the dark-theme variant of a scale by
// re-deriving shades with a contrast-biased lightness curve rather than
// mirroring the light scale.
func GenerateDarkScale(base Color, cfg ShadeConfig, opts ...ScaleOption) (Scale, error) {
	if err := cfg.Validate(); err != nil {
		return Scale{}, err
	}
	return GenerateScale(base, cfg.DarkVariant(), opts...)
}

// SemanticHues holds the hue targets (degrees) for semantic colors.
// The defaults are tuned presets; override per theme as needed.
type SemanticHues struct {
	Success float64 `yaml:"success"`
	Warning float64 `yaml:"warning"`
	Danger  float64 `yaml:"danger"`
	Info    float64 `yaml:"info"`
}

// DefaultSemanticHues is the stock semantic hue preset.
var DefaultSemanticHues = SemanticHues{Success: 142, Warning: 38, Danger: 4, Info: 210}

// minSemanticChroma keeps semantic colors legible even for near-gray
// brand colors.
const minSemanticChroma = 28

// semanticBase rotates the base color to a target hue, keeping its
// lightness and (floored) chroma so the palette stays visually related to
// the brand color instead of using fixed stock hues.
func semanticBase(base Color, hue float64) Color {
	lch := base.LCh()
	return FromLCh(LCh{
		L: lch.L,
		C: math.Max(lch.C, minSemanticChroma),
		H: normDeg(hue),
	})
}

// ThemeMode selects light or dark shade derivation for a theme.
type ThemeMode string

// Theme modes.
const (
	ModeLight ThemeMode = "light"
	ModeDark  ThemeMode = "dark"
)

// Theme is a full semantic palette: one scale per role.
type Theme struct {
	Mode    ThemeMode
	Primary Scale
	Success Scale
	Warning Scale
	Danger  Scale
	Info    Scale
	Gray    Scale
}

// ThemeOption configures theme generation.
type ThemeOption func(*themeOptions)

type themeOptions struct {
	cfg       ShadeConfig
	mode      ThemeMode
	hues      SemanticHues
	scaleOpts []ScaleOption
}

// WithThemeShadeConfig replaces the default shade configuration.
func WithThemeShadeConfig(cfg ShadeConfig) ThemeOption {
	return func(o *themeOptions) { o.cfg = cfg }
}

// WithThemeMode selects light or dark derivation.
func WithThemeMode(mode ThemeMode) ThemeOption {
	return func(o *themeOptions) { o.mode = mode }
}

// WithSemanticHues replaces the semantic hue preset.
func WithSemanticHues(h SemanticHues) ThemeOption {
	return func(o *themeOptions) { o.hues = h }
}

// WithThemeScaleOptions forwards options to every generated scale.
func WithThemeScaleOptions(opts ...ScaleOption) ThemeOption {
	return func(o *themeOptions) { o.scaleOpts = opts }
}

// GenerateNaturalTheme derives a complete semantic theme from one brand
// color: a primary scale, hue-rotated semantic scales, and a tinted gray
// scale. Dark mode re-derives every scale with the contrast-biased curve.
func GenerateNaturalTheme(base Color, opts ...ThemeOption) (Theme, error) {
	o := themeOptions{
		cfg:  DefaultShadeConfig,
		mode: ModeLight,
		hues: DefaultSemanticHues,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return Theme{}, err
	}

	cfg := o.cfg
	if o.mode == ModeDark {
		cfg = o.cfg.DarkVariant()
	}

	gen := func(c Color) (Scale, error) {
		return GenerateScale(c, cfg, o.scaleOpts...)
	}

	primary, err := gen(base)
	if err != nil {
		return Theme{}, err
	}
	success, err := gen(semanticBase(base, o.hues.Success))
	if err != nil {
		return Theme{}, err
	}
	warning, err := gen(semanticBase(base, o.hues.Warning))
	if err != nil {
		return Theme{}, err
	}
	danger, err := gen(semanticBase(base, o.hues.Danger))
	if err != nil {
		return Theme{}, err
	}
	info, err := gen(semanticBase(base, o.hues.Info))
	if err != nil {
		return Theme{}, err
	}
	gray, err := GenerateGrayScale(base, cfg, o.scaleOpts...)
	if err != nil {
		return Theme{}, err
	}

	Logger().Debug("generated natural theme",
		"base", base.Hex(), "mode", string(o.mode), "shades", len(cfg))

	return Theme{
		Mode:    o.mode,
		Primary: primary,
		Success: success,
		Warning: warning,
		Danger:  danger,
		Info:    info,
		Gray:    gray,
	}, nil
}

// CSSVariables renders the theme as ordered CSS custom property
// declarations following the --{prefix}-{semantic}-{shade} template.
func (t Theme) CSSVariables(prefix string) []string {
	if prefix == "" {
		prefix = "color"
	}
	roles := []struct {
		name  string
		scale Scale
	}{
		{"primary", t.Primary},
		{"success", t.Success},
		{"warning", t.Warning},
		{"danger", t.Danger},
		{"info", t.Info},
		{"gray", t.Gray},
	}
	var out []string
	for _, role := range roles {
		for _, e := range role.scale.Entries() {
			out = append(out, fmt.Sprintf("--%s-%s-%s: %s;", prefix, role.name, e.Key, e.Color.Hex()))
		}
	}
	return out
}
