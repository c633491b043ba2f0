package chroma

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestShadeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ShadeConfig
		wantErr bool
	}{
		{"default", DefaultShadeConfig, false},
		{"single stop", ShadeConfig{{Key: "500", Lightness: 50}}, false},
		{"ascending", ShadeConfig{{Key: "a", Lightness: 10}, {Key: "b", Lightness: 40}, {Key: "c", Lightness: 90}}, false},
		{"empty", ShadeConfig{}, true},
		{"lightness above 100", ShadeConfig{{Key: "a", Lightness: 120}}, true},
		{"lightness below 0", ShadeConfig{{Key: "a", Lightness: -1}}, true},
		{"plateau", ShadeConfig{{Key: "a", Lightness: 50}, {Key: "b", Lightness: 50}}, true},
		{"direction change", ShadeConfig{{Key: "a", Lightness: 20}, {Key: "b", Lightness: 60}, {Key: "c", Lightness: 40}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var rerr *RangeError
				if !errors.As(err, &rerr) {
					t.Errorf("Validate() error type = %T, want *RangeError", err)
				}
			}
		})
	}
}

func TestGenerateScaleShape(t *testing.T) {
	base := MustHex("#1890ff")
	scale, err := GenerateScale(base, DefaultShadeConfig)
	if err != nil {
		t.Fatalf("GenerateScale error: %v", err)
	}
	if scale.Len() != len(DefaultShadeConfig) {
		t.Fatalf("scale has %d shades, want %d", scale.Len(), len(DefaultShadeConfig))
	}
	for i, key := range scale.Keys() {
		if key != DefaultShadeConfig[i].Key {
			t.Errorf("key[%d] = %q, want %q", i, key, DefaultShadeConfig[i].Key)
		}
		if _, ok := scale.Color(key); !ok {
			t.Errorf("missing color for key %q", key)
		}
		if !strings.HasPrefix(scale.Hex(key), "#") {
			t.Errorf("Hex(%q) = %q, want hex string", key, scale.Hex(key))
		}
	}
	if scale.Hex("nope") != "" {
		t.Errorf("Hex of unknown key = %q, want empty", scale.Hex("nope"))
	}
}

func TestGenerateScaleLightnessMonotonic(t *testing.T) {
	// The default config runs light to dark; generated Lab lightness must
	// follow. A moderate chroma factor keeps every stop in gamut so the
	// ordering is exact rather than clamp-distorted.
	scale, err := GenerateScale(MustHex("#1890ff"), DefaultShadeConfig, WithChromaFactor(0.4))
	if err != nil {
		t.Fatalf("GenerateScale error: %v", err)
	}
	entries := scale.Entries()
	for i := 1; i < len(entries); i++ {
		prev := entries[i-1].Color.Lab().L
		cur := entries[i].Color.Lab().L
		if cur >= prev-0.5 {
			t.Errorf("lightness not decreasing at %q: %.2f -> %.2f", entries[i].Key, prev, cur)
		}
	}
}

func TestGenerateScaleAscendingConfig(t *testing.T) {
	cfg := make(ShadeConfig, 10)
	for i := range cfg {
		cfg[i] = ShadeStop{Key: string(rune('a' + i)), Lightness: 20 + float64(i)*7}
	}
	scale, err := GenerateScale(MustHex("#1890ff"), cfg, WithChromaFactor(0.5))
	if err != nil {
		t.Fatalf("GenerateScale error: %v", err)
	}
	if scale.Len() != 10 {
		t.Fatalf("scale has %d shades, want 10", scale.Len())
	}
	entries := scale.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].Color.Lab().L <= entries[i-1].Color.Lab().L {
			t.Errorf("lightness not increasing at index %d", i)
		}
	}
}

func TestGenerateScaleInvalidConfig(t *testing.T) {
	_, err := GenerateScale(Red, ShadeConfig{})
	var rerr *RangeError
	if !errors.As(err, &rerr) {
		t.Errorf("GenerateScale with empty config error = %v, want *RangeError", err)
	}
}

func TestGenerateScaleHoldsHue(t *testing.T) {
	base := MustHex("#1890ff")
	baseHue := base.LCh().H
	scale, err := GenerateScale(base, DefaultShadeConfig, WithChromaFactor(0.4))
	if err != nil {
		t.Fatalf("GenerateScale error: %v", err)
	}
	for _, e := range scale.Entries() {
		lch := e.Color.LCh()
		if lch.C < 3 {
			continue // hue is meaningless near the gray axis
		}
		diff := math.Abs(math.Mod(lch.H-baseHue+540, 360) - 180)
		if diff > 10 {
			t.Errorf("shade %q hue %.1f drifted from base hue %.1f", e.Key, lch.H, baseHue)
		}
	}
}

func TestDampChroma(t *testing.T) {
	// Full chroma within 25 units of mid-lightness.
	if got := dampChroma(40, 60, 0.35); got != 40 {
		t.Errorf("dampChroma at L60 = %v, want 40", got)
	}
	// Damped beyond, more strongly at the extremes.
	mild := dampChroma(40, 80, 0.35)
	strong := dampChroma(40, 97, 0.35)
	if mild >= 40 || strong >= mild {
		t.Errorf("damping not increasing toward extremes: %v, %v", mild, strong)
	}
	// Zero damping disables the falloff.
	if got := dampChroma(40, 97, 0); got != 40 {
		t.Errorf("dampChroma with zero damping = %v, want 40", got)
	}
}

func TestGenerateGrayScale(t *testing.T) {
	scale, err := GenerateGrayScale(MustHex("#1890ff"), DefaultShadeConfig)
	if err != nil {
		t.Fatalf("GenerateGrayScale error: %v", err)
	}
	for _, e := range scale.Entries() {
		if c := e.Color.LCh().C; c > 8 {
			t.Errorf("gray shade %q chroma = %.2f, want near-neutral", e.Key, c)
		}
	}
}

func TestDarkVariant(t *testing.T) {
	dark := DefaultShadeConfig.DarkVariant()
	if len(dark) != len(DefaultShadeConfig) {
		t.Fatalf("dark variant has %d stops, want %d", len(dark), len(DefaultShadeConfig))
	}
	// The light ramp descends, so the dark ramp must ascend, floored away
	// from pure black.
	for i, s := range dark {
		if s.Key != DefaultShadeConfig[i].Key {
			t.Errorf("dark key[%d] = %q, want %q", i, s.Key, DefaultShadeConfig[i].Key)
		}
		if s.Lightness < 4 || s.Lightness > 96 {
			t.Errorf("dark lightness %q = %.2f, outside [4, 96]", s.Key, s.Lightness)
		}
		if i > 0 && s.Lightness <= dark[i-1].Lightness {
			t.Errorf("dark lightness not ascending at %q", s.Key)
		}
	}
	if err := dark.Validate(); err != nil {
		t.Errorf("dark variant fails validation: %v", err)
	}
}

func TestGenerateDarkScale(t *testing.T) {
	scale, err := GenerateDarkScale(MustHex("#1890ff"), DefaultShadeConfig, WithChromaFactor(0.4))
	if err != nil {
		t.Fatalf("GenerateDarkScale error: %v", err)
	}
	entries := scale.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].Color.Lab().L <= entries[i-1].Color.Lab().L {
			t.Errorf("dark scale lightness not increasing at %q", entries[i].Key)
		}
	}
}

func TestSemanticBase(t *testing.T) {
	// A near-gray brand color still yields legible semantic colors.
	c := semanticBase(NewRGB(128, 130, 132), DefaultSemanticHues.Success)
	lch := c.LCh()
	if lch.C < 20 {
		t.Errorf("semantic chroma = %.2f, want floored well above gray", lch.C)
	}
	diff := math.Abs(math.Mod(lch.H-DefaultSemanticHues.Success+540, 360) - 180)
	if diff > 5 {
		t.Errorf("semantic hue = %.1f, want near %.1f", lch.H, DefaultSemanticHues.Success)
	}
}

func TestGenerateNaturalTheme(t *testing.T) {
	theme, err := GenerateNaturalTheme(MustHex("#1890ff"))
	if err != nil {
		t.Fatalf("GenerateNaturalTheme error: %v", err)
	}
	if theme.Mode != ModeLight {
		t.Errorf("theme mode = %q, want light", theme.Mode)
	}
	scales := map[string]Scale{
		"primary": theme.Primary,
		"success": theme.Success,
		"warning": theme.Warning,
		"danger":  theme.Danger,
		"info":    theme.Info,
		"gray":    theme.Gray,
	}
	for name, s := range scales {
		if s.Len() != len(DefaultShadeConfig) {
			t.Errorf("%s scale has %d shades, want %d", name, s.Len(), len(DefaultShadeConfig))
		}
	}
}

func TestGenerateNaturalThemeDarkMode(t *testing.T) {
	theme, err := GenerateNaturalTheme(MustHex("#1890ff"),
		WithThemeMode(ModeDark),
		WithThemeScaleOptions(WithChromaFactor(0.4)))
	if err != nil {
		t.Fatalf("GenerateNaturalTheme error: %v", err)
	}
	if theme.Mode != ModeDark {
		t.Errorf("theme mode = %q, want dark", theme.Mode)
	}
	// In dark mode the "50" shade is darker than the "950" shade.
	low, _ := theme.Primary.Color("50")
	high, _ := theme.Primary.Color("950")
	if low.Lab().L >= high.Lab().L {
		t.Errorf("dark theme 50 (L %.1f) should be darker than 950 (L %.1f)", low.Lab().L, high.Lab().L)
	}
}

func TestThemeCSSVariables(t *testing.T) {
	theme, err := GenerateNaturalTheme(MustHex("#1890ff"))
	if err != nil {
		t.Fatalf("GenerateNaturalTheme error: %v", err)
	}
	vars := theme.CSSVariables("")
	if want := 6 * len(DefaultShadeConfig); len(vars) != want {
		t.Fatalf("CSSVariables emitted %d declarations, want %d", len(vars), want)
	}
	if !strings.HasPrefix(vars[0], "--color-primary-50: #") || !strings.HasSuffix(vars[0], ";") {
		t.Errorf("first declaration = %q", vars[0])
	}

	custom := theme.CSSVariables("brand")
	if !strings.HasPrefix(custom[0], "--brand-primary-50: ") {
		t.Errorf("custom prefix declaration = %q", custom[0])
	}
}
