package chroma

import "testing"

func TestMix(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Color
		amount float64
		want   Color
	}{
		{"midpoint", Black, White, 0.5, NewRGB(128, 128, 128)},
		{"zero returns first", Red, Blue, 0, Red},
		{"one returns second", Red, Blue, 1, Blue},
		{"clamped below", Red, Blue, -3, Red},
		{"clamped above", Red, Blue, 7, Blue},
		{"alpha interpolates", NewRGBA(0, 0, 0, 0), NewRGBA(0, 0, 0, 1), 0.25, NewRGBA(0, 0, 0, 0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.a, tt.b, tt.amount); !got.Equal(tt.want) {
				t.Errorf("Mix(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.amount, got, tt.want)
			}
		})
	}
}

func TestTintShadeTone(t *testing.T) {
	c := NewRGB(24, 144, 255)
	if got := Tint(c, 1); !got.Equal(White) {
		t.Errorf("Tint(c, 1) = %v, want white", got)
	}
	if got := Shade(c, 1); !got.Equal(Black) {
		t.Errorf("Shade(c, 1) = %v, want black", got)
	}
	if got := Tone(c, 1); !got.Equal(Gray) {
		t.Errorf("Tone(c, 1) = %v, want gray", got)
	}
	for _, f := range []func(Color, float64) Color{Tint, Shade, Tone} {
		if got := f(c, 0); !got.Equal(c) {
			t.Errorf("amount 0 changed the color: %v", got)
		}
	}

	// Alpha survives the mix target.
	translucent := NewRGBA(24, 144, 255, 0.5)
	if got := Tint(translucent, 0.5).A; got != 0.5 {
		t.Errorf("Tint alpha = %v, want 0.5", got)
	}
}

func TestLightenDarken(t *testing.T) {
	if got := Lighten(Red, 10); !got.Equal(NewRGB(255, 51, 51)) {
		t.Errorf("Lighten(red, 10) = %v, want #ff3333", got)
	}
	if got := Darken(Lighten(Red, 10), 10); !got.Equal(Red) {
		t.Errorf("Darken undoing Lighten = %v, want red", got)
	}
	if got := Lighten(White, 50); !got.Equal(White) {
		t.Errorf("Lighten past white = %v, want white", got)
	}
	if got := Darken(Black, 50); !got.Equal(Black) {
		t.Errorf("Darken past black = %v, want black", got)
	}
}

func TestSaturateDesaturate(t *testing.T) {
	muted := NewRGB(150, 100, 100)
	if got, orig := Saturate(muted, 30).HSL().S, muted.HSL().S; got <= orig {
		t.Errorf("Saturate did not raise saturation: %v -> %v", orig, got)
	}
	if got := Desaturate(Red, 100).HSL().S; got != 0 {
		t.Errorf("Desaturate(red, 100) saturation = %v, want 0", got)
	}
}

func TestRotateHue(t *testing.T) {
	tests := []struct {
		degrees float64
		want    Color
	}{
		{120, Green},
		{240, Blue},
		{360, Red},
		{-120, Blue},
		{480, Green},
	}
	for _, tt := range tests {
		if got := RotateHue(Red, tt.degrees); !got.Equal(tt.want) {
			t.Errorf("RotateHue(red, %v) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
	if got := Complement(Red); !got.Equal(Cyan) {
		t.Errorf("Complement(red) = %v, want cyan", got)
	}
}

func TestBrightness(t *testing.T) {
	c := NewRGB(100, 100, 100)
	if got := Brightness(c, 0.2); !got.Equal(NewRGB(151, 151, 151)) {
		t.Errorf("Brightness(+0.2) = %v, want #979797", got)
	}
	if got := Brightness(c, -1); !got.Equal(Black) {
		t.Errorf("Brightness(-1) = %v, want black", got)
	}
	if got := Brightness(c, 1); !got.Equal(White) {
		t.Errorf("Brightness(+1) = %v, want white", got)
	}
}

func TestAdjustContrast(t *testing.T) {
	c := NewRGB(100, 200, 30)
	if got := AdjustContrast(c, -1); !got.Equal(NewRGB(128, 128, 128)) {
		t.Errorf("AdjustContrast(-1) = %v, want mid-gray", got)
	}
	if got := AdjustContrast(c, 0); !got.Equal(c) {
		t.Errorf("AdjustContrast(0) = %v, want unchanged", got)
	}
	if got := AdjustContrast(c, 1); !got.Equal(NewRGB(72, 255, 0)) {
		t.Errorf("AdjustContrast(+1) = %v, want #48ff00", got)
	}
}

func TestGamma(t *testing.T) {
	c := NewRGB(24, 144, 255)
	if got := Gamma(c, 0); !got.Equal(c) {
		t.Errorf("Gamma(0) = %v, want unchanged", got)
	}
	if got := Gamma(c, -2); !got.Equal(c) {
		t.Errorf("Gamma(-2) = %v, want unchanged", got)
	}
	if got := Gamma(c, 1); !closeColors(got, c) {
		t.Errorf("Gamma(1) = %v, want %v within rounding", got, c)
	}
	// g > 1 brightens midtones, g < 1 darkens them.
	mid := NewRGB(128, 128, 128)
	if got := Gamma(mid, 2.2); got.R <= mid.R {
		t.Errorf("Gamma(2.2) midtone = %v, want brighter", got)
	}
	if got := Gamma(mid, 0.45); got.R >= mid.R {
		t.Errorf("Gamma(0.45) midtone = %v, want darker", got)
	}
}

func TestGrayscale(t *testing.T) {
	if got := Grayscale(White); !got.Equal(White) {
		t.Errorf("Grayscale(white) = %v", got)
	}
	if got := Grayscale(Black); !got.Equal(Black) {
		t.Errorf("Grayscale(black) = %v", got)
	}
	got := Grayscale(NewRGB(24, 144, 255))
	if got.R != got.G || got.G != got.B {
		t.Errorf("Grayscale = %v, want achromatic", got)
	}
	// Green carries most of the luminance weight.
	if Grayscale(Green).R <= Grayscale(Red).R {
		t.Error("green should be lighter than red after grayscale")
	}
}

func TestSepia(t *testing.T) {
	if got := Sepia(White); !got.Equal(NewRGB(255, 255, 239)) {
		t.Errorf("Sepia(white) = %v, want #ffffef", got)
	}
	if got := Sepia(Black); !got.Equal(Black) {
		t.Errorf("Sepia(black) = %v, want black", got)
	}
}

func TestNegate(t *testing.T) {
	if got := Negate(Red); !got.Equal(Cyan) {
		t.Errorf("Negate(red) = %v, want cyan", got)
	}
	if got := Negate(Negate(NewRGB(24, 144, 255))); !got.Equal(NewRGB(24, 144, 255)) {
		t.Errorf("double Negate = %v, want original", got)
	}
}

func TestPosterize(t *testing.T) {
	got := Posterize(NewRGB(100, 200, 30), 2)
	if got.R != 0 || got.G != 255 || got.B != 0 {
		t.Errorf("Posterize(2) = %v, want channels snapped to 0 or 255", got)
	}
	// levels below 2 behaves as 2.
	if got := Posterize(NewRGB(100, 200, 30), 1); !got.Equal(Posterize(NewRGB(100, 200, 30), 2)) {
		t.Errorf("Posterize(1) = %v, want Posterize(2) behavior", got)
	}
	// High level count approaches identity.
	c := NewRGB(100, 200, 30)
	if got := Posterize(c, 256); !closeColors(got, c) {
		t.Errorf("Posterize(256) = %v, want near %v", got, c)
	}
}

func TestManipulationPreservesAlpha(t *testing.T) {
	c := NewRGBA(24, 144, 255, 0.6)
	ops := map[string]func(Color) Color{
		"Lighten":   func(c Color) Color { return Lighten(c, 10) },
		"Saturate":  func(c Color) Color { return Saturate(c, 10) },
		"RotateHue": func(c Color) Color { return RotateHue(c, 90) },
		"Grayscale": Grayscale,
		"Sepia":     Sepia,
		"Negate":    Negate,
		"Gamma":     func(c Color) Color { return Gamma(c, 2.2) },
		"Posterize": func(c Color) Color { return Posterize(c, 4) },
	}
	for name, op := range ops {
		if got := op(c).A; got != 0.6 {
			t.Errorf("%s alpha = %v, want 0.6", name, got)
		}
	}
}
