package chroma

import "math"

// Manipulation operations. Each takes a Color plus numeric parameters and
// returns a new Color; inputs are never mutated. Channel results outside
// [0, 255] are clamped, which is the defined overflow policy rather than
// an error.

// Mix linearly interpolates between a and b channel-wise (alpha included).
// amount is clamped to [0, 1]; 0 returns a, 1 returns b.
func Mix(a, b Color, amount float64) Color {
	t := clamp01(amount)
	lerp := func(x, y uint8) uint8 {
		return clampByte(float64(x) + (float64(y)-float64(x))*t)
	}
	return Color{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: a.A + (b.A-a.A)*t,
	}
}

// Tint mixes the color toward white.
func Tint(c Color, amount float64) Color {
	return Mix(c, White.WithAlpha(c.A), amount)
}

// Shade mixes the color toward black.
func Shade(c Color, amount float64) Color {
	return Mix(c, Black.WithAlpha(c.A), amount)
}

// Tone mixes the color toward mid-gray.
func Tone(c Color, amount float64) Color {
	return Mix(c, Gray.WithAlpha(c.A), amount)
}

// Lighten raises HSL lightness by amount (in 0-100 lightness units).
func Lighten(c Color, amount float64) Color {
	hsl := c.HSL()
	hsl.L = math.Min(100, math.Max(0, hsl.L+amount))
	return FromHSLA(hsl, c.A)
}

// Darken lowers HSL lightness by amount (in 0-100 lightness units).
func Darken(c Color, amount float64) Color {
	return Lighten(c, -amount)
}

// Saturate raises HSL saturation by amount (in 0-100 saturation units).
func Saturate(c Color, amount float64) Color {
	hsl := c.HSL()
	hsl.S = math.Min(100, math.Max(0, hsl.S+amount))
	return FromHSLA(hsl, c.A)
}

// Desaturate lowers HSL saturation by amount (in 0-100 saturation units).
func Desaturate(c Color, amount float64) Color {
	return Saturate(c, -amount)
}

// RotateHue rotates the HSL hue by degrees (any sign, any magnitude).
func RotateHue(c Color, degrees float64) Color {
	hsl := c.HSL()
	hsl.H = normDeg(hsl.H + degrees)
	return FromHSLA(hsl, c.A)
}

// Complement returns the hue-opposite color.
func Complement(c Color) Color {
	return RotateHue(c, 180)
}

// Brightness shifts all channels by amount in [-1, 1] of full scale.
// Operates in sRGB space: a uniform perceptual push, not a photometric one.
func Brightness(c Color, amount float64) Color {
	d := amount * 255
	return Color{
		R: clampByte(float64(c.R) + d),
		G: clampByte(float64(c.G) + d),
		B: clampByte(float64(c.B) + d),
		A: c.A,
	}
}

// AdjustContrast scales channel distance from mid-gray by 1+amount, with
// amount in [-1, 1]. Operates in sRGB space.
func AdjustContrast(c Color, amount float64) Color {
	f := 1 + amount
	adj := func(v uint8) uint8 {
		return clampByte((float64(v)-128)*f + 128)
	}
	return Color{R: adj(c.R), G: adj(c.G), B: adj(c.B), A: c.A}
}

// Gamma applies a gamma adjustment with exponent 1/g. Operates in
// linear-light space, where power-law adjustment is physically meaningful;
// g <= 0 returns the color unchanged.
func Gamma(c Color, g float64) Color {
	if g <= 0 {
		return c
	}
	r, gg, b := c.linear()
	inv := 1 / g
	return fromLinear(math.Pow(r, inv), math.Pow(gg, inv), math.Pow(b, inv), c.A)
}

// Grayscale converts to gray using WCAG relative luminance computed on
// linearized channels, then re-encodes to sRGB.
func Grayscale(c Color) Color {
	y := Luminance(c)
	v := unitToByte(linearToSRGB(y))
	return Color{R: v, G: v, B: v, A: c.A}
}

// Sepia applies the classic sepia channel matrix in sRGB space.
func Sepia(c Color) Color {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return Color{
		R: clampByte(0.393*r + 0.769*g + 0.189*b),
		G: clampByte(0.349*r + 0.686*g + 0.168*b),
		B: clampByte(0.272*r + 0.534*g + 0.131*b),
		A: c.A,
	}
}

// Negate inverts every channel.
func Negate(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Posterize reduces each channel to the given number of levels.
// levels below 2 is treated as 2.
func Posterize(c Color, levels int) Color {
	if levels < 2 {
		levels = 2
	}
	step := 255 / float64(levels-1)
	quant := func(v uint8) uint8 {
		return clampByte(math.Round(float64(v)/step) * step)
	}
	return Color{R: quant(c.R), G: quant(c.G), B: quant(c.B), A: c.A}
}
