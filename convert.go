package chroma

import "math"

// D65 reference white, scaled to Y = 100.
const (
	refWhiteX = 95.047
	refWhiteY = 100.0
	refWhiteZ = 108.883
)

// CIE Lab nonlinearity constants (the 6/29 threshold formulation).
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// srgbToLinear converts an sRGB component in [0,1] to linear light
// (the piecewise EOTF with threshold 0.04045).
func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSRGB converts a linear-light component in [0,1] to sRGB
// (the piecewise OETF with threshold 0.0031308).
func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// linear returns the color's channels in linear-light unit range.
func (c Color) linear() (r, g, b float64) {
	sr, sg, sb := c.unit()
	return srgbToLinear(sr), srgbToLinear(sg), srgbToLinear(sb)
}

// fromLinear builds a Color from linear-light unit-range channels.
func fromLinear(r, g, b, a float64) Color {
	return fromUnit(linearToSRGB(clamp01(r)), linearToSRGB(clamp01(g)), linearToSRGB(clamp01(b)), a)
}

// normDeg normalizes an angle in degrees to [0, 360).
func normDeg(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Convert returns the record for the color in the target space.
// Unsupported spaces produce a *ConversionError.
func Convert(c Color, space Space) (any, error) {
	switch space {
	case SpaceRGB:
		return c.ToRGB(), nil
	case SpaceHSL:
		return c.HSL(), nil
	case SpaceHSV:
		return c.HSV(), nil
	case SpaceHWB:
		return c.HWB(), nil
	case SpaceLab:
		return c.Lab(), nil
	case SpaceLCh:
		return c.LCh(), nil
	case SpaceXYZ:
		return c.XYZ(), nil
	case SpaceOKLab:
		return c.OKLab(), nil
	case SpaceOKLCh:
		return c.OKLCh(), nil
	case SpaceCMYK:
		return c.CMYK(), nil
	default:
		return nil, &ConversionError{Space: space}
	}
}

// ToRGB returns the 8-bit RGB record (alpha dropped).
func (c Color) ToRGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// HSL returns the color in HSL space.
func (c Color) HSL() HSL {
	r, g, b := c.unit()
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return HSL{H: normDeg(h * 60), S: s * 100, L: l * 100}
}

// FromHSL creates a color from an HSL record, alpha 1.
func FromHSL(hsl HSL) Color {
	return FromHSLA(hsl, 1)
}

// FromHSLA creates a color from an HSL record and an alpha in [0, 1].
func FromHSLA(hsl HSL, alpha float64) Color {
	h := normDeg(hsl.H) / 360
	s := clamp01(hsl.S / 100)
	l := clamp01(hsl.L / 100)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = chroma, x, 0
	case h < 2.0/6:
		r, g, b = x, chroma, 0
	case h < 3.0/6:
		r, g, b = 0, chroma, x
	case h < 4.0/6:
		r, g, b = 0, x, chroma
	case h < 5.0/6:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return fromUnit(r+m, g+m, b+m, alpha)
}

// HSV returns the color in HSV space.
func (c Color) HSV() HSV {
	r, g, b := c.unit()
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v := max

	if max == min {
		return HSV{H: 0, S: 0, V: v * 100}
	}

	d := max - min
	s := d / max

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return HSV{H: normDeg(h * 60), S: s * 100, V: v * 100}
}

// FromHSV creates a color from an HSV record, alpha 1.
func FromHSV(hsv HSV) Color {
	h := normDeg(hsv.H) / 60
	s := clamp01(hsv.S / 100)
	v := clamp01(hsv.V / 100)

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return fromUnit(r, g, b, 1)
}

// HWB returns the color in HWB space.
func (c Color) HWB() HWB {
	hsv := c.HSV()
	w := (1 - hsv.S/100) * hsv.V / 100 * 100
	b := 100 - hsv.V
	return HWB{H: hsv.H, W: w, B: b}
}

// FromHWB creates a color from an HWB record, alpha 1.
// When whiteness plus blackness reaches 100 the result is the gray
// w/(w+b), per CSS Color 4.
func FromHWB(hwb HWB) Color {
	w := clamp01(hwb.W / 100)
	b := clamp01(hwb.B / 100)
	if w+b >= 1 {
		gray := w / (w + b)
		return fromUnit(gray, gray, gray, 1)
	}
	v := 1 - b
	s := 1 - w/v
	return FromHSV(HSV{H: hwb.H, S: s * 100, V: v * 100})
}

// XYZ returns the color in CIE XYZ space (D65, Y(white) = 100).
func (c Color) XYZ() XYZ {
	r, g, b := c.linear()
	return XYZ{
		X: (0.4124564*r + 0.3575761*g + 0.1804375*b) * 100,
		Y: (0.2126729*r + 0.7151522*g + 0.0721750*b) * 100,
		Z: (0.0193339*r + 0.1191920*g + 0.9503041*b) * 100,
	}
}

// FromXYZ creates a color from a CIE XYZ record (D65, Y(white) = 100),
// alpha 1. Out-of-gamut results are clamped.
func FromXYZ(xyz XYZ) Color {
	x := xyz.X / 100
	y := xyz.Y / 100
	z := xyz.Z / 100
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z
	return fromLinear(r, g, b, 1)
}

// labF is the CIE Lab forward nonlinearity.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// Lab returns the color in CIE L*a*b* space (D65).
func (c Color) Lab() Lab {
	xyz := c.XYZ()
	fx := labF(xyz.X / refWhiteX)
	fy := labF(xyz.Y / refWhiteY)
	fz := labF(xyz.Z / refWhiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// FromLab creates a color from a CIE Lab record (D65), alpha 1.
// Out-of-gamut results are clamped.
func FromLab(lab Lab) Color {
	fy := (lab.L + 16) / 116
	fx := fy + lab.A/500
	fz := fy - lab.B/200

	var xr, yr, zr float64
	if fx3 := fx * fx * fx; fx3 > labEpsilon {
		xr = fx3
	} else {
		xr = (116*fx - 16) / labKappa
	}
	if lab.L > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = lab.L / labKappa
	}
	if fz3 := fz * fz * fz; fz3 > labEpsilon {
		zr = fz3
	} else {
		zr = (116*fz - 16) / labKappa
	}
	return FromXYZ(XYZ{X: xr * refWhiteX, Y: yr * refWhiteY, Z: zr * refWhiteZ})
}

// LCh returns the color in CIE LCh space (cylindrical Lab).
func (c Color) LCh() LCh {
	lab := c.Lab()
	return LCh{
		L: lab.L,
		C: math.Hypot(lab.A, lab.B),
		H: normDeg(math.Atan2(lab.B, lab.A) * 180 / math.Pi),
	}
}

// FromLCh creates a color from a CIE LCh record, alpha 1.
// Out-of-gamut results are clamped.
func FromLCh(lch LCh) Color {
	h := lch.H * math.Pi / 180
	return FromLab(Lab{
		L: lch.L,
		A: lch.C * math.Cos(h),
		B: lch.C * math.Sin(h),
	})
}

// OKLab returns the color in OKLab space.
func (c Color) OKLab() OKLab {
	r, g, b := c.linear()

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return OKLab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// FromOKLab creates a color from an OKLab record, alpha 1.
// Out-of-gamut results are clamped.
func FromOKLab(lab OKLab) Color {
	l := lab.L + 0.3963377774*lab.A + 0.2158037573*lab.B
	m := lab.L - 0.1055613458*lab.A - 0.0638541728*lab.B
	s := lab.L - 0.0894841775*lab.A - 1.2914855480*lab.B
	l, m, s = l*l*l, m*m*m, s*s*s

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return fromLinear(r, g, b, 1)
}

// OKLCh returns the color in OKLCh space (cylindrical OKLab).
func (c Color) OKLCh() OKLCh {
	lab := c.OKLab()
	return OKLCh{
		L: lab.L,
		C: math.Hypot(lab.A, lab.B),
		H: normDeg(math.Atan2(lab.B, lab.A) * 180 / math.Pi),
	}
}

// FromOKLCh creates a color from an OKLCh record, alpha 1.
// Out-of-gamut results are clamped.
func FromOKLCh(lch OKLCh) Color {
	h := lch.H * math.Pi / 180
	return FromOKLab(OKLab{
		L: lch.L,
		A: lch.C * math.Cos(h),
		B: lch.C * math.Sin(h),
	})
}

// CMYK returns the color in CMYK space ([0, 100] per channel).
func (c Color) CMYK() CMYK {
	r, g, b := c.unit()
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}
	d := 1 - k
	return CMYK{
		C: (1 - r - k) / d * 100,
		M: (1 - g - k) / d * 100,
		Y: (1 - b - k) / d * 100,
		K: k * 100,
	}
}

// FromCMYK creates a color from a CMYK record, alpha 1.
func FromCMYK(cmyk CMYK) Color {
	cy := clamp01(cmyk.C / 100)
	m := clamp01(cmyk.M / 100)
	y := clamp01(cmyk.Y / 100)
	k := clamp01(cmyk.K / 100)
	return fromUnit((1-cy)*(1-k), (1-m)*(1-k), (1-y)*(1-k), 1)
}
