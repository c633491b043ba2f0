package chroma

// Space identifies a color space supported by Convert.
type Space string

// Supported color spaces.
const (
	SpaceRGB   Space = "rgb"
	SpaceHSL   Space = "hsl"
	SpaceHSV   Space = "hsv"
	SpaceHWB   Space = "hwb"
	SpaceLab   Space = "lab"
	SpaceLCh   Space = "lch"
	SpaceXYZ   Space = "xyz"
	SpaceOKLab Space = "oklab"
	SpaceOKLCh Space = "oklch"
	SpaceCMYK  Space = "cmyk"
)

// Spaces lists every supported color space in a stable order.
var Spaces = []Space{
	SpaceRGB, SpaceHSL, SpaceHSV, SpaceHWB, SpaceLab,
	SpaceLCh, SpaceXYZ, SpaceOKLab, SpaceOKLCh, SpaceCMYK,
}

// RGB is an 8-bit sRGB record without alpha.
type RGB struct {
	R, G, B uint8
}

// HSL holds hue in degrees [0, 360), saturation and lightness in [0, 100].
type HSL struct {
	H, S, L float64
}

// HSV holds hue in degrees [0, 360), saturation and value in [0, 100].
type HSV struct {
	H, S, V float64
}

// HWB holds hue in degrees [0, 360), whiteness and blackness in [0, 100].
type HWB struct {
	H, W, B float64
}

// Lab is CIE L*a*b* on the D65 reference white. L is in [0, 100]; a and b
// are unbounded but typically within ±128.
type Lab struct {
	L, A, B float64
}

// LCh is the cylindrical form of CIE Lab. L is in [0, 100], C >= 0, and H
// is hue in degrees [0, 360).
type LCh struct {
	L, C, H float64
}

// XYZ is CIE 1931 XYZ on the D65 reference white, scaled so that
// Y(white) = 100.
type XYZ struct {
	X, Y, Z float64
}

// OKLab is Björn Ottosson's perceptual space. L is in [0, 1]; a and b are
// typically within ±0.4.
type OKLab struct {
	L, A, B float64
}

// OKLCh is the cylindrical form of OKLab. L is in [0, 1], C >= 0
// (typically below 0.37), and H is hue in degrees [0, 360).
type OKLCh struct {
	L, C, H float64
}

// CMYK holds cyan, magenta, yellow, and key (black) in [0, 100].
type CMYK struct {
	C, M, Y, K float64
}
