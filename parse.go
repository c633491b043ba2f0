package chroma

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Hexer is implemented by values that expose a hex color accessor.
// Parse accepts any Hexer as input.
type Hexer interface {
	Hex() string
}

// Parse resolves any supported color input to exactly one canonical Color,
// or fails with a *ParseError. Accepted inputs:
//
//   - string: hex (3/4/6/8 digits, '#' optional, case-insensitive), a CSS
//     named color, or functional notation (rgb(), hsl(), hwb(), lab(),
//     lch(), oklab(), oklch(), cmyk()) with comma or space separators
//   - Color, RGB, HSL, HSV, HWB, Lab, LCh, XYZ, OKLab, OKLCh, CMYK records
//   - [3]float64, [4]float64, or []float64 of length 3 or 4, interpreted
//     as 0-255 RGB channels plus an optional [0,1] alpha
//   - any image/color.Color or Hexer
func Parse(input any) (Color, error) {
	switch v := input.(type) {
	case Color:
		return v, nil
	case string:
		return parseString(v)
	case RGB:
		return NewRGB(v.R, v.G, v.B), nil
	case HSL:
		return FromHSL(v), nil
	case HSV:
		return FromHSV(v), nil
	case HWB:
		return FromHWB(v), nil
	case Lab:
		return FromLab(v), nil
	case LCh:
		return FromLCh(v), nil
	case XYZ:
		return FromXYZ(v), nil
	case OKLab:
		return FromOKLab(v), nil
	case OKLCh:
		return FromOKLCh(v), nil
	case CMYK:
		return FromCMYK(v), nil
	case [3]float64:
		return colorFromTuple(v[:])
	case [4]float64:
		return colorFromTuple(v[:])
	case []float64:
		return colorFromTuple(v)
	case Hexer:
		return parseString(v.Hex())
	case color.Color:
		return FromColor(v), nil
	default:
		return Color{}, &ParseError{
			Input:  fmt.Sprintf("%v", input),
			Reason: fmt.Sprintf("unsupported input type %T", input),
		}
	}
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(input any) Color {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

// colorFromTuple interprets a numeric triple or quad as 0-255 RGB channels
// plus an optional [0,1] alpha.
func colorFromTuple(v []float64) (Color, error) {
	if len(v) != 3 && len(v) != 4 {
		return Color{}, &ParseError{
			Input:  fmt.Sprintf("%v", v),
			Reason: fmt.Sprintf("numeric tuple must have 3 or 4 elements, got %d", len(v)),
		}
	}
	a := 1.0
	if len(v) == 4 {
		a = v[3]
	}
	return NewRGBA(clampByte(v[0]), clampByte(v[1]), clampByte(v[2]), a), nil
}

// parseString parses a color literal: hex, named, or functional notation.
func parseString(s string) (Color, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return Color{}, &ParseError{Input: s, Reason: "empty input"}
	}

	if strings.HasPrefix(trimmed, "#") {
		return parseHexStrict(s, trimmed[1:])
	}
	if idx := strings.IndexByte(trimmed, '('); idx > 0 && strings.HasSuffix(trimmed, ")") {
		return parseFunctional(s, trimmed[:idx], trimmed[idx+1:len(trimmed)-1])
	}
	if named, ok := colornames.Map[trimmed]; ok {
		return NewRGB(named.R, named.G, named.B), nil
	}
	if isHexString(trimmed) {
		return parseHexStrict(s, trimmed)
	}
	return Color{}, &ParseError{Input: s, Reason: "not a hex literal, named color, or functional notation"}
}

// Hex parses a hex color literal. The '#' prefix is optional and parsing
// is case-insensitive. Accepts 3, 4, 6, and 8 digit forms.
func Hex(s string) (Color, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	trimmed = strings.TrimPrefix(trimmed, "#")
	return parseHexStrict(s, trimmed)
}

// MustHex is like Hex but panics on error.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// isHexString reports whether s is non-empty and all hex digits of a
// valid hex color length.
func isHexString(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexVal(s[i]); !ok {
			return false
		}
	}
	return true
}

// hexVal returns the value of a single hex digit.
func hexVal(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseHexStrict parses the digits of a hex literal. Malformed length or
// non-hex characters fail with a *ParseError; there is no fallback color.
func parseHexStrict(orig, digits string) (Color, error) {
	var vals [8]uint8
	for i := 0; i < len(digits) && i < 8; i++ {
		v, ok := hexVal(digits[i])
		if !ok {
			return Color{}, &ParseError{Input: orig, Reason: fmt.Sprintf("invalid hex digit %q", digits[i])}
		}
		vals[i] = v
	}

	switch len(digits) {
	case 3:
		return NewRGB(vals[0]*17, vals[1]*17, vals[2]*17), nil
	case 4:
		return NewRGBA(vals[0]*17, vals[1]*17, vals[2]*17, float64(vals[3]*17)/255), nil
	case 6:
		return NewRGB(vals[0]<<4|vals[1], vals[2]<<4|vals[3], vals[4]<<4|vals[5]), nil
	case 8:
		return NewRGBA(vals[0]<<4|vals[1], vals[2]<<4|vals[3], vals[4]<<4|vals[5],
			float64(vals[6]<<4|vals[7])/255), nil
	default:
		return Color{}, &ParseError{Input: orig, Reason: fmt.Sprintf("hex literal must have 3, 4, 6, or 8 digits, got %d", len(digits))}
	}
}

// splitArgs splits functional-notation arguments on commas, whitespace,
// and the CSS alpha slash, all treated interchangeably.
func splitArgs(body string) []string {
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
}

// argValue parses one functional-notation argument. When percent is true a
// trailing '%' rescales the value by scale/100; a bare number is taken
// as-is. A trailing "deg" is accepted on hue arguments.
func argValue(arg string) (val float64, isPercent bool, err error) {
	arg = strings.TrimSuffix(arg, "deg")
	if strings.HasSuffix(arg, "%") {
		isPercent = true
		arg = strings.TrimSuffix(arg, "%")
	}
	val, err = strconv.ParseFloat(arg, 64)
	return val, isPercent, err
}

// parseFunctional parses CSS-style functional notation. Separators are
// permissive: commas, spaces, and the alpha slash are interchangeable.
func parseFunctional(orig, fn, body string) (Color, error) {
	args := splitArgs(body)
	vals := make([]float64, len(args))
	pct := make([]bool, len(args))
	for i, a := range args {
		v, isPct, err := argValue(a)
		if err != nil {
			return Color{}, &ParseError{Input: orig, Reason: fmt.Sprintf("invalid number %q", a)}
		}
		vals[i], pct[i] = v, isPct
	}

	wantArgs := func(n int) (alpha float64, ok bool) {
		alpha = 1
		if len(vals) == n+1 {
			alpha = vals[n]
			if pct[n] {
				alpha /= 100
			}
			return alpha, true
		}
		return alpha, len(vals) == n
	}

	switch fn {
	case "rgb", "rgba":
		alpha, ok := wantArgs(3)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		ch := func(i int) uint8 {
			if pct[i] {
				return clampByte(vals[i] * 255 / 100)
			}
			return clampByte(vals[i])
		}
		return NewRGBA(ch(0), ch(1), ch(2), alpha), nil
	case "hsl", "hsla":
		alpha, ok := wantArgs(3)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		return FromHSLA(HSL{H: vals[0], S: vals[1], L: vals[2]}, alpha), nil
	case "hwb":
		alpha, ok := wantArgs(3)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		return FromHWB(HWB{H: vals[0], W: vals[1], B: vals[2]}).WithAlpha(alpha), nil
	case "lab":
		alpha, ok := wantArgs(3)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		return FromLab(Lab{L: vals[0], A: vals[1], B: vals[2]}).WithAlpha(alpha), nil
	case "lch":
		alpha, ok := wantArgs(3)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		return FromLCh(LCh{L: vals[0], C: vals[1], H: vals[2]}).WithAlpha(alpha), nil
	case "oklab":
		alpha, ok := wantArgs(3)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		l := vals[0]
		if pct[0] {
			l /= 100
		}
		return FromOKLab(OKLab{L: l, A: vals[1], B: vals[2]}).WithAlpha(alpha), nil
	case "oklch":
		alpha, ok := wantArgs(3)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		l := vals[0]
		if pct[0] {
			l /= 100
		}
		return FromOKLCh(OKLCh{L: l, C: vals[1], H: vals[2]}).WithAlpha(alpha), nil
	case "cmyk", "device-cmyk":
		alpha, ok := wantArgs(4)
		if !ok {
			return Color{}, badArgCount(orig, fn, len(vals))
		}
		return FromCMYK(CMYK{C: vals[0], M: vals[1], Y: vals[2], K: vals[3]}).WithAlpha(alpha), nil
	default:
		return Color{}, &ParseError{Input: orig, Reason: fmt.Sprintf("unknown function %q", fn)}
	}
}

func badArgCount(orig, fn string, n int) error {
	return &ParseError{Input: orig, Reason: fmt.Sprintf("%s() has %d arguments", fn, n)}
}
