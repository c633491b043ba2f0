package chroma

import "fmt"

// ParseError reports color input that could not be resolved to a canonical
// Color. Parse never silently defaults: malformed input always produces a
// *ParseError.
type ParseError struct {
	Input  string // the offending input, rendered as a string
	Reason string // what made it unparseable
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chroma: cannot parse %q: %s", e.Input, e.Reason)
}

// ConversionError reports a conversion request for an unsupported target
// space.
type ConversionError struct {
	Space Space
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("chroma: unsupported color space %q", string(e.Space))
}

// RangeError reports a structurally invalid numeric argument, such as an
// explicit gradient stop position outside [0,1] or a non-monotonic shade
// config. Channel overflow from manipulation is clamped, not reported.
type RangeError struct {
	What  string  // which argument is out of domain
	Value float64 // the offending value
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("chroma: %s out of range: %v", e.What, e.Value)
}
