// Package chroma is a deterministic color-science engine for Go.
//
// # Overview
//
// chroma provides representation and lossless conversion between color
// models, perceptually-aware color manipulation, shade-scale and theme
// generation, CSS gradient construction, harmony-scheme generation, and
// accessibility transforms (WCAG contrast enforcement and color-vision
// deficiency simulation).
//
// # Quick Start
//
//	import "github.com/chromakit/chroma"
//
//	// Parse any color literal
//	c, err := chroma.Parse("#1890ff")
//
//	// Convert between spaces
//	lch := c.LCh()
//
//	// Build a shade scale and a full semantic theme
//	scale, err := chroma.GenerateScale(c, chroma.DefaultShadeConfig)
//	theme, err := chroma.GenerateNaturalTheme(c)
//
//	// Enforce WCAG contrast
//	fg := chroma.AutoAdjust(c, chroma.White, chroma.LevelAA, chroma.SizeNormal)
//
// # Design
//
// Every operation is a pure, synchronous function over immutable values.
// The canonical representation is an 8-bit sRGB triple plus a float alpha;
// all other spaces are derived from it. Internal pipelines keep full float
// precision and round only when emitting hex or CSS strings, so chained
// conversions do not compound rounding error.
//
// Out-of-range channel values produced by manipulation are clamped, never
// errors. Malformed input to Parse fails fast with a *ParseError and never
// silently defaults.
//
// # Concurrency
//
// There is no shared mutable state; any number of calls may run
// concurrently. The optional Memo layer and the package logger are
// internally synchronized.
package chroma

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
