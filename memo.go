package chroma

import (
	"strconv"
	"strings"

	"github.com/chromakit/chroma/cache"
)

// Memo is an optional memoization layer over the engine's pure functions.
// It is observationally transparent: for identical input, cached and
// uncached calls return byte-identical output. Memo is safe for
// concurrent use.
type Memo struct {
	parses *cache.Sharded[string, parseResult]
	scales *cache.Sharded[string, Scale]
}

type parseResult struct {
	color Color
	err   error
}

// NewMemo creates a memoization layer with the given per-shard capacity
// (non-positive selects the cache default).
func NewMemo(capacity int) *Memo {
	return &Memo{
		parses: cache.NewSharded[string, parseResult](capacity, cache.StringHasher),
		scales: cache.NewSharded[string, Scale](capacity, cache.StringHasher),
	}
}

// Parse is a memoized Parse for string inputs. Errors are cached too:
// re-parsing known-bad input is as cheap as re-parsing known-good input.
func (m *Memo) Parse(input string) (Color, error) {
	res := m.parses.GetOrCreate(input, func() parseResult {
		c, err := Parse(input)
		return parseResult{color: c, err: err}
	})
	return res.color, res.err
}

// GenerateScale is a memoized GenerateScale, keyed by the canonical base
// color and the full shade configuration. Scale options are not part of
// the key; memoize defaults only.
func (m *Memo) GenerateScale(base Color, cfg ShadeConfig) (Scale, error) {
	if err := cfg.Validate(); err != nil {
		return Scale{}, err
	}
	key := scaleKey(base, cfg)
	s := m.scales.GetOrCreate(key, func() Scale {
		// Config already validated; generation cannot fail.
		scale, _ := GenerateScale(base, cfg)
		return scale
	})
	return s, nil
}

// Stats reports hit/miss counters for both caches.
func (m *Memo) Stats() (parses, scales cache.Stats) {
	return m.parses.Stats(), m.scales.Stats()
}

// scaleKey canonicalizes (base, config) into a cache key.
func scaleKey(base Color, cfg ShadeConfig) string {
	var b strings.Builder
	b.WriteString(base.Hex())
	for _, s := range cfg {
		b.WriteByte('|')
		b.WriteString(s.Key)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(s.Lightness, 'g', -1, 64))
	}
	return b.String()
}
