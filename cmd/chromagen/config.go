package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chromakit/chroma"
)

// paletteConfig is the YAML configuration accepted by --config: an
// optional shade ramp and optional semantic hue overrides.
//
//	shades:
//	  - key: "50"
//	    lightness: 97
//	  - key: "500"
//	    lightness: 56
//	hues:
//	  success: 142
//	  warning: 38
//	  danger: 4
//	  info: 210
type paletteConfig struct {
	Shades chroma.ShadeConfig   `yaml:"shades"`
	Hues   *chroma.SemanticHues `yaml:"hues"`
}

// loadPaletteConfig reads and validates a YAML palette config. An empty
// path returns the defaults.
func loadPaletteConfig(path string) (paletteConfig, error) {
	cfg := paletteConfig{Shades: chroma.DefaultShadeConfig}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Shades) == 0 {
		cfg.Shades = chroma.DefaultShadeConfig
	}
	if err := cfg.Shades.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
