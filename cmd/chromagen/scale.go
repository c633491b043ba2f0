package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

func newScaleCmd() *cobra.Command {
	var (
		configPath   string
		dark         bool
		gray         bool
		chromaFactor float64
	)

	cmd := &cobra.Command{
		Use:   "scale <color>",
		Short: "Generate a shade scale from a base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := chroma.Parse(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadPaletteConfig(configPath)
			if err != nil {
				return err
			}

			opts := []chroma.ScaleOption{chroma.WithChromaFactor(chromaFactor)}
			var scale chroma.Scale
			switch {
			case gray:
				scale, err = chroma.GenerateGrayScale(base, cfg.Shades, opts...)
			case dark:
				scale, err = chroma.GenerateDarkScale(base, cfg.Shades, opts...)
			default:
				scale, err = chroma.GenerateScale(base, cfg.Shades, opts...)
			}
			if err != nil {
				return err
			}

			for _, e := range scale.Entries() {
				fmt.Println(labeled(e.Key, e.Color))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML shade configuration file")
	cmd.Flags().BoolVar(&dark, "dark", false, "derive the dark-theme variant")
	cmd.Flags().BoolVar(&gray, "gray", false, "derive a tinted gray scale instead")
	cmd.Flags().Float64Var(&chromaFactor, "chroma-factor", 1, "chroma multiplier carried from the base color")
	return cmd
}
