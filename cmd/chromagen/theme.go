package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

func newThemeCmd() *cobra.Command {
	var (
		configPath string
		mode       string
		css        bool
		prefix     string
	)

	cmd := &cobra.Command{
		Use:   "theme <color>",
		Short: "Generate a full semantic theme from a brand color",
		Long: `Derives primary, success, warning, danger, info, and gray scales from
one brand color. With --css the theme is emitted as CSS custom
properties ready to paste into a stylesheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := chroma.Parse(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadPaletteConfig(configPath)
			if err != nil {
				return err
			}

			opts := []chroma.ThemeOption{
				chroma.WithThemeShadeConfig(cfg.Shades),
				chroma.WithThemeMode(chroma.ThemeMode(mode)),
			}
			if cfg.Hues != nil {
				opts = append(opts, chroma.WithSemanticHues(*cfg.Hues))
			}
			theme, err := chroma.GenerateNaturalTheme(base, opts...)
			if err != nil {
				return err
			}

			if css {
				for _, decl := range theme.CSSVariables(prefix) {
					fmt.Println(decl)
				}
				return nil
			}

			roles := []struct {
				name  string
				scale chroma.Scale
			}{
				{"primary", theme.Primary},
				{"success", theme.Success},
				{"warning", theme.Warning},
				{"danger", theme.Danger},
				{"info", theme.Info},
				{"gray", theme.Gray},
			}
			for _, role := range roles {
				fmt.Println(role.name + ":")
				for _, e := range role.scale.Entries() {
					fmt.Println("  " + labeled(e.Key, e.Color))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML shade/hue configuration file")
	cmd.Flags().StringVar(&mode, "mode", "light", "theme mode: light or dark")
	cmd.Flags().BoolVar(&css, "css", false, "emit CSS custom properties")
	cmd.Flags().StringVar(&prefix, "prefix", "color", "CSS variable prefix")
	return cmd
}
