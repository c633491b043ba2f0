package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

// noColor disables terminal swatch rendering; set by --no-color.
var noColor bool

var rootCmd = &cobra.Command{
	Use:   "chromagen",
	Short: "Generate palettes, gradients, and accessible color pairs",
	Long: `chromagen derives design-system color artifacts from a single base
color: shade scales, semantic themes, harmony schemes, CSS gradients,
and WCAG-checked foreground/background pairs.

Colors are accepted as hex (#1890ff), named colors (cornflowerblue),
or functional notation (rgb(24, 144, 255), hsl(210, 100%, 55%)).`,
	SilenceUsage: true,
	Version:      chroma.Version,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain output without terminal swatches")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newScaleCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newSchemeCmd())
	rootCmd.AddCommand(newGradientCmd())
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newSimulateCmd())
}
