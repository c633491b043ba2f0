package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

func newSchemeCmd() *cobra.Command {
	var harmony string

	cmd := &cobra.Command{
		Use:   "scheme <color>",
		Short: "Generate a color harmony scheme",
		Long: `Derives a harmony scheme from a base color. The default "adaptive"
harmony evaluates every type and picks the best-scoring one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := chroma.Parse(args[0])
			if err != nil {
				return err
			}

			var scheme chroma.ColorScheme
			if harmony == "adaptive" {
				scheme, err = chroma.GenerateAdaptiveScheme(base)
			} else {
				scheme, err = chroma.GenerateScheme(base, chroma.HarmonyType(harmony))
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s (score %.2f)\n", scheme.Type, scheme.Score)
			for _, c := range scheme.Colors {
				fmt.Println(swatch(c))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&harmony, "harmony", "adaptive",
		"harmony type: complementary, analogous, triadic, tetradic, square, split-complementary, compound, monochromatic, or adaptive")
	return cmd
}
