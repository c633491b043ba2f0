package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

func newContrastCmd() *cobra.Command {
	var (
		level string
		size  string
		fix   bool
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check WCAG contrast between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := chroma.Parse(args[0])
			if err != nil {
				return err
			}
			bg, err := chroma.Parse(args[1])
			if err != nil {
				return err
			}

			lvl := chroma.Level(level)
			sz := chroma.TextSize(size)
			ratio := chroma.ContrastRatio(fg, bg)

			fmt.Println(labeled("fg", fg))
			fmt.Println(labeled("bg", bg))
			fmt.Printf("ratio    %.2f:1\n", ratio)
			verdict := "FAIL"
			if chroma.IsCompliant(fg, bg, lvl, sz) {
				verdict = "PASS"
			}
			fmt.Printf("%s %s   %s (needs %.1f:1)\n", level, size, verdict,
				chroma.ContrastThreshold(lvl, sz))

			if fix && verdict == "FAIL" {
				adjusted := chroma.AutoAdjust(fg, bg, lvl, sz)
				fmt.Println(labeled("fixed", adjusted))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "AA", "WCAG level: AA or AAA")
	cmd.Flags().StringVar(&size, "size", "normal", "text size: normal or large")
	cmd.Flags().BoolVar(&fix, "fix", false, "suggest an adjusted foreground when the check fails")
	return cmd
}
