package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

func newSimulateCmd() *cobra.Command {
	var deficiency string

	cmd := &cobra.Command{
		Use:   "simulate <color>",
		Short: "Simulate color-vision deficiencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := chroma.Parse(args[0])
			if err != nil {
				return err
			}

			types := chroma.Deficiencies
			if deficiency != "" {
				types = []chroma.Deficiency{chroma.Deficiency(deficiency)}
			}

			fmt.Println(labeled("original", c))
			for _, d := range types {
				sim, err := chroma.Simulate(c, d)
				if err != nil {
					return err
				}
				fmt.Printf("%-14s %s\n", d, swatch(sim))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&deficiency, "type", "",
		"single deficiency type (default: all eight)")
	return cmd
}
