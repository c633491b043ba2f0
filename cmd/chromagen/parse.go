package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

func newParseCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "parse <color>",
		Short: "Parse a color and print it, optionally converted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := chroma.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Println(swatch(c))

			spaces := chroma.Spaces
			if to != "" {
				spaces = []chroma.Space{chroma.Space(to)}
			}
			for _, space := range spaces {
				rec, err := chroma.Convert(c, space)
				if err != nil {
					return err
				}
				fmt.Printf("%-6s %+v\n", space, rec)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "print a single color space (hsl, lab, oklch, ...) instead of all")
	return cmd
}
