package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromakit/chroma"
)

func newGradientCmd() *cobra.Command {
	var (
		kind   string
		angle  float64
		smooth int
		space  string
	)

	cmd := &cobra.Command{
		Use:   "gradient <color> <color> [color...]",
		Short: "Emit a CSS gradient from a color list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := make([]chroma.Color, len(args))
			for i, a := range args {
				c, err := chroma.Parse(a)
				if err != nil {
					return err
				}
				colors[i] = c
			}

			opts := []chroma.GradientOption{
				chroma.WithAngle(angle),
				chroma.WithInterpolationSpace(chroma.Space(space)),
			}
			if smooth > 0 {
				opts = append(opts, chroma.WithSmoothing(smooth))
			}

			css, err := chroma.GenerateGradient(chroma.GradientKind(kind), colors, opts...)
			if err != nil {
				return err
			}
			fmt.Println(css)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "linear", "gradient kind: linear, radial, or conic")
	cmd.Flags().Float64Var(&angle, "angle", 90, "linear gradient angle in degrees")
	cmd.Flags().IntVar(&smooth, "smooth", 0, "Bézier sub-stops per pair (0 disables smoothing)")
	cmd.Flags().StringVar(&space, "space", "rgb", "smoothing interpolation space: rgb, hsl, or lab")
	return cmd
}
