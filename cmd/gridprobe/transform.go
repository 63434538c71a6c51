package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gridkit"
)

func (p *probe) transformCmd() *cobra.Command {
	var inverse bool
	cmd := &cobra.Command{
		Use:   "transform <x> <y>",
		Short: "Convert between grid and isometric positions",
		Long: `Without --inverse, treats x and y as (col, row) and prints the pixel
position of that tile's bounding box. With --inverse, treats x and y as a
pixel position and prints the (col, row) it maps back to.

Only isometric grids have a projection to convert through.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.runTransform(cmd, args, inverse)
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Convert a pixel position back to (col, row)")
	return cmd
}

func (p *probe) runTransform(cmd *cobra.Command, args []string, inverse bool) error {
	if p.grid.Mode() != gridkit.ModeIsometric {
		return fmt.Errorf("transform: %w (grid is %s)", gridkit.ErrModeMismatch, p.grid.Mode())
	}
	x, y, err := parsePair(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inverse {
		v, err := p.grid.TileGridPos(x, y)
		if err != nil {
			return fmt.Errorf("transform: %w", err)
		}
		fmt.Fprintf(out, "pixel (%d,%d) -> grid (%d,%d)\n", x, y, v.X, v.Y)
		return nil
	}
	v := p.grid.TileIsoGridPos(x, y)
	fmt.Fprintf(out, "grid (%d,%d) -> pixel (%d,%d)\n", x, y, v.X, v.Y)
	return nil
}
