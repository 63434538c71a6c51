package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gridkit"
)

func (p *probe) tileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tile <x> <y>",
		Short: "Print the tile key at a pixel",
		Long: `Looks up the tile containing pixel (x, y) with the lookup matching
the grid mode. Prints -1 when no tile contains the point.`,
		Args: cobra.ExactArgs(2),
		RunE: p.runTile,
	}
}

func (p *probe) runTile(cmd *cobra.Command, args []string) error {
	x, y, err := parsePair(args)
	if err != nil {
		return err
	}
	var key int
	if p.grid.Mode() == gridkit.ModeIsometric {
		key = p.grid.IsoTileKeyAt(x, y)
	} else {
		key = p.grid.TileKeyAt(x, y)
	}

	out := cmd.OutOrStdout()
	if key == gridkit.NoTile {
		fmt.Fprintf(out, "(%d,%d): no tile\n", x, y)
		return nil
	}
	t, _ := p.grid.Tile(key)
	fmt.Fprintf(out, "(%d,%d): tile %d (col %d, row %d)\n", x, y, key, t.Col, t.Row)
	return nil
}

// parsePair parses two integer arguments.
func parsePair(args []string) (int, int, error) {
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q: %w", args[1], err)
	}
	return a, b, nil
}
