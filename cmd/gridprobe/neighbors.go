package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/gridkit"
)

var emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func (p *probe) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <key>",
		Short: "Print the eight neighbors of a tile",
		Long: `Prints the neighbor keys of a tile as a 3x3 block laid out the way
they appear on screen. Missing neighbors are shown as "-".`,
		Args: cobra.ExactArgs(1),
		RunE: p.runNeighbors,
	}
}

func (p *probe) runNeighbors(cmd *cobra.Command, args []string) error {
	key, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", args[0], err)
	}
	if _, ok := p.grid.Tile(key); !ok {
		return fmt.Errorf("tile %d does not exist (grid has %d tiles)", key, p.grid.TileCount())
	}

	var n gridkit.TileNeighbors
	if p.grid.Mode() == gridkit.ModeIsometric {
		n = p.grid.IsoNeighbors(key)
	} else {
		n = p.grid.Neighbors(key)
	}

	block := [3][3]int{
		{n.TopLeft, n.Top, n.TopRight},
		{n.Left, key, n.Right},
		{n.BottomLeft, n.Bottom, n.BottomRight},
	}
	out := cmd.OutOrStdout()
	for _, row := range block {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = formatKey(k)
		}
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return nil
}

func formatKey(k int) string {
	if k == gridkit.NoTile {
		return emptyStyle.Width(5).Render("-")
	}
	return lipgloss.NewStyle().Width(5).Render(strconv.Itoa(k))
}
