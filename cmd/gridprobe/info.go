package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (p *probe) infoCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the grid summary and tile table",
		Long: `Shows the grid mode, size and tile dimensions followed by a table of
tiles in key order. Use --limit to cap the number of rows (0 = all).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.runInfo(cmd, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 16, "Maximum number of tiles to list (0 = all)")
	return cmd
}

func (p *probe) runInfo(cmd *cobra.Command, limit int) error {
	g := p.grid
	out := cmd.OutOrStdout()
	r := g.Rect()
	tw, th := g.TileSize()

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s grid", g.Mode())))
	fmt.Fprintf(out, "%s %d,%d\n", labelStyle.Render("origin:"), r.X, r.Y)
	fmt.Fprintf(out, "%s %dx%d\n", labelStyle.Render("size:  "), g.Cols(), g.Rows())
	fmt.Fprintf(out, "%s %dx%d\n", labelStyle.Render("tile:  "), tw, th)
	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("tiles: "), g.TileCount())
	fmt.Fprintln(out)

	tiles := g.Tiles()
	if limit > 0 && limit < len(tiles) {
		tiles = tiles[:limit]
	}
	rows := make([][]string, 0, len(tiles))
	for _, t := range tiles {
		rows = append(rows, []string{
			strconv.Itoa(t.Key),
			strconv.Itoa(t.Col),
			strconv.Itoa(t.Row),
			fmt.Sprintf("%d,%d", t.Rect.X, t.Rect.Y),
			fmt.Sprintf("%dx%d", t.Rect.Width, t.Rect.Height),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "COL", "ROW", "POS", "SIZE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(out, tbl.Render())

	if hidden := g.TileCount() - len(tiles); hidden > 0 {
		fmt.Fprintf(out, "... %d more (use --limit 0 to list all)\n", hidden)
	}
	return nil
}
