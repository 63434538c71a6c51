// gridprobe inspects a grid described by a YAML config.
//
// Usage:
//
//	gridprobe info                  - Print the grid summary and tile table
//	gridprobe tile <x> <y>          - Print the tile key at a pixel
//	gridprobe neighbors <key>       - Print the eight neighbors of a tile
//	gridprobe transform <x> <y>     - Convert grid (col,row) to iso pixels
//
// Global flags:
//
//	--config <path>  - Grid config (YAML, required)
//	--verbose        - Log grid computation to stderr
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/gridkit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// probe holds the state shared by every subcommand.
type probe struct {
	configPath string
	verbose    bool
	grid       *gridkit.Grid
}

func newRootCmd() *cobra.Command {
	p := &probe{}
	rootCmd := &cobra.Command{
		Use:   "gridprobe",
		Short: "Inspect orthogonal and isometric grids",
		Long: `gridprobe loads a grid from a YAML config and answers questions
about it: tile layout, pixel lookups, neighbors and iso transforms.

Examples:
  gridprobe --config grid.yaml info
  gridprobe --config grid.yaml tile 120 48
  gridprobe --config grid.yaml neighbors 5
  gridprobe --config iso.yaml transform 2 1
  gridprobe --config iso.yaml transform 160 32 --inverse`,
		SilenceUsage:      true,
		PersistentPreRunE: p.load,
	}

	rootCmd.PersistentFlags().StringVar(&p.configPath, "config", "", "Path to grid config (YAML)")
	rootCmd.PersistentFlags().BoolVar(&p.verbose, "verbose", false, "Log grid computation to stderr")
	_ = rootCmd.MarkPersistentFlagRequired("config")

	rootCmd.AddCommand(p.infoCmd())
	rootCmd.AddCommand(p.tileCmd())
	rootCmd.AddCommand(p.neighborsCmd())
	rootCmd.AddCommand(p.transformCmd())
	return rootCmd
}

// load installs the logger and builds the grid before any subcommand runs.
func (p *probe) load(cmd *cobra.Command, args []string) error {
	level := log.WarnLevel
	if p.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "gridprobe",
	})
	gridkit.SetLogger(slog.New(logger))

	cfg, err := gridkit.LoadGridConfig(p.configPath)
	if err != nil {
		return err
	}
	g, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build grid from %s: %w", p.configPath, err)
	}
	p.grid = g
	return nil
}
