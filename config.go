package gridkit

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GridConfig describes a grid in YAML:
//
//	mode: isometric
//	x: 0
//	y: 0
//	cols: 8
//	rows: 8
//	tile_width: 64
//	tile_height: 32
//	color: "#40c0ff"
type GridConfig struct {
	Mode       string `yaml:"mode"` // "orthogonal" (default) or "isometric"
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Cols       int    `yaml:"cols"`
	Rows       int    `yaml:"rows"`
	TileWidth  int    `yaml:"tile_width"`
	TileHeight int    `yaml:"tile_height"`
	Color      string `yaml:"color"` // "#rrggbb" or "#rrggbbaa"; empty means white
}

// ParseGridConfig decodes a YAML grid description.
func ParseGridConfig(data []byte) (GridConfig, error) {
	var cfg GridConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse grid config: %w", err)
	}
	return cfg, nil
}

// LoadGridConfig reads and decodes a YAML grid description from path.
func LoadGridConfig(path string) (GridConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GridConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseGridConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// GridMode returns the mode named by the config.
func (c GridConfig) GridMode() (GridMode, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "", "orthogonal", "ortho":
		return ModeOrthogonal, nil
	case "isometric", "iso":
		return ModeIsometric, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidGrid, c.Mode)
	}
}

// Build creates the grid, computes its tiles for its mode and applies the
// configured color.
func (c GridConfig) Build() (*Grid, error) {
	mode, err := c.GridMode()
	if err != nil {
		return nil, err
	}
	clr := ColorWhite
	if c.Color != "" {
		if clr, err = ParseHexColor(c.Color); err != nil {
			return nil, err
		}
	}

	rect := Rect{X: c.X, Y: c.Y, Width: c.Cols, Height: c.Rows}
	g, err := newGrid(mode, rect, c.TileWidth, c.TileHeight)
	if err != nil {
		return nil, err
	}
	if mode == ModeIsometric {
		err = g.CalcIso()
	} else {
		err = g.Calc()
	}
	if err != nil {
		return nil, err
	}
	g.SetColor(clr)
	return g, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return RGB(uint32(v)), nil
	case 8:
		return RGBA(uint32(v)), nil
	default:
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
}
