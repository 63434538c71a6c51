package gridkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned when a grid is created or reset with
	// geometry that cannot produce tiles.
	ErrInvalidGrid = errors.New("gridkit: invalid grid geometry")

	// ErrModeMismatch is returned when an orthogonal-only operation is
	// called on an isometric grid, or the other way round.
	ErrModeMismatch = errors.New("gridkit: grid mode mismatch")
)

// Tile is a single cell of a Grid.
type Tile struct {
	Key  int  // index in the grid's tile slice
	Row  int  // row in the logical lattice
	Col  int  // column in the logical lattice
	Rect Rect // pixel bounding box; for isometric tiles this encloses the diamond
}

// TileNeighbors holds the keys of the eight tiles around a tile. Missing
// neighbors are NoTile.
type TileNeighbors struct {
	Left, Right, Top, Bottom                   int
	TopLeft, TopRight, BottomLeft, BottomRight int
}

// noNeighbors is a TileNeighbors with every slot set to NoTile.
var noNeighbors = TileNeighbors{
	NoTile, NoTile, NoTile, NoTile,
	NoTile, NoTile, NoTile, NoTile,
}

// Grid partitions a rectangular region into tiles.
//
// The defining rectangle stores the pixel origin in X/Y and the column and
// row counts in Width/Height. Tiles are populated by Calc (orthogonal) or
// CalcIso (isometric) and are empty until then.
type Grid struct {
	rect  Rect
	tileW int
	tileH int
	color Color
	mode  GridMode
	tiles []Tile
}

// NewGrid creates an orthogonal grid. rect.Width and rect.Height are the
// column and row counts; tileW and tileH are the tile size in pixels.
// No tiles exist until Calc is called.
func NewGrid(rect Rect, tileW, tileH int) (*Grid, error) {
	return newGrid(ModeOrthogonal, rect, tileW, tileH)
}

func newGrid(mode GridMode, rect Rect, tileW, tileH int) (*Grid, error) {
	if err := validateGeometry(mode, rect, tileW, tileH); err != nil {
		return nil, err
	}
	return &Grid{
		rect:  rect,
		tileW: tileW,
		tileH: tileH,
		color: ColorWhite,
		mode:  mode,
	}, nil
}

func validateGeometry(mode GridMode, rect Rect, tileW, tileH int) error {
	if rect.Width < 0 || rect.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidGrid, rect.Width, rect.Height)
	}
	minSize := 1
	if mode == ModeIsometric {
		// Half-tile steps of zero would make the projection singular.
		minSize = 2
	}
	if tileW < minSize || tileH < minSize {
		return fmt.Errorf("%w: tile size %dx%d below %d", ErrInvalidGrid, tileW, tileH, minSize)
	}
	return nil
}

// Reset replaces the grid geometry and drops every tile. Call Calc or
// CalcIso again before using tile lookups.
func (g *Grid) Reset(rect Rect, tileW, tileH int) error {
	if err := validateGeometry(g.mode, rect, tileW, tileH); err != nil {
		return err
	}
	g.rect = rect
	g.tileW = tileW
	g.tileH = tileH
	g.tiles = nil
	return nil
}

// Mode returns the layout the grid was created for.
func (g *Grid) Mode() GridMode { return g.mode }

// Rect returns the defining rectangle: pixel origin plus column/row counts.
func (g *Grid) Rect() Rect { return g.rect }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.rect.Width }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rect.Height }

// TileSize returns the tile width and height in pixels.
func (g *Grid) TileSize() (w, h int) { return g.tileW, g.tileH }

// Color returns the draw color.
func (g *Grid) Color() Color { return g.color }

// SetColor sets the line color used by Draw and DrawIso.
func (g *Grid) SetColor(c Color) { g.color = c }

// TileCount returns the number of computed tiles.
func (g *Grid) TileCount() int { return len(g.tiles) }

// Tiles returns the computed tiles indexed by key. The slice is owned by the
// grid and is replaced on the next Calc; callers must not modify it.
func (g *Grid) Tiles() []Tile { return g.tiles }

// Tile returns the tile with the given key.
func (g *Grid) Tile(key int) (Tile, bool) {
	if key < 0 || key >= len(g.tiles) {
		return Tile{}, false
	}
	return g.tiles[key], true
}

// Calc (re)computes the tiles of an orthogonal grid. Tiles are laid out
// row-major, so key = row*cols + col. Any previous tiles are discarded.
func (g *Grid) Calc() error {
	if g.mode != ModeOrthogonal {
		return fmt.Errorf("calc: %w (grid is %s)", ErrModeMismatch, g.mode)
	}
	g.layout(func(col, row int) Vector2 {
		return Vector2{g.rect.X + col*g.tileW, g.rect.Y + row*g.tileH}
	})
	return nil
}

// layout rebuilds the tile slice, asking origin for each tile's top-left.
func (g *Grid) layout(origin func(col, row int) Vector2) {
	cols, rows := g.rect.Width, g.rect.Height
	tiles := make([]Tile, cols*rows)
	for row := range rows {
		for col := range cols {
			key := row*cols + col
			o := origin(col, row)
			tiles[key] = Tile{
				Key: key,
				Row: row,
				Col: col,
				Rect: Rect{
					X:      o.X,
					Y:      o.Y,
					Width:  g.tileW,
					Height: g.tileH,
				},
			}
		}
	}
	g.tiles = tiles
	Logger().Debug("grid computed",
		"mode", g.mode.String(),
		"cols", cols,
		"rows", rows,
		"tiles", len(tiles))
}

// Move translates the grid origin and every tile by (dx, dy) without
// recomputing. Keys, rows, columns and neighbors are unchanged.
func (g *Grid) Move(dx, dy int) {
	g.rect.X += dx
	g.rect.Y += dy
	for i := range g.tiles {
		g.tiles[i].Rect = g.tiles[i].Rect.Translate(dx, dy)
	}
}

// TileKeyAt returns the key of the orthogonal tile containing pixel (x, y),
// or NoTile if the position is outside the grid. Isometric grids always
// report NoTile; use IsoTileKeyAt for them.
func (g *Grid) TileKeyAt(x, y int) int {
	if g.mode != ModeOrthogonal {
		Logger().Warn("orthogonal lookup on isometric grid", "x", x, "y", y)
		return NoTile
	}
	if len(g.tiles) == 0 || x < g.rect.X || y < g.rect.Y {
		return NoTile
	}
	col := (x - g.rect.X) / g.tileW
	row := (y - g.rect.Y) / g.tileH
	return g.keyOf(col, row)
}

// keyOf returns the key at (col, row) or NoTile outside the lattice.
func (g *Grid) keyOf(col, row int) int {
	cols, rows := g.rect.Width, g.rect.Height
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return NoTile
	}
	key := row*cols + col
	if key >= len(g.tiles) {
		return NoTile
	}
	return key
}

// Neighbors returns the eight neighbors of an orthogonal tile. An unknown
// key, or an isometric grid, yields NoTile in every slot.
func (g *Grid) Neighbors(key int) TileNeighbors {
	if g.mode != ModeOrthogonal {
		Logger().Warn("orthogonal neighbors on isometric grid", "key", key)
		return noNeighbors
	}
	t, ok := g.Tile(key)
	if !ok {
		return noNeighbors
	}
	c, r := t.Col, t.Row
	return TileNeighbors{
		Left:        g.keyOf(c-1, r),
		Right:       g.keyOf(c+1, r),
		Top:         g.keyOf(c, r-1),
		Bottom:      g.keyOf(c, r+1),
		TopLeft:     g.keyOf(c-1, r-1),
		TopRight:    g.keyOf(c+1, r-1),
		BottomLeft:  g.keyOf(c-1, r+1),
		BottomRight: g.keyOf(c+1, r+1),
	}
}
