package gridkit

import (
	"fmt"
	"math"
)

// isoSearchRadius is how many columns/rows around the predicted tile are
// checked by IsoTileKeyAt. Two covers every tile whose bounding box can hold
// the point, including shared diamond edges, for odd tile sizes too.
const isoSearchRadius = 2

// NewIsoGrid creates an isometric grid. rect.Width and rect.Height are the
// column and row counts; tileW and tileH are the bounding size of a single
// diamond in pixels and must both be at least 2. No tiles exist until
// CalcIso is called.
//
// Isometric grids are only valid with CalcIso, DrawIso, IsoTileKeyAt and
// IsoNeighbors; the orthogonal variants report ErrModeMismatch or NoTile.
func NewIsoGrid(rect Rect, tileW, tileH int) (*Grid, error) {
	return newGrid(ModeIsometric, rect, tileW, tileH)
}

// isoMatrix is the projection from (col, row) to pixel offsets:
//
//	| tileW/2  -tileW/2 |
//	| tileH/2   tileH/2 |
func (g *Grid) isoMatrix() Matrix {
	hw, hh := g.tileW/2, g.tileH/2
	return Matrix{hw, -hw, hh, hh}
}

// isoOrigin is the pixel position of tile (0, 0)'s bounding box. It is
// shifted right by one half-tile per extra row so the left-most diamond
// starts at rect.X.
func (g *Grid) isoOrigin() Vector2 {
	shift := max(g.rect.Height-1, 0)
	return Vector2{g.rect.X + shift*(g.tileW/2), g.rect.Y}
}

// CalcIso (re)computes the tiles of an isometric grid. Keys are row-major
// like Calc, but each bounding box is placed by the isometric projection, so
// neighboring boxes overlap while their diamonds do not.
func (g *Grid) CalcIso() error {
	if g.mode != ModeIsometric {
		return fmt.Errorf("calc iso: %w (grid is %s)", ErrModeMismatch, g.mode)
	}
	g.layout(func(col, row int) Vector2 {
		return g.TileIsoGridPos(col, row)
	})
	return nil
}

// diamond returns the top, right, bottom and left points of a tile's diamond.
func diamond(r Rect) (top, right, bottom, left Vec2) {
	x, y := float64(r.X), float64(r.Y)
	w, h := float64(r.Width), float64(r.Height)
	return Vec2{x + w/2, y},
		Vec2{x + w, y + h/2},
		Vec2{x + w/2, y + h},
		Vec2{x, y + h/2}
}

// diamondContains reports whether (x, y) lies on or inside the tile diamond,
// testing the upper and lower triangles separately.
func diamondContains(r Rect, x, y int) bool {
	if !r.containsInclusive(x, y) {
		return false
	}
	p := Vec2{float64(x), float64(y)}
	top, right, bottom, left := diamond(r)
	return PointInTriangle(top, right, left, p) ||
		PointInTriangle(left, right, bottom, p)
}

// IsoTileKeyAt returns the key of the isometric tile whose diamond contains
// pixel (x, y), or NoTile. Points on an edge shared by two diamonds resolve
// to the lower key. Orthogonal grids always report NoTile.
func (g *Grid) IsoTileKeyAt(x, y int) int {
	if g.mode != ModeIsometric {
		Logger().Warn("isometric lookup on orthogonal grid", "x", x, "y", y)
		return NoTile
	}
	if len(g.tiles) == 0 {
		return NoTile
	}

	// Predict the tile from the continuous inverse projection, then check the
	// bounding boxes around it in key order.
	o := g.isoOrigin()
	hw, hh := float64(g.tileW/2), float64(g.tileH/2)
	u := (float64(x-o.X) - float64(g.tileW)/2) / hw
	v := float64(y-o.Y) / hh
	predCol := int(math.Floor((u + v) / 2))
	predRow := int(math.Floor((v - u) / 2))

	for row := predRow - isoSearchRadius; row <= predRow+isoSearchRadius; row++ {
		for col := predCol - isoSearchRadius; col <= predCol+isoSearchRadius; col++ {
			key := g.keyOf(col, row)
			if key == NoTile {
				continue
			}
			if diamondContains(g.tiles[key].Rect, x, y) {
				return key
			}
		}
	}
	return NoTile
}

// IsoNeighbors returns the eight neighbors of an isometric tile as seen on
// screen. Diagonal screen neighbors are one column or row away; left, right,
// top and bottom are one column and one row away. Unknown keys, lattice
// edges and orthogonal grids yield NoTile.
func (g *Grid) IsoNeighbors(key int) TileNeighbors {
	if g.mode != ModeIsometric {
		Logger().Warn("isometric neighbors on orthogonal grid", "key", key)
		return noNeighbors
	}
	t, ok := g.Tile(key)
	if !ok {
		return noNeighbors
	}
	c, r := t.Col, t.Row
	return TileNeighbors{
		Left:        g.keyOf(c-1, r+1),
		Right:       g.keyOf(c+1, r-1),
		Top:         g.keyOf(c-1, r-1),
		Bottom:      g.keyOf(c+1, r+1),
		TopLeft:     g.keyOf(c-1, r),
		TopRight:    g.keyOf(c, r-1),
		BottomLeft:  g.keyOf(c, r+1),
		BottomRight: g.keyOf(c+1, r),
	}
}

// TileIsoGridVector projects a (col, row) vector into an isometric pixel
// offset.
func (g *Grid) TileIsoGridVector(v Vector2) Vector2 {
	return g.isoMatrix().Apply(v)
}

// TileIsoGridPos returns the pixel position of the bounding box of the
// isometric tile at (col, row). The tile need not exist.
func (g *Grid) TileIsoGridPos(col, row int) Vector2 {
	return g.isoOrigin().Add(g.TileIsoGridVector(Vector2{col, row}))
}

// TileGridVector maps an isometric pixel offset back to a (col, row)
// vector. It is the exact inverse of TileIsoGridVector; offsets between
// lattice points truncate toward zero. Tile sizes below 2 make the
// projection singular and return ErrSingularMatrix.
func (g *Grid) TileGridVector(v Vector2) (Vector2, error) {
	return g.isoMatrix().Solve(v)
}

// TileGridPos maps a pixel position back to (col, row). It is the exact
// inverse of TileIsoGridPos.
func (g *Grid) TileGridPos(x, y int) (Vector2, error) {
	return g.TileGridVector(Vector2{x, y}.Sub(g.isoOrigin()))
}
