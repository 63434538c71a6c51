package gridkit

import (
	"errors"
	"testing"
)

func newTestIsoGrid(t *testing.T, rect Rect, tw, th int) *Grid {
	t.Helper()
	g, err := NewIsoGrid(rect, tw, th)
	if err != nil {
		t.Fatalf("NewIsoGrid: %v", err)
	}
	if err := g.CalcIso(); err != nil {
		t.Fatalf("CalcIso: %v", err)
	}
	return g
}

// bruteIsoKey scans every tile in key order.
func bruteIsoKey(g *Grid, x, y int) int {
	for _, tile := range g.Tiles() {
		if diamondContains(tile.Rect, x, y) {
			return tile.Key
		}
	}
	return NoTile
}

func TestNewIsoGridInvalid(t *testing.T) {
	for _, size := range [][2]int{{1, 32}, {64, 1}, {0, 0}} {
		if _, err := NewIsoGrid(Rect{0, 0, 2, 2}, size[0], size[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewIsoGrid tile %v err = %v, want ErrInvalidGrid", size, err)
		}
	}
}

func TestCalcIsoLayout(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 4, 4}, 64, 32)
	if g.TileCount() != 16 {
		t.Fatalf("TileCount = %d, want 16", g.TileCount())
	}
	tests := []struct {
		key  int
		want Rect
	}{
		{0, Rect{96, 0, 64, 32}},
		{1, Rect{128, 16, 64, 32}},
		{4, Rect{64, 16, 64, 32}},
		{5, Rect{96, 32, 64, 32}},
		{12, Rect{0, 48, 64, 32}},
		{15, Rect{96, 96, 64, 32}},
	}
	for _, tt := range tests {
		tile, ok := g.Tile(tt.key)
		if !ok {
			t.Fatalf("Tile(%d) missing", tt.key)
		}
		if tile.Rect != tt.want {
			t.Errorf("tile %d rect = %v, want %v", tt.key, tile.Rect, tt.want)
		}
		if pos := g.TileIsoGridPos(tile.Col, tile.Row); pos.X != tile.Rect.X || pos.Y != tile.Rect.Y {
			t.Errorf("TileIsoGridPos(%d, %d) = %v, tile rect %v", tile.Col, tile.Row, pos, tile.Rect)
		}
	}
}

func TestIsoTileKeyAtCenters(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 4, 4}, 64, 32)
	for _, tile := range g.Tiles() {
		cx, cy := tile.Rect.X+32, tile.Rect.Y+16
		if got := g.IsoTileKeyAt(cx, cy); got != tile.Key {
			t.Errorf("IsoTileKeyAt(%d, %d) = %d, want %d", cx, cy, got, tile.Key)
		}
	}
}

func TestIsoTileKeyAt(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 4, 4}, 64, 32)
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"bounding box corner outside diamond", 100, 2, NoTile},
		{"shared edge resolves to lower key", 144, 24, 0},
		{"top vertex", 128, 0, 0},
		{"inner tile", 128, 48, 5},
		{"far outside", 1000, 1000, NoTile},
		{"left of grid", -5, 60, NoTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsoTileKeyAt(tt.x, tt.y); got != tt.want {
				t.Errorf("IsoTileKeyAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestIsoTileKeyAtMatchesFullScan(t *testing.T) {
	sizes := [][2]int{{64, 32}, {33, 17}, {2, 2}}
	for _, size := range sizes {
		g := newTestIsoGrid(t, Rect{-10, 5, 5, 3}, size[0], size[1])
		w := (5 + 3) * size[0]
		h := (5 + 3) * size[1]
		for y := -5; y < h; y++ {
			for x := -15; x < w; x++ {
				want := bruteIsoKey(g, x, y)
				if got := g.IsoTileKeyAt(x, y); got != want {
					t.Fatalf("tile %v: IsoTileKeyAt(%d, %d) = %d, full scan %d", size, x, y, got, want)
				}
			}
		}
	}
}

func TestIsoNeighbors(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 4, 4}, 64, 32)

	want := TileNeighbors{
		Left: 8, Right: 2, Top: 0, Bottom: 10,
		TopLeft: 4, TopRight: 1, BottomLeft: 9, BottomRight: 6,
	}
	if got := g.IsoNeighbors(5); got != want {
		t.Errorf("IsoNeighbors(5) = %+v, want %+v", got, want)
	}

	want = TileNeighbors{
		Left: NoTile, Right: NoTile, Top: NoTile, Bottom: 5,
		TopLeft: NoTile, TopRight: NoTile, BottomLeft: 4, BottomRight: 1,
	}
	if got := g.IsoNeighbors(0); got != want {
		t.Errorf("IsoNeighbors(0) = %+v, want %+v", got, want)
	}

	if got := g.IsoNeighbors(-1); got != noNeighbors {
		t.Errorf("IsoNeighbors(-1) = %+v", got)
	}
}

func TestIsoNeighborsMatchScreenLayout(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 4, 4}, 64, 32)
	center, _ := g.Tile(5)
	n := g.IsoNeighbors(5)
	offsets := []struct {
		name   string
		key    int
		dx, dy int
	}{
		{"left", n.Left, -64, 0},
		{"right", n.Right, 64, 0},
		{"top", n.Top, 0, -32},
		{"bottom", n.Bottom, 0, 32},
		{"top-left", n.TopLeft, -32, -16},
		{"top-right", n.TopRight, 32, -16},
		{"bottom-left", n.BottomLeft, -32, 16},
		{"bottom-right", n.BottomRight, 32, 16},
	}
	for _, o := range offsets {
		tile, ok := g.Tile(o.key)
		if !ok {
			t.Fatalf("%s neighbor %d missing", o.name, o.key)
		}
		dx, dy := tile.Rect.X-center.Rect.X, tile.Rect.Y-center.Rect.Y
		if dx != o.dx || dy != o.dy {
			t.Errorf("%s neighbor offset = (%d, %d), want (%d, %d)", o.name, dx, dy, o.dx, o.dy)
		}
	}
}

func TestIsoNeighborsSymmetry(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 5, 3}, 64, 32)
	assertNeighborSymmetry(t, g.TileCount(), g.IsoNeighbors)
}

func TestTileIsoGridVector(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 4, 4}, 64, 32)
	if got := g.TileIsoGridVector(Vector2{1, 0}); got != (Vector2{32, 16}) {
		t.Errorf("TileIsoGridVector(1,0) = %v", got)
	}
	if got := g.TileIsoGridVector(Vector2{0, 1}); got != (Vector2{-32, 16}) {
		t.Errorf("TileIsoGridVector(0,1) = %v", got)
	}
}

func TestIsoTransformRoundTrip(t *testing.T) {
	sizes := [][2]int{{64, 32}, {33, 17}, {2, 2}, {100, 50}}
	for _, size := range sizes {
		g := newTestIsoGrid(t, Rect{13, -7, 6, 4}, size[0], size[1])
		for x := -6; x <= 6; x++ {
			for y := -6; y <= 6; y++ {
				v := Vector2{x, y}
				back, err := g.TileGridVector(g.TileIsoGridVector(v))
				if err != nil {
					t.Fatal(err)
				}
				if back != v {
					t.Errorf("tile %v: vector round trip %v -> %v", size, v, back)
				}

				pos := g.TileIsoGridPos(x, y)
				cell, err := g.TileGridPos(pos.X, pos.Y)
				if err != nil {
					t.Fatal(err)
				}
				if cell != v {
					t.Errorf("tile %v: position round trip %v -> %v -> %v", size, v, pos, cell)
				}
			}
		}
	}
}

func TestTileGridVectorSingular(t *testing.T) {
	g, err := NewGrid(Rect{0, 0, 2, 2}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.TileGridVector(Vector2{1, 1}); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("err = %v, want ErrSingularMatrix", err)
	}
	if _, err := g.TileGridPos(0, 0); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("err = %v, want ErrSingularMatrix", err)
	}
}

func TestMoveIsoGrid(t *testing.T) {
	g := newTestIsoGrid(t, Rect{0, 0, 4, 4}, 64, 32)
	g.Move(10, 5)
	for _, tile := range g.Tiles() {
		cx, cy := tile.Rect.X+32, tile.Rect.Y+16
		if got := g.IsoTileKeyAt(cx, cy); got != tile.Key {
			t.Errorf("after Move: IsoTileKeyAt(%d, %d) = %d, want %d", cx, cy, got, tile.Key)
		}
		cell, err := g.TileGridPos(tile.Rect.X, tile.Rect.Y)
		if err != nil {
			t.Fatal(err)
		}
		if cell != (Vector2{tile.Col, tile.Row}) {
			t.Errorf("after Move: TileGridPos(tile %d) = %v", tile.Key, cell)
		}
	}
}

func TestIsoOpsOnOrthogonalGrid(t *testing.T) {
	g := newTestGrid(t, Rect{0, 0, 2, 2}, 10, 10)
	if err := g.CalcIso(); !errors.Is(err, ErrModeMismatch) {
		t.Errorf("CalcIso err = %v", err)
	}
	if got := g.IsoTileKeyAt(5, 5); got != NoTile {
		t.Errorf("IsoTileKeyAt = %d", got)
	}
	if got := g.IsoNeighbors(0); got != noNeighbors {
		t.Errorf("IsoNeighbors = %+v", got)
	}
	if err := g.DrawIso(&recordingRenderer{}); !errors.Is(err, ErrModeMismatch) {
		t.Errorf("DrawIso err = %v", err)
	}
}
