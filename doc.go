// Package gridkit provides orthogonal and isometric tile grids and a small
// event queue for 2D games built on [Ebitengine] or any other host that owns
// its window, input loop and rendering.
//
// # Grids
//
// A [Grid] partitions a rectangle into tiles. The rectangle's X and Y are the
// pixel origin; its Width and Height are the column and row counts:
//
//	g, err := gridkit.NewGrid(gridkit.Rect{X: 0, Y: 0, Width: 4, Height: 4}, 10, 10)
//	if err != nil {
//		return err
//	}
//	g.Calc()
//	key := g.TileKeyAt(35, 35) // 15
//
// Isometric grids are created with [NewIsoGrid] and use the Iso variants:
// [Grid.CalcIso], [Grid.DrawIso], [Grid.IsoTileKeyAt] and
// [Grid.IsoNeighbors]. A grid remembers its mode; calling an orthogonal
// operation on an isometric grid returns [ErrModeMismatch] or [NoTile].
//
// [Grid.TileIsoGridPos] and [Grid.TileGridPos] convert between (col, row)
// and isometric pixel positions and are exact inverses of each other.
//
// # Drawing
//
// Grids draw through a [Renderer]. [ImageRenderer] strokes onto an
// *ebiten.Image:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.grid.DrawIso(gridkit.NewImageRenderer(screen))
//	}
//
// # Events
//
// [EventQueue] is a FIFO with a single read cursor. [EventQueue.Poll]
// returns events in push order and reports false once at the end of the
// queue, rewinding for the next pass. [TilePicker] turns pointer input into
// tile events on a queue.
//
// # Logging
//
// gridkit is silent by default. Call [SetLogger] to receive debug output.
//
// [Ebitengine]: https://ebitengine.org
package gridkit
