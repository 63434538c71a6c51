package gridkit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GridPan animates a grid origin to a target pixel position. Each Update
// moves the grid in place through Grid.Move, so tiles are never recomputed.
type GridPan struct {
	grid   *Grid
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// NewGridPan starts a pan of g from its current origin to (toX, toY) over
// duration seconds. A nil easeFn means ease.Linear.
func NewGridPan(g *Grid, toX, toY int, duration float32, easeFn ease.TweenFunc) *GridPan {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	r := g.Rect()
	return &GridPan{
		grid:   g,
		tweenX: gween.New(float32(r.X), float32(toX), duration, easeFn),
		tweenY: gween.New(float32(r.Y), float32(toY), duration, easeFn),
	}
}

// Update advances the pan by dt seconds and reports whether it has finished.
func (p *GridPan) Update(dt float32) bool {
	if p.Done() {
		return true
	}
	r := p.grid.Rect()
	x, y := r.X, r.Y
	if !p.doneX {
		val, done := p.tweenX.Update(dt)
		x = int(math.Round(float64(val)))
		p.doneX = done
	}
	if !p.doneY {
		val, done := p.tweenY.Update(dt)
		y = int(math.Round(float64(val)))
		p.doneY = done
	}
	if dx, dy := x-r.X, y-r.Y; dx != 0 || dy != 0 {
		p.grid.Move(dx, dy)
	}
	return p.Done()
}

// Done reports whether both axes have reached the target.
func (p *GridPan) Done() bool {
	return p.doneX && p.doneY
}
