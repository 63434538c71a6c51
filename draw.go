package gridkit

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the host drawing context the grid draws through. Coordinates
// are device pixels.
type Renderer interface {
	// DrawLine draws a line from (x1, y1) to (x2, y2).
	DrawLine(x1, y1, x2, y2 int, c Color)
	// DrawRect draws the outline of r.
	DrawRect(r Rect, c Color)
}

// Draw outlines every tile of an orthogonal grid in the grid color, in key
// order.
func (g *Grid) Draw(r Renderer) error {
	if g.mode != ModeOrthogonal {
		return fmt.Errorf("draw: %w (grid is %s)", ErrModeMismatch, g.mode)
	}
	for i := range g.tiles {
		r.DrawRect(g.tiles[i].Rect, g.color)
	}
	return nil
}

// DrawIso outlines the diamond of every tile of an isometric grid: four
// lines from the top point clockwise back to the top.
func (g *Grid) DrawIso(r Renderer) error {
	if g.mode != ModeIsometric {
		return fmt.Errorf("draw iso: %w (grid is %s)", ErrModeMismatch, g.mode)
	}
	for i := range g.tiles {
		t := g.tiles[i].Rect
		topX, topY := t.X+t.Width/2, t.Y
		rightX, rightY := t.X+t.Width, t.Y+t.Height/2
		bottomX, bottomY := t.X+t.Width/2, t.Y+t.Height
		leftX, leftY := t.X, t.Y+t.Height/2

		r.DrawLine(topX, topY, rightX, rightY, g.color)
		r.DrawLine(rightX, rightY, bottomX, bottomY, g.color)
		r.DrawLine(bottomX, bottomY, leftX, leftY, g.color)
		r.DrawLine(leftX, leftY, topX, topY, g.color)
	}
	return nil
}

// ImageRenderer is a Renderer that strokes onto an Ebitengine image.
type ImageRenderer struct {
	// Dst is the image drawn onto, typically the screen passed to Draw.
	Dst *ebiten.Image
	// StrokeWidth is the line width in pixels. Default 1.
	StrokeWidth float32
	// Antialias enables anti-aliased strokes.
	Antialias bool
}

// NewImageRenderer creates an ImageRenderer drawing onto dst.
func NewImageRenderer(dst *ebiten.Image) *ImageRenderer {
	return &ImageRenderer{Dst: dst, StrokeWidth: 1}
}

// DrawLine implements Renderer.
func (r *ImageRenderer) DrawLine(x1, y1, x2, y2 int, c Color) {
	vector.StrokeLine(r.Dst,
		float32(x1), float32(y1), float32(x2), float32(y2),
		r.StrokeWidth, c.toRGBA(), r.Antialias)
}

// DrawRect implements Renderer.
func (r *ImageRenderer) DrawRect(rect Rect, c Color) {
	vector.StrokeRect(r.Dst,
		float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
		r.StrokeWidth, c.toRGBA(), r.Antialias)
}
