package gridkit

import "image/color"

// NoTile is the key reported when a position or neighbor has no tile.
const NoTile = -1

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a renderer.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default grid line color.
var ColorWhite = Color{1, 1, 1, 1}

// RGB converts a packed 0xRRGGBB value into an opaque Color.
func RGB(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// RGBA converts a packed 0xRRGGBBAA value into a Color.
func RGBA(hex uint32) Color {
	return Color{
		R: float64((hex>>24)&0xff) / 255,
		G: float64((hex>>16)&0xff) / 255,
		B: float64((hex>>8)&0xff) / 255,
		A: float64(hex&0xff) / 255,
	}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// RGBA implements color.Color, so a Color can be passed straight to
// Ebitengine fill and vector calls.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle in pixels. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive, so adjacent rectangles never
// both contain the same pixel.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// containsInclusive is Contains with the right and bottom edges included.
func (r Rect) containsInclusive(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Vec2 is a floating-point 2D point used by the geometry helpers.
type Vec2 struct {
	X, Y float64
}

// GridMode records which layout a Grid was created for.
type GridMode uint8

const (
	ModeOrthogonal GridMode = iota // axis-aligned rectangular tiles
	ModeIsometric                  // diamond tiles on a staggered lattice
)

// String returns the lowercase mode name used in configuration files.
func (m GridMode) String() string {
	switch m {
	case ModeOrthogonal:
		return "orthogonal"
	case ModeIsometric:
		return "isometric"
	default:
		return "unknown"
	}
}
