package gridkit

// Vector2 is an integer 2D vector. It is used both for pixel offsets and for
// column/row pairs in tile space.
type Vector2 struct {
	X, Y int
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}
