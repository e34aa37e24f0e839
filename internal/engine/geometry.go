// internal/engine/geometry.go
package engine

// Point is an integer screen-space coordinate, also used for velocity.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned box in screen space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Intersects reports whether the two rectangles overlap. Touching edges do
// not count as an intersection.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}
