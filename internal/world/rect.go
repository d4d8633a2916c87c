package world

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle used for room geometry.
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right one.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle at (x, y) with the given width and height.
// The caller guarantees w > 0 and h > 0.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects reports whether the closed regions of r and other overlap.
// Rectangles that only share an edge count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the integer midpoint of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// CenterPoint returns Center as a Point.
func (r Rect) CenterPoint() Point {
	x, y := r.Center()
	return Point{X: x, Y: y}
}

// Contains returns true if the point lies in the carved interior of the room,
// i.e. X1 < x <= X2 and Y1 < y <= Y2.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}
