package platform

import (
	"fmt"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Add offsets a point, clamping the result to non-negative coordinates.
func (pt Point) Add(x, y int) Point {
	return Point{X: max(pt.X+x, 0), Y: max(pt.Y+y, 0)}
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

func (sz Size) String() string {
	return fmt.Sprintf("%dx%d", sz.Width, sz.Height)
}

// Rect is a rectangle of cells.
type Rect struct {
	X, Y int
	W, H int
}

// Contains returns true if pt is inside the rectangle.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.Y >= r.Y && pt.X < r.X+r.W && pt.Y < r.Y+r.H
}
