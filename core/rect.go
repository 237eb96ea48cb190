package core

import "fmt"

// Rect represents a rectangular region of the screen in cell coordinates.
// X/Y is the top-left corner; Width and Height are never negative.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle at the origin.
func NewRect(width, height int) Rect {
	return Rect{Width: max(width, 0), Height: max(height, 0)}
}

// RectAt creates a rectangle at the given position.
func RectAt(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Left returns the leftmost column of the rectangle.
func (r Rect) Left() int { return r.X }

// Right returns the first column outside the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the topmost row of the rectangle.
func (r Rect) Top() int { return r.Y }

// Bottom returns the first row outside the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int { return r.Width * r.Height }

// IsEmpty returns true if the rectangle covers no cells.
func (r Rect) IsEmpty() bool { return r.Width == 0 || r.Height == 0 }

// Contains returns true if the given cell coordinate is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Inner returns the rectangle shrunk by the given margin on each side.
// If the margin is larger than the rectangle, the result is a zero-area
// rectangle, never one with negative dimensions.
func (r Rect) Inner(horizontal, vertical int) Rect {
	if r.Width < 2*horizontal || r.Height < 2*vertical {
		return Rect{}
	}
	return Rect{
		X:      r.X + horizontal,
		Y:      r.Y + vertical,
		Width:  r.Width - 2*horizontal,
		Height: r.Height - 2*vertical,
	}
}

// Intersection returns the overlapping region of two rectangles, or a
// zero-area rectangle if they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.Left(), other.Left())
	y1 := max(r.Top(), other.Top())
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersection(other).IsEmpty()
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.Left(), other.Left())
	y1 := min(r.Top(), other.Top())
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Clamp returns a coordinate clamped to lie inside the rectangle.
func (r Rect) Clamp(x, y int) (int, int) {
	if r.IsEmpty() {
		return r.X, r.Y
	}
	return min(max(x, r.Left()), r.Right()-1), min(max(y, r.Top()), r.Bottom()-1)
}

// Equals returns true if two rectangles are identical.
func (r Rect) Equals(other Rect) bool {
	return r == other
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
