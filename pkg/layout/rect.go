package layout

import "math"

// Rect represents an axis-aligned rectangle in grid-local coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromMinMax creates a Rect spanning [minX, maxX] × [minY, maxY].
// Inverted bounds produce a rectangle with negative size, which IsEmpty reports.
func RectFromMinMax(minX, minY, maxX, maxY float64) Rect {
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// RectFromSize creates a Rect at the origin covering the given extent.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the y-coordinate of the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the x-coordinate of the right edge (exclusive).
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.MaxX(), Y: r.MaxY()} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsFinite returns true if every component is a finite number.
func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.MaxX(), other.MaxX())
	bottom := min(r.MaxY(), other.MaxY())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.MaxX(), other.MaxX())
	bottom := max(r.MaxY(), other.MaxY())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
