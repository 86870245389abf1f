package layout

// Rect is a mutable position and size. X and Y locate the bottom-left
// corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the y coordinate one past the top edge.
func (r Rect) Top() int {
	return r.Y + r.Height
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Position returns the bottom-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rectangle. The left and
// bottom edges are inclusive; the right and top edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Top() <= r.Top()
}

// SetPosition moves the rectangle's bottom-left corner to (x, y).
func (r *Rect) SetPosition(x, y int) {
	r.X, r.Y = x, y
}

// SetSize changes the rectangle's width and height.
func (r *Rect) SetSize(width, height int) {
	r.Width, r.Height = width, height
}

// Translate returns a copy moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlap of r and other. The result is the zero
// Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Top(), other.Top())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}
