package layout

// Point is a position in solver units, relative to some owning box.
type Point struct {
	X, Y float32
}

// Add offsets p by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// In reports whether p falls inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size is a width/height pair in solver units.
type Size struct {
	Width, Height float32
}

// Insets holds resolved per-side amounts in solver units.
type Insets struct {
	Left, Top, Right, Bottom float32
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() float32 {
	return in.Top + in.Bottom
}

// Add returns the per-side sum of two insets.
func (in Insets) Add(other Insets) Insets {
	return Insets{
		Left:   in.Left + other.Left,
		Top:    in.Top + other.Top,
		Right:  in.Right + other.Right,
		Bottom: in.Bottom + other.Bottom,
	}
}

// Rect represents a rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect shrunk by the given insets.
// Width and height never go below zero.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  max(0, r.Width-in.Horizontal()),
		Height: max(0, r.Height-in.Vertical()),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
