package layout

// Edges holds a Dimension for each side of a box. Leading and Trailing are
// the start and end of the horizontal axis and follow the writing direction.
type Edges struct {
	Leading, Trailing, Top, Bottom Dimension
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(d Dimension) Edges {
	return Edges{Leading: d, Trailing: d, Top: d, Bottom: d}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (leading/trailing) values.
func EdgeSymmetric(v, h Dimension) Edges {
	return Edges{Leading: h, Trailing: h, Top: v, Bottom: v}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
// Right maps to Trailing and Left to Leading.
func EdgeTRBL(t, r, b, l Dimension) Edges {
	return Edges{Leading: l, Trailing: r, Top: t, Bottom: b}
}

// Sides returns the four dimensions in leading, top, trailing, bottom order.
func (e Edges) Sides() [4]Dimension {
	return [4]Dimension{e.Leading, e.Top, e.Trailing, e.Bottom}
}

// IsZero returns true if no side carries a value.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
