package layout

// Layout holds one node's solved box. It is read back from the solver after
// every pass and never cached across passes.
type Layout struct {
	// Rect is the border box. X and Y are relative to the owning node's
	// border box.
	Rect Rect

	// Padding and Border are the resolved per-side amounts.
	Padding Insets
	Border  Insets
}

// ContentRect is Rect minus padding and border, in the same frame as Rect.
func (l Layout) ContentRect() Rect {
	return l.Rect.Inset(l.Padding.Add(l.Border))
}

// ContentOffset is the offset from the border box origin to the content box.
func (l Layout) ContentOffset() Point {
	return Point{X: l.Padding.Left + l.Border.Left, Y: l.Padding.Top + l.Border.Top}
}
