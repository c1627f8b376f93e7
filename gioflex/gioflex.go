// Package gioflex lays out Gio widgets with a flexbox Scope.
//
// A Frame binds widgets to the layout context of one frame. Leaves wrap
// widgets with Frame.Widget; the widget runs during measurement with the
// constraints the solver asks for, and its recorded operations are replayed
// at the solved position when the Scope places the leaf.
//
//	f := gioflex.NewFrame(gtx)
//	root := flexbox.New(
//		flexbox.WithDirection(flexbox.Row),
//		flexbox.WithChildren(
//			flexbox.New(flexbox.WithContent(f.Widget(icon))),
//			flexbox.New(flexbox.WithFlexGrow(1), flexbox.WithContent(f.Widget(label))),
//		),
//	)
//	return f.Layout(scope, root)
package gioflex

import (
	"image"
	"math"

	"gioui.org/layout"
	"gioui.org/op"

	flexbox "github.com/grindlemire/go-flexbox"
)

// unbounded stands in for an infinite flexbox bound in Gio's integer
// constraints.
const unbounded = 1_000_000

// NewScope creates a Scope whose Constant dimensions are in dp for the
// metric of gtx. Solved sizes are in pixels.
func NewScope(gtx layout.Context, opts ...flexbox.ScopeOption) (*flexbox.Scope, error) {
	density := gtx.Metric.PxPerDp
	if density <= 0 {
		density = 1
	}
	return flexbox.NewScope(append([]flexbox.ScopeOption{flexbox.WithDensity(density)}, opts...)...)
}

// Frame holds the layout context widgets are measured and drawn with.
type Frame struct {
	gtx layout.Context
}

// NewFrame binds widget content to gtx.
func NewFrame(gtx layout.Context) *Frame {
	return &Frame{gtx: gtx}
}

// Widget returns content that measures and draws w.
func (f *Frame) Widget(w layout.Widget) flexbox.Content {
	return &widget{frame: f, w: w}
}

// Layout synchronizes scope with root and lays it out within the frame's
// constraints. It returns the root's size.
func (f *Frame) Layout(scope *flexbox.Scope, root *flexbox.Item) layout.Dimensions {
	scope.Update(root)
	return f.Run(scope, 0)
}

// Run lays out the tree scope already holds. Axes in flexible are solved
// without a bound, letting the root take its content size.
func (f *Frame) Run(scope *flexbox.Scope, flexible flexbox.Axes) layout.Dimensions {
	cs := f.gtx.Constraints
	size := scope.Run(float32(cs.Max.X), float32(cs.Max.Y), flexible)
	return layout.Dimensions{Size: cs.Constrain(toPoint(size))}
}

type widget struct {
	frame *Frame
	w     layout.Widget
}

func (c *widget) Measure(cs flexbox.Constraints) flexbox.Placeable {
	gtx := c.frame.gtx
	gtx.Constraints = toConstraints(cs)

	macro := op.Record(gtx.Ops)
	dims := c.w(gtx)
	call := macro.Stop()

	size := cs.Constrain(flexbox.Size{
		Width:  float32(dims.Size.X),
		Height: float32(dims.Size.Y),
	})
	return &placed{ops: gtx.Ops, call: call, size: size}
}

// placed is a measured widget waiting for its position.
type placed struct {
	ops  *op.Ops
	call op.CallOp
	size flexbox.Size

	origin image.Point
	drawn  bool
}

func (p *placed) Size() flexbox.Size {
	return p.size
}

// Place replays the widget at (x, y) rounded to the nearest pixel.
func (p *placed) Place(x, y float32) {
	p.origin = image.Pt(roundPx(x), roundPx(y))
	p.drawn = true

	stack := op.Offset(p.origin).Push(p.ops)
	p.call.Add(p.ops)
	stack.Pop()
}

func toConstraints(c flexbox.Constraints) layout.Constraints {
	minW, maxW := toRange(c.MinWidth, c.MaxWidth)
	minH, maxH := toRange(c.MinHeight, c.MaxHeight)
	return layout.Constraints{
		Min: image.Pt(minW, minH),
		Max: image.Pt(maxW, maxH),
	}
}

func toRange(lo, hi float32) (int, int) {
	minPx := toPx(lo, math.Ceil)
	maxPx := toPx(hi, math.Floor)
	if maxPx < minPx {
		maxPx = minPx
	}
	return minPx, maxPx
}

func toPx(v float32, round func(float64) float64) int {
	if math.IsInf(float64(v), 1) || v > unbounded {
		return unbounded
	}
	if !(v > 0) {
		return 0
	}
	return int(round(float64(v)))
}

func roundPx(v float32) int {
	return int(math.Round(float64(v)))
}

func toPoint(s flexbox.Size) image.Point {
	return image.Pt(toPx(s.Width, math.Ceil), toPx(s.Height, math.Ceil))
}
