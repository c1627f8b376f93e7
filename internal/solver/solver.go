// Package solver adapts the kjk/flex constraint solver to the bridge.
//
// It owns every direct call into flex: node creation with a shared config,
// child insertion and removal by index, measure-function installation,
// the solve itself and the read-back of solved boxes.
package solver

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-flexbox/internal/layout"
	"github.com/kjk/flex"
)

// ErrOwnershipViolation reports an attempt to insert a node that is still
// attached to another parent.
var ErrOwnershipViolation = errors.New("flexbox: node already has an owner")

// NewConfig creates a solver config. A pointScale of zero disables rounding
// of solved boxes to the pixel grid.
func NewConfig(pointScale float32) *flex.Config {
	cfg := flex.NewConfig()
	cfg.SetPointScaleFactor(pointScale)
	return cfg
}

// NewNode creates a solver node whose Context points back at ctx.
func NewNode(cfg *flex.Config, ctx any) *flex.Node {
	n := flex.NewNodeWithConfig(cfg)
	n.Context = ctx
	return n
}

// Owner returns the node's current solver parent, or nil.
func Owner(n *flex.Node) *flex.Node {
	return n.Parent
}

// IndexOf returns the slot of child within parent, or -1.
func IndexOf(parent, child *flex.Node) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// ChildAt returns the child at idx, or nil if idx is out of range.
func ChildAt(parent *flex.Node, idx int) *flex.Node {
	if idx < 0 || idx >= len(parent.Children) {
		return nil
	}
	return parent.Children[idx]
}

// Detach removes n from its owner. It is a no-op for unowned nodes.
func Detach(n *flex.Node) {
	if p := n.Parent; p != nil {
		p.RemoveChild(n)
	}
}

// InsertChildAt inserts child into parent at idx. The child must be
// unowned; a child that still has an owner is a programming error.
func InsertChildAt(parent, child *flex.Node, idx int) {
	if child.Parent != nil {
		panic(fmt.Errorf("%w: insert at %d", ErrOwnershipViolation, idx))
	}
	if idx > len(parent.Children) {
		idx = len(parent.Children)
	}
	parent.InsertChild(child, idx)
}

// Trim detaches children from the end until at most n remain.
func Trim(parent *flex.Node, n int) {
	for len(parent.Children) > n {
		parent.RemoveChild(parent.Children[len(parent.Children)-1])
	}
}

// SetMeasure installs fn as the node's measure function, or removes it when
// fn is nil. The node must have no children when fn is non-nil.
func SetMeasure(n *flex.Node, fn flex.MeasureFunc) {
	if fn == nil && n.Measure == nil {
		return
	}
	n.SetMeasureFunc(fn)
}

// HasMeasure reports whether n is a measured leaf.
func HasMeasure(n *flex.Node) bool {
	return n.Measure != nil
}

// MarkDirty forces the solver to re-measure a measured leaf.
func MarkDirty(n *flex.Node) {
	if n.Measure != nil {
		n.MarkDirty()
	}
}

// SetBounds writes min and max size onto a root node. Non-finite or
// negative values leave the bound unset.
func SetBounds(n *flex.Node, minW, minH, maxW, maxH float32) {
	setBound(&n.Style.MinDimensions[flex.DimensionWidth], minW, n.StyleSetMinWidth)
	setBound(&n.Style.MinDimensions[flex.DimensionHeight], minH, n.StyleSetMinHeight)
	setBound(&n.Style.MaxDimensions[flex.DimensionWidth], maxW, n.StyleSetMaxWidth)
	setBound(&n.Style.MaxDimensions[flex.DimensionHeight], maxH, n.StyleSetMaxHeight)
}

func setBound(cur *flex.Value, v float32, set func(float32)) {
	want := flex.Value{Value: flex.Undefined, Unit: flex.UnitAuto}
	if finite(v) && v >= 0 {
		want = flex.Value{Value: v, Unit: flex.UnitPoint}
	}
	if !sameValue(*cur, want) {
		set(want.Value)
	}
}

// Solve runs the flex algorithm on root with the given available size.
// Non-finite sizes are passed as undefined.
func Solve(root *flex.Node, width, height float32) {
	if !finite(width) {
		width = flex.Undefined
	}
	if !finite(height) {
		height = flex.Undefined
	}
	flex.CalculateLayout(root, width, height, flex.DirectionLTR)
}

// Box reads n's solved box. The position is relative to n's solver parent.
func Box(n *flex.Node) layout.Layout {
	return layout.Layout{
		Rect:    layout.NewRect(n.LayoutGetLeft(), n.LayoutGetTop(), n.LayoutGetWidth(), n.LayoutGetHeight()),
		Padding: insets(n.LayoutGetPadding),
		Border:  insets(n.LayoutGetBorder),
	}
}

func insets(get func(flex.Edge) float32) layout.Insets {
	return layout.Insets{
		Left:   get(flex.EdgeLeft),
		Top:    get(flex.EdgeTop),
		Right:  get(flex.EdgeRight),
		Bottom: get(flex.EdgeBottom),
	}
}

func finite(v float32) bool {
	return !flex.FloatIsUndefined(v) && v < 1e30 && v > -1e30
}
