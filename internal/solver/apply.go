package solver

import (
	"github.com/grindlemire/go-flexbox/internal/layout"
	"github.com/kjk/flex"
)

// Noop names a style entry the solver cannot represent. Such entries are
// written as the solver default instead.
type Noop struct {
	Field string
	Value layout.Dimension
}

// Apply writes every field of s onto node, multiplying constant amounts by
// density. The result depends only on s and density, never on what the
// node held before. Setters are only called for values that differ so an
// unchanged style does not dirty the node.
//
// Entries the solver cannot represent (auto min/max, position, padding or
// border, and percentage borders) fall back to the solver default and are
// returned so the caller can report them.
func Apply(node *flex.Node, s layout.Style, density float32) []Noop {
	a := applier{density: density}

	a.dim("width", &node.Style.Dimensions[flex.DimensionWidth], s.Width,
		node.StyleSetWidth, node.StyleSetWidthPercent, node.StyleSetWidthAuto)
	a.dim("height", &node.Style.Dimensions[flex.DimensionHeight], s.Height,
		node.StyleSetHeight, node.StyleSetHeightPercent, node.StyleSetHeightAuto)
	a.dim("min-width", &node.Style.MinDimensions[flex.DimensionWidth], s.MinWidth,
		node.StyleSetMinWidth, node.StyleSetMinWidthPercent, nil)
	a.dim("min-height", &node.Style.MinDimensions[flex.DimensionHeight], s.MinHeight,
		node.StyleSetMinHeight, node.StyleSetMinHeightPercent, nil)
	a.dim("max-width", &node.Style.MaxDimensions[flex.DimensionWidth], s.MaxWidth,
		node.StyleSetMaxWidth, node.StyleSetMaxWidthPercent, nil)
	a.dim("max-height", &node.Style.MaxDimensions[flex.DimensionHeight], s.MaxHeight,
		node.StyleSetMaxHeight, node.StyleSetMaxHeightPercent, nil)
	a.dim("flex-basis", &node.Style.FlexBasis, s.FlexBasis,
		node.StyleSetFlexBasis, node.StyleSetFlexBasisPercent, func() { flex.NodeStyleSetFlexBasisAuto(node) })

	positions, margins, paddings, borders := s.Position.Sides(), s.Margin.Sides(), s.Padding.Sides(), s.Border.Sides()
	for i, edge := range edgeOrder {
		pos, margin, pad, border := positions[i], margins[i], paddings[i], borders[i]

		side := sideNames[i]

		a.edge("position-"+side, &node.Style.Position[edge], pos, false,
			func(v float32) { node.StyleSetPosition(edge, v) },
			func(v float32) { node.StyleSetPositionPercent(edge, v) }, nil)
		a.edge("margin-"+side, &node.Style.Margin[edge], margin, true,
			func(v float32) { node.StyleSetMargin(edge, v) },
			func(v float32) { node.StyleSetMarginPercent(edge, v) },
			func() { node.StyleSetMarginAuto(edge) })
		a.edge("padding-"+side, &node.Style.Padding[edge], pad, false,
			func(v float32) { node.StyleSetPadding(edge, v) },
			func(v float32) { node.StyleSetPaddingPercent(edge, v) }, nil)

		if border.Kind == layout.KindPercent {
			a.noop("border-"+side, border)
			border = layout.Undefined()
		}
		a.edge("border-"+side, &node.Style.Border[edge], border, false,
			func(v float32) { node.StyleSetBorder(edge, v) }, nil, nil)
	}

	node.StyleSetFlexDirection(flexDirection(s.Direction))
	node.StyleSetFlexWrap(flexWrap(s.Wrap))
	node.StyleSetJustifyContent(flexJustify(s.JustifyContent))
	node.StyleSetAlignItems(flexAlign(s.AlignItems))
	node.StyleSetAlignContent(flexAlign(s.AlignContent))
	node.StyleSetAlignSelf(flexAlign(s.AlignSelf))
	node.StyleSetDirection(flexWritingDirection(s.WritingDirection))
	node.StyleSetOverflow(flexOverflow(s.Overflow))
	node.StyleSetPositionType(flexPositionType(s.PositionType))
	node.StyleSetDisplay(flexDisplay(s.Display))

	if !flex.FloatsEqual(node.Style.FlexGrow, s.FlexGrow) {
		node.StyleSetFlexGrow(s.FlexGrow)
	}
	if !flex.FloatsEqual(node.Style.FlexShrink, s.FlexShrink) {
		node.StyleSetFlexShrink(s.FlexShrink)
	}

	ratio := flex.Undefined
	if s.AspectRatio > 0 {
		ratio = s.AspectRatio
	}
	if !flex.FloatsEqual(node.Style.AspectRatio, ratio) {
		node.StyleSetAspectRatio(ratio)
	}

	return a.noops
}

// Leading, top, trailing, bottom; matches layout.Edges.Sides.
var (
	edgeOrder = [4]flex.Edge{flex.EdgeStart, flex.EdgeTop, flex.EdgeEnd, flex.EdgeBottom}
	sideNames = [4]string{"leading", "top", "trailing", "bottom"}
)

type applier struct {
	density float32
	noops   []Noop
}

func (a *applier) noop(field string, d layout.Dimension) {
	a.noops = append(a.noops, Noop{Field: field, Value: d})
}

// dim writes a size-like value. Auto and undefined both clear the value;
// for fields with an auto setter the cleared state is UnitAuto.
func (a *applier) dim(field string, cur *flex.Value, d layout.Dimension,
	point, percent func(float32), auto func()) {
	if d.Kind == layout.KindAuto && auto == nil {
		a.noop(field, d)
	}
	// Setters store undefined sizes as UnitAuto.
	a.write(cur, target(d, a.density, flex.UnitAuto), point, percent, auto)
}

// edge writes one side of a four-sided value. Cleared sides are UnitUndefined.
func (a *applier) edge(field string, cur *flex.Value, d layout.Dimension, hasAuto bool,
	point, percent func(float32), auto func()) {
	want := target(d, a.density, flex.UnitUndefined)
	if d.Kind == layout.KindAuto {
		if hasAuto {
			want = flex.Value{Value: flex.Undefined, Unit: flex.UnitAuto}
		} else {
			a.noop(field, d)
		}
	}
	a.write(cur, want, point, percent, auto)
}

func (a *applier) write(cur *flex.Value, want flex.Value, point, percent func(float32), auto func()) {
	if sameValue(*cur, want) {
		return
	}
	switch {
	case want.Unit == flex.UnitPoint:
		point(want.Value)
	case want.Unit == flex.UnitPercent && percent != nil:
		percent(want.Value)
	case want.Unit == flex.UnitAuto && auto != nil:
		auto()
	default:
		point(flex.Undefined)
	}
}

// target converts d into the flex value a setter would leave behind.
// cleared is the unit the setters produce for an undefined amount.
func target(d layout.Dimension, density float32, cleared flex.Unit) flex.Value {
	switch d.Kind {
	case layout.KindConstant:
		if v := d.Scaled(density); !flex.FloatIsUndefined(v) {
			return flex.Value{Value: v, Unit: flex.UnitPoint}
		}
	case layout.KindPercent:
		if !flex.FloatIsUndefined(d.Amount) {
			return flex.Value{Value: d.Amount, Unit: flex.UnitPercent}
		}
	}
	return flex.Value{Value: flex.Undefined, Unit: cleared}
}

func sameValue(a, b flex.Value) bool {
	if a.Unit != b.Unit {
		return false
	}
	if a.Unit == flex.UnitUndefined || a.Unit == flex.UnitAuto {
		return true
	}
	return a.Value == b.Value
}

func flexDirection(d layout.Direction) flex.FlexDirection {
	switch d {
	case layout.Column:
		return flex.FlexDirectionColumn
	case layout.RowReverse:
		return flex.FlexDirectionRowReverse
	case layout.ColumnReverse:
		return flex.FlexDirectionColumnReverse
	default:
		return flex.FlexDirectionRow
	}
}

func flexWrap(w layout.WrapMode) flex.Wrap {
	switch w {
	case layout.Wrap:
		return flex.WrapWrap
	case layout.WrapReverse:
		return flex.WrapWrapReverse
	default:
		return flex.WrapNoWrap
	}
}

func flexJustify(j layout.Justify) flex.Justify {
	switch j {
	case layout.JustifyCenter:
		return flex.JustifyCenter
	case layout.JustifyEnd:
		return flex.JustifyFlexEnd
	case layout.JustifySpaceBetween:
		return flex.JustifySpaceBetween
	case layout.JustifySpaceAround:
		return flex.JustifySpaceAround
	default:
		return flex.JustifyFlexStart
	}
}

func flexAlign(a layout.Align) flex.Align {
	switch a {
	case layout.AlignStart:
		return flex.AlignFlexStart
	case layout.AlignCenter:
		return flex.AlignCenter
	case layout.AlignEnd:
		return flex.AlignFlexEnd
	case layout.AlignStretch:
		return flex.AlignStretch
	case layout.AlignBaseline:
		return flex.AlignBaseline
	case layout.AlignSpaceBetween:
		return flex.AlignSpaceBetween
	case layout.AlignSpaceAround:
		return flex.AlignSpaceAround
	default:
		return flex.AlignAuto
	}
}

func flexWritingDirection(w layout.WritingDirection) flex.Direction {
	switch w {
	case layout.LTR:
		return flex.DirectionLTR
	case layout.RTL:
		return flex.DirectionRTL
	default:
		return flex.DirectionInherit
	}
}

func flexOverflow(o layout.Overflow) flex.Overflow {
	switch o {
	case layout.OverflowHidden:
		return flex.OverflowHidden
	case layout.OverflowScroll:
		return flex.OverflowScroll
	default:
		return flex.OverflowVisible
	}
}

func flexPositionType(p layout.PositionType) flex.PositionType {
	if p == layout.Absolute {
		return flex.PositionTypeAbsolute
	}
	return flex.PositionTypeRelative
}

func flexDisplay(d layout.Display) flex.Display {
	if d == layout.DisplayNone {
		return flex.DisplayNone
	}
	return flex.DisplayFlex
}
