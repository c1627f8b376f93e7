// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flexbox

import "github.com/grindlemire/go-flexbox/internal/layout"

// Dimension is a tagged size value: percent, constant, auto or undefined.
type Dimension = layout.Dimension

// Kind specifies how a Dimension is interpreted.
type Kind = layout.Kind

const (
	KindUndefined = layout.KindUndefined
	KindAuto      = layout.KindAuto
	KindConstant  = layout.KindConstant
	KindPercent   = layout.KindPercent
)

// Percent returns a Dimension of p percent of the parent's size.
func Percent(p float32) Dimension { return layout.Percent(p) }

// Constant returns a Dimension of v density-independent units.
func Constant(v float32) Dimension { return layout.Constant(v) }

// Auto returns a Dimension that requests intrinsic sizing.
func Auto() Dimension { return layout.Auto() }

// Undefined returns a Dimension that leaves the solver default in place.
func Undefined() Dimension { return layout.Undefined() }

// ParseDimension reads "50%", "12", "auto" or "undefined".
func ParseDimension(s string) (Dimension, error) { return layout.ParseDimension(s) }

// Edges holds a Dimension for each side of a box.
type Edges = layout.Edges

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(d Dimension) Edges { return layout.EdgeAll(d) }

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h Dimension) Edges { return layout.EdgeSymmetric(v, h) }

// EdgeTRBL creates Edges in CSS order. Right is trailing and left is leading.
func EdgeTRBL(t, r, b, l Dimension) Edges { return layout.EdgeTRBL(t, r, b, l) }

// Style holds the layout properties for a node.
type Style = layout.Style

// DefaultStyle returns a Style with flexbox defaults.
func DefaultStyle() Style { return layout.DefaultStyle() }

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// WrapMode specifies whether children may flow onto additional lines.
type WrapMode = layout.WrapMode

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
)

// Align specifies alignment along the cross axis.
type Align = layout.Align

const (
	AlignAuto         = layout.AlignAuto
	AlignStart        = layout.AlignStart
	AlignCenter       = layout.AlignCenter
	AlignEnd          = layout.AlignEnd
	AlignStretch      = layout.AlignStretch
	AlignBaseline     = layout.AlignBaseline
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
)

// WritingDirection decides which side Leading and Trailing refer to.
type WritingDirection = layout.WritingDirection

const (
	Inherit = layout.Inherit
	LTR     = layout.LTR
	RTL     = layout.RTL
)

// Overflow controls how children exceeding the container are measured.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// PositionType selects in-flow or absolute placement.
type PositionType = layout.PositionType

const (
	Relative = layout.Relative
	Absolute = layout.Absolute
)

// Display toggles whether a node takes part in layout.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an (X, Y) coordinate.
type Point = layout.Point

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Insets holds resolved per-side amounts.
type Insets = layout.Insets

// LayoutResult is one node's solved box.
type LayoutResult = layout.Layout
