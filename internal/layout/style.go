package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out along the writing direction
	Column                         // Children laid out top-to-bottom
	RowReverse                     // Row, starting from the trailing edge
	ColumnReverse                  // Column, starting from the bottom
)

// WrapMode specifies whether children may flow onto additional lines.
type WrapMode uint8

const (
	NoWrap      WrapMode = iota // Single line; children shrink or overflow
	Wrap                        // Overflowing children start a new line
	WrapReverse                 // New lines stack toward the cross-axis start
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyCenter                      // Center children
	JustifyEnd                         // Pack at end
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
)

// Align specifies cross-axis alignment for items, lines or a single item.
type Align uint8

const (
	AlignAuto         Align = iota // Inherit the container's AlignItems (AlignSelf only)
	AlignStart                     // Align to start of cross axis
	AlignCenter                    // Center on cross axis
	AlignEnd                       // Align to end of cross axis
	AlignStretch                   // Stretch to fill cross axis
	AlignBaseline                  // Align first baselines
	AlignSpaceBetween              // Distribute lines, none at edges (AlignContent only)
	AlignSpaceAround               // Distribute lines with space around (AlignContent only)
)

// WritingDirection decides which physical side Leading and Trailing refer to.
type WritingDirection uint8

const (
	Inherit WritingDirection = iota // Take the parent's direction (LTR at the root)
	LTR                             // Leading is left
	RTL                             // Leading is right
)

// Overflow controls how children exceeding the container are measured.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// PositionType selects in-flow or absolute placement.
type PositionType uint8

const (
	Relative PositionType = iota // In flow, Position offsets from the flow position
	Absolute                     // Out of flow, Position offsets from the parent edges
)

// Display toggles whether a node takes part in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Dimension
	Height    Dimension
	MinWidth  Dimension
	MinHeight Dimension
	MaxWidth  Dimension
	MaxHeight Dimension

	// Flex container properties
	Direction      Direction
	Wrap           WrapMode
	JustifyContent Justify
	AlignItems     Align
	AlignContent   Align

	// Flex item properties
	AlignSelf  Align
	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Dimension

	WritingDirection WritingDirection
	Overflow         Overflow
	PositionType     PositionType
	Display          Display
	AspectRatio      float32 // 0 leaves the ratio unset

	// Spacing
	Position Edges
	Margin   Edges
	Padding  Edges
	Border   Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:        Auto(),
		Height:       Auto(),
		Direction:    Row,
		AlignItems:   AlignStretch,
		AlignContent: AlignStart,
		AlignSelf:    AlignAuto,
		FlexShrink:   1,
		FlexBasis:    Auto(),
	}
}
