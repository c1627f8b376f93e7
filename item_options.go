package flexbox

import (
	"github.com/grindlemire/go-flexbox/internal/classes"
	"github.com/grindlemire/go-flexbox/internal/debug"
)

// Option configures an Item.
type Option func(*Item)

// --- Identity and Content Options ---

// WithKey gives the item an identity that survives reordering and
// re-parenting. Keys must be comparable and unique within a scope.
func WithKey(key any) Option {
	return func(it *Item) {
		it.key = key
	}
}

// WithContent makes the item a measured leaf. A *Scope is accepted as
// content and is laid out as a nested scope.
func WithContent(c Content) Option {
	return func(it *Item) {
		it.content = c
	}
}

// WithChildren appends child items.
func WithChildren(children ...*Item) Option {
	return func(it *Item) {
		it.children = append(it.children, children...)
	}
}

// Isolated lays out the item's children in a nested scope that the outer
// tree measures as a single leaf.
func Isolated() Option {
	return func(it *Item) {
		it.isolated = true
	}
}

// WithStyle replaces the whole style.
func WithStyle(s Style) Option {
	return func(it *Item) {
		it.style = s
	}
}

// WithClasses applies tailwind-style utility classes such as
// "flex-col flex-wrap w-1/2 p-2 m-auto". Unknown classes are ignored.
func WithClasses(cls string) Option {
	return func(it *Item) {
		if err := classes.Apply(&it.style, cls); err != nil {
			debug.Log("WithClasses: %v", err)
		}
	}
}

// ParseClasses returns DefaultStyle with the utility classes applied, for
// use with WithStyle. Unknown classes are skipped and named in the error,
// which wraps ErrUnknownClass.
func ParseClasses(cls string) (Style, error) {
	return classes.Parse(cls)
}

// --- Dimension Options ---

// WithWidth sets the width.
func WithWidth(d Dimension) Option {
	return func(it *Item) {
		it.style.Width = d
	}
}

// WithHeight sets the height.
func WithHeight(d Dimension) Option {
	return func(it *Item) {
		it.style.Height = d
	}
}

// WithSize sets width and height to constant values.
func WithSize(width, height float32) Option {
	return func(it *Item) {
		it.style.Width = Constant(width)
		it.style.Height = Constant(height)
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(d Dimension) Option {
	return func(it *Item) {
		it.style.MinWidth = d
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(d Dimension) Option {
	return func(it *Item) {
		it.style.MinHeight = d
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(d Dimension) Option {
	return func(it *Item) {
		it.style.MaxWidth = d
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(d Dimension) Option {
	return func(it *Item) {
		it.style.MaxHeight = d
	}
}

// WithAspectRatio fixes width/height. Zero clears it.
func WithAspectRatio(ratio float32) Option {
	return func(it *Item) {
		it.style.AspectRatio = ratio
	}
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return func(it *Item) {
		it.style.Direction = d
	}
}

// WithWrap sets whether children may wrap onto additional lines.
func WithWrap(w WrapMode) Option {
	return func(it *Item) {
		it.style.Wrap = w
	}
}

// WithJustify sets main-axis distribution.
func WithJustify(j Justify) Option {
	return func(it *Item) {
		it.style.JustifyContent = j
	}
}

// WithAlign sets cross-axis alignment of children.
func WithAlign(a Align) Option {
	return func(it *Item) {
		it.style.AlignItems = a
	}
}

// WithAlignContent sets how wrapped lines are distributed.
func WithAlignContent(a Align) Option {
	return func(it *Item) {
		it.style.AlignContent = a
	}
}

// WithWritingDirection sets which side is leading.
func WithWritingDirection(w WritingDirection) Option {
	return func(it *Item) {
		it.style.WritingDirection = w
	}
}

// WithOverflow sets the overflow behavior.
func WithOverflow(o Overflow) Option {
	return func(it *Item) {
		it.style.Overflow = o
	}
}

// --- Flex Item Options ---

// WithFlexGrow sets how much the item grows into free space.
func WithFlexGrow(factor float32) Option {
	return func(it *Item) {
		it.style.FlexGrow = factor
	}
}

// WithFlexShrink sets how much the item shrinks when space is short.
func WithFlexShrink(factor float32) Option {
	return func(it *Item) {
		it.style.FlexShrink = factor
	}
}

// WithFlexBasis sets the initial main-axis size.
func WithFlexBasis(d Dimension) Option {
	return func(it *Item) {
		it.style.FlexBasis = d
	}
}

// WithAlignSelf overrides the parent's AlignItems for this item.
func WithAlignSelf(a Align) Option {
	return func(it *Item) {
		it.style.AlignSelf = a
	}
}

// WithPositionType selects relative or absolute positioning.
func WithPositionType(p PositionType) Option {
	return func(it *Item) {
		it.style.PositionType = p
	}
}

// WithPosition sets the position offsets.
func WithPosition(e Edges) Option {
	return func(it *Item) {
		it.style.Position = e
	}
}

// WithDisplay toggles whether the item takes part in layout.
func WithDisplay(d Display) Option {
	return func(it *Item) {
		it.style.Display = d
	}
}

// --- Spacing Options ---

// WithPadding sets the same constant padding on all sides.
func WithPadding(v float32) Option {
	return func(it *Item) {
		it.style.Padding = EdgeAll(Constant(v))
	}
}

// WithPaddingEdges sets padding per side.
func WithPaddingEdges(e Edges) Option {
	return func(it *Item) {
		it.style.Padding = e
	}
}

// WithMargin sets the same constant margin on all sides.
func WithMargin(v float32) Option {
	return func(it *Item) {
		it.style.Margin = EdgeAll(Constant(v))
	}
}

// WithMarginEdges sets margin per side.
func WithMarginEdges(e Edges) Option {
	return func(it *Item) {
		it.style.Margin = e
	}
}

// WithBorder sets the same constant border width on all sides.
func WithBorder(v float32) Option {
	return func(it *Item) {
		it.style.Border = EdgeAll(Constant(v))
	}
}

// WithBorderEdges sets border widths per side.
func WithBorderEdges(e Edges) Option {
	return func(it *Item) {
		it.style.Border = e
	}
}
