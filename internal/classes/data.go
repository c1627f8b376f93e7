package classes

import (
	"regexp"

	"github.com/grindlemire/go-flexbox/internal/layout"
)

// staticClasses maps fixed class names to style mutations.
var staticClasses = map[string]func(*layout.Style){
	// Flex direction
	"flex":             func(s *layout.Style) { s.Direction = layout.Row; s.Display = layout.DisplayFlex },
	"flex-row":         func(s *layout.Style) { s.Direction = layout.Row },
	"flex-col":         func(s *layout.Style) { s.Direction = layout.Column },
	"flex-row-reverse": func(s *layout.Style) { s.Direction = layout.RowReverse },
	"flex-col-reverse": func(s *layout.Style) { s.Direction = layout.ColumnReverse },

	// Wrapping
	"flex-wrap":         func(s *layout.Style) { s.Wrap = layout.Wrap },
	"flex-nowrap":       func(s *layout.Style) { s.Wrap = layout.NoWrap },
	"flex-wrap-reverse": func(s *layout.Style) { s.Wrap = layout.WrapReverse },

	// Flex shorthands
	"flex-1":       func(s *layout.Style) { s.FlexGrow, s.FlexShrink, s.FlexBasis = 1, 1, layout.Percent(0) },
	"flex-auto":    func(s *layout.Style) { s.FlexGrow, s.FlexShrink, s.FlexBasis = 1, 1, layout.Auto() },
	"flex-initial": func(s *layout.Style) { s.FlexGrow, s.FlexShrink, s.FlexBasis = 0, 1, layout.Auto() },
	"flex-none":    func(s *layout.Style) { s.FlexGrow, s.FlexShrink, s.FlexBasis = 0, 0, layout.Auto() },
	"grow":         func(s *layout.Style) { s.FlexGrow = 1 },
	"flex-grow":    func(s *layout.Style) { s.FlexGrow = 1 },
	"shrink":       func(s *layout.Style) { s.FlexShrink = 1 },
	"flex-shrink":  func(s *layout.Style) { s.FlexShrink = 1 },

	// Justify content
	"justify-start":   func(s *layout.Style) { s.JustifyContent = layout.JustifyStart },
	"justify-center":  func(s *layout.Style) { s.JustifyContent = layout.JustifyCenter },
	"justify-end":     func(s *layout.Style) { s.JustifyContent = layout.JustifyEnd },
	"justify-between": func(s *layout.Style) { s.JustifyContent = layout.JustifySpaceBetween },
	"justify-around":  func(s *layout.Style) { s.JustifyContent = layout.JustifySpaceAround },

	// Align items
	"items-start":    func(s *layout.Style) { s.AlignItems = layout.AlignStart },
	"items-center":   func(s *layout.Style) { s.AlignItems = layout.AlignCenter },
	"items-end":      func(s *layout.Style) { s.AlignItems = layout.AlignEnd },
	"items-stretch":  func(s *layout.Style) { s.AlignItems = layout.AlignStretch },
	"items-baseline": func(s *layout.Style) { s.AlignItems = layout.AlignBaseline },

	// Align content
	"content-start":   func(s *layout.Style) { s.AlignContent = layout.AlignStart },
	"content-center":  func(s *layout.Style) { s.AlignContent = layout.AlignCenter },
	"content-end":     func(s *layout.Style) { s.AlignContent = layout.AlignEnd },
	"content-stretch": func(s *layout.Style) { s.AlignContent = layout.AlignStretch },
	"content-between": func(s *layout.Style) { s.AlignContent = layout.AlignSpaceBetween },
	"content-around":  func(s *layout.Style) { s.AlignContent = layout.AlignSpaceAround },

	// Self-alignment
	"self-auto":     func(s *layout.Style) { s.AlignSelf = layout.AlignAuto },
	"self-start":    func(s *layout.Style) { s.AlignSelf = layout.AlignStart },
	"self-center":   func(s *layout.Style) { s.AlignSelf = layout.AlignCenter },
	"self-end":      func(s *layout.Style) { s.AlignSelf = layout.AlignEnd },
	"self-stretch":  func(s *layout.Style) { s.AlignSelf = layout.AlignStretch },
	"self-baseline": func(s *layout.Style) { s.AlignSelf = layout.AlignBaseline },

	// Positioning and display
	"relative": func(s *layout.Style) { s.PositionType = layout.Relative },
	"absolute": func(s *layout.Style) { s.PositionType = layout.Absolute },
	"hidden":   func(s *layout.Style) { s.Display = layout.DisplayNone },

	// Overflow
	"overflow-visible": func(s *layout.Style) { s.Overflow = layout.OverflowVisible },
	"overflow-hidden":  func(s *layout.Style) { s.Overflow = layout.OverflowHidden },
	"overflow-scroll":  func(s *layout.Style) { s.Overflow = layout.OverflowScroll },

	// Writing direction
	"ltr": func(s *layout.Style) { s.WritingDirection = layout.LTR },
	"rtl": func(s *layout.Style) { s.WritingDirection = layout.RTL },

	// Aspect ratio
	"aspect-auto":   func(s *layout.Style) { s.AspectRatio = 0 },
	"aspect-square": func(s *layout.Style) { s.AspectRatio = 1 },
	"aspect-video":  func(s *layout.Style) { s.AspectRatio = 16.0 / 9.0 },

	// Borders
	"border": func(s *layout.Style) { s.Border = layout.EdgeAll(layout.Constant(1)) },
}

const valueExpr = `(\d+(?:\.\d+)?|\d+/\d+|full|auto)`

var (
	// Spacing: padding, margin, border widths and position offsets.
	// The optional leading "-" negates the value.
	spacingPattern = regexp.MustCompile(`^(-?)(p|px|py|pt|pr|pb|pl|m|mx|my|mt|mr|mb|ml|border-x|border-y|border-t|border-r|border-b|border-l|border|inset-x|inset-y|inset|top|right|bottom|left)-` + valueExpr + `$`)

	// Sizes: width, height, their bounds and the flex basis.
	sizePattern = regexp.MustCompile(`^(w|h|min-w|min-h|max-w|max-h|basis)-` + valueExpr + `$`)

	// Flex factors: grow-2, shrink-0.
	factorPattern = regexp.MustCompile(`^(grow|shrink|flex-grow|flex-shrink)-(\d+(?:\.\d+)?)$`)
)
