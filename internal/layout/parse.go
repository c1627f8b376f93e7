package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned for text that does not describe a dimension, edge
// shorthand or enum value.
var ErrSyntax = errors.New("layout: invalid syntax")

// ParseDimension reads the text form produced by Dimension.String:
// "50%" for percentages, "12" or "12.5" for constants, "auto", and
// "undefined" or "" for no value.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "undefined", "none":
		return Undefined(), nil
	case "auto":
		return Auto(), nil
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 32)
		if err != nil {
			return Dimension{}, fmt.Errorf("%w: dimension %q", ErrSyntax, s)
		}
		return Percent(float32(v)), nil
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "dp"), 32)
	if err != nil {
		return Dimension{}, fmt.Errorf("%w: dimension %q", ErrSyntax, s)
	}
	return Constant(float32(v)), nil
}

// ParseEdges reads CSS-style shorthand of one to four whitespace separated
// dimensions: "a" (all), "v h", "t h b" or "t r b l".
func ParseEdges(s string) (Edges, error) {
	fields := strings.Fields(s)
	dims := make([]Dimension, len(fields))
	for i, f := range fields {
		d, err := ParseDimension(f)
		if err != nil {
			return Edges{}, err
		}
		dims[i] = d
	}

	switch len(dims) {
	case 1:
		return EdgeAll(dims[0]), nil
	case 2:
		return EdgeSymmetric(dims[0], dims[1]), nil
	case 3:
		return EdgeTRBL(dims[0], dims[1], dims[2], dims[1]), nil
	case 4:
		return EdgeTRBL(dims[0], dims[1], dims[2], dims[3]), nil
	default:
		return Edges{}, fmt.Errorf("%w: edges %q want 1 to 4 values, got %d", ErrSyntax, s, len(dims))
	}
}

var (
	directionNames = map[string]Direction{
		"row":            Row,
		"column":         Column,
		"col":            Column,
		"row-reverse":    RowReverse,
		"column-reverse": ColumnReverse,
		"col-reverse":    ColumnReverse,
	}
	wrapNames = map[string]WrapMode{
		"nowrap":       NoWrap,
		"no-wrap":      NoWrap,
		"wrap":         Wrap,
		"wrap-reverse": WrapReverse,
	}
	justifyNames = map[string]Justify{
		"start":         JustifyStart,
		"flex-start":    JustifyStart,
		"center":        JustifyCenter,
		"end":           JustifyEnd,
		"flex-end":      JustifyEnd,
		"space-between": JustifySpaceBetween,
		"between":       JustifySpaceBetween,
		"space-around":  JustifySpaceAround,
		"around":        JustifySpaceAround,
	}
	alignNames = map[string]Align{
		"auto":          AlignAuto,
		"start":         AlignStart,
		"flex-start":    AlignStart,
		"center":        AlignCenter,
		"end":           AlignEnd,
		"flex-end":      AlignEnd,
		"stretch":       AlignStretch,
		"baseline":      AlignBaseline,
		"space-between": AlignSpaceBetween,
		"between":       AlignSpaceBetween,
		"space-around":  AlignSpaceAround,
		"around":        AlignSpaceAround,
	}
	writingNames = map[string]WritingDirection{
		"inherit": Inherit,
		"ltr":     LTR,
		"rtl":     RTL,
	}
	overflowNames = map[string]Overflow{
		"visible": OverflowVisible,
		"hidden":  OverflowHidden,
		"scroll":  OverflowScroll,
	}
	positionNames = map[string]PositionType{
		"relative": Relative,
		"absolute": Absolute,
	}
	displayNames = map[string]Display{
		"flex": DisplayFlex,
		"none": DisplayNone,
	}
)

func parseEnum[T any](kind string, names map[string]T, s string) (T, error) {
	if v, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrSyntax, kind, s)
}

// ParseDirection reads "row", "column", "row-reverse" or "column-reverse".
func ParseDirection(s string) (Direction, error) { return parseEnum("direction", directionNames, s) }

// ParseWrap reads "nowrap", "wrap" or "wrap-reverse".
func ParseWrap(s string) (WrapMode, error) { return parseEnum("wrap", wrapNames, s) }

// ParseJustify reads CSS justify-content keywords.
func ParseJustify(s string) (Justify, error) { return parseEnum("justify", justifyNames, s) }

// ParseAlign reads CSS align-items/align-content/align-self keywords.
func ParseAlign(s string) (Align, error) { return parseEnum("align", alignNames, s) }

// ParseWritingDirection reads "inherit", "ltr" or "rtl".
func ParseWritingDirection(s string) (WritingDirection, error) {
	return parseEnum("writing direction", writingNames, s)
}

// ParseOverflow reads "visible", "hidden" or "scroll".
func ParseOverflow(s string) (Overflow, error) { return parseEnum("overflow", overflowNames, s) }

// ParsePositionType reads "relative" or "absolute".
func ParsePositionType(s string) (PositionType, error) {
	return parseEnum("position", positionNames, s)
}

// ParseDisplay reads "flex" or "none".
func ParseDisplay(s string) (Display, error) { return parseEnum("display", displayNames, s) }
