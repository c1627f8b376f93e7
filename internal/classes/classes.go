package classes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-flexbox/internal/layout"
)

// ErrUnknownClass is returned for class names no rule matches.
var ErrUnknownClass = errors.New("unknown class")

// Apply applies every class in the whitespace separated list to s, in
// order, so later classes win. Unknown classes are skipped and reported
// together in the returned error.
func Apply(s *layout.Style, classes string) error {
	var unknown []string
	for _, class := range strings.Fields(classes) {
		if !applyClass(s, class) {
			unknown = append(unknown, class)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownClass, strings.Join(unknown, " "))
	}
	return nil
}

// Parse returns layout.DefaultStyle with classes applied.
func Parse(classes string) (layout.Style, error) {
	s := layout.DefaultStyle()
	err := Apply(&s, classes)
	return s, err
}

func applyClass(s *layout.Style, class string) bool {
	if fn, ok := staticClasses[class]; ok {
		fn(s)
		return true
	}

	if m := spacingPattern.FindStringSubmatch(class); m != nil {
		d, ok := parseValue(m[3], m[1] == "-")
		if !ok {
			return false
		}
		return applySpacing(s, m[2], d)
	}

	if m := sizePattern.FindStringSubmatch(class); m != nil {
		d, ok := parseValue(m[2], false)
		if !ok {
			return false
		}
		applySize(s, m[1], d)
		return true
	}

	if m := factorPattern.FindStringSubmatch(class); m != nil {
		f, err := strconv.ParseFloat(m[2], 32)
		if err != nil {
			return false
		}
		if strings.HasSuffix(m[1], "grow") {
			s.FlexGrow = float32(f)
		} else {
			s.FlexShrink = float32(f)
		}
		return true
	}

	return false
}

// parseValue reads a class value: a number, a fraction, "full" or "auto".
func parseValue(v string, negate bool) (layout.Dimension, bool) {
	sign := float32(1)
	if negate {
		sign = -1
	}

	switch v {
	case "auto":
		return layout.Auto(), !negate
	case "full":
		return layout.Percent(100 * sign), true
	}

	if num, den, ok := strings.Cut(v, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 32)
		d, err2 := strconv.ParseFloat(den, 32)
		if err1 != nil || err2 != nil || d == 0 {
			return layout.Dimension{}, false
		}
		return layout.Percent(sign * float32(n/d*100)), true
	}

	n, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return layout.Dimension{}, false
	}
	return layout.Constant(sign * float32(n)), true
}

func applySize(s *layout.Style, prop string, d layout.Dimension) {
	switch prop {
	case "w":
		s.Width = d
	case "h":
		s.Height = d
	case "min-w":
		s.MinWidth = d
	case "min-h":
		s.MinHeight = d
	case "max-w":
		s.MaxWidth = d
	case "max-h":
		s.MaxHeight = d
	case "basis":
		s.FlexBasis = d
	}
}

// applySpacing sets the sides named by prop. prop is a group prefix
// (p, m, border, inset or a bare side name) with an optional side suffix.
func applySpacing(s *layout.Style, prop string, d layout.Dimension) bool {
	var target *layout.Edges
	var sides string

	switch {
	case prop == "top" || prop == "right" || prop == "bottom" || prop == "left":
		target, sides = &s.Position, prop[:1]
	case strings.HasPrefix(prop, "inset"):
		target, sides = &s.Position, suffix(prop, "inset")
	case strings.HasPrefix(prop, "border"):
		target, sides = &s.Border, suffix(prop, "border")
	case strings.HasPrefix(prop, "p"):
		target, sides = &s.Padding, prop[1:]
	case strings.HasPrefix(prop, "m"):
		target, sides = &s.Margin, prop[1:]
	default:
		return false
	}

	switch sides {
	case "":
		*target = layout.EdgeAll(d)
	case "x":
		target.Leading, target.Trailing = d, d
	case "y":
		target.Top, target.Bottom = d, d
	case "t":
		target.Top = d
	case "b":
		target.Bottom = d
	case "l":
		target.Leading = d
	case "r":
		target.Trailing = d
	default:
		return false
	}
	return true
}

// suffix returns the side letter after "<group>-", or "" for the bare group.
func suffix(prop, group string) string {
	return strings.TrimPrefix(strings.TrimPrefix(prop, group), "-")
}
