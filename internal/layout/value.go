package layout

import (
	"math"
	"strconv"
)

// Kind specifies how a Dimension is interpreted.
type Kind uint8

const (
	KindUndefined Kind = iota // No value; the solver default applies
	KindAuto                  // Sized from content or distributed automatically
	KindConstant              // Density-independent units, scaled before solving
	KindPercent               // Percentage of the parent's corresponding size
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindConstant:
		return "constant"
	case KindPercent:
		return "percent"
	default:
		return "undefined"
	}
}

// Dimension is a tagged size value. Amount is only meaningful for
// KindConstant and KindPercent; the constructors keep it zero otherwise.
type Dimension struct {
	Kind   Kind
	Amount float32
}

// Undefined returns a Dimension that clears any explicit value.
func Undefined() Dimension {
	return Dimension{}
}

// Auto returns a Dimension that requests intrinsic sizing.
func Auto() Dimension {
	return Dimension{Kind: KindAuto}
}

// Constant returns a Dimension of v density-independent units.
func Constant(v float32) Dimension {
	return Dimension{Kind: KindConstant, Amount: v}
}

// Percent returns a Dimension of p percent (0-100 scale, 50 = 50%).
func Percent(p float32) Dimension {
	return Dimension{Kind: KindPercent, Amount: p}
}

// IsDefined reports whether the dimension carries an amount.
func (d Dimension) IsDefined() bool {
	return d.Kind == KindConstant || d.Kind == KindPercent
}

// IsAuto reports whether the dimension requests automatic sizing.
func (d Dimension) IsAuto() bool {
	return d.Kind == KindAuto
}

// Scaled returns the amount multiplied by density for constants and the raw
// amount for percentages. Auto and undefined dimensions yield NaN.
func (d Dimension) Scaled(density float32) float32 {
	switch d.Kind {
	case KindConstant:
		return d.Amount * density
	case KindPercent:
		return d.Amount
	default:
		return float32(math.NaN())
	}
}

// String formats the dimension the way ParseDimension reads it.
func (d Dimension) String() string {
	switch d.Kind {
	case KindConstant:
		return strconv.FormatFloat(float64(d.Amount), 'f', -1, 32)
	case KindPercent:
		return strconv.FormatFloat(float64(d.Amount), 'f', -1, 32) + "%"
	case KindAuto:
		return "auto"
	default:
		return "undefined"
	}
}
