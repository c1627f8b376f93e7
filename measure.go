package flexbox

import (
	"math"

	"github.com/kjk/flex"
)

// MeasureMode tells leaf content how the solver constrains one axis.
type MeasureMode uint8

const (
	MeasureUndefined MeasureMode = iota // No constraint; report the natural size
	MeasureExactly                      // The size is fixed at the suggested value
	MeasureAtMost                       // The size may not exceed the suggested value
)

// String returns the mode name.
func (m MeasureMode) String() string {
	switch m {
	case MeasureExactly:
		return "exactly"
	case MeasureAtMost:
		return "at-most"
	default:
		return "undefined"
	}
}

// Inf marks an unbounded constraint.
var Inf = float32(math.Inf(1))

// Constraints bound the size leaf content may report. Max values may be Inf.
type Constraints struct {
	MinWidth, MaxWidth   float32
	MinHeight, MaxHeight float32
}

// Exact returns constraints that admit only width x height.
func Exact(width, height float32) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MinHeight: height, MaxHeight: height}
}

// Loose returns constraints from zero up to width x height.
func Loose(width, height float32) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() Constraints {
	return Constraints{MaxWidth: Inf, MaxHeight: Inf}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(float64(c.MaxWidth), 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(float64(c.MaxHeight), 1)
}

// Constrain clamps s into the constraints.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  min(max(s.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(s.Height, c.MinHeight), c.MaxHeight),
	}
}

// ConstraintsFor converts the solver's per-axis mode and size into
// constraints: undefined is [0, Inf], exactly is [s, s] and at-most is
// [0, s].
func ConstraintsFor(widthMode MeasureMode, width float32, heightMode MeasureMode, height float32) Constraints {
	var c Constraints
	c.MinWidth, c.MaxWidth = axisBounds(widthMode, width)
	c.MinHeight, c.MaxHeight = axisBounds(heightMode, height)
	return c
}

func axisBounds(mode MeasureMode, size float32) (lo, hi float32) {
	if math.IsNaN(float64(size)) {
		return 0, Inf
	}
	size = max(size, 0)
	switch mode {
	case MeasureExactly:
		return size, size
	case MeasureAtMost:
		return 0, size
	default:
		return 0, Inf
	}
}

// Reconcile picks the size reported back to the solver for one axis:
// undefined uses the measured size, exactly uses the suggested size and
// at-most uses the smaller of the two.
func Reconcile(mode MeasureMode, suggested, measured float32) float32 {
	if math.IsNaN(float64(suggested)) {
		return measured
	}
	switch mode {
	case MeasureExactly:
		return suggested
	case MeasureAtMost:
		return min(measured, suggested)
	default:
		return measured
	}
}

// Placeable is the result of measuring content. Place receives the
// absolute position of the content box.
type Placeable interface {
	Size() Size
	Place(x, y float32)
}

// Content is anything a leaf can measure. Measure may be called several
// times per pass with different constraints; the last call before
// placement is made with the final exact size.
type Content interface {
	Measure(c Constraints) Placeable
}

// ContentFunc adapts a function to Content.
type ContentFunc func(c Constraints) Placeable

// Measure calls f(c).
func (f ContentFunc) Measure(c Constraints) Placeable {
	return f(c)
}

// Fingerprinter is implemented by content that can tell when its
// measurement would change. Leaves whose fingerprint is unchanged keep the
// solver's cached measurement. Fingerprint must return a comparable value.
type Fingerprinter interface {
	Fingerprint() any
}

func measureMode(m flex.MeasureMode) MeasureMode {
	switch m {
	case flex.MeasureModeExactly:
		return MeasureExactly
	case flex.MeasureModeAtMost:
		return MeasureAtMost
	default:
		return MeasureUndefined
	}
}

// measure is installed as the solver measure function of every content leaf.
func (n *Node) measure(_ *flex.Node, width float32, wm flex.MeasureMode, height float32, hm flex.MeasureMode) flex.Size {
	wMode, hMode := measureMode(wm), measureMode(hm)
	p := n.content.Measure(ConstraintsFor(wMode, width, hMode, height))
	n.payload.setMeasured(p)

	sz := p.Size()
	return flex.Size{
		Width:  Reconcile(wMode, width, sz.Width),
		Height: Reconcile(hMode, height, sz.Height),
	}
}
