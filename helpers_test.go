package flexbox

import "testing"

// box is fixed-size content that records how it was measured and placed.
type box struct {
	width, height float32

	measures []Constraints
	placed   []Point
}

func (b *box) Measure(c Constraints) Placeable {
	b.measures = append(b.measures, c)
	return &boxPlaceable{b: b, size: c.Constrain(Size{Width: b.width, Height: b.height})}
}

// lastPlaced returns where the box was placed most recently.
func (b *box) lastPlaced(t *testing.T) Point {
	t.Helper()
	if len(b.placed) == 0 {
		t.Fatal("box was never placed")
	}
	return b.placed[len(b.placed)-1]
}

// lastMeasure returns the constraints of the most recent measurement.
func (b *box) lastMeasure(t *testing.T) Constraints {
	t.Helper()
	if len(b.measures) == 0 {
		t.Fatal("box was never measured")
	}
	return b.measures[len(b.measures)-1]
}

type boxPlaceable struct {
	b    *box
	size Size
}

func (p *boxPlaceable) Size() Size {
	return p.size
}

func (p *boxPlaceable) Place(x, y float32) {
	p.b.placed = append(p.b.placed, Point{X: x, Y: y})
}

// fingerprinted is a box whose measurement is cached while tag is unchanged.
type fingerprinted struct {
	box
	tag string
}

func (f *fingerprinted) Fingerprint() any {
	return f.tag
}

func newScope(t *testing.T, opts ...ScopeOption) *Scope {
	t.Helper()
	s, err := NewScope(opts...)
	if err != nil {
		t.Fatalf("NewScope: %v", err)
	}
	return s
}

// run updates s with root and lays it out in a width x height space.
func run(s *Scope, root *Item, width, height float32) Size {
	s.Update(root)
	return s.Run(width, height, 0)
}

func leaf(w, h float32, opts ...Option) (*Item, *box) {
	b := &box{width: w, height: h}
	return New(append([]Option{WithContent(b)}, opts...)...), b
}
