package gioflex

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/google/go-cmp/cmp"
	flexbox "github.com/grindlemire/go-flexbox"
)

func newContext(w, h int) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(w, h)),
	}
}

func TestFrame_Layout(t *testing.T) {
	gtx := newContext(200, 100)
	f := NewFrame(gtx)

	var fillCs layout.Constraints
	fixed := f.Widget(func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Constrain(image.Pt(30, 10))}
	})
	fill := f.Widget(func(gtx layout.Context) layout.Dimensions {
		fillCs = gtx.Constraints
		return layout.Dimensions{Size: gtx.Constraints.Min}
	})

	a := flexbox.New(flexbox.WithContent(fixed))
	b := flexbox.New(flexbox.WithFlexGrow(1), flexbox.WithContent(fill))
	root := flexbox.New(flexbox.WithChildren(a, b))

	scope, err := NewScope(gtx)
	if err != nil {
		t.Fatalf("NewScope: %v", err)
	}

	dims := f.Layout(scope, root)
	if dims.Size != image.Pt(200, 100) {
		t.Errorf("root size = %v, want (200,100)", dims.Size)
	}

	type tc struct {
		item   *flexbox.Item
		origin image.Point
		size   flexbox.Size
	}

	tests := map[string]tc{
		"fixed widget": {
			item:   a,
			origin: image.Point{},
			size:   flexbox.Size{Width: 30, Height: 100},
		},
		"growing widget": {
			item:   b,
			origin: image.Pt(30, 0),
			size:   flexbox.Size{Width: 170, Height: 100},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, ok := scope.NodeFor(tt.item).Placeable().(*placed)
			if !ok {
				t.Fatalf("placeable is %T, want *placed", scope.NodeFor(tt.item).Placeable())
			}
			if !p.drawn {
				t.Fatal("widget was not placed")
			}
			if p.origin != tt.origin {
				t.Errorf("origin = %v, want %v", p.origin, tt.origin)
			}
			if diff := cmp.Diff(tt.size, p.Size()); diff != "" {
				t.Errorf("size mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if want := layout.Exact(image.Pt(170, 100)); fillCs != want {
		t.Errorf("final constraints = %v, want %v", fillCs, want)
	}
}

func TestNewScope_Density(t *testing.T) {
	type tc struct {
		metric unit.Metric
		want   float32
	}

	tests := map[string]tc{
		"zero metric": {metric: unit.Metric{}, want: 1},
		"high dpi":    {metric: unit.Metric{PxPerDp: 2.5, PxPerSp: 2.5}, want: 2.5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gtx := newContext(10, 10)
			gtx.Metric = tt.metric

			scope, err := NewScope(gtx)
			if err != nil {
				t.Fatalf("NewScope: %v", err)
			}
			if got := scope.Density(); got != tt.want {
				t.Errorf("Density() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToConstraints(t *testing.T) {
	type tc struct {
		in   flexbox.Constraints
		want layout.Constraints
	}

	tests := map[string]tc{
		"exact": {
			in:   flexbox.Exact(40, 20),
			want: layout.Exact(image.Pt(40, 20)),
		},
		"unbounded": {
			in:   flexbox.Unbounded(),
			want: layout.Constraints{Max: image.Pt(unbounded, unbounded)},
		},
		"fractional bounds round inward": {
			in: flexbox.Constraints{MinWidth: 1.2, MaxWidth: 9.8, MinHeight: 0, MaxHeight: 3.5},
			want: layout.Constraints{
				Min: image.Pt(2, 0),
				Max: image.Pt(9, 3),
			},
		},
		"collapsed range keeps min": {
			in: flexbox.Constraints{MinWidth: 4.5, MaxWidth: 4.5, MinHeight: 0, MaxHeight: 0},
			want: layout.Constraints{
				Min: image.Pt(5, 0),
				Max: image.Pt(5, 0),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := toConstraints(tt.in); got != tt.want {
				t.Errorf("toConstraints(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrame_FractionalPosition(t *testing.T) {
	type tc struct {
		width int
		want  image.Point
	}

	// A 30px widget centered in the row; the solver does not round.
	tests := map[string]tc{
		"whole pixel": {width: 100, want: image.Pt(35, 0)},
		"half pixel":  {width: 101, want: image.Pt(36, 0)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gtx := newContext(tt.width, 10)
			f := NewFrame(gtx)

			item := flexbox.New(flexbox.WithContent(f.Widget(func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Constrain(image.Pt(30, 10))}
			})))
			root := flexbox.New(flexbox.WithJustify(flexbox.JustifyCenter), flexbox.WithChildren(item))

			scope, err := NewScope(gtx, flexbox.WithPointScaleFactor(0))
			if err != nil {
				t.Fatalf("NewScope: %v", err)
			}
			f.Layout(scope, root)

			p := scope.NodeFor(item).Placeable().(*placed)
			if p.origin != tt.want {
				t.Errorf("origin = %v, want %v", p.origin, tt.want)
			}
		})
	}
}
