package flexbox

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-flexbox/internal/debug"
)

func TestScope_RowWrap(t *testing.T) {
	s := newScope(t)

	build := func(n int) (*Item, []*box) {
		root := New(WithWrap(Wrap))
		boxes := make([]*box, n)
		for i := range boxes {
			var it *Item
			it, boxes[i] = leaf(50, 20)
			root.AddChild(it)
		}
		return root, boxes
	}

	root, boxes := build(4)
	run(s, root, 120, 100)

	want := []Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 20}, {X: 50, Y: 20}}
	got := make([]Point, len(boxes))
	for i, b := range boxes {
		got[i] = b.lastPlaced(t)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}

	root, boxes = build(3)
	run(s, root, 120, 100)

	want = want[:3]
	got = got[:0]
	for _, b := range boxes {
		got = append(got, b.lastPlaced(t))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements after rerun mismatch (-want +got):\n%s", diff)
	}
	if got := len(s.Root().Children()); got != 3 {
		t.Errorf("root children after rerun = %d, want 3", got)
	}
	if got := s.Len(); got != 4 {
		t.Errorf("live nodes after rerun = %d, want 4", got)
	}
}

func TestScope_PercentAcrossPasses(t *testing.T) {
	s := newScope(t)
	for pass := 1; pass <= 3; pass++ {
		half, _ := leaf(10, 10, WithWidth(Percent(50)))
		run(s, New(WithChildren(half)), 200, 50)

		if got := s.NodeFor(half).Layout().Rect.Width; got != 100 {
			t.Errorf("pass %d: width = %v, want 100", pass, got)
		}
	}
	if s.Pass() != 3 {
		t.Errorf("Pass() = %d, want 3", s.Pass())
	}
}

func TestScope_Identity(t *testing.T) {
	type tc struct {
		first  func() (*Item, map[string]*Item)
		second func() (*Item, map[string]*Item)
		// same lists item names whose node must survive the second pass.
		same  []string
		order []any
	}

	keyed := func(keys ...string) (*Item, map[string]*Item) {
		items := map[string]*Item{}
		root := New()
		for _, k := range keys {
			it := New(WithKey(k), WithSize(10, 10))
			items[k] = it
			root.AddChild(it)
		}
		return root, items
	}

	tests := map[string]tc{
		"reorder keyed": {
			first:  func() (*Item, map[string]*Item) { return keyed("a", "b", "c") },
			second: func() (*Item, map[string]*Item) { return keyed("c", "a", "b") },
			same:   []string{"a", "b", "c"},
			order:  []any{"c", "a", "b"},
		},
		"remove and add keyed": {
			first:  func() (*Item, map[string]*Item) { return keyed("a", "b", "c") },
			second: func() (*Item, map[string]*Item) { return keyed("a", "d", "c") },
			same:   []string{"a", "c"},
			order:  []any{"a", "d", "c"},
		},
		"insert keyed at front": {
			first:  func() (*Item, map[string]*Item) { return keyed("b", "c") },
			second: func() (*Item, map[string]*Item) { return keyed("a", "b", "c") },
			same:   []string{"b", "c"},
			order:  []any{"a", "b", "c"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newScope(t)

			root1, items1 := tt.first()
			run(s, root1, 100, 100)
			before := map[string]*Node{}
			for k, it := range items1 {
				before[k] = s.NodeFor(it)
			}

			root2, items2 := tt.second()
			run(s, root2, 100, 100)

			for _, k := range tt.same {
				if got := s.NodeFor(items2[k]); got != before[k] {
					t.Errorf("node for %q was recreated", k)
				}
			}

			var order []any
			for _, c := range s.Root().Children() {
				order = append(order, c.Key())
			}
			if diff := cmp.Diff(tt.order, order); diff != "" {
				t.Errorf("child order mismatch (-want +got):\n%s", diff)
			}
			if got, want := s.Len(), len(tt.order)+1; got != want {
				t.Errorf("live nodes = %d, want %d", got, want)
			}
		})
	}
}

func TestScope_ReparentKeyed(t *testing.T) {
	s := newScope(t)

	moving := New(WithKey("moving"), WithSize(10, 10))
	left := New(WithKey("left"), WithChildren(moving))
	right := New(WithKey("right"))
	run(s, New(WithChildren(left, right)), 100, 100)
	node := s.NodeFor(moving)

	moving = New(WithKey("moving"), WithSize(10, 10))
	left = New(WithKey("left"))
	right = New(WithKey("right"), WithChildren(moving))
	run(s, New(WithChildren(left, right)), 100, 100)

	if s.NodeFor(moving) != node {
		t.Fatal("keyed node was recreated when its parent changed")
	}
	if got := node.Parent(); got != s.NodeFor(right) {
		t.Errorf("parent = %v, want right container", got.describe())
	}
	if got := len(s.NodeFor(left).Children()); got != 0 {
		t.Errorf("old parent kept %d children", got)
	}
}

func TestScope_UnkeyedIdentityIsPositional(t *testing.T) {
	s := newScope(t)

	a, _ := leaf(10, 10)
	b, _ := leaf(10, 10)
	run(s, New(WithChildren(a, b)), 100, 100)
	first := s.NodeFor(a)

	c, _ := leaf(10, 10)
	run(s, New(WithChildren(c)), 100, 100)
	if s.NodeFor(c) != first {
		t.Error("unkeyed item at index 0 did not reuse the node at index 0")
	}
	if s.NodeFor(a) != nil {
		t.Error("item from a previous pass still resolves to a node")
	}
}

func TestScope_DuplicateKeyPanics(t *testing.T) {
	s := newScope(t)
	root := New(WithChildren(New(WithKey(1)), New(WithKey(1))))

	defer func() {
		if recover() == nil {
			t.Error("duplicate key did not panic")
		}
	}()
	s.Update(root)
}

func TestScope_LeafContainerTransitions(t *testing.T) {
	s := newScope(t)

	asLeaf := func() *Item {
		it, _ := leaf(30, 10, WithKey("x"))
		return it
	}
	asContainer := func() *Item {
		child, _ := leaf(5, 5)
		return New(WithKey("x"), WithChildren(child))
	}

	steps := []struct {
		item     func() *Item
		leaf     bool
		children int
	}{
		{item: asLeaf, leaf: true, children: 0},
		{item: asContainer, leaf: false, children: 1},
		{item: asLeaf, leaf: true, children: 0},
	}

	var node *Node
	for i, step := range steps {
		it := step.item()
		run(s, New(WithChildren(it)), 100, 100)

		n := s.NodeFor(it)
		if node != nil && n != node {
			t.Fatalf("step %d: node was recreated", i)
		}
		node = n

		if n.IsLeaf() != step.leaf {
			t.Errorf("step %d: IsLeaf = %v, want %v", i, n.IsLeaf(), step.leaf)
		}
		if got := len(n.Children()); got != step.children {
			t.Errorf("step %d: children = %d, want %d", i, got, step.children)
		}
		if step.leaf != (n.Content() != nil) {
			t.Errorf("step %d: content = %v", i, n.Content())
		}
	}
}

func TestScope_FingerprintKeepsMeasurement(t *testing.T) {
	s := newScope(t)
	fp := &fingerprinted{box: box{width: 30, height: 10}, tag: "v1"}
	plain := &box{width: 30, height: 10}

	pass := func() {
		root := New(WithDirection(Column), WithAlign(AlignStart), WithChildren(
			New(WithContent(fp)),
			New(WithContent(plain)),
		))
		run(s, root, 100, 100)
	}

	pass()
	fpBefore, plainBefore := len(fp.measures), len(plain.measures)

	pass()
	if got := len(fp.measures) - fpBefore; got != 1 {
		t.Errorf("unchanged fingerprint measured %d times, want 1 (final size only)", got)
	}
	if got := len(plain.measures) - plainBefore; got < 2 {
		t.Errorf("content without fingerprint measured %d times, want at least 2", got)
	}

	fp.tag = "v2"
	fpBefore = len(fp.measures)
	pass()
	if got := len(fp.measures) - fpBefore; got < 2 {
		t.Errorf("changed fingerprint measured %d times, want at least 2", got)
	}
}

func TestScope_DisplayNone(t *testing.T) {
	s := newScope(t)
	hidden, hb := leaf(30, 10, WithDisplay(DisplayNone))
	shown, sb := leaf(30, 10)
	run(s, New(WithChildren(hidden, shown)), 100, 100)

	if len(hb.placed) != 0 {
		t.Errorf("hidden leaf placed at %v", hb.placed)
	}
	if !s.NodeFor(hidden).Pending() {
		t.Error("hidden leaf should keep its content pending")
	}
	if got := sb.lastPlaced(t); got != (Point{}) {
		t.Errorf("shown leaf placed at %v, want origin", got)
	}
}

func TestScope_NestedScopeContent(t *testing.T) {
	inner := newScope(t)
	target, tb := leaf(30, 10)
	inner.Update(New(WithChildren(target)))

	host := New(WithPadding(2), WithContent(inner))
	outer := newScope(t)
	run(outer, New(WithPadding(5), WithChildren(host)), 100, 100)

	if inner.Host() != outer.NodeFor(host) {
		t.Fatal("inner scope host is not the node of the hosting item")
	}
	if got := tb.lastPlaced(t); got != (Point{X: 7, Y: 7}) {
		t.Errorf("nested leaf placed at %v, want (7,7)", got)
	}
	if got := outer.NodeFor(target); got != inner.NodeFor(target) || got == nil {
		t.Error("NodeFor does not search nested scopes")
	}
}

func TestScope_IsolatedItem(t *testing.T) {
	s := newScope(t)
	a, ab := leaf(20, 10)
	b, bb := leaf(20, 10)
	isolated := New(Isolated(), WithDirection(Column), WithPadding(1), WithChildren(a, b))
	run(s, New(WithPadding(4), WithChildren(isolated)), 100, 100)

	host := s.NodeFor(isolated)
	if host.Nested() == nil {
		t.Fatal("isolated item has no nested scope")
	}
	if got := len(host.Children()); got != 0 {
		t.Errorf("host has %d solver children, want 0", got)
	}
	if got := ab.lastPlaced(t); got != (Point{X: 5, Y: 5}) {
		t.Errorf("first child placed at %v, want (5,5)", got)
	}
	if got := bb.lastPlaced(t); got != (Point{X: 5, Y: 15}) {
		t.Errorf("second child placed at %v, want (5,15)", got)
	}

	nested := host.Nested()
	run(s, New(WithPadding(4), WithChildren(New(Isolated(), WithChildren(New(WithSize(1, 1)))))), 100, 100)
	if s.Root().Children()[0].Nested() != nested {
		t.Error("implicit scope was not kept across passes")
	}
}

func TestScope_RunOptions(t *testing.T) {
	type tc struct {
		opts  []ScopeOption
		run   func(s *Scope) Size
		child Option
		check func(t *testing.T, s *Scope, b *box, size Size)
	}

	tests := map[string]tc{
		"density scales constants": {
			opts:  []ScopeOption{WithDensity(2)},
			child: WithWidth(Constant(10)),
			run:   func(s *Scope) Size { return s.Run(100, 100, 0) },
			check: func(t *testing.T, s *Scope, b *box, size Size) {
				if got := b.lastMeasure(t).MaxWidth; got != 20 {
					t.Errorf("final width = %v, want 20", got)
				}
			},
		},
		"flexible axis wraps content": {
			child: WithFlexShrink(0),
			run:   func(s *Scope) Size { return s.Run(100, 100, Horizontal) },
			check: func(t *testing.T, s *Scope, b *box, size Size) {
				if size.Width != 30 || size.Height != 100 {
					t.Errorf("root size = %v, want 30x100", size)
				}
			},
		},
		"non-finite size is unbounded": {
			child: WithFlexShrink(0),
			run:   func(s *Scope) Size { return s.Run(float32(math.NaN()), 100, 0) },
			check: func(t *testing.T, s *Scope, b *box, size Size) {
				if size.Width != 30 {
					t.Errorf("root width = %v, want 30", size.Width)
				}
			},
		},
		"run at origin": {
			child: WithFlexShrink(0),
			run:   func(s *Scope) Size { return s.RunAt(Point{X: 3, Y: 4}, 100, 100, 0) },
			check: func(t *testing.T, s *Scope, b *box, size Size) {
				if got := b.lastPlaced(t); got != (Point{X: 3, Y: 4}) {
					t.Errorf("placed at %v, want (3,4)", got)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newScope(t, tt.opts...)
			it, b := leaf(30, 10, tt.child)
			s.Update(New(WithChildren(it)))
			size := tt.run(s)
			tt.check(t, s, b, size)
		})
	}
}

func TestScope_EmptyRoot(t *testing.T) {
	s := newScope(t)
	run(s, New(WithChildren(New(), New())), 50, 50)

	s.Update(nil)
	if s.Root() != nil || s.Len() != 0 {
		t.Errorf("after Update(nil): root = %v, len = %d", s.Root(), s.Len())
	}
	if got := s.Run(50, 50, 0); got != (Size{}) {
		t.Errorf("Run on empty scope = %v, want zero", got)
	}
	if p := s.Measure(Exact(10, 5)); p.Size() != (Size{Width: 10, Height: 5}) {
		t.Errorf("Measure on empty scope = %v, want 10x5", p.Size())
	}
}

func TestScopeOptions_Errors(t *testing.T) {
	type tc struct {
		opt     ScopeOption
		wantErr string
	}

	tests := map[string]tc{
		"zero density":     {opt: WithDensity(0), wantErr: "density"},
		"nan density":      {opt: WithDensity(float32(math.NaN())), wantErr: "density"},
		"infinite density": {opt: WithDensity(Inf), wantErr: "density"},
		"negative scale":   {opt: WithPointScaleFactor(-1), wantErr: "point scale"},
		"nil logger":       {opt: WithLogger(nil), wantErr: "logger"},
		"unknown axes":     {opt: WithFlexibleAxes(Axes(4)), wantErr: "axes"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewScope(tt.opt)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewScope error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestScope_LogsUnsupportedValues(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := newScope(t, WithLogger(logger))

	run(s, New(WithChildren(
		New(WithPadding(1), WithPaddingEdges(EdgeAll(Auto()))),
		New(WithPaddingEdges(EdgeAll(Auto()))),
	)), 50, 50)

	out := buf.String()
	if !strings.Contains(out, "unsupported style value") {
		t.Errorf("log output missing fallback line:\n%s", out)
	}
	if !strings.Contains(out, "nodes=2") {
		t.Errorf("fallbacks not aggregated per pass:\n%s", out)
	}
}

func TestScope_ReleasesExplicitScope(t *testing.T) {
	type tc struct {
		// next builds the outer root for the second pass.
		next func(inner *Scope) *Item
	}

	tests := map[string]tc{
		"host dropped": {
			next: func(*Scope) *Item { return New(WithChildren(New(WithKey("other")))) },
		},
		"host becomes plain leaf": {
			next: func(*Scope) *Item {
				it, _ := leaf(5, 5, WithKey("host"))
				return New(WithChildren(it))
			},
		},
		"host switches to isolated": {
			next: func(*Scope) *Item {
				return New(WithChildren(New(WithKey("host"), Isolated(), WithChildren(New()))))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inner := newScope(t)
			inner.Update(New(WithChildren(New(WithSize(4, 4)))))

			outer := newScope(t)
			run(outer, New(WithChildren(New(WithKey("host"), WithContent(inner)))), 50, 50)
			if inner.Host() == nil {
				t.Fatal("inner scope has no host after first pass")
			}

			run(outer, tt.next(inner), 50, 50)
			if inner.Host() != nil {
				t.Errorf("inner scope still hosted by %v", inner.Host().describe())
			}
			if _, err := inner.Root().PositionIn(outer.Root()); !errors.Is(err, ErrNotAncestor) {
				t.Errorf("PositionIn after release error = %v, want ErrNotAncestor", err)
			}
		})
	}
}

func TestScope_DefaultLoggerFollowsDebugInit(t *testing.T) {
	t.Cleanup(func() { debug.Close() })

	s := newScope(t)
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := debug.Init(path); err != nil {
		t.Fatalf("debug.Init: %v", err)
	}

	run(s, New(WithChildren(New(WithSize(1, 1)))), 10, 10)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "solve") {
		t.Errorf("debug log missing solve line:\n%s", data)
	}

	if err := debug.Close(); err != nil {
		t.Fatalf("debug.Close: %v", err)
	}
	// Writes after Close go to the discard logger.
	run(s, New(), 10, 10)
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(data) {
		t.Errorf("log grew after Close: %d -> %d bytes", len(data), len(after))
	}
}
