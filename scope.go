package flexbox

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/grindlemire/go-flexbox/internal/debug"
	"github.com/grindlemire/go-flexbox/internal/solver"
	"github.com/kjk/flex"
)

var _ Content = (*Scope)(nil)

// Axes is a set of layout axes.
type Axes uint8

const (
	Horizontal Axes = 1 << iota
	Vertical
)

// Has reports whether a contains every axis in b.
func (a Axes) Has(b Axes) bool {
	return a&b == b
}

// Scope is the Layout Driver for one solver tree. It owns the tree's nodes
// and runs the solve, finalize and place steps of every pass. A Scope is
// not safe for concurrent use.
type Scope struct {
	cfg        *flex.Config
	density    float32
	pointScale float32
	flexible   Axes
	logger     *log.Logger

	arena  arena
	byItem map[*Item]*Node
	root   *Node
	pass   int
	noops  map[string]int

	// Set when the scope is laid out inside a node of another scope.
	host     *Node
	implicit bool
}

// NewScope creates a Scope with the given options.
func NewScope(opts ...ScopeOption) (*Scope, error) {
	s := &Scope{
		density:    1,
		pointScale: 1,
		arena:      newArena(),
		byItem:     make(map[*Item]*Node),
		noops:      make(map[string]int),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.cfg = solver.NewConfig(s.pointScale)
	return s, nil
}

// spawn creates the implicit scope of an isolated item. It shares the
// solver config and settings of s.
func (s *Scope) spawn() *Scope {
	return &Scope{
		cfg:        s.cfg,
		density:    s.density,
		pointScale: s.pointScale,
		logger:     s.logger,
		arena:      newArena(),
		byItem:     make(map[*Item]*Node),
		noops:      make(map[string]int),
		implicit:   true,
	}
}

// Update synchronizes the solver tree with root. Nodes are reused by item
// key, or by parent and position for unkeyed items; nodes no item claims
// are dropped. A nil root empties the scope.
func (s *Scope) Update(root *Item) {
	s.pass++
	s.byItem = make(map[*Item]*Node)
	clear(s.noops)

	if root == nil {
		s.root = nil
	} else {
		rn := s.claim(nil, 0, root)
		solver.Detach(rn.flex)
		s.root = rn
		s.sync(rn, root)
	}

	dropped := s.sweep()
	for field, count := range s.noops {
		s.log().Debug("unsupported style value resolved to solver default", "pass", s.pass, "value", field, "nodes", count)
	}
	s.log().Debug("update", "pass", s.pass, "nodes", len(s.arena.nodes), "dropped", dropped)
}

// Run solves the tree in a width x height space, re-measures every leaf
// at its final size and places it relative to (0, 0). Flexible axes, and
// non-finite sizes, are solved without a bound. It returns the root size.
func (s *Scope) Run(width, height float32, axes Axes) Size {
	return s.RunAt(Point{}, width, height, axes)
}

// RunAt is Run with leaves placed relative to origin.
func (s *Scope) RunAt(origin Point, width, height float32, axes Axes) Size {
	if s.root == nil {
		return Size{}
	}
	if axes.Has(Horizontal) {
		width = Inf
	}
	if axes.Has(Vertical) {
		height = Inf
	}

	s.solve(width, height)
	s.finalize(s.root)
	s.place(s.root, origin)
	return s.root.Layout().Rect.Size()
}

// Measure lays the scope out as content of a node in another tree. The
// root's min and max size come from c and the solve uses the max bound,
// except on flexible axes.
func (s *Scope) Measure(c Constraints) Placeable {
	if s.root == nil {
		return &scopePlaceable{size: c.Constrain(Size{})}
	}

	solver.SetBounds(s.root.flex, c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight)
	width, height := c.MaxWidth, c.MaxHeight
	if s.flexible.Has(Horizontal) {
		width = Inf
	}
	if s.flexible.Has(Vertical) {
		height = Inf
	}

	s.solve(width, height)
	s.finalize(s.root)
	return &scopePlaceable{scope: s, size: s.root.Layout().Rect.Size()}
}

// log returns the logger set with WithLogger, or else the shared debug
// logger as currently configured.
func (s *Scope) log() *log.Logger {
	if s.logger != nil {
		return s.logger
	}
	return debug.Logger()
}

func (s *Scope) solve(width, height float32) {
	start := time.Now()
	solver.Solve(s.root.flex, width, height)
	s.log().Debug("solve", "pass", s.pass, "width", width, "height", height, "took", time.Since(start))
}

// finalize re-measures every leaf with exactly its solved content size,
// top-down, so each placeable matches the box it will be placed in.
func (s *Scope) finalize(n *Node) {
	if n.style.Display == DisplayNone {
		if n.content != nil {
			n.payload.setPending(n.content)
		}
		return
	}
	if n.content != nil {
		inner := n.Layout().ContentRect()
		n.payload.setMeasured(n.content.Measure(Exact(inner.Width, inner.Height)))
	}
	for _, c := range n.flex.Children {
		s.finalize(nodeOf(c))
	}
}

// place hands every placeable its absolute content-box position. origin
// is the position of n's owner's border box.
func (s *Scope) place(n *Node, origin Point) {
	if n.style.Display == DisplayNone {
		return
	}
	box := n.Layout()
	at := origin.Add(box.Rect.Min())
	if p := n.payload.measured; p != nil {
		off := box.ContentOffset()
		p.Place(at.X+off.X, at.Y+off.Y)
	}
	for _, c := range n.flex.Children {
		s.place(nodeOf(c), at)
	}
}

// scopePlaceable is the result of measuring a scope as content.
type scopePlaceable struct {
	scope *Scope
	size  Size
}

func (p *scopePlaceable) Size() Size {
	return p.size
}

func (p *scopePlaceable) Place(x, y float32) {
	if p.scope == nil || p.scope.root == nil {
		return
	}
	p.scope.place(p.scope.root, Point{X: x, Y: y})
}

// Root returns the root node, or nil before the first Update.
func (s *Scope) Root() *Node {
	return s.root
}

// Host returns the node this scope is laid out in, or nil for an outermost
// scope.
func (s *Scope) Host() *Node {
	return s.host
}

// Density returns the factor applied to Constant dimensions.
func (s *Scope) Density() float32 {
	return s.density
}

// Pass returns the number of Update calls so far.
func (s *Scope) Pass() int {
	return s.pass
}

// Len returns the number of live nodes in the scope, excluding nested
// scopes.
func (s *Scope) Len() int {
	return len(s.arena.nodes)
}

// NodeFor returns the node that it claimed during the last Update,
// searching nested scopes too. It returns nil for items not in the tree.
func (s *Scope) NodeFor(it *Item) *Node {
	if n, ok := s.byItem[it]; ok {
		return n
	}
	for _, n := range s.arena.nodes {
		if n.nested == nil || n.nested == s {
			continue
		}
		if found := n.nested.NodeFor(it); found != nil {
			return found
		}
	}
	return nil
}
