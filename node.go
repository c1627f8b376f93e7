package flexbox

import (
	"github.com/grindlemire/go-flexbox/internal/solver"
	"github.com/kjk/flex"
)

// Node is the persistent handle behind an Item. A Scope creates a node the
// first time an item claims its identity and keeps it, together with its
// solver node, until a pass ends without any item claiming it.
type Node struct {
	flex  *flex.Node
	scope *Scope
	key   nodeKey

	style   Style
	content Content
	payload payload

	// Last fingerprint seen for content, when content is a Fingerprinter.
	fingerprint    any
	hasFingerprint bool

	// Scope laid out inside this node, for isolated items or *Scope content.
	nested *Scope
}

func newNode(s *Scope, key nodeKey) *Node {
	n := &Node{scope: s, key: key, style: DefaultStyle()}
	n.flex = solver.NewNode(s.cfg, n)
	return n
}

// payload is what a leaf carries between passes: the content waiting to be
// measured, or the placeable produced by its latest measurement.
type payload struct {
	pending  Content
	measured Placeable
}

func (p *payload) setPending(c Content) {
	p.pending = c
	p.measured = nil
}

func (p *payload) setMeasured(pl Placeable) {
	p.pending = nil
	p.measured = pl
}

func (p *payload) clear() {
	*p = payload{}
}

// nodeOf returns the bridge node behind a solver node.
func nodeOf(fn *flex.Node) *Node {
	if fn == nil {
		return nil
	}
	n, _ := fn.Context.(*Node)
	return n
}

// Key returns the item key the node was created for, or nil for
// positional identity.
func (n *Node) Key() any {
	if n.key.keyed {
		return n.key.key
	}
	return nil
}

// Style returns the style applied during the last Update.
func (n *Node) Style() Style {
	return n.style
}

// Scope returns the scope that owns the node.
func (n *Node) Scope() *Scope {
	return n.scope
}

// Nested returns the scope hosted by this node, or nil.
func (n *Node) Nested() *Scope {
	return n.nested
}

// Layout reads the node's solved box. The position is relative to the
// owning node's border box; for a scope root it is relative to the scope.
func (n *Node) Layout() LayoutResult {
	return solver.Box(n.flex)
}

// Parent returns the node's owner: its solver parent, or the hosting node
// when n is the root of a nested scope. The outermost root has no owner.
func (n *Node) Parent() *Node {
	if p := nodeOf(solver.Owner(n.flex)); p != nil {
		return p
	}
	if n.scope != nil && n.scope.root == n {
		return n.scope.host
	}
	return nil
}

// Children returns the node's solver children in order.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(n.flex.Children))
	for _, c := range n.flex.Children {
		children = append(children, nodeOf(c))
	}
	return children
}

// IsLeaf reports whether the node measures content.
func (n *Node) IsLeaf() bool {
	return solver.HasMeasure(n.flex)
}

// Content returns the leaf content set by the last Update, or nil.
func (n *Node) Content() Content {
	return n.content
}

// Placeable returns the latest measurement of the node's content, or nil
// while the content is still waiting to be measured.
func (n *Node) Placeable() Placeable {
	return n.payload.measured
}

// Pending reports whether the node holds content not yet measured.
func (n *Node) Pending() bool {
	return n.payload.pending != nil
}
