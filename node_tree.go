package flexbox

import (
	"github.com/grindlemire/go-flexbox/internal/solver"
)

// sync brings n and its subtree in line with it. n has already been
// claimed and sits in its final slot.
func (s *Scope) sync(n *Node, it *Item) {
	n.style = it.style
	for _, noop := range solver.Apply(n.flex, it.style, s.density) {
		s.noops[noop.Field+"="+noop.Value.String()]++
	}

	switch {
	case it.hostsScope():
		// Nested scopes are measured as leaves by the outer solver.
		solver.Trim(n.flex, 0)
		s.syncNested(n, it)
		s.setContent(n, n.nested)

	case len(it.children) > 0:
		// A leaf turning into a container drops its measure function
		// before any child is inserted.
		n.releaseNested()
		s.setContent(n, nil)
		s.syncChildren(n, it.children)

	default:
		// A container turning into a leaf loses its children before the
		// measure function is installed.
		n.releaseNested()
		solver.Trim(n.flex, 0)
		s.setContent(n, it.content)
	}
}

// syncChildren makes the solver children of n match items in a single
// pass. After handling slot i, slots 0..i hold exactly the nodes of
// items 0..i; whatever is left past the end is trimmed.
func (s *Scope) syncChildren(n *Node, items []*Item) {
	for i, child := range items {
		cn := s.claim(n, i, child)
		if solver.ChildAt(n.flex, i) != cn.flex {
			solver.Detach(cn.flex)
			solver.InsertChildAt(n.flex, cn.flex, i)
		}
		s.sync(cn, child)
	}
	solver.Trim(n.flex, len(items))
}

// syncNested updates the scope hosted by n. Isolated items get an
// implicit scope that persists on the node; explicit *Scope content is
// used as given and must be updated by its owner.
func (s *Scope) syncNested(n *Node, it *Item) {
	if inner := it.nestedScope(); inner != nil {
		if n.nested != inner {
			n.releaseNested()
		}
		n.nested = inner
	} else {
		if n.nested == nil || !n.nested.implicit {
			n.releaseNested()
			n.nested = s.spawn()
		}
		n.nested.Update(it.innerRoot())
	}
	n.nested.host = n
}

// setContent installs c as n's leaf content, or turns n back into a plain
// node when c is nil.
func (s *Scope) setContent(n *Node, c Content) {
	if c == nil {
		n.content = nil
		n.payload.clear()
		n.fingerprint, n.hasFingerprint = nil, false
		solver.SetMeasure(n.flex, nil)
		return
	}

	fresh := !solver.HasMeasure(n.flex)
	if fresh {
		solver.SetMeasure(n.flex, n.measure)
	}

	changed := true
	if fp, ok := c.(Fingerprinter); ok {
		next := fp.Fingerprint()
		changed = !n.hasFingerprint || next != n.fingerprint
		n.fingerprint, n.hasFingerprint = next, true
	} else {
		n.fingerprint, n.hasFingerprint = nil, false
	}

	n.content = c
	n.payload.setPending(c)
	if fresh || changed {
		solver.MarkDirty(n.flex)
	}
}

// releaseNested stops n hosting its nested scope. A scope still hosted
// elsewhere keeps its new host.
func (n *Node) releaseNested() {
	if n.nested != nil && n.nested.host == n {
		n.nested.host = nil
	}
	n.nested = nil
}
