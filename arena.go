package flexbox

import (
	"fmt"

	"github.com/grindlemire/go-flexbox/internal/solver"
)

// nodeKey identifies a node across passes. Keyed items are identified by
// their key anywhere in the scope; other items by their parent node and
// position.
type nodeKey struct {
	parent *Node
	index  int
	key    any
	keyed  bool
}

func keyFor(parent *Node, index int, it *Item) nodeKey {
	if it.key != nil {
		return nodeKey{key: it.key, keyed: true}
	}
	return nodeKey{parent: parent, index: index}
}

// arena holds the nodes of one scope.
// Uses mark-and-sweep: each Update marks the keys it claims, then sweep
// drops the nodes nobody claimed.
type arena struct {
	nodes  map[nodeKey]*Node
	active map[nodeKey]bool // Marked during Update, swept after
}

func newArena() arena {
	return arena{
		nodes:  make(map[nodeKey]*Node),
		active: make(map[nodeKey]bool),
	}
}

// claim returns the node for the item at (parent, index), creating it on
// first use, and marks it active for this pass.
func (s *Scope) claim(parent *Node, index int, it *Item) *Node {
	key := keyFor(parent, index, it)
	if s.arena.active[key] {
		panic(fmt.Sprintf("flexbox: duplicate item key %v", it.key))
	}
	s.arena.active[key] = true

	n, ok := s.arena.nodes[key]
	if !ok {
		n = newNode(s, key)
		s.arena.nodes[key] = n
	}
	s.byItem[it] = n
	return n
}

// sweep drops nodes not claimed during the last Update. Nodes are always
// detached before they are dropped so no live node keeps a dead owner.
func (s *Scope) sweep() int {
	dropped := 0
	for key, n := range s.arena.nodes {
		if !s.arena.active[key] {
			solver.Detach(n.flex)
			n.releaseNested()
			delete(s.arena.nodes, key)
			dropped++
		}
	}
	// Reset active keys for next pass
	s.arena.active = make(map[nodeKey]bool)
	return dropped
}
