package flexbox

import "fmt"

// PositionIn returns the position of n's border box relative to
// ancestor's border box. The walk follows solver parents and crosses from
// a nested scope's root to the node hosting it, so ancestor may live in an
// outer scope. A node is at (0, 0) relative to itself.
func (n *Node) PositionIn(ancestor *Node) (Point, error) {
	var p Point
	for cur := n; cur != ancestor; {
		owner := cur.Parent()
		if owner == nil {
			return Point{}, fmt.Errorf("%w: owner chain of %v ends before %v", ErrNotAncestor, n.describe(), ancestor.describe())
		}
		p = p.Add(cur.localPosition())
		cur = owner
	}
	return p, nil
}

// MustPositionIn is like PositionIn but panics if ancestor is not an
// ancestor of n.
func (n *Node) MustPositionIn(ancestor *Node) Point {
	p, err := n.PositionIn(ancestor)
	if err != nil {
		panic(err)
	}
	return p
}

// localPosition is the node's offset within its owner. A nested scope root
// sits inside the host's padding and border.
func (n *Node) localPosition() Point {
	p := n.Layout().Rect.Min()
	if n.flex.Parent == nil && n.scope != nil && n.scope.root == n && n.scope.host != nil {
		p = p.Add(n.scope.host.Layout().ContentOffset())
	}
	return p
}

func (n *Node) describe() string {
	if n == nil {
		return "<nil>"
	}
	if n.key.keyed {
		return fmt.Sprintf("node(key=%v)", n.key.key)
	}
	return fmt.Sprintf("node(index=%d)", n.key.index)
}
