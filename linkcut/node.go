// Package linkcut: the arena slot layout and the lazy-propagation
// primitives push (reversal flush) and pull (aggregate recompute).
package linkcut

// slot is one arena entry of the auxiliary forest.
//
// left and right are auxiliary-tree children, exclusively owned by this
// slot. parent carries a double meaning: for a non-root auxiliary node it
// is the auxiliary parent; for an auxiliary-tree root it is the path-parent
// (the represented-tree node above this preferred path), and nilNode for a
// represented root. The two roles are told apart by isAuxRoot.
type slot[V any] struct {
	left, right, parent Node

	// value is this node's own contribution; agg folds value with the
	// aggregates of both auxiliary children. agg is recomputed by pull
	// after every structural change, so it is never observed stale.
	value, agg V

	// rev marks a pending reversal of this auxiliary subtree: the subtree's
	// in-order sequence must be read right-to-left until push flushes the
	// flag one level down.
	rev bool
}

// valid reports whether x is a handle issued by this forest.
func (f *Forest[V]) valid(x Node) bool {
	return x > nilNode && int(x) < len(f.arena)
}

// isAuxRoot reports whether x is the root of its auxiliary tree, i.e.
// whether x.parent is a path-parent (or absent) rather than an auxiliary
// parent.
func (f *Forest[V]) isAuxRoot(x Node) bool {
	p := f.arena[x].parent

	return p == nilNode || (f.arena[p].left != x && f.arena[p].right != x)
}

// push flushes x's pending reversal one level down: swap x's children and
// toggle their rev flags. Must run before any inspection of x.left/x.right.
func (f *Forest[V]) push(x Node) {
	n := &f.arena[x]
	if !n.rev {
		return
	}
	n.left, n.right = n.right, n.left
	if n.left != nilNode {
		f.arena[n.left].rev = !f.arena[n.left].rev
	}
	if n.right != nilNode {
		f.arena[n.right].rev = !f.arena[n.right].rev
	}
	n.rev = false
}

// pull recomputes x's aggregate from its own value and its children's
// aggregates. Must run after any change to x's children. The combine
// function is order-insensitive, so a pending reversal below x does not
// affect the result.
func (f *Forest[V]) pull(x Node) {
	n := &f.arena[x]
	agg := n.value
	if n.left != nilNode {
		agg = f.combine(agg, f.arena[n.left].agg)
	}
	if n.right != nilNode {
		agg = f.combine(agg, f.arena[n.right].agg)
	}
	n.agg = agg
}
