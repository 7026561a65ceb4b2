// Package linkcut: Access — the expose operation every forest operation
// is built on — plus the internal reroot and root-descent helpers.
package linkcut

// access restructures the forest so that the represented root-to-x path
// becomes a single auxiliary tree with x at its root. After access(x),
// x has no auxiliary parent, no right child (nothing on the preferred
// path is deeper than x), and x's aggregate covers exactly the
// root-to-x path.
//
// The loop walks x's chain of auxiliary trees toward the represented
// root: each path-parent is splayed within its own auxiliary tree, its
// old preferred child is abandoned (the detached subtree keeps its
// parent pointer, which thereby becomes a path-parent), and the
// previously assembled tree is attached in its place. Amortized
// O(log n) by the preferred-child switching argument.
func (f *Forest[V]) access(x Node) {
	last := nilNode
	for cur := x; cur != nilNode; cur = f.arena[cur].parent {
		f.splay(cur)
		// Switch cur's preferred child to the subtree assembled so far.
		// The abandoned right child keeps parent == cur as its path-parent.
		f.arena[cur].right = last
		f.pull(cur)
		last = cur
	}
	// Bring x to the root of the now-contiguous auxiliary tree.
	f.splay(x)
}

// makeRoot reroots x's represented tree at x: expose the root-to-x path,
// then lazily reverse it. The reversal stays a pending flag until push
// reaches each node; it is never eagerly flattened.
func (f *Forest[V]) makeRoot(x Node) {
	f.access(x)
	f.arena[x].rev = !f.arena[x].rev
}

// findRoot returns the represented root of x's tree: expose the
// root-to-x path, then descend to its in-order minimum, flushing lazy
// flags on the way. The root is splayed before returning so repeated
// root probes stay amortized cheap.
func (f *Forest[V]) findRoot(x Node) Node {
	f.access(x)
	r := x
	for {
		f.push(r)
		if f.arena[r].left == nilNode {
			break
		}
		r = f.arena[r].left
	}
	f.splay(r)

	return r
}
