// Package linkcut: the splay substrate — rotate and splay over the arena,
// aware of auxiliary-tree boundaries (path-parent pointers never rotate).
package linkcut

// rotate promotes x one level toward its auxiliary-tree root, preserving
// the in-order sequence and the aggregates of both touched nodes.
// Precondition: the lazy flags of x's parent and of x are already pushed.
func (f *Forest[V]) rotate(x Node) {
	y := f.arena[x].parent
	z := f.arena[y].parent
	yWasRoot := f.isAuxRoot(y)

	if f.arena[y].left == x {
		// right rotation: x's right subtree becomes y's left
		t := f.arena[x].right
		f.arena[y].left = t
		if t != nilNode {
			f.arena[t].parent = y
		}
		f.arena[x].right = y
	} else {
		// left rotation: x's left subtree becomes y's right
		t := f.arena[x].left
		f.arena[y].right = t
		if t != nilNode {
			f.arena[t].parent = y
		}
		f.arena[x].left = y
	}
	f.arena[y].parent = x
	f.arena[x].parent = z

	// Re-point z's child link only when y was a real auxiliary child;
	// when y was an auxiliary root, z is a path-parent and x inherits it
	// untouched.
	if !yWasRoot {
		if f.arena[z].left == y {
			f.arena[z].left = x
		} else {
			f.arena[z].right = x
		}
	}

	// bottom-up: y first, then x, since y is now below x
	f.pull(y)
	f.pull(x)
}

// splay rotates x to the root of its auxiliary tree using the zig,
// zig-zig and zig-zag cases. Lazy flags on the auxiliary path from the
// root down to x are flushed first, so every rotation inspects true child
// identities. After splay(x), x has no auxiliary parent and every visited
// node carries a fresh aggregate.
func (f *Forest[V]) splay(x Node) {
	// 1. Collect the auxiliary ancestors of x, root last.
	f.trail = f.trail[:0]
	for n := x; ; n = f.arena[n].parent {
		f.trail = append(f.trail, n)
		if f.isAuxRoot(n) {
			break
		}
	}
	// 2. Flush pending reversals top-down.
	for i := len(f.trail) - 1; i >= 0; i-- {
		f.push(f.trail[i])
	}
	// 3. Rotate x upward until it is the auxiliary root.
	for !f.isAuxRoot(x) {
		y := f.arena[x].parent
		if !f.isAuxRoot(y) {
			z := f.arena[y].parent
			if (f.arena[z].left == y) == (f.arena[y].left == x) {
				f.rotate(y) // zig-zig: rotate parent first
			} else {
				f.rotate(x) // zig-zag: rotate x twice
			}
		}
		f.rotate(x) // zig (and second half of zig-zig / zig-zag)
	}
}
