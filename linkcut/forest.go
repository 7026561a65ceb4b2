// Package linkcut: the public Forest API — construction, node creation,
// structural edits and path queries over the dynamic forest.
package linkcut

// Forest maintains a dynamic forest of rooted trees over an index arena.
// All operations are amortized O(log n); none are safe for concurrent use.
//
// Arena slot 0 is the nil sentinel; MakeNode hands out slots 1, 2, 3, …
// as Node handles, and handles stay valid for the life of the forest.
type Forest[V any] struct {
	combine CombineFunc[V]
	arena   []slot[V]

	// trail is scratch space reused by splay's top-down flag flush,
	// so steady-state operations allocate nothing.
	trail []Node
}

// New constructs an empty Forest whose path aggregates are folded with
// combine, applying any number of functional Options.
// Returns ErrNilCombine when combine is nil, or ErrOptionViolation when
// an invalid Option was supplied.
func New[V any](combine CombineFunc[V], opts ...Option) (*Forest[V], error) {
	if combine == nil {
		return nil, ErrNilCombine
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f := &Forest[V]{
		combine: combine,
		arena:   make([]slot[V], 1, o.Capacity+1), // slot 0 = nil sentinel
	}

	return f, nil
}

// MakeNode adds an isolated node (its own single-node tree) carrying value,
// and returns its handle. Complexity: amortized O(1).
func (f *Forest[V]) MakeNode(value V) Node {
	f.arena = append(f.arena, slot[V]{value: value, agg: value})

	return Node(len(f.arena) - 1)
}

// Len returns the number of nodes in the forest.
func (f *Forest[V]) Len() int {
	return len(f.arena) - 1
}

// Link adds the represented edge (u, v), making u a child of v after
// rerooting u's tree at u.
// Returns ErrNodeNotFound for invalid handles, or ErrLinkWouldCycle when
// u and v already share a tree (including u == v); a rejected Link leaves
// the edge set unchanged.
func (f *Forest[V]) Link(u, v Node) error {
	if !f.valid(u) || !f.valid(v) {
		return ErrNodeNotFound
	}
	// Probe connectivity before any edge surgery.
	if u == v || f.findRoot(u) == f.findRoot(v) {
		return ErrLinkWouldCycle
	}

	// u is the root of its represented tree and of its auxiliary tree;
	// pointing its parent at v is the whole edge insertion (path-parent).
	f.makeRoot(u)
	f.arena[u].parent = v

	return nil
}

// Cut removes the represented edge (u, v).
// Returns ErrNodeNotFound for invalid handles, or ErrNotAnEdge when u and v
// are not adjacent in the represented forest (different trees included);
// a rejected Cut leaves the edge set unchanged.
func (f *Forest[V]) Cut(u, v Node) error {
	if !f.valid(u) || !f.valid(v) {
		return ErrNodeNotFound
	}
	if u == v {
		return ErrNotAnEdge
	}

	// 1. Expose the u-to-v path with u as represented root.
	f.makeRoot(u)
	f.access(v)

	// 2. Adjacency probe: (u, v) is an edge iff the exposed path is exactly
	//    ⟨u, v⟩ — u is v's in-order predecessor and u has no children.
	//    In different trees u is absent from v's auxiliary tree entirely.
	if f.arena[v].left != u || f.arena[u].left != nilNode || f.arena[u].right != nilNode {
		return ErrNotAnEdge
	}

	// 3. Sever both directions of the auxiliary link and refresh v.
	f.arena[v].left = nilNode
	f.arena[u].parent = nilNode
	f.pull(v)

	return nil
}

// CutParent removes the edge between v and its represented parent under
// the current rooting.
// Returns ErrNodeNotFound for an invalid handle, or ErrNotAnEdge when v is
// already the root of its tree; a rejected call leaves the edge set
// unchanged.
func (f *Forest[V]) CutParent(v Node) error {
	if !f.valid(v) {
		return ErrNodeNotFound
	}

	// After access, v's left auxiliary subtree is the whole root-to-parent
	// prefix of v's preferred path; empty prefix means v is the root.
	f.access(v)
	l := f.arena[v].left
	if l == nilNode {
		return ErrNotAnEdge
	}

	// Detaching the prefix severs exactly the (parent(v), v) edge: the
	// prefix stays internally connected as its own auxiliary tree.
	f.arena[v].left = nilNode
	f.arena[l].parent = nilNode
	f.pull(v)

	return nil
}

// MakeRoot reroots v's represented tree at v without changing the edge set.
// Returns ErrNodeNotFound for an invalid handle.
func (f *Forest[V]) MakeRoot(v Node) error {
	if !f.valid(v) {
		return ErrNodeNotFound
	}
	f.makeRoot(v)

	return nil
}

// FindRoot returns the root of v's represented tree.
// Returns ErrNodeNotFound for an invalid handle.
func (f *Forest[V]) FindRoot(v Node) (Node, error) {
	if !f.valid(v) {
		return nilNode, ErrNodeNotFound
	}

	return f.findRoot(v), nil
}

// Connected reports whether u and v belong to the same represented tree.
// Invalid handles are reported as not connected.
func (f *Forest[V]) Connected(u, v Node) bool {
	if !f.valid(u) || !f.valid(v) {
		return false
	}
	if u == v {
		return true
	}

	return f.findRoot(u) == f.findRoot(v)
}

// PathAggregate folds the combine function over the values of every node
// on the u↔v path, inclusive; PathAggregate(v, v) returns v's own value.
// Returns ErrNodeNotFound for invalid handles, or ErrDisconnected when the
// endpoints lie in different trees.
//
// Side effect: the tree ends rerooted at u (and re-splayed); callers that
// depend on a particular rooting must MakeRoot afterwards.
func (f *Forest[V]) PathAggregate(u, v Node) (V, error) {
	var zero V
	if !f.valid(u) || !f.valid(v) {
		return zero, ErrNodeNotFound
	}
	if u != v && f.findRoot(u) != f.findRoot(v) {
		return zero, ErrDisconnected
	}

	// With u as represented root, v's exposed auxiliary tree is exactly
	// the u↔v path, so its root aggregate is the answer.
	f.makeRoot(u)
	f.access(v)

	return f.arena[v].agg, nil
}

// Path returns the nodes of the u↔v path in order from u to v, inclusive;
// Path(v, v) returns ⟨v⟩.
// Returns ErrNodeNotFound for invalid handles, or ErrDisconnected when the
// endpoints lie in different trees. Same rerooting side effect as
// PathAggregate.
func (f *Forest[V]) Path(u, v Node) ([]Node, error) {
	if !f.valid(u) || !f.valid(v) {
		return nil, ErrNodeNotFound
	}
	if u != v && f.findRoot(u) != f.findRoot(v) {
		return nil, ErrDisconnected
	}

	f.makeRoot(u)
	f.access(v)

	// In-order readout of the exposed path, flushing lazy flags on descent.
	out := make([]Node, 0, 8)
	var walk func(Node)
	walk = func(n Node) {
		if n == nilNode {
			return
		}
		f.push(n)
		walk(f.arena[n].left)
		out = append(out, n)
		walk(f.arena[n].right)
	}
	walk(v)

	return out, nil
}

// Edges returns every represented edge exactly once, each as a
// {closer-to-root, deeper} pair under the current rooting. Ordering between
// pairs is unspecified. Complexity: O(n); intended for inspection and
// verification, not hot paths.
func (f *Forest[V]) Edges() [][2]Node {
	edges := make([][2]Node, 0, f.Len())
	var prev Node
	var walk func(Node)
	walk = func(n Node) {
		if n == nilNode {
			return
		}
		f.push(n)
		walk(f.arena[n].left)
		if prev != nilNode {
			edges = append(edges, [2]Node{prev, n})
		}
		prev = n
		walk(f.arena[n].right)
	}
	// Every node's represented parent is its in-order predecessor within
	// its auxiliary tree, or the tree's path-parent for the in-order first
	// node; walking each auxiliary tree once therefore emits each edge once.
	for x := Node(1); int(x) < len(f.arena); x++ {
		if !f.isAuxRoot(x) {
			continue
		}
		prev = f.arena[x].parent
		walk(x)
	}

	return edges
}

// SetValue replaces v's own value and recomputes aggregates immediately.
// Returns ErrNodeNotFound for an invalid handle.
func (f *Forest[V]) SetValue(v Node, value V) error {
	if !f.valid(v) {
		return ErrNodeNotFound
	}

	// Splaying v to its auxiliary root leaves it with no auxiliary
	// ancestors, so one pull restores every reachable aggregate.
	f.splay(v)
	f.arena[v].value = value
	f.pull(v)

	return nil
}

// Value returns v's own value (not an aggregate).
// Returns ErrNodeNotFound for an invalid handle.
func (f *Forest[V]) Value(v Node) (V, error) {
	var zero V
	if !f.valid(v) {
		return zero, ErrNodeNotFound
	}

	return f.arena[v].value, nil
}
