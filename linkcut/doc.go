// Package linkcut provides a link–cut tree: a dynamic forest of rooted trees
// supporting edge insertion (Link), edge deletion (Cut), rerooting (MakeRoot)
// and aggregate queries over arbitrary node-to-node paths (PathAggregate),
// each in amortized O(log n) time.
//
// What & Why
//
//   - What is a link–cut tree?
//     A forest of "represented" trees is encoded as a collection of splay
//     trees ("auxiliary" trees), one per preferred path. The in-order
//     traversal of an auxiliary tree equals one root-to-descendant path of a
//     represented tree. The Access operation re-partitions the forest so
//     that any chosen root-to-node path becomes a single auxiliary tree,
//     after which structural edits and path queries are O(1) pointer surgery
//     on that tree's root.
//
//   - Why it matters:
//
//   - Dynamic connectivity: maintain "are u and v connected?" under an
//     online stream of edge insertions and deletions on a forest — the
//     problem union-find cannot solve once deletions appear.
//
//   - Path aggregation: sum, min or max over the unique u↔v path, while the
//     tree keeps changing shape underneath.
//
//   - Subroutines: link–cut trees power dynamic MST maintenance, network
//     flow (blocking-flow speedups), and online LCA.
//
// Operations Provided
//
//   - New[V](combine, opts...) — construct a Forest whose per-path aggregate
//     folds node values with combine (any associative, order-insensitive
//     function; Sum, Min, Max are provided).
//
//   - MakeNode(value) — add an isolated node; returns a stable Node handle.
//
//   - Link(u, v) — attach u's tree under v, after rerooting at u.
//     Fails with ErrLinkWouldCycle when u and v are already connected.
//
//   - Cut(u, v) — remove the represented edge (u, v).
//     Fails with ErrNotAnEdge when the pair is not an existing edge.
//
//   - CutParent(v) — remove the edge between v and its represented parent
//     under the current rooting. Fails with ErrNotAnEdge at a root.
//
//   - MakeRoot(v) — reroot v's tree at v by lazily reversing the exposed path.
//
//   - FindRoot(v) — the root of v's represented tree.
//
//   - Connected(u, v) — whether u and v share a represented tree.
//
//   - PathAggregate(u, v) — combine-fold of values over the u↔v path,
//     inclusive. Fails with ErrDisconnected across trees.
//
//   - Path(u, v) — the u↔v path itself, as an ordered slice of handles.
//
//   - SetValue(v, x) / Value(v) — write and read a node's own value;
//     aggregates are recomputed immediately and are never observed stale.
//
// Complexity
//
//   - Every operation above: amortized O(log n) splay work; a single call
//     may touch O(n) nodes before amortization evens out. The total number
//     of preferred-child switches over m operations on n nodes is
//     O((n + m) log n).
//   - Memory: O(n) — one arena slot per node, three indices plus value,
//     aggregate and a reversal bit.
//
// Error Conditions
//
//	All mutating operations validate preconditions with read probes before
//	touching any represented edge, so a failed call leaves the edge set
//	exactly as it was:
//
//	- ErrNilCombine      : New called with a nil combine function.
//	- ErrOptionViolation : an invalid Option (e.g. negative capacity).
//	- ErrNodeNotFound    : a handle is zero, negative, or was never issued.
//	- ErrLinkWouldCycle  : Link endpoints already share a tree (u == v included).
//	- ErrNotAnEdge       : Cut pair is not an adjacent represented edge.
//	- ErrDisconnected    : PathAggregate / Path endpoints in different trees.
//
// Caveats
//
//   - Not safe for concurrent use: every operation — queries included —
//     restructures shared splay state. Callers requiring concurrency must
//     serialize whole-forest access with a single mutex.
//   - Queries reroot: PathAggregate(u, v) and Path(u, v) leave u as the
//     represented root. Re-root explicitly afterwards if you depend on a
//     particular rooting.
//   - The combine function must be associative and order-insensitive;
//     non-commutative folds (e.g. concatenation) are not supported.
//
// For usage, see example_test.go in this package.
package linkcut
