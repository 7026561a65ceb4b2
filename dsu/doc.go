// Package dsu provides a disjoint-set union (union-find) over integer
// elements, with union by rank and path compression.
//
// What & Why
//
//   - What is a DSU?
//     A partition of {0, …, n−1} into disjoint sets supporting two
//     operations: Find (which set does x belong to?) and Union (merge the
//     sets of x and y). With union by rank and path compression, any
//     sequence of m operations on n elements costs O(m·α(n)), where α is
//     the inverse Ackermann function — effectively constant.
//
//   - Why it matters:
//
//   - Offline connectivity: "are u and v connected?" under edge insertions
//     only. (For insertions and deletions, see the linkcut package.)
//
//   - Kruskal-style component merging, cycle detection in edge streams,
//     equivalence-class bookkeeping.
//
// API
//
//   - New(n) — n singleton sets {0}, …, {n−1}.
//   - Grow() — append one more singleton, returning its index.
//   - Find(x) — the set representative of x.
//   - Union(x, y) — merge; reports whether a merge actually happened.
//   - Connected(x, y) — Find(x) == Find(y).
//   - Count() — number of disjoint sets; Len() — number of elements.
//
// Indices outside [0, Len()) panic with the usual slice bounds error, the
// same contract as indexing a slice.
//
// Complexity: O(α(n)) amortized per operation; O(n) memory.
package dsu
