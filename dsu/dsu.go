// Package dsu implements disjoint-set union with union by rank and
// iterative path compression.
package dsu

// DSU partitions the elements 0..n−1 into disjoint sets.
// The zero value is not usable; construct with New.
type DSU struct {
	// parent[x] is x's parent in its set tree; parent[x] == x at roots.
	parent []int
	// rank bounds the height of each set tree to keep unions shallow.
	rank []int
	// count tracks the current number of disjoint sets.
	count int
}

// New returns a DSU of n singleton sets {0}, {1}, …, {n−1}.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
	}

	return d
}

// Grow appends one more singleton set and returns its element index.
func (d *DSU) Grow() int {
	i := len(d.parent)
	d.parent = append(d.parent, i)
	d.rank = append(d.rank, 0)
	d.count++

	return i
}

// Find returns the representative of x's set.
// Iterative with path compression: every probed element ends pointing
// at its grandparent, halving the path.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y, attaching the smaller-rank
// root under the larger. Reports whether a merge happened (false when
// x and y were already in the same set).
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Count returns the current number of disjoint sets.
func (d *DSU) Count() int {
	return d.count
}

// Len returns the number of elements.
func (d *DSU) Len() int {
	return len(d.parent)
}
