package linkcut_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynforest/dsu"
	"github.com/katalvlaran/dynforest/linkcut"
	"github.com/stretchr/testify/require"
)

// forestModel mirrors a Forest with a plain adjacency map plus per-node
// values, so every answer the forest gives can be recomputed naively.
type forestModel struct {
	n      int
	adj    []map[int]bool
	values []int64
}

func newForestModel(n int) *forestModel {
	m := &forestModel{
		n:      n,
		adj:    make([]map[int]bool, n),
		values: make([]int64, n),
	}
	for i := range m.adj {
		m.adj[i] = make(map[int]bool)
	}

	return m
}

func (m *forestModel) addEdge(u, v int)    { m.adj[u][v] = true; m.adj[v][u] = true }
func (m *forestModel) removeEdge(u, v int) { delete(m.adj[u], v); delete(m.adj[v], u) }
func (m *forestModel) hasEdge(u, v int) bool {
	return m.adj[u][v]
}

// edges returns the model's edge set with low endpoint first.
func (m *forestModel) edges() [][2]int {
	var out [][2]int
	for u := 0; u < m.n; u++ {
		for v := range m.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// path returns the unique u-to-v path via BFS, or nil when disconnected.
func (m *forestModel) path(u, v int) []int {
	if u == v {
		return []int{u}
	}
	parent := make(map[int]int, m.n)
	parent[u] = u
	queue := []int{u}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == v {
			break
		}
		for nb := range m.adj[cur] {
			if _, seen := parent[nb]; !seen {
				parent[nb] = cur
				queue = append(queue, nb)
			}
		}
	}
	if _, found := parent[v]; !found {
		return nil
	}
	// reconstruct v back to u, then reverse
	var rev []int
	for cur := v; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == u {
			break
		}
	}
	out := make([]int, len(rev))
	for i, x := range rev {
		out[len(rev)-1-i] = x
	}

	return out
}

func (m *forestModel) connected(u, v int) bool {
	return m.path(u, v) != nil
}

// pathSum folds the values along the u-to-v path; ok is false when the
// endpoints are disconnected.
func (m *forestModel) pathSum(u, v int) (int64, bool) {
	p := m.path(u, v)
	if p == nil {
		return 0, false
	}
	var sum int64
	for _, x := range p {
		sum += m.values[x]
	}

	return sum, true
}

// replayDSU rebuilds a union-find from the model's current edge set.
func (m *forestModel) replayDSU() *dsu.DSU {
	d := dsu.New(m.n)
	for _, e := range m.edges() {
		d.Union(e[0], e[1])
	}

	return d
}

// TestRandomizedAgainstModel drives a forest of ~200 nodes through a long
// random mix of links, cuts, rerootings, value updates and queries,
// cross-checking every answer against the naive model and a replayed
// union-find.
func TestRandomizedAgainstModel(t *testing.T) {
	const (
		n     = 200
		steps = 4000
	)
	r := rand.New(rand.NewSource(1257894000))

	f, err := linkcut.New(linkcut.Sum[int64]())
	require.NoError(t, err)

	model := newForestModel(n)
	nodes := make([]linkcut.Node, n)
	index := make(map[linkcut.Node]int, n)
	for i := 0; i < n; i++ {
		v := int64(r.Intn(100))
		model.values[i] = v
		nodes[i] = f.MakeNode(v)
		index[nodes[i]] = i
	}
	require.Equal(t, n, f.Len())

	for step := 0; step < steps; step++ {
		u, v := r.Intn(n), r.Intn(n)
		switch r.Intn(7) {
		case 0: // link
			errLink := f.Link(nodes[u], nodes[v])
			if u == v || model.connected(u, v) {
				require.ErrorIs(t, errLink, linkcut.ErrLinkWouldCycle, "step %d: Link(%d,%d)", step, u, v)
			} else {
				require.NoError(t, errLink, "step %d: Link(%d,%d)", step, u, v)
				model.addEdge(u, v)
			}
		case 1: // cut an existing edge
			es := model.edges()
			if len(es) == 0 {
				continue
			}
			e := es[r.Intn(len(es))]
			require.NoError(t, f.Cut(nodes[e[0]], nodes[e[1]]), "step %d: Cut(%d,%d)", step, e[0], e[1])
			model.removeEdge(e[0], e[1])
		case 2: // cut a non-edge
			if u == v || model.hasEdge(u, v) {
				continue
			}
			require.ErrorIs(t, f.Cut(nodes[u], nodes[v]), linkcut.ErrNotAnEdge, "step %d: Cut(%d,%d)", step, u, v)
		case 3: // path aggregate vs brute-force walk
			want, ok := model.pathSum(u, v)
			got, errAgg := f.PathAggregate(nodes[u], nodes[v])
			if !ok {
				require.ErrorIs(t, errAgg, linkcut.ErrDisconnected, "step %d: PathAggregate(%d,%d)", step, u, v)
				break
			}
			require.NoError(t, errAgg, "step %d: PathAggregate(%d,%d)", step, u, v)
			require.Equal(t, want, got, "step %d: PathAggregate(%d,%d)", step, u, v)
		case 4: // set value, then reroot somewhere
			nv := int64(r.Intn(100))
			require.NoError(t, f.SetValue(nodes[u], nv))
			model.values[u] = nv
			require.NoError(t, f.MakeRoot(nodes[v]))
		case 5: // connectivity vs replayed union-find
			d := model.replayDSU()
			require.Equal(t, d.Connected(u, v), f.Connected(nodes[u], nodes[v]),
				"step %d: Connected(%d,%d)", step, u, v)
		case 6: // single-argument cut under the current rooting
			root, errRoot := f.FindRoot(nodes[u])
			require.NoError(t, errRoot)
			p := model.path(index[root], u)
			require.NotNil(t, p, "step %d: model disagrees on root of %d", step, u)
			errCut := f.CutParent(nodes[u])
			if len(p) < 2 {
				require.ErrorIs(t, errCut, linkcut.ErrNotAnEdge, "step %d: CutParent(root %d)", step, u)
			} else {
				require.NoError(t, errCut, "step %d: CutParent(%d)", step, u)
				model.removeEdge(p[len(p)-2], u)
			}
		}

		// Periodic deep checks: full edge-set agreement and one path readout.
		if step%250 == 0 {
			requireSameEdges(t, f, nodes, model, step)
			a, b := r.Intn(n), r.Intn(n)
			wantPath := model.path(a, b)
			gotPath, errPath := f.Path(nodes[a], nodes[b])
			if wantPath == nil {
				require.ErrorIs(t, errPath, linkcut.ErrDisconnected, "step %d: Path(%d,%d)", step, a, b)
			} else {
				require.NoError(t, errPath, "step %d: Path(%d,%d)", step, a, b)
				require.Len(t, gotPath, len(wantPath), "step %d: Path(%d,%d)", step, a, b)
				for i, idx := range wantPath {
					require.Equal(t, nodes[idx], gotPath[i], "step %d: Path(%d,%d)[%d]", step, a, b, i)
				}
			}
		}
	}

	requireSameEdges(t, f, nodes, model, steps)
}

// requireSameEdges asserts that the forest's edge set equals the model's.
func requireSameEdges(t *testing.T, f *linkcut.Forest[int64], nodes []linkcut.Node, model *forestModel, step int) {
	t.Helper()
	got := make(map[[2]linkcut.Node]bool)
	for _, e := range f.Edges() {
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		got[e] = true
	}
	want := make(map[[2]linkcut.Node]bool)
	for _, e := range model.edges() {
		a, b := nodes[e[0]], nodes[e[1]]
		if a > b {
			a, b = b, a
		}
		want[[2]linkcut.Node{a, b}] = true
	}
	require.Equal(t, want, got, "step %d: edge sets diverged", step)
}
