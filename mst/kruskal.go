package mst

import (
	"sort"

	"github.com/katalvlaran/lvlpath/core"
)

// Kruskal computes the MST of the view with union-find over weight-sorted
// visible edges.
//
// Steps:
//  1. Empty view → ErrDisconnected; single vertex → trivial empty MST.
//  2. Enumerate visible edges once (each undirected edge is taken at its
//     lower-handle endpoint) and stable-sort by weight.
//  3. Union endpoints; accept edges that join two components.
//  4. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(v core.View) ([]Edge, float64, error) {
	n := v.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	tree, total := forest(v)
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// ForestWeight returns the total weight of the minimum spanning forest of the
// view: the sum of per-component MST weights. Unlike Kruskal it never fails;
// a disconnected or empty view simply yields the sum over its components.
//
// This is the quantity the MST heuristic reports for edge-pruned graphs,
// which routinely fall apart into several components.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func ForestWeight(v core.View) float64 {
	_, total := forest(v)

	return total
}

// forest runs Kruskal's accept loop without any connectivity requirement and
// returns the selected edges with their total weight.
func forest(v core.View) ([]Edge, float64) {
	n := v.VertexCount()
	if n == 0 {
		return nil, 0
	}

	// Enumerate each visible undirected edge exactly once, in deterministic
	// (handle, insertion) order.
	var edges []Edge
	for u := 0; u < n; u++ {
		for _, arc := range v.Neighbors(u) {
			if arc.To > u {
				edges = append(edges, Edge{U: u, V: arc.To, Weight: arc.Weight})
			}
		}
	}

	// Stable sort keeps the enumeration order as the tie-break for equal
	// weights, so results are reproducible across runs.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	dsu := newUnionFind(n)
	tree := make([]Edge, 0, n-1)
	var total float64
	for _, e := range edges {
		if dsu.union(e.U, e.V) {
			tree = append(tree, e)
			total += e.Weight
			if len(tree) == n-1 {
				break
			}
		}
	}

	return tree, total
}

// unionFind is a disjoint-set structure with path compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u
}

// find returns the set representative of x, compressing the path as it walks.
func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges the sets of a and b; it reports false when they were already
// the same set (the edge would close a cycle).
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}

	return true
}
