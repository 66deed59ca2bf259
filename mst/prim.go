package mst

import (
	"container/heap"

	"github.com/katalvlaran/lvlpath/core"
)

// Prim computes the MST of the view by growing outward from root.
//
// Steps:
//  1. Validate root against the view's vertex range; empty view → ErrDisconnected.
//  2. Single-vertex view: trivial empty MST.
//  3. Mark root visited, push its visible arcs, then repeatedly pop the
//     cheapest arc into an unvisited vertex and expand from there.
//  4. Fewer than |V|-1 accepted edges after the heap drains → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(v core.View, root int) ([]Edge, float64, error) {
	n := v.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, ErrVertexRange
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	visited := make([]bool, n)
	tree := make([]Edge, 0, n-1)
	var total float64

	pq := &candidatePQ{}
	heap.Init(pq)

	// Seed the frontier with the root's visible arcs.
	visited[root] = true
	for _, arc := range v.Neighbors(root) {
		heap.Push(pq, candidate{from: root, to: arc.To, weight: arc.Weight})
	}

	for pq.Len() > 0 && len(tree) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			// Both endpoints already in the tree: accepting would close a cycle.
			continue
		}

		visited[c.to] = true
		tree = append(tree, newEdge(c.from, c.to, c.weight))
		total += c.weight

		for _, arc := range v.Neighbors(c.to) {
			if !visited[arc.To] {
				heap.Push(pq, candidate{from: c.to, to: arc.To, weight: arc.Weight})
			}
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// newEdge normalizes endpoint order so that Edge.U < Edge.V.
func newEdge(u, v int, w float64) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v, Weight: w}
}

// candidate is a frontier arc under consideration by Prim.
type candidate struct {
	from, to int
	weight   float64
}

// candidatePQ is a min-heap of candidates ordered by weight, with endpoint
// handles as deterministic tie-breaks.
type candidatePQ []candidate

// Len returns the number of queued candidates.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders by weight, then destination handle, then source handle.
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	if pq[i].to != pq[j].to {
		return pq[i].to < pq[j].to
	}

	return pq[i].from < pq[j].from
}

// Swap swaps two heap slots.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate; called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last candidate; called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
