// View and EdgeSet: read-only graph windows that hide an excluded set of
// edges. Algorithms that must reason about "the graph with these edges
// removed" take a View instead of a structural clone; semantics are
// identical, cost is O(excluded) memory.

package core

import "fmt"

// EdgeSet is a set of unordered vertex pairs, used to mark edges as excluded
// from a View. The zero value is not usable; call NewEdgeSet.
type EdgeSet struct {
	m map[pairKey]struct{}
}

// NewEdgeSet returns an empty EdgeSet.
// Complexity: O(1).
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{m: make(map[pairKey]struct{})}
}

// Add inserts the unordered pair (u, v). Adding a pair twice is a no-op.
// Complexity: O(1).
func (s *EdgeSet) Add(u, v int) {
	s.m[orderedPair(u, v)] = struct{}{}
}

// Has reports whether the unordered pair (u, v) is in the set.
// Complexity: O(1).
func (s *EdgeSet) Has(u, v int) bool {
	_, ok := s.m[orderedPair(u, v)]

	return ok
}

// Len returns the number of pairs in the set.
// Complexity: O(1).
func (s *EdgeSet) Len() int {
	return len(s.m)
}

// View is a read-only window onto a Graph with an optional excluded edge set.
// It exposes the same neighbor/weight query surface as Graph, filtered so
// that excluded edges are invisible. A View never mutates the underlying
// graph and is cheap to construct per heuristic evaluation.
type View struct {
	g        *Graph
	excluded *EdgeSet // nil means nothing is excluded
}

// View returns a window onto g that hides every edge in excluded.
// Pass nil to view the full graph.
// Complexity: O(1).
func (g *Graph) View(excluded *EdgeSet) View {
	return View{g: g, excluded: excluded}
}

// Graph returns the underlying graph.
func (v View) Graph() *Graph {
	return v.g
}

// VertexCount returns the number of vertices in the underlying graph.
// Exclusion removes edges only; the vertex set is untouched.
// Complexity: O(1).
func (v View) VertexCount() int {
	return v.g.VertexCount()
}

// Excluded reports whether the edge between u and w is hidden by this view.
// Complexity: O(1).
func (v View) Excluded(u, w int) bool {
	return v.excluded != nil && v.excluded.Has(u, w)
}

// Neighbors returns the visible arcs incident to u. When nothing incident to
// u is excluded, the graph's own slice is returned without copying.
// Complexity: O(deg(u)).
func (v View) Neighbors(u int) []Arc {
	arcs := v.g.Neighbors(u)
	if v.excluded == nil || v.excluded.Len() == 0 {
		return arcs
	}

	// Copy lazily: allocate only once the first hidden arc is found.
	var out []Arc
	for i, a := range arcs {
		if v.excluded.Has(u, a.To) {
			if out == nil {
				out = append(out, arcs[:i]...)
			}
			continue
		}
		if out != nil {
			out = append(out, a)
		}
	}
	if out == nil {
		return arcs
	}

	return out
}

// Weight returns the weight of the visible edge between u and w.
//
// Errors: ErrEdgeNotFound if the pair has no edge or the edge is excluded.
// Complexity: O(1).
func (v View) Weight(u, w int) (float64, error) {
	if v.Excluded(u, w) {
		return 0, fmt.Errorf("%w: %s—%s (excluded)", ErrEdgeNotFound, v.g.IDOf(u), v.g.IDOf(w))
	}

	return v.g.Weight(u, w)
}
