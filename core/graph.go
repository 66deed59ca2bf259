package core

import "fmt"

// Graph is an undirected, weighted graph with interned vertex IDs.
//
// Each string ID is mapped to a dense integer handle in [0, VertexCount());
// handles are assigned in insertion order and remain stable for the lifetime
// of the graph, so algorithms can keep per-vertex state in plain slices.
//
// Lifecycle: populate with AddVertex/AddEdge, then treat as read-only for the
// duration of any search. The zero value is not usable; call NewGraph.
type Graph struct {
	// ids maps handle → interned vertex ID.
	ids []string

	// index maps vertex ID → handle.
	index map[string]int

	// coords and hasCoord hold optional per-vertex geography, handle-indexed.
	coords   []Coord
	hasCoord []bool

	// adj holds per-vertex arcs in edge-insertion order, handle-indexed.
	adj [][]Arc

	// weights indexes every edge by its normalized unordered pair.
	weights map[pairKey]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:   make(map[string]int),
		weights: make(map[pairKey]float64),
	}
}

// AddVertex interns id and returns its dense handle.
//
// Errors: ErrEmptyVertexID if id == ""; ErrDuplicateVertex if id is already
// interned (handles are never reassigned).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) (int, error) {
	if id == "" {
		return NoVertex, ErrEmptyVertexID
	}
	if _, ok := g.index[id]; ok {
		return NoVertex, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}

	var cfg vertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Commit the vertex into every dense slice in lockstep.
	h := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = h
	g.coords = append(g.coords, cfg.coord)
	g.hasCoord = append(g.hasCoord, cfg.hasCoord)
	g.adj = append(g.adj, nil)

	return h, nil
}

// AddEdge connects the vertices named a and b with an undirected edge of the
// given non-negative weight. Both endpoints must already be interned.
//
// Errors: ErrVertexNotFound for an unknown endpoint, ErrSelfLoop when a == b,
// ErrNegativeWeight when weight < 0, ErrDuplicateEdge when the unordered pair
// already has an edge (parallel edges are not modeled).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	u, err := g.Index(a)
	if err != nil {
		return err
	}
	v, err := g.Index(b)
	if err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s—%s weight=%v", ErrNegativeWeight, a, b, weight)
	}

	key := orderedPair(u, v)
	if _, ok := g.weights[key]; ok {
		return fmt.Errorf("%w: %s—%s", ErrDuplicateEdge, a, b)
	}

	g.weights[key] = weight
	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Arc{To: u, Weight: weight})

	return nil
}

// Index resolves a vertex ID to its dense handle (the findByName operation).
//
// Errors: ErrVertexNotFound if the ID was never interned.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, error) {
	h, ok := g.index[id]
	if !ok {
		return NoVertex, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return h, nil
}

// HasVertex reports whether id is interned in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// IDOf returns the interned ID for a handle. It panics on an out-of-range
// handle: handles originate from this graph, so a bad one is a caller bug,
// not an input error.
// Complexity: O(1).
func (g *Graph) IDOf(v int) string {
	return g.ids[v]
}

// Coord returns the vertex's geographic coordinates and whether any were set.
// Complexity: O(1).
func (g *Graph) Coord(v int) (Coord, bool) {
	return g.coords[v], g.hasCoord[v]
}

// Neighbors returns the arcs incident to v in edge-insertion order. The
// returned slice is the graph's own storage: callers must not mutate it.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []Arc {
	return g.adj[v]
}

// Weight returns the weight of the edge between u and v.
//
// Errors: ErrEdgeNotFound if no edge connects the pair.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, error) {
	w, ok := g.weights[orderedPair(u, v)]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, g.ids[u], g.ids[v])
	}

	return w, nil
}

// HasEdge reports whether an edge connects u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.weights[orderedPair(u, v)]

	return ok
}

// Vertices returns a fresh copy of all interned IDs in handle order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// VertexCount returns the number of interned vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.weights)
}
