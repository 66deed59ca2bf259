package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// Dijkstra computes shortest distances from Options.Source to the vertices of
// the view v, honoring the view's excluded edges.
//
// Returns:
//
//   - dist: slice indexed by vertex handle; math.Inf(1) where unreachable
//     (or not yet finalized when Target stopped the run early).
//   - prev: predecessor slice if WithReturnPath was given, nil otherwise.
//     prev[x] == core.NoVertex for the source and for unreached vertices.
//   - err:  non-nil on invalid options or a negative arc weight.
//
// Validation order: Source must be set (ErrNoSource), then Source and any
// Target must be in range (ErrVertexRange).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(v core.View, opts ...Option) ([]float64, []int, error) {
	// 1) Build the configuration from defaults plus caller overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate handles against the view's vertex range.
	n := v.VertexCount()
	if cfg.Source == core.NoVertex {
		return nil, nil, ErrNoSource
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, ErrVertexRange
	}
	if cfg.Target != core.NoVertex && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, nil, ErrVertexRange
	}

	// 3) Prepare the per-run state.
	r := &runner{
		view:    v,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 4) Run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	view    core.View
	options Options
	dist    []float64 // handle → best known distance from source
	prev    []int     // handle → predecessor handle; nil unless requested
	visited []bool    // handle → distance finalized
	pq      itemPQ    // lazy-decrease-key min-heap
}

// init seeds distances with +∞, predecessors with core.NoVertex, and pushes
// the source at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	for i := range r.prev {
		r.prev[i] = core.NoVertex
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, item{vertex: r.options.Source, dist: 0})
}

// process repeatedly finalizes the closest unvisited vertex and relaxes its
// arcs. Terminates when the heap drains or when Target is finalized.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		top := heap.Pop(&r.pq).(item)
		u := top.vertex

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// Single-pair mode: the target's distance is now final.
		if u == r.options.Target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every visible neighbor of u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) error {
	for _, arc := range r.view.Neighbors(u) {
		if arc.Weight < 0 {
			return ErrNegativeWeight
		}

		next := r.dist[u] + arc.Weight
		// Strict improvement only, so equal-cost rediscoveries do not pile
		// duplicate entries into the heap.
		if next >= r.dist[arc.To] {
			continue
		}

		r.dist[arc.To] = next
		if r.prev != nil {
			r.prev[arc.To] = u
		}
		heap.Push(&r.pq, item{vertex: arc.To, dist: next})
	}

	return nil
}

// item is one heap entry: a vertex handle with its candidate distance.
type item struct {
	vertex int
	dist   float64
}

// itemPQ is a min-heap of items ordered by dist ascending, with the vertex
// handle as a deterministic tie-break.
type itemPQ []item

// Len returns the number of queued items.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by distance, then by handle for reproducible pops.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].vertex < pq[j].vertex
}

// Swap swaps two heap slots.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(item)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
