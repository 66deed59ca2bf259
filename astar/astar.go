package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// Search runs A* from startID to goalID on g using the heuristic h.
//
// Contract:
//
//   - The graph is treated as read-only for the duration of the call; all
//     search state (open set, gScore, fScore, cameFrom) is owned by this
//     invocation and discarded on return.
//   - h is evaluated once for the start vertex before the loop, then once
//     per improved neighbor during expansion, always with the current
//     cameFrom snapshot.
//   - Expansion pops the open-set entry with the lowest fScore; ties break
//     by lower gScore, then by lower vertex handle.
//   - A vertex may re-enter the open set after removal if a cheaper path to
//     it is found later (there is no closed set), which keeps the result
//     optimal for admissible but inconsistent heuristics such as the
//     edge-pruning ones.
//
// Returns the expansion trace and the optimal route. No path is not an
// error: the Result carries empty slices and an infinite Cost. Errors are
// reserved for invalid inputs and heuristic failures.
//
// Complexity: O((V + E)·(log V + H)) where H is the cost of one Estimate.
func Search(g *core.Graph, h Heuristic, startID, goalID string) (*Result, error) {
	// 1) Validate collaborators and resolve endpoint handles; unknown IDs
	//    fail fast before any state is allocated.
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	start, err := g.Index(startID)
	if err != nil {
		return nil, err
	}
	goal, err := g.Index(goalID)
	if err != nil {
		return nil, err
	}

	// 2) Trivial search: the start is the goal.
	if start == goal {
		return &Result{
			Expanded: []string{startID},
			Route:    []string{startID},
			Cost:     0,
		}, nil
	}

	// 3) Per-invocation state, handle-indexed. Scores default to +∞,
	//    predecessors to "unset".
	n := g.VertexCount()
	s := &search{
		graph:     g,
		heuristic: h,
		start:     start,
		goal:      goal,
		gScore:    make([]float64, n),
		fScore:    make([]float64, n),
		cameFrom:  make([]int, n),
		inOpen:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		s.gScore[i] = math.Inf(1)
		s.fScore[i] = math.Inf(1)
		s.cameFrom[i] = core.NoVertex
	}

	// 4) Seed the open set with the start vertex. The start's estimate uses
	//    the same five-argument contract with an empty predecessor snapshot.
	est, err := h.Estimate(g, start, goal, start, s.cameFrom)
	if err != nil {
		return nil, fmt.Errorf("astar: heuristic at %q: %w", startID, err)
	}
	s.gScore[start] = 0
	s.fScore[start] = est
	s.inOpen[start] = true
	heap.Init(&s.open)
	heap.Push(&s.open, entry{vertex: start, f: est, g: 0})

	return s.run()
}

// search holds the mutable state of one Search invocation.
type search struct {
	graph     *core.Graph
	heuristic Heuristic
	start     int
	goal      int

	gScore   []float64 // best known cost from start, handle-indexed
	fScore   []float64 // gScore + heuristic estimate, drives expansion
	cameFrom []int     // predecessor on the best known path, or core.NoVertex
	inOpen   []bool    // open-set membership
	open     entryPQ   // min-heap over (fScore, gScore, handle)
	expanded []int     // expansion trace, in pop order
}

// run is the main loop: pop the best open vertex, trace it, stop at the
// goal, otherwise relax its neighbors.
func (s *search) run() (*Result, error) {
	for s.open.Len() > 0 {
		top := heap.Pop(&s.open).(entry)
		current := top.vertex

		// Lazy decrease-key leaves stale entries behind; an entry is live
		// only while its vertex is still open with the same scores.
		if !s.inOpen[current] || top.f != s.fScore[current] || top.g != s.gScore[current] {
			continue
		}

		s.expanded = append(s.expanded, current)

		if current == s.goal {
			return s.finish(current)
		}

		s.inOpen[current] = false

		if err := s.relax(current); err != nil {
			return nil, err
		}
	}

	// Open set exhausted without reaching the goal: a first-class empty
	// result, not an error.
	return &Result{
		Expanded: []string{},
		Route:    []string{},
		Cost:     math.Inf(1),
	}, nil
}

// relax offers every neighbor of current the path through current and
// re-scores the ones that improve.
func (s *search) relax(current int) error {
	for _, arc := range s.graph.Neighbors(current) {
		tentative := s.gScore[current] + arc.Weight
		if tentative >= s.gScore[arc.To] {
			continue
		}

		// A strictly better path to this neighbor: record it first so the
		// heuristic sees the updated predecessor chain when scoring.
		s.cameFrom[arc.To] = current
		s.gScore[arc.To] = tentative

		est, err := s.heuristic.Estimate(s.graph, s.start, s.goal, arc.To, s.cameFrom)
		if err != nil {
			return fmt.Errorf("astar: heuristic at %q: %w", s.graph.IDOf(arc.To), err)
		}
		s.fScore[arc.To] = tentative + est

		s.inOpen[arc.To] = true
		heap.Push(&s.open, entry{vertex: arc.To, f: s.fScore[arc.To], g: tentative})
	}

	return nil
}

// finish reconstructs the route once the goal has been expanded.
func (s *search) finish(current int) (*Result, error) {
	route, err := Reconstruct(s.cameFrom, current, s.start)
	if err != nil {
		return nil, err
	}

	return &Result{
		Expanded: s.ids(s.expanded),
		Route:    s.ids(route),
		Cost:     s.gScore[current],
	}, nil
}

// ids maps vertex handles back to their interned IDs.
func (s *search) ids(handles []int) []string {
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = s.graph.IDOf(h)
	}

	return out
}

// entry is one open-set heap slot: a vertex handle with the scores it was
// pushed under. Stale entries are recognized by score mismatch at pop time.
type entry struct {
	vertex int
	f, g   float64
}

// entryPQ is a min-heap of entries ordered by (f, g, vertex) ascending —
// the engine's documented deterministic tie-break.
type entryPQ []entry

// Len returns the number of queued entries.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by fScore, then gScore, then vertex handle.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].vertex < pq[j].vertex
}

// Swap swaps two heap slots.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
