// The built-in Heuristic implementations: MST, ReducedDijkstra, Geodesic
// and Zero. The two graph-aware bounds share one sub-step: reconstruct the
// path already taken from start to the scored vertex and hide its edges
// behind a core.View, so the remaining-cost estimate never double-counts
// already-traveled edges.

package astar

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/geo"
	"github.com/katalvlaran/lvlpath/mst"
)

// prunedView reconstructs the start→vertex path recorded in cameFrom and
// returns a view of g with that path's edges excluded. Scoring the start
// itself yields the full, unpruned view.
func prunedView(g *core.Graph, start, vertex int, cameFrom []int) (core.View, error) {
	if vertex == start {
		return g.View(nil), nil
	}

	taken, err := Reconstruct(cameFrom, vertex, start)
	if err != nil {
		return core.View{}, err
	}

	excluded := core.NewEdgeSet()
	for i := 1; i < len(taken); i++ {
		excluded.Add(taken[i-1], taken[i])
	}

	return g.View(excluded), nil
}

// MST estimates the remaining cost as the total weight of a minimum
// spanning forest of the edge-pruned graph.
//
// Any walk that still has to traverse the remaining reachable structure
// costs at least a spanning tree of it, so the bound is admissible. It is
// deliberately loose and expensive: a generic fallback that assumes no
// geometric or edge-cost structure. The goal handle is unused: the bound
// covers the whole remaining structure, wherever the goal sits in it.
type MST struct{}

// Estimate implements Heuristic.
// Complexity: one spanning-forest computation, O(E log E).
func (MST) Estimate(g *core.Graph, start, _, vertex int, cameFrom []int) (float64, error) {
	view, err := prunedView(g, start, vertex, cameFrom)
	if err != nil {
		return 0, err
	}

	return mst.ForestWeight(view), nil
}

// ReducedDijkstra estimates the remaining cost as the exact shortest-path
// distance from the scored vertex to the goal on the edge-pruned graph.
//
// Tighter than MST and still admissible: it is the true cost under the
// constraint that already-traveled edges are unavailable. When pruning
// disconnects the vertex from the goal the estimate is +Inf. Each call
// pays one single-pair Dijkstra run.
type ReducedDijkstra struct{}

// Estimate implements Heuristic.
// Complexity: one single-pair Dijkstra, O((V + E) log V).
func (ReducedDijkstra) Estimate(g *core.Graph, start, goal, vertex int, cameFrom []int) (float64, error) {
	view, err := prunedView(g, start, vertex, cameFrom)
	if err != nil {
		return 0, err
	}

	dist, _, err := dijkstra.Dijkstra(view, dijkstra.Source(vertex), dijkstra.Target(goal))
	if err != nil {
		return 0, err
	}

	return dist[goal], nil
}

// Geodesic estimates the remaining cost as the great-circle distance from
// the scored vertex to the goal.
//
// Admissible whenever every edge weight is at least the real-world travel
// distance it represents (weights in meters over a geographic network).
// O(1) per call, the cheapest of the built-in bounds. Both the scored
// vertex and the goal must carry coordinates or the estimate fails with
// ErrNoCoordinates.
type Geodesic struct{}

// Estimate implements Heuristic.
// Complexity: O(1).
func (Geodesic) Estimate(g *core.Graph, _, goal, vertex int, _ []int) (float64, error) {
	from, ok := g.Coord(vertex)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoCoordinates, g.IDOf(vertex))
	}
	to, ok := g.Coord(goal)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoCoordinates, g.IDOf(goal))
	}

	return geo.Haversine(from, to), nil
}

// Zero estimates nothing: every vertex scores 0, which is trivially
// admissible and turns Search into uniform-cost (Dijkstra) search. Useful
// as a baseline when comparing expansion traces.
type Zero struct{}

// Estimate implements Heuristic.
// Complexity: O(1).
func (Zero) Estimate(_ *core.Graph, _, _, _ int, _ []int) (float64, error) {
	return 0, nil
}
