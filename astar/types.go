// The Heuristic contract, the Result type and sentinel errors of the engine.

package astar

import (
	"errors"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to Search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNoCoordinates indicates the Geodesic heuristic had to score a vertex
	// (or the goal) that carries no geographic coordinates.
	ErrNoCoordinates = errors.New("astar: vertex has no coordinates")

	// ErrBrokenPredecessorChain indicates that walking cameFrom from a vertex
	// failed to reach the start. This is an internal consistency fault in the
	// score/predecessor bookkeeping, not a user-facing condition.
	ErrBrokenPredecessorChain = errors.New("astar: predecessor chain does not reach start")
)

// Heuristic estimates the remaining cost from a vertex to the goal.
//
// Estimate must be a pure function of its five arguments: the graph, the
// search's start and goal handles, the vertex being scored, and a read-only
// snapshot of the engine's current predecessor slice (cameFrom[x] is the
// predecessor handle of x, core.NoVertex where unset). Implementations must
// not retain or mutate cameFrom and must return a non-negative value.
//
// For the returned route to be optimal the estimate must be admissible:
// a lower bound on the true remaining cost. The engine does not verify this.
type Heuristic interface {
	Estimate(g *core.Graph, start, goal, vertex int, cameFrom []int) (float64, error)
}

// Result is the outcome of one Search invocation.
//
// Expanded and Route are both empty exactly when no path exists; in that
// case Cost is +Inf. On success the goal ID is the last element of both.
type Result struct {
	// Expanded lists vertex IDs in the order the engine expanded them.
	// Diagnostic: it is a trace of the search, not part of the route.
	Expanded []string

	// Route is the optimal start→goal vertex ID sequence.
	Route []string

	// Cost is the total weight of Route (the goal's final gScore);
	// +Inf when no path exists, 0 when start equals goal.
	Cost float64
}

// Found reports whether the search reached the goal.
func (r *Result) Found() bool {
	return len(r.Route) > 0
}
