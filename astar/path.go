package astar

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Reconstruct walks the predecessor slice backward from current until it
// reaches start, returning the route in start→current order.
//
// cameFrom[x] is the predecessor handle of x, core.NoVertex where unset.
// An unset link before reaching start — or a walk longer than the vertex
// count, which can only mean a predecessor cycle — yields
// ErrBrokenPredecessorChain. For a vertex reached during a successful
// search this never happens; it indicates a bookkeeping bug.
//
// Complexity: O(len(route)) time and space.
func Reconstruct(cameFrom []int, current, start int) ([]int, error) {
	route := []int{current}
	for current != start {
		prev := cameFrom[current]
		if prev == core.NoVertex {
			return nil, fmt.Errorf("%w: no predecessor for handle %d", ErrBrokenPredecessorChain, current)
		}
		if len(route) > len(cameFrom) {
			return nil, fmt.Errorf("%w: predecessor cycle involving handle %d", ErrBrokenPredecessorChain, current)
		}
		route = append(route, prev)
		current = prev
	}

	// The walk collected goal→start; flip it into route order.
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, nil
}
