// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.View, i.e. a weighted undirected graph with an optional excluded
// edge set.
//
// What:
//
//   - Single-source distances to every reachable vertex, and optionally the
//     predecessor chain for path reconstruction.
//   - Single-pair mode via Target: the run stops as soon as the target's
//     distance is finalized, which is what the reduced-graph A* heuristic
//     needs (one estimate = one single-pair run on a pruned view).
//
// Why:
//
//   - Serves astar.ReducedDijkstra, whose estimate is the exact remaining
//     cost on the pruned graph.
//   - Serves the test suite as the independent shortest-path oracle that
//     A* results are verified against.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the lazy-decrease-key min-heap:
//     each vertex is finalized once, each relaxation may push one entry.
//   - Space: O(V + E) for the distance/predecessor slices and the heap.
//
// Options:
//
//   - Source(v):       dense handle of the start vertex (required).
//   - Target(v):       stop once v is finalized (optional).
//   - WithReturnPath(): allocate and return the predecessor slice.
//
// Errors:
//
//   - ErrNoSource:       Source was never set.
//   - ErrVertexRange:    Source or Target is outside [0, VertexCount).
//   - ErrNegativeWeight: a negative arc weight was encountered. core rejects
//     these at construction, so hitting this means a foreign View source.
package dijkstra
