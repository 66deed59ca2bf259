// Package astar implements the A* informed-search engine with pluggable
// heuristics, returning both the optimal route and the ordered trace of
// expanded vertices.
//
// What:
//
//   - Search: the A* main loop over a core.Graph — open-set management,
//     gScore/fScore bookkeeping in dense handle-indexed slices, deterministic
//     expansion order, and path reconstruction on success.
//   - Heuristic: the strategy contract. An estimate is a pure function of
//     (graph, start, goal, vertex, cameFrom snapshot) and nothing else, so
//     the engine may evaluate it at any point of the expansion.
//   - Implementations: MST (spanning-forest lower bound of the edge-pruned
//     graph), ReducedDijkstra (exact remaining cost on the edge-pruned
//     graph), Geodesic (great-circle distance to the goal), and Zero
//     (uniform-cost search).
//   - Reconstruct: predecessor-chain walk producing the start→goal route.
//
// Why:
//
//   - The expansion trace makes searches diagnosable and visualizable:
//     callers see exactly which vertices were expanded, in order.
//   - Heuristics are deliberately interchangeable; swapping MST for
//     ReducedDijkstra changes how much of the graph gets expanded, never
//     whether the returned route is optimal (as long as both are admissible).
//
// Determinism:
//
//   - The open set pops the entry with the lowest fScore, breaking ties by
//     lower gScore and then by lower vertex handle. Identical inputs always
//     produce identical traces and routes.
//
// Complexity:
//
//   - With an O(1) heuristic (Geodesic, Zero): O((V + E) log V).
//   - With MST or ReducedDijkstra the heuristic dominates: every relaxation
//     pays a spanning-forest or shortest-path run on the pruned view, so the
//     total is O(V·E log V) territory. These bounds are the point — they buy
//     tighter estimates, not speed.
//
// Errors:
//
//   - core.ErrVertexNotFound: start or goal ID is not interned (fails fast).
//   - ErrNilGraph / ErrNilHeuristic: missing collaborator.
//   - ErrNoCoordinates: Geodesic was asked to score a vertex without
//     coordinates.
//   - ErrBrokenPredecessorChain: internal bookkeeping fault during
//     reconstruction; never expected in correct operation.
//
// "No path exists" is NOT an error: Search reports it as an empty trace and
// an empty route with an infinite Cost.
//
// Admissibility of a heuristic (never overestimating the true remaining
// cost) is the caller's obligation and is not verified at runtime; an
// inadmissible estimate silently forfeits route optimality.
package astar
