// Package core defines the Graph, Coord, Arc and View types that every
// lvlpath algorithm operates on.
//
// What:
//
//   - Graph interns string vertex IDs into dense integer handles (stable for
//     the lifetime of the graph) and stores adjacency in per-vertex Arc slices.
//   - Vertices may carry optional geographic coordinates (Coord), consumed
//     only by geometry-aware heuristics.
//   - Edges are unordered pairs with a non-negative float64 weight; at most
//     one edge per pair, no self-loops.
//   - View is a read-only window onto a Graph that hides an excluded set of
//     edges, so algorithms can reason about "the graph minus these edges"
//     without cloning any structure.
//
// Why:
//
//   - Dense handles make per-vertex search state (gScore, fScore, cameFrom)
//     plain slices with deterministic iteration, instead of identity-keyed maps.
//   - Views let heuristics prune already-traveled edges in O(path) extra
//     memory while preserving clone-and-delete semantics exactly.
//
// Concurrency:
//
//   - Build the graph fully, then treat it as read-only. A frozen Graph (and
//     any number of Views over it) may be shared across concurrent searches;
//     mutation during a search is not supported and not synchronized.
//
// Errors:
//
//   - ErrEmptyVertexID: vertex ID is the empty string.
//   - ErrDuplicateVertex: vertex ID already interned.
//   - ErrVertexNotFound: lookup by name or handle failed.
//   - ErrNegativeWeight: edge weight < 0.
//   - ErrSelfLoop: edge endpoints are equal.
//   - ErrDuplicateEdge: unordered pair already has an edge.
//   - ErrEdgeNotFound: no edge between the queried pair (or it is excluded
//     by the View).
package core
