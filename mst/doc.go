// Package mst computes minimum spanning trees and spanning forests over a
// core.View (a weighted undirected graph with an optional excluded edge set).
//
// What:
//
//   - Prim: grow an MST outward from a root vertex using a min-heap.
//   - Kruskal: sort all visible edges and join components with union-find.
//   - ForestWeight: total weight of the minimum spanning forest — the
//     per-component MST sum — which never fails on disconnected input.
//
// Why:
//
//   - ForestWeight is the quantity behind the MST A* heuristic: the weight of
//     a minimum spanning structure of the edge-pruned graph is an admissible
//     lower bound on any route that still has to traverse it.
//   - Prim and Kruskal cross-check each other in tests; their MST weights
//     must agree on every connected view.
//
// Complexity:
//
//   - Prim:         O(E log V) time, O(V + E) memory.
//   - Kruskal:      O(E log E + α(V)·E) time, O(V + E) memory.
//   - ForestWeight: same as Kruskal.
//
// Errors:
//
//   - ErrVertexRange: Prim's root handle is outside the view's range.
//   - ErrDisconnected: the view has no spanning tree (|V| == 0, or |V| > 1
//     and some vertex is unreachable). ForestWeight never returns this.
package mst
