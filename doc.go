// Package lvlpath is an informed-search pathfinding toolkit: build a weighted
// undirected graph, pick a heuristic, and get back both the optimal route and
// the ordered trace of every vertex the search expanded.
//
// 🚀 What is lvlpath?
//
//	A small, composable A* library built around interchangeable heuristics:
//		• core    — interned-vertex Graph with dense integer handles, plus
//		            zero-copy Views that hide an excluded set of edges
//		• builder — in-memory graph construction and synthetic generators
//		• dijkstra — single-source / single-pair shortest paths over a View
//		• mst     — Prim & Kruskal spanning trees and spanning-forest weight
//		• geo     — great-circle (haversine) distances for geographic vertices
//		• astar   — the A* engine, path reconstruction, and the Heuristic
//		            strategy family (MST bound, reduced-graph Dijkstra,
//		            geodesic, zero)
//
// ✨ Why choose lvlpath?
//
//   - Deterministic – expansion order is fully specified, including ties
//   - Diagnosable – every search returns its expansion trace alongside the route
//   - Pluggable – heuristics are a one-method interface; bring your own bound
//   - Pure Go – no cgo, a single test-only dependency
//
// The engine treats graphs as read-only for the duration of a search, owns all
// of its per-call state, and reports "no path" as a first-class empty result
// rather than an error. Admissibility of a heuristic is the caller's
// obligation; an inadmissible estimate silently costs you optimality, never
// correctness of termination.
//
// Start with astar.Search, or see the package docs of astar and core.
package lvlpath
