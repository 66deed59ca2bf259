// This file declares the fundamental types shared by all lvlpath algorithms:
// Coord, Arc, the vertex handle conventions, sentinel errors, and the
// functional options used at construction time.

package core

import "errors"

// NoVertex is the canonical "unset" vertex handle. Predecessor slices are
// initialized to NoVertex so that an absent entry is distinguishable from
// handle 0.
const NoVertex = -1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates a vertex ID that is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates an AddVertex call with an already-interned ID.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a weight query for a pair with no (visible) edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero. Non-negative
	// weights are required both for termination and for admissibility of the
	// shortest-path-based heuristics.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge for the same unordered pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Coord is a geographic position in decimal degrees. It is optional per
// vertex and consumed only by geometry-aware heuristics.
type Coord struct {
	// Lat is the latitude in decimal degrees, north positive.
	Lat float64

	// Lon is the longitude in decimal degrees, east positive.
	Lon float64
}

// Arc is one directed half of an undirected edge as seen from a particular
// vertex: the opposite endpoint's handle and the edge weight. Every edge
// (u, v) appears as an Arc{To: v} in u's adjacency and an Arc{To: u} in v's.
type Arc struct {
	// To is the dense handle of the opposite endpoint.
	To int

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// VertexOption configures optional vertex attributes at AddVertex time.
type VertexOption func(*vertexConfig)

// vertexConfig accumulates optional attributes before they are committed
// into the graph's dense storage.
type vertexConfig struct {
	coord    Coord
	hasCoord bool
}

// WithCoord attaches geographic coordinates (decimal degrees) to the vertex.
func WithCoord(lat, lon float64) VertexOption {
	return func(c *vertexConfig) {
		c.coord = Coord{Lat: lat, Lon: lon}
		c.hasCoord = true
	}
}

// pairKey identifies an unordered vertex pair; a < b always holds.
type pairKey struct {
	a, b int
}

// orderedPair normalizes (u, v) into a pairKey with the smaller handle first.
func orderedPair(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}
