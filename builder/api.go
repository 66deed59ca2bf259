// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// api.go — the in-memory graph construction boundary.
//
// Design contract (strict):
//   - Build(vertices, edges) is the single entry point that external loaders
//     (CSV, GTFS, whatever) target: they produce VertexSpec/EdgeSpec slices,
//     this package turns them into a validated core.Graph.
//   - No file format is parsed here; parsing belongs to the caller.
//   - Determinism: vertex handles follow the order of the vertices slice;
//     adjacency follows the order of the edges slice.
//   - Safety: never panic; fail fast with the underlying core sentinel error
//     wrapped with positional context.

// Package builder constructs core graphs from in-memory specifications and
// provides deterministic synthetic generators for tests and benchmarks.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// VertexSpec describes one vertex to intern: its unique ID and optional
// geographic coordinates.
type VertexSpec struct {
	// ID is the unique vertex identifier.
	ID string

	// Coord optionally carries geographic coordinates; nil means none.
	Coord *core.Coord
}

// EdgeSpec describes one undirected edge between two vertex IDs.
type EdgeSpec struct {
	// A and B name the endpoints; both must appear in the vertex list.
	A, B string

	// Weight is the non-negative edge weight.
	Weight float64
}

// Build assembles a core.Graph from the given vertex and edge specifications.
// Vertices are interned in slice order (so handle i belongs to vertices[i]);
// edges are added in slice order. The first invalid entry aborts the build
// with the core sentinel error wrapped with its position.
//
// Complexity: O(V + E) time and space.
func Build(vertices []VertexSpec, edges []EdgeSpec) (*core.Graph, error) {
	g := core.NewGraph()

	for i, vs := range vertices {
		opts := make([]core.VertexOption, 0, 1)
		if vs.Coord != nil {
			opts = append(opts, core.WithCoord(vs.Coord.Lat, vs.Coord.Lon))
		}
		if _, err := g.AddVertex(vs.ID, opts...); err != nil {
			return nil, fmt.Errorf("builder: vertex %d (%q): %w", i, vs.ID, err)
		}
	}

	for i, es := range edges {
		if err := g.AddEdge(es.A, es.B, es.Weight); err != nil {
			return nil, fmt.Errorf("builder: edge %d (%s—%s): %w", i, es.A, es.B, err)
		}
	}

	return g, nil
}
