// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// generators.go — deterministic synthetic topologies.
//
// Contract:
//   - Vertex IDs are "V0".."V(n-1)", interned in ascending index order.
//   - Edges are emitted in a stable order for each shape, so two calls with
//     the same parameters produce identical graphs (handles included).
//   - All edges carry the single weight w; callers wanting varied weights
//     should go through Build with explicit EdgeSpecs.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// ErrTooFewVertices indicates a generator was asked for a shape below its
// minimum size (3 for Cycle, 1 for Path, Complete and each Grid dimension).
var ErrTooFewVertices = errors.New("builder: too few vertices for shape")

// vertexID is the canonical synthetic vertex name for index i.
func vertexID(i int) string {
	return fmt.Sprintf("V%d", i)
}

// syntheticVertices interns V0..V(n-1) into a fresh graph.
func syntheticVertices(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddVertex(vertexID(i))
	}

	return g
}

// Cycle builds the simple cycle C_n with uniform edge weight w:
// V0—V1—…—V(n-1)—V0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int, w float64) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Cycle needs n ≥ 3, got %d", ErrTooFewVertices, n)
	}

	g := syntheticVertices(n)
	for i := 0; i < n; i++ {
		if err := g.AddEdge(vertexID(i), vertexID((i+1)%n), w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Path builds the simple path P_n with uniform edge weight w:
// V0—V1—…—V(n-1). Requires n ≥ 1.
// Complexity: O(n).
func Path(n int, w float64) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Path needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}

	g := syntheticVertices(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(vertexID(i-1), vertexID(i), w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid builds the rows×cols 4-connected lattice with uniform edge weight w.
// Vertices are interned row-major, V0..V(rows·cols-1), each joined to its
// right and bottom neighbor. Requires rows ≥ 1 and cols ≥ 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int, w float64) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: Grid needs rows, cols ≥ 1, got %d×%d", ErrTooFewVertices, rows, cols)
	}

	g := syntheticVertices(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if c+1 < cols {
				if err := g.AddEdge(vertexID(i), vertexID(i+1), w); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(vertexID(i), vertexID(i+cols), w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n with uniform edge weight w.
// Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int, w float64) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Complete needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}

	g := syntheticVertices(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(vertexID(i), vertexID(j), w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
