// Package core_test provides runnable examples for building graphs and views.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// ExampleGraph shows the basic build-then-query lifecycle.
func ExampleGraph() {
	// 1) Intern the vertices; each AddVertex returns a dense handle.
	g := core.NewGraph()
	a, _ := g.AddVertex("A")
	b, _ := g.AddVertex("B")
	_, _ = g.AddVertex("C")

	// 2) Connect them with weighted undirected edges.
	_ = g.AddEdge("A", "B", 1.5)
	_ = g.AddEdge("B", "C", 2.5)

	// 3) Query by handle.
	w, _ := g.Weight(a, b)
	fmt.Printf("vertices=%d edges=%d weight(A,B)=%.1f\n", g.VertexCount(), g.EdgeCount(), w)
	// Output: vertices=3 edges=2 weight(A,B)=1.5
}

// ExampleGraph_View demonstrates hiding edges without copying the graph.
func ExampleGraph_View() {
	g := core.NewGraph()
	a, _ := g.AddVertex("A")
	b, _ := g.AddVertex("B")
	_ = g.AddEdge("A", "B", 1)

	// Exclude A—B and look again: the edge is gone from the view,
	// but the graph itself is untouched.
	ex := core.NewEdgeSet()
	ex.Add(a, b)
	v := g.View(ex)

	fmt.Printf("view sees %d arcs, graph keeps %d edge(s)\n", len(v.Neighbors(a)), g.EdgeCount())
	// Output: view sees 0 arcs, graph keeps 1 edge(s)
}
