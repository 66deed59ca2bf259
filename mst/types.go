// Sentinel errors and the Edge result type shared by Prim and Kruskal.

package mst

import "errors"

// ErrVertexRange indicates a root handle outside the view's vertex range.
var ErrVertexRange = errors.New("mst: vertex handle out of range")

// ErrDisconnected indicates that no spanning tree covers every vertex:
// the view is empty or has more than one connected component.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Edge is one undirected edge selected into a spanning tree or forest,
// identified by its endpoint handles with U < V.
type Edge struct {
	// U and V are the endpoint handles, normalized so that U < V.
	U, V int

	// Weight is the edge weight as seen through the view.
	Weight float64
}
