package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/mst"
)

// buildTriangle constructs A—B(1), B—C(2), A—C(3); its MST is {A—B, B—C}
// with total weight 3.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_, err := g.AddVertex(id)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	return g
}

// buildMediumGraph creates a connected random graph with n vertices and
// roughly edgesCount edges: a chain for connectivity plus random extras.
// Seeded deterministically for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddVertex(fmt.Sprintf("V%d", i))
	}

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		w := 1.0 + r.Float64()*9
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), w))
	}
	for added := 0; added < edgesCount-(n-1); {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		w := 1.0 + r.Float64()*99
		if err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), w); err == nil {
			added++
		}
	}

	return g
}

func TestPrim_Triangle(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Index("A")

	edges, total, err := mst.Prim(g.View(nil), a)
	require.NoError(t, err)

	assert.Len(t, edges, 2)
	assert.Equal(t, 3.0, total)
}

func TestKruskal_Triangle(t *testing.T) {
	g := buildTriangle(t)

	edges, total, err := mst.Kruskal(g.View(nil))
	require.NoError(t, err)

	assert.Len(t, edges, 2)
	assert.Equal(t, 3.0, total)
}

func TestPrim_Validation(t *testing.T) {
	empty := core.NewGraph()
	_, _, err := mst.Prim(empty.View(nil), 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	g := buildTriangle(t)
	_, _, err = mst.Prim(g.View(nil), 99)
	assert.ErrorIs(t, err, mst.ErrVertexRange)
	_, _, err = mst.Prim(g.View(nil), -1)
	assert.ErrorIs(t, err, mst.ErrVertexRange)
}

func TestMST_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	solo, _ := g.AddVertex("Solo")

	edgesP, totalP, errP := mst.Prim(g.View(nil), solo)
	require.NoError(t, errP)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)

	edgesK, totalK, errK := mst.Kruskal(g.View(nil))
	require.NoError(t, errK)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)
}

func TestMST_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("A")
	_, _ = g.AddVertex("B")
	_, _ = g.AddVertex("Z") // isolated
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, _, errP := mst.Prim(g.View(nil), 0)
	assert.ErrorIs(t, errP, mst.ErrDisconnected)

	_, _, errK := mst.Kruskal(g.View(nil))
	assert.ErrorIs(t, errK, mst.ErrDisconnected)

	// The forest still has a well-defined weight: just the A—B component.
	assert.Equal(t, 1.0, mst.ForestWeight(g.View(nil)))
}

func TestForestWeight_EmptyView(t *testing.T) {
	g := core.NewGraph()
	assert.Zero(t, mst.ForestWeight(g.View(nil)))
}

func TestMST_RespectsExcludedEdges(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Index("A")
	b, _ := g.Index("B")

	// Hiding A—B forces the MST to use B—C(2) and A—C(3).
	ex := core.NewEdgeSet()
	ex.Add(a, b)

	_, total, err := mst.Kruskal(g.View(ex))
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)

	// Excluding enough edges disconnects the view; the forest drops the
	// missing component's contribution instead of failing.
	ex.Add(a, 2)
	assert.Equal(t, 2.0, mst.ForestWeight(g.View(ex)))
	_, _, err = mst.Kruskal(g.View(ex))
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestMST_PrimAndKruskalAgree(t *testing.T) {
	g := buildMediumGraph(t, 60, 200)

	_, totalP, errP := mst.Prim(g.View(nil), 0)
	require.NoError(t, errP)
	_, totalK, errK := mst.Kruskal(g.View(nil))
	require.NoError(t, errK)

	assert.InDelta(t, totalK, totalP, 1e-9, "both algorithms must find the same MST weight")
	assert.InDelta(t, totalK, mst.ForestWeight(g.View(nil)), 1e-9)
}
