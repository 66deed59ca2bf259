package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
)

func TestEdgeSet_UnorderedSemantics(t *testing.T) {
	s := core.NewEdgeSet()
	s.Add(3, 1)

	assert.True(t, s.Has(1, 3))
	assert.True(t, s.Has(3, 1))
	assert.False(t, s.Has(1, 2))
	assert.Equal(t, 1, s.Len())

	// Re-adding the mirrored pair does not grow the set.
	s.Add(1, 3)
	assert.Equal(t, 1, s.Len())
}

func TestView_FullViewIsTransparent(t *testing.T) {
	g := buildTriangle(t)
	v := g.View(nil)

	a, _ := g.Index("A")
	b, _ := g.Index("B")

	assert.Equal(t, g.VertexCount(), v.VertexCount())
	assert.Equal(t, g.Neighbors(a), v.Neighbors(a))
	assert.False(t, v.Excluded(a, b))

	w, err := v.Weight(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestView_ExcludedEdgeIsInvisible(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Index("A")
	b, _ := g.Index("B")
	c, _ := g.Index("C")

	ex := core.NewEdgeSet()
	ex.Add(a, b)
	v := g.View(ex)

	// The A—B arc disappears from both endpoints' neighborhoods.
	for _, arc := range v.Neighbors(a) {
		assert.NotEqual(t, b, arc.To)
	}
	for _, arc := range v.Neighbors(b) {
		assert.NotEqual(t, a, arc.To)
	}

	// Weight queries on the hidden edge fail with ErrEdgeNotFound.
	_, err := v.Weight(a, b)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.True(t, v.Excluded(b, a))

	// Other edges stay visible.
	w, err := v.Weight(a, c)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w)

	// Vertex set is untouched by edge exclusion.
	assert.Equal(t, 3, v.VertexCount())
}

func TestView_DoesNotMutateGraph(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Index("A")
	b, _ := g.Index("B")

	ex := core.NewEdgeSet()
	ex.Add(a, b)
	_ = g.View(ex).Neighbors(a)

	// Direct graph queries still see the excluded edge.
	w, err := g.Weight(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	assert.Len(t, g.Neighbors(a), 2)
}
