package core_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddVertex_Idempotent verifies that repeated AddVertex calls keep one vertex.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("cat"))
	require.NoError(t, g.AddVertex("cat"))

	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, []string{"cat"}, g.Vertices())
	assert.True(t, g.HasVertex("cat"))
}

// TestAddVertex_Errors covers empty IDs and lookups of missing vertices.
func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	assert.False(t, g.HasVertex("dog"))
	_, err := g.Degree("dog")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestAddEdge_Symmetric ensures edges are mirrored and counted once.
func TestAddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	added, err := g.AddEdge("cat", "cot")
	require.NoError(t, err)
	assert.True(t, added)

	assert.True(t, g.HasEdge("cat", "cot"))
	assert.True(t, g.HasEdge("cot", "cat"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())

	// repeated in either direction is a no-op
	added, err = g.AddEdge("cot", "cat")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_Errors covers loops and empty endpoints.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("cat", "cat")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "cat")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Zero(t, g.VertexCount())
}

// TestNeighborIDs_Sorted checks lexicographic neighbor order and error paths.
func TestNeighborIDs_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, w := range []string{"dot", "cat", "cog"} {
		_, err := g.AddEdge("cot", w)
		require.NoError(t, err)
	}
	nbrs, err := g.NeighborIDs("cot")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cog", "dot"}, nbrs)

	d, err := g.Degree("cot")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.NeighborIDs("zzz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestVerticesAndEdges verifies insertion order and canonical edges.
func TestVerticesAndEdges(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	require.NoError(t, g.AddVertex("dog"))
	_, _ = g.AddEdge("dog", "cog")
	_, _ = g.AddEdge("cog", "cot")

	assert.Equal(t, []string{"dog", "cog", "cot"}, g.Vertices())
	assert.Equal(t, []core.Edge{{From: "cog", To: "cot"}, {From: "cog", To: "dog"}}, g.Edges())
}

// TestFreeze rejects every mutation after Freeze while reads keep working.
func TestFreeze(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("hit", "hot")
	assert.False(t, g.Frozen())

	g.Freeze()
	g.Freeze()
	assert.True(t, g.Frozen())

	assert.ErrorIs(t, g.AddVertex("dot"), core.ErrFrozen)
	_, err := g.AddEdge("hot", "dot")
	assert.ErrorIs(t, err, core.ErrFrozen)

	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasEdge("hot", "hit"))
}
