package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/graph"
)

// TestGraph_AddNode_Idempotent verifies re-adding a node changes nothing.
func TestGraph_AddNode_Idempotent(t *testing.T) {
	g := graph.New[string]()
	g.AddNode("A")
	g.AddNode("A")

	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode("A"))
	assert.False(t, g.HasNode("B"))
}

// TestGraph_AddEdge_AutoAddsEndpoints verifies AddEdge creates missing nodes.
func TestGraph_AddEdge_AutoAddsEndpoints(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A")) // undirected mirror
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_AddEdge_SelfLoop verifies loops are rejected with ErrSelfLoop.
func TestGraph_AddEdge_SelfLoop(t *testing.T) {
	g := graph.New[int]()
	err := g.AddEdge(7, 7)

	assert.ErrorIs(t, err, graph.ErrSelfLoop)
	assert.Equal(t, 0, g.NodeCount()) // rejected before endpoint insertion
	assert.Equal(t, 0, g.EdgeCount())
}

// TestGraph_AddEdge_DuplicateIsNoOp verifies edge re-insertion keeps counts stable.
func TestGraph_AddEdge_DuplicateIsNoOp(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A")) // same undirected edge

	assert.Equal(t, 1, g.EdgeCount())
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrs) // no duplicate neighbor entry
}

// TestGraph_Nodes_InsertionOrder verifies Nodes preserves first-seen order.
func TestGraph_Nodes_InsertionOrder(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("C", "A"))
	require.NoError(t, g.AddEdge("A", "B"))
	g.AddNode("Z")

	assert.Equal(t, []string{"C", "A", "B", "Z"}, g.Nodes())
}

// TestGraph_Neighbors_OrderAndErrors verifies ordered neighbor reads and the
// missing-node sentinel.
func TestGraph_Neighbors_OrderAndErrors(t *testing.T) {
	g := graph.New[int]()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 4))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, nbrs) // edge-insertion order

	_, err = g.Neighbors(99)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestGraph_Neighbors_ReturnsCopy verifies mutating the result leaves the graph intact.
func TestGraph_Neighbors_ReturnsCopy(t *testing.T) {
	g := graph.New[int]()
	require.NoError(t, g.AddEdge(1, 2))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	nbrs[0] = 42

	again, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, again)
}

// TestGraph_Degree verifies degree counting and the missing-node sentinel.
func TestGraph_Degree(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = g.Degree("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}
