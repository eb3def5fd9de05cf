package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/graph"
)

// ringOf adds the closed ring v0-v1-...-vk-v0 to g.
func ringOf(t *testing.T, g *graph.Graph[string], vs ...string) {
	t.Helper()
	for i := range vs {
		require.NoError(t, g.AddEdge(vs[i], vs[(i+1)%len(vs)]))
	}
}

// TestCycleBasis_NilGraph verifies a nil graph yields no cycles.
func TestCycleBasis_NilGraph(t *testing.T) {
	assert.Nil(t, graph.CycleBasis[string](nil))
}

// TestCycleBasis_Tree verifies acyclic graphs yield an empty basis.
func TestCycleBasis_Tree(t *testing.T) {
	g := graph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("B", "D"))

	assert.Empty(t, graph.CycleBasis(g))
}

// TestCycleBasis_Triangle verifies a 3-ring produces one cycle with all
// three vertices and no repeated closing vertex.
func TestCycleBasis_Triangle(t *testing.T) {
	g := graph.New[string]()
	ringOf(t, g, "A", "B", "C")

	cycles := graph.CycleBasis(g)
	require.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 3)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, cycles[0])
}

// TestCycleBasis_FusedRings verifies two triangles sharing an edge give a
// basis of two independent cycles.
func TestCycleBasis_FusedRings(t *testing.T) {
	g := graph.New[string]()
	// A-B-C-A fused with B-D-C along edge B-C.
	ringOf(t, g, "A", "B", "C")
	require.NoError(t, g.AddEdge("B", "D"))
	require.NoError(t, g.AddEdge("D", "C"))

	cycles := graph.CycleBasis(g)
	// Cyclomatic number: E - V + components = 5 - 4 + 1.
	require.Len(t, cycles, 2)
	for _, c := range cycles {
		assert.GreaterOrEqual(t, len(c), 3)
	}
}

// TestCycleBasis_DisconnectedComponents verifies each component contributes
// its own cycles and lone vertices contribute none.
func TestCycleBasis_DisconnectedComponents(t *testing.T) {
	g := graph.New[string]()
	ringOf(t, g, "A", "B", "C")
	ringOf(t, g, "W", "X", "Y", "Z")
	g.AddNode("lonely")

	cycles := graph.CycleBasis(g)
	require.Len(t, cycles, 2)

	lengths := []int{len(cycles[0]), len(cycles[1])}
	assert.ElementsMatch(t, []int{3, 4}, lengths)
}

// TestCycleBasis_SquareWithChord verifies the basis dimension on a graph
// whose simple cycles outnumber its independent ones.
func TestCycleBasis_SquareWithChord(t *testing.T) {
	g := graph.New[string]()
	ringOf(t, g, "A", "B", "C", "D")
	require.NoError(t, g.AddEdge("A", "C"))

	cycles := graph.CycleBasis(g)
	// Three simple cycles exist (two triangles and the square) but the
	// basis holds exactly E - V + 1 = 2 of them.
	assert.Len(t, cycles, 2)
}

// TestCycleBasis_Deterministic verifies repeated extraction returns the
// identical result for the same build sequence.
func TestCycleBasis_Deterministic(t *testing.T) {
	build := func() *graph.Graph[int] {
		g := graph.New[int]()
		for i := 0; i < 6; i++ {
			require.NoError(t, g.AddEdge(i, (i+1)%6))
		}
		require.NoError(t, g.AddEdge(0, 3))

		return g
	}

	first := graph.CycleBasis(build())
	second := graph.CycleBasis(build())
	assert.Equal(t, first, second)
}
