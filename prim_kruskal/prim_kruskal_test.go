package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/threshold"
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 3).
//
// This graph’s MST consists of edges A—B and B—C with total weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_ = g.InsertEdge("A", "B", 1)
	_ = g.InsertEdge("B", "C", 2)
	_ = g.InsertEdge("A", "C", 3)

	return g
}

// buildMediumGraph creates a connected, weighted graph with n nodes and about edgesCount distinct edges.
//   - First, it ensures connectivity by adding a chain V0—V1—...—V(n-1) with random weights [1..11).
//   - Then it inserts (edgesCount - (n-1)) additional random non-loop edges with weights [1..101).
//     Re-inserting an existing pair overwrites its weight, so the distinct count may be lower.
//
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddNode(fmt.Sprintf("V%d", i))
	}

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		weight := 1.0 + r.Float64() + float64(r.Intn(10))
		_ = g.InsertEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), weight)
	}

	extra := edgesCount - (n - 1)
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		weight := 1.0 + r.Float64() + float64(r.Intn(100))
		_ = g.InsertEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), weight)
		i++
	}

	return g
}

// TestValidation_EmptyOrDisconnected verifies ErrDisconnected for an empty graph
// and for a graph with two separate pieces.
func TestValidation_EmptyOrDisconnected(t *testing.T) {
	g := core.NewGraph()

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	require.NoError(t, g.InsertEdge("A", "B", 1))
	require.NoError(t, g.InsertEdge("C", "D", 1))
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestValidation_NilGraph checks ErrInvalidGraph for both algorithms.
func TestValidation_NilGraph(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestValidation_MissingRoot checks root validation in Prim.
func TestValidation_MissingRoot(t *testing.T) {
	g := buildTriangle()

	_, _, err := prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(g, "Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestPrim_Triangle verifies Prim from every root on the triangle.
func TestPrim_Triangle(t *testing.T) {
	g := buildTriangle()
	for _, root := range g.Nodes() {
		mst, total, err := prim_kruskal.Prim(g, root)
		require.NoError(t, err, root)
		assert.Len(t, mst, 2, root)
		assert.Equal(t, 3.0, total, root)
	}

	mst, _, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, mst)
}

// TestKruskal_Triangle verifies the chosen edges and total weight.
func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, mst)
	assert.Equal(t, 3.0, total)
}

// TestSingleVertexGraph: a lone node has an empty MST.
func TestSingleVertexGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("X"))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	mst, total, err = prim_kruskal.Prim(g, "X")
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	_, _, err = prim_kruskal.Prim(g, "Y")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestDuplicateEdgesUseLatestWeight: re-inserting a pair replaces its weight.
func TestDuplicateEdgesUseLatestWeight(t *testing.T) {
	g := buildTriangle()
	require.NoError(t, g.InsertEdge("A", "B", 10))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
	assert.ElementsMatch(t, []core.Edge{
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 3},
	}, mst)
}

// TestSelfLoopsIgnored: loops never enter the tree.
func TestSelfLoopsIgnored(t *testing.T) {
	g := buildTriangle()
	require.NoError(t, g.InsertEdge("A", "A", -5))

	for _, run := range []func() ([]core.Edge, float64, error){
		func() ([]core.Edge, float64, error) { return prim_kruskal.Kruskal(g) },
		func() ([]core.Edge, float64, error) { return prim_kruskal.Prim(g, "C") },
	} {
		mst, total, err := run()
		require.NoError(t, err)
		assert.Len(t, mst, 2)
		assert.Equal(t, 3.0, total)
	}
}

// TestCompute dispatches on method name.
func TestCompute(t *testing.T) {
	g := buildTriangle()

	_, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	opts := prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("C"))
	_, total, err = prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestComparison_MediumGraph checks that Prim and Kruskal agree on total weight.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(200, 800)

	kEdges, kTotal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	pEdges, pTotal, err := prim_kruskal.Prim(g, "V0")
	require.NoError(t, err)

	assert.Len(t, kEdges, g.NodeCount()-1)
	assert.Len(t, pEdges, g.NodeCount()-1)
	assert.InDelta(t, kTotal, pTotal, 1e-9)
}

// TestBottleneck_MatchesThreshold: the largest edge on the MST path equals the
// smallest connecting threshold.
// TestComparison_Topologies checks Prim against Kruskal on generated shapes
// with heavily tied integer weights.
func TestComparison_Topologies(t *testing.T) {
	shapes := map[string]builder.Constructor{
		"wheel":    builder.Wheel(40),
		"grid":     builder.Grid(8, 9),
		"complete": builder.Complete(25),
	}
	for name, c := range shapes {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(17), builder.WithWeightFn(builder.IntWeightFn(1, 4))},
				c,
			)
			require.NoError(t, err)

			kEdges, kTotal, err := prim_kruskal.Kruskal(g)
			require.NoError(t, err)
			pEdges, pTotal, err := prim_kruskal.Prim(g, g.Nodes()[0])
			require.NoError(t, err)

			assert.Len(t, kEdges, g.NodeCount()-1)
			assert.Len(t, pEdges, g.NodeCount()-1)
			assert.Equal(t, kTotal, pTotal)
		})
	}
}

func TestBottleneck_MatchesThreshold(t *testing.T) {
	g := buildMediumGraph(60, 150)
	mst, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		u := fmt.Sprintf("V%d", r.Intn(60))
		v := fmt.Sprintf("V%d", r.Intn(60))

		want, ok := threshold.SmallestConnectingThreshold(g, u, v)
		require.True(t, ok)
		got, ok := prim_kruskal.Bottleneck(mst, u, v)
		require.True(t, ok)
		assert.Equal(t, want, got, "%s–%s", u, v)
	}
}

// TestBottleneck_Edges covers the degenerate inputs.
func TestBottleneck_Edges(t *testing.T) {
	mst := []core.Edge{{From: "A", To: "B", Weight: -2}, {From: "B", To: "C", Weight: -7}}

	w, ok := prim_kruskal.Bottleneck(mst, "A", "C")
	assert.True(t, ok)
	assert.Equal(t, -2.0, w)

	w, ok = prim_kruskal.Bottleneck(mst, "Q", "Q")
	assert.True(t, ok)
	assert.Zero(t, w)

	_, ok = prim_kruskal.Bottleneck(mst, "A", "Q")
	assert.False(t, ok)
}
