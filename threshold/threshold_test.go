package threshold_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/threshold"
)

// ladder has a cheap long route A–B–C–D (max 3) and a direct expensive A–D 7.
var ladder = []core.Edge{
	{From: "A", To: "B", Weight: 1},
	{From: "B", To: "C", Weight: 3},
	{From: "C", To: "D", Weight: 2},
	{From: "A", To: "D", Weight: 7},
	{From: "X", To: "Y", Weight: 0.5},
}

func build(t testing.TB, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(edges)
	require.NoError(t, err)

	return g
}

func TestSmallestConnectingThreshold_Bottleneck(t *testing.T) {
	g := build(t, ladder)

	w, ok := threshold.SmallestConnectingThreshold(g, "A", "D")
	require.True(t, ok)
	assert.Equal(t, 3.0, w)

	w, ok = threshold.SmallestConnectingThreshold(g, "A", "B")
	require.True(t, ok)
	assert.Equal(t, 1.0, w)

	w, ok = threshold.SmallestConnectingThreshold(g, "X", "Y")
	require.True(t, ok)
	assert.Equal(t, 0.5, w)
}

func TestSmallestConnectingThreshold_Sentinels(t *testing.T) {
	g := build(t, ladder)
	require.NoError(t, g.AddNode("Z"))

	w, ok := threshold.SmallestConnectingThreshold(g, "C", "C")
	assert.True(t, ok)
	assert.Zero(t, w)

	w, ok = threshold.SmallestConnectingThreshold(g, "Z", "Z")
	assert.True(t, ok, "isolated but registered")
	assert.Zero(t, w)

	for _, pair := range [][2]string{{"A", "X"}, {"A", "Z"}, {"A", "missing"}, {"missing", "missing"}} {
		_, ok = threshold.SmallestConnectingThreshold(g, pair[0], pair[1])
		assert.False(t, ok, "%v", pair)
	}

	_, ok = threshold.SmallestConnectingThreshold(nil, "A", "B")
	assert.False(t, ok)
}

func TestSmallestConnectingThreshold_InsertionOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	want, ok := threshold.SmallestConnectingThreshold(build(t, ladder), "A", "D")
	require.True(t, ok)

	for i := 0; i < 30; i++ {
		shuffled := append([]core.Edge(nil), ladder...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, ok := threshold.SmallestConnectingThreshold(build(t, shuffled), "A", "D")
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

// TestSmallestConnectingThreshold_AgreesWithComponents checks that start and end
// share a component exactly from the returned threshold upward.
func TestSmallestConnectingThreshold_AgreesWithComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 10
	for round := 0; round < 20; round++ {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddNode(fmt.Sprint("n", i)))
		}
		for k := 0; k < n; k++ {
			require.NoError(t, g.InsertEdge(
				fmt.Sprint("n", rng.Intn(n)), fmt.Sprint("n", rng.Intn(n)), float64(rng.Intn(50))))
		}

		w, ok := threshold.SmallestConnectingThreshold(g, "n0", "n1")
		together := func(T float64) bool {
			for _, v := range components.ComponentOf(g, "n0", T) {
				if v == "n1" {
					return true
				}
			}

			return false
		}
		if !ok {
			assert.False(t, together(math.Inf(1)), "round %d", round)
			continue
		}
		assert.True(t, together(w), "round %d", round)
		assert.False(t, together(math.Nextafter(w, math.Inf(-1))), "round %d", round)
	}
}
