package components_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkConnectedComponents_Ring splits a 10k-node ring with mixed weights.
func BenchmarkConnectedComponents_Ring(b *testing.B) {
	const n = 10000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.InsertEdge(fmt.Sprint(i), fmt.Sprint((i+1)%n), float64(i%7))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = components.ConnectedComponents(g, 3)
	}
}
