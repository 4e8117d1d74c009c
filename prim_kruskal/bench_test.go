package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 nodes and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre‐build graph once
	b.ResetTimer()                   // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, always starting Prim from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre‐build graph once
	b.ResetTimer()                   // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, "V0")
	}
}

// BenchmarkKruskal_Complete measures the dense case: K_200 with integer
// weights, so many ties reach the stable sort.
func BenchmarkKruskal_Complete(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.IntWeightFn(1, 20))},
		builder.Complete(200),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}
