// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkInsertEdge_Star measures insertion into a star topology.
func BenchmarkInsertEdge_Star(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.InsertEdge("Root", fmt.Sprintf("N%d", i), float64(i))
	}
}

// BenchmarkInsertEdge_Duplicates cycles over 100 targets so most calls overwrite.
func BenchmarkInsertEdge_Duplicates(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.InsertEdge("Root", fmt.Sprintf("N%d", i%100), float64(i))
	}
}

// BenchmarkNeighborEdges reads the neighborhood of a 1000-leaf hub.
func BenchmarkNeighborEdges(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.InsertEdge("Center", fmt.Sprintf("Node%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.NeighborEdges("Center")
	}
}

// BenchmarkEdges lists a 100x100 grid's edges.
func BenchmarkEdges(b *testing.B) {
	g := core.NewGraph()
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x+1 < 100 {
				_ = g.InsertEdge(fmt.Sprint(x, y), fmt.Sprint(x+1, y), 1)
			}
			if y+1 < 100 {
				_ = g.InsertEdge(fmt.Sprint(x, y), fmt.Sprint(x, y+1), 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
