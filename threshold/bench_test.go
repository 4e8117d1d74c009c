package threshold_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/threshold"
)

// BenchmarkSmallestConnectingThreshold_Wheel queries rim-to-rim on a
// 5000-node wheel with random integer weights.
func BenchmarkSmallestConnectingThreshold_Wheel(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithWeightFn(builder.IntWeightFn(1, 50))},
		builder.Wheel(5000),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = threshold.SmallestConnectingThreshold(g, "0", "2500")
	}
}
