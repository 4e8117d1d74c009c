package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/builder"
)

// ExampleBuildGraph builds a small wheel with letter labels.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Wheel(5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Nodes())
	fmt.Println(g.Neighbors(builder.CenterID))
	// Output:
	// [A B C D Center]
	// [A B C D]
}

// ExampleRandomSparse shows that a seed fixes the generated graph.
func ExampleRandomSparse() {
	gen := func() int {
		g, _ := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 5))},
			builder.RandomSparse(20, 0.3),
		)
		return len(g.Edges())
	}
	fmt.Println(gen() == gen())
	// Output: true
}
