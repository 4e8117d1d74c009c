// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest distances on a simple triangle graph.
// Complexity: O((V+E) log V) because we push/pop up to E entries and extract each node once.
func ExampleDijkstra_triangle() {
	// 1) A–B 1, B–C 2, A–C 5: the detour via B is cheaper than the direct edge.
	g := core.NewGraph()
	_ = g.InsertEdge("A", "B", 1)
	_ = g.InsertEdge("B", "C", 2)
	_ = g.InsertEdge("A", "C", 5)

	// 2) Run from "A" and ask for predecessors.
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", dist["A"], dist["B"], dist["C"])
	fmt.Printf("prev[C]=%s\n", prev["C"])
	// Output:
	// dist[A]=0, dist[B]=1, dist[C]=3
	// prev[C]=B
}

// ExampleDijkstra_thresholds shows MaxDistance and InfEdgeThreshold working together.
func ExampleDijkstra_thresholds() {
	g := core.NewGraph()
	_ = g.InsertEdge("S", "A", 2)
	_ = g.InsertEdge("A", "B", 2)
	_ = g.InsertEdge("B", "C", 2)
	_ = g.InsertEdge("S", "C", 100) // treated as a wall below

	dist, _, err := dijkstra.Dijkstra(g,
		dijkstra.Source("S"),
		dijkstra.WithMaxDistance(4),
		dijkstra.WithInfEdgeThreshold(50),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, v := range g.Nodes() {
		fmt.Printf("%s=%g\n", v, dist[v])
	}
	// Output:
	// S=0
	// A=2
	// B=4
	// C=+Inf
}

// ExampleShortestPath prints the cheapest route step by step.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.InsertEdge("A", "B", 5)
	_ = g.InsertEdge("B", "C", 5)
	_ = g.InsertEdge("A", "C", 11)

	p := dijkstra.ShortestPath(g, "A", "C")
	for _, s := range p {
		fmt.Printf("%s -> %s (%g)\n", s.From, s.To, s.Weight)
	}
	fmt.Println("total:", p.Total())
	fmt.Println("trivial:", dijkstra.ShortestPath(g, "B", "B"))
	// Output:
	// A -> B (5)
	// B -> C (5)
	// total: 10
	// trivial: [{B B 0}]
}
