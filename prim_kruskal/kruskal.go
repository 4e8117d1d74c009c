// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It works on an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g.
// It uses unionfind.UnionFind (path compression, union by size).
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Retrieve node labels; if len(nodes)==0 → ErrDisconnected.
//     If len(nodes)==1 → trivial MST (empty, weight=0).
//  3. Collect all distinct edges via graph.Edges(), skip self-loops (e.From == e.To).
//  4. Sort edges by ascending Weight (sort.SliceStable keeps core's edge order for equal weights).
//  5. Register every node in a fresh UnionFind.
//  6. Loop over sorted edges: if Union(u,v) merges two sets, include the edge in MST.
//  7. Once MST has |V|-1 edges, break. After loop, if MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate that graph is non-nil.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Retrieve all node labels in creation order.
	nodes := graph.Nodes()
	// If no nodes exist, there is no spanning tree;
	// by convention, we consider this a disconnected graph for |V| == 0.
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(nodes) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect all edges from graph, skipping self-loops to avoid trivial cycles.
	allEdges := graph.Edges()
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 4. Sort edges by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. One singleton set per node.
	uf := unionfind.NewFrom(nodes)

	// 6. Build MST by iterating over sorted edges.
	var (
		mst         = make([]core.Edge, 0, len(nodes)-1)
		totalWeight float64
		numNodes    = len(nodes)
	)
	for _, e := range edges {
		merged, err := uf.Union(e.From, e.To)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: union %s–%s: %w", e.From, e.To, err)
		}
		if !merged {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == numNodes-1 {
			break
		}
	}

	// 7. If MST does not contain exactly |V|-1 edges, graph was disconnected.
	if len(mst) < numNodes-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
