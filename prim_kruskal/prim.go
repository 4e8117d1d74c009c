// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST of an undirected, weighted *core.Graph from a specified root node using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Prim computes the Minimum Spanning Tree (MST) of g by growing outwards from
// root using a min‐heap of candidate edges.
//
// Error Conditions:
//   - ErrInvalidGraph     : if graph is nil.
//   - ErrDisconnected     : if |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//   - ErrEmptyRoot        : if the provided root string is empty.
//   - core.ErrNodeNotFound: if the root node does not exist in the graph.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Retrieve node labels; if len(nodes)==0 → ErrDisconnected.
//  3. Validate root: root != "", graph.HasNode(root).
//     If len(nodes)==1 → return trivial empty MST.
//  4. Initialize:
//     - visited map to track which nodes are already in MST.
//     - pq (min‐heap) to hold candidate edges ordered by weight, then push order.
//     - mark root as visited and push all edges adjacent to root into pq.
//  5. While pq not empty and MST has < |V|-1 edges:
//     a. Pop the smallest‐weight edge (u→v) from pq.
//     b. If v is already visited, skip (this edge would form a cycle).
//     c. Otherwise, add (u→v) to MST, mark v as visited, accumulate weight.
//     d. Push all edges from v to as‐yet‐unvisited neighbors into pq.
//  6. If MST size < |V|-1 after loop → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	// 1. Validate that graph is non-nil.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2. An empty graph has no spanning tree.
	n := graph.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	// 3. Validate root is non-empty and actually exists in the graph.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasNode(root) {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrNodeNotFound, root)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 4. Initialize visited set and MST container.
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	// 4b. Mark root as visited and push all edges adjacent to root.
	visited[root] = true
	pq.pushFrom(graph, root, visited)

	// 5. Main loop: extract smallest edge and expand MST until we have n-1 edges.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(*edgeItem).edge
		v := e.To
		if visited[v] {
			continue
		}
		// 5a. Include this edge (u→v) in MST.
		visited[v] = true
		mst = append(mst, e)
		totalWeight += e.Weight

		// 5b. Push all edges from newly visited node v to unvisited neighbors.
		pq.pushFrom(graph, v, visited)
	}

	// 6. If we did not collect exactly n-1 edges, the graph must be disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgeItem is a candidate edge plus its push sequence for stable ordering.
type edgeItem struct {
	edge core.Edge
	seq  int
}

// edgePQ implements heap.Interface for a min‐heap of *edgeItem, ordered by
// Weight and then by push order.
type edgePQ struct {
	items  []*edgeItem
	pushes int
}

// pushFrom queues every edge from u to an unvisited neighbor, in neighbor order.
func (pq *edgePQ) pushFrom(g *core.Graph, u string, visited map[string]bool) {
	for _, e := range g.NeighborEdges(u) {
		if !visited[e.To] {
			heap.Push(pq, &edgeItem{edge: e, seq: pq.pushes})
			pq.pushes++
		}
	}
}

// Len returns the number of edges in the priority queue.
// Complexity: O(1).
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less reports whether element i should sort before j.
// Complexity: O(1).
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a new *edgeItem to the heap.
// Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(*edgeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return item
}
