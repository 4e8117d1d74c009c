// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph with Prim’s algorithm or Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all nodes in V and the sum of weights of edges in T is minimized.
//
//   - Why it matters here:
//     An MST is also a minimum bottleneck spanning tree. The largest edge on the
//     tree path between two nodes equals the smallest threshold at which they
//     become connected (threshold.SmallestConnectingThreshold). Bottleneck reads
//     that value off a computed tree.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//     Sort the distinct edges by weight (stable), then merge endpoints with a
//     unionfind.UnionFind, skipping edges whose endpoints are already joined.
//     Time: O(E log E + α(V)·E). Space: O(V + E).
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, float64, error)
//     Grow a single tree from root, keeping a min-heap of candidate edges that
//     leave the tree. Time: O(E log V). Space: O(V + E).
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Self-loops never enter a tree. Negative weights are allowed.
//
// Determinism
//
//   - Kruskal stable-sorts core.Graph.Edges(), so equal weights keep core's edge order.
//   - Prim breaks weight ties by push order, which follows neighbor insertion order.
//
// Error Conditions
//
//	- ErrInvalidGraph              – graph is nil.
//	- ErrEmptyRoot (Prim only)     – root == "".
//	- core.ErrNodeNotFound (Prim)  – root is not a node of the graph.
//	- ErrDisconnected              – |V| == 0, or |V| > 1 and no spanning tree covers all nodes.
//	- ErrUnknownMethod (Compute)   – MSTOptions.Method is neither MethodKruskal nor MethodPrim.
//
// Both algorithms only read the graph.
package prim_kruskal
