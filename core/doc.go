// Package core provides the in-memory undirected weighted Graph that every
// query package in this module runs on.
//
// The Graph G = (V,E) is built once from a sequence of edge triples
// (u, v, weight) and then queried any number of times:
//
//   - Undirected: InsertEdge(u, v, w) makes v adjacent to u and u adjacent to v
//     with the same weight.
//   - Labels are opaque, non-empty strings; a node exists once any edge touches
//     it or AddNode registers it explicitly.
//   - Real weights (float64); NaN is rejected, sign is not checked. Weighted
//     algorithms assume non-negative weights.
//   - Duplicate pairs: the latest InsertEdge for a pair wins. EdgeCount still
//     counts every call, Stats().DistinctEdges counts unordered pairs.
//   - Self-loops are allowed; the node lists itself once as a neighbor.
//
// Determinism:
//
//	Nodes() returns labels in the order their adjacency entry was created.
//	Neighbors()/NeighborEdges() return neighbors in the order the first edge
//	to each of them was inserted. Traversals in bfs, dijkstra and components
//	inherit this order, so every result in this module is reproducible.
//
// Query policy:
//
//	Read queries are total over unknown input: an unknown label has zero
//	neighbors, no edges and no weight. Only construction can fail.
//
// Concurrency:
//
//	Graph has no internal locking. Build it from one goroutine, then share it
//	freely for reads; never insert while queries are running.
//
// Core methods:
//
//	// Construction
//	NewGraph() *Graph
//	FromEdges(edges []Edge) (*Graph, error)
//	InsertEdge(u, v string, w float64) error // O(1) amortized
//	AddNode(label string) error              // O(1)
//
//	// Queries
//	NodeCount(), EdgeCount() int             // O(1)
//	Nodes() []string                         // O(V)
//	HasNode(label) bool                      // O(1)
//	NeighborCount(label) int                 // O(1)
//	Neighbors(label) []string                // O(d)
//	NeighborEdges(label) []Edge              // O(d)
//	EdgeWeight(u, v) (float64, bool)         // O(1)
//	HasEdge(u, v) bool                       // O(1)
//	Edges() []Edge                           // O(V+E)
//	Stats() GraphStats                       // O(V+E)
//
// Errors:
//
//	ErrEmptyLabel – empty node label passed to InsertEdge/AddNode.
//	ErrBadWeight  – NaN weight passed to InsertEdge.
package core
