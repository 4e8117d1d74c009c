// Package wgraph is an in-memory, undirected, weighted graph toolkit:
// load an edge list once, then ask adjacency, shortest-path, threshold
// and spanning-tree questions against it.
//
// What is inside?
//
//	unionfind/    — string-keyed disjoint sets (path compression, union by size)
//	core/         — Graph: labels, InsertEdge, EdgeWeight, Neighbors, Edges, Stats
//	bfs/          — breadth-first traversal and fewest-hop ShortestPath
//	dijkstra/     — weighted distances and cheapest ShortestPath (Path of Steps)
//	components/   — threshold components: edges of weight ≤ T only
//	threshold/    — SmallestConnectingThreshold: minimax (bottleneck) weight
//	prim_kruskal/ — minimum spanning trees and tree bottlenecks
//	loader/       — three-column CSV edge lists (A,B,weight) into a Graph and back
//	builder/      — seeded generators: path, cycle, star, wheel, complete, grid, G(n,p)
//	cmd/wgraph    — command-line front end
//
// Query policy:
//
//   - Unknown labels and missing paths are answers, not failures: the query
//     helpers return nil slices or a false flag.
//   - The engines (bfs.BFS, dijkstra.Dijkstra, prim_kruskal) validate their
//     input and return sentinel errors checkable with errors.Is.
//
// Determinism: nodes are listed in creation order and neighbors in
// first-insertion order; every traversal breaks ties that way.
//
// Concurrency: a Graph has no internal locking. Build it, then query it from
// any number of goroutines as long as nobody mutates it.
//
// Quick ASCII example:
//
//	    A──5──B
//	     \    │
//	      11  5
//	        \ │
//	          C
//
//	dijkstra.ShortestPath(g, "A", "C") → A→B→C, total 10
//	threshold.SmallestConnectingThreshold(g, "A", "C") → 5
//
//	go get github.com/katalvlaran/wgraph
package wgraph
