// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order, plus a fewest-hops
// ShortestPath query.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor
//     (the callback receives the edge weight, so threshold walks are one line).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - WithTarget stops the search as soon as the target is discovered.
//   - Edge weights are ignored for distance: every edge counts as one hop.
//
// ShortestPath
//
//	ShortestPath(g, start, end) is the total query form: it never fails.
//	It returns [start] when start == end, nil when either label is unknown or
//	no path exists, and otherwise the node sequence start … end.
//
// Determinism
//
//	Neighbors are enqueued in core's neighbor order (first-insertion order),
//	so among equally short paths the one using earlier-inserted edges wins,
//	and the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	path := bfs.ShortestPath(g, "A", "C")
//
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string, w float64) bool { return w <= 10 }),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
