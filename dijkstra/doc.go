// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative real edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - A node is settled exactly once; settled nodes are never relaxed again.
//   - Supports optional path reconstruction, distance caps, “impassable” edge
//     thresholds and an early stop once a target node is settled.
//
// ShortestPath:
//
//	ShortestPath(g, start, end) is the total query form built on the engine.
//	It returns a Path, one Step{From, To, Weight} per edge of the cheapest route:
//	  - nil when start or end is unknown, or end is unreachable;
//	  - a single Step{start, start, 0} (Path.Trivial() == true) when start == end;
//	  - otherwise the ordered steps, each Weight being dist[To] - dist[From].
//	Path.Total() is the route cost.
//
// Determinism:
//
//	Ties between equal distances are broken by push order, which follows core's
//	neighbor order (first-insertion order). Equal-cost routes therefore resolve
//	the same way on every run.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once from the priority queue (V settles).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Each heap Push/Pop costs O(log N) where N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) to store distance and (optional) predecessor maps.
//   - O(E) worst-case entries in the heap under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors, Dijkstra only; ShortestPath never fails):
//
//   - ErrEmptySource:
//     Returned if the Source string is empty when calling Dijkstra.
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrVertexNotFound:
//     Returned if the specified source node does not exist in the graph.
//   - ErrNegativeWeight:
//     Returned if any edge in the graph has a negative weight (detected by a fast O(E) pre-scan).
//   - ErrBadMaxDistance:
//     Returned (via panic) if you set MaxDistance to a negative or NaN value.
//   - ErrBadInfThreshold:
//     Returned (via panic) if you set InfEdgeThreshold to zero, a negative value or NaN.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
//	  - opts:    zero or more functional options, including:
//	      • Source(string):                required, the starting node label.
//	      • WithReturnPath():              if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(float64):      explores only nodes with distance ≤ given value.
//	      • WithInfEdgeThreshold(float64): skips any edge whose weight ≥ threshold.
//	      • WithTarget(string):            stops once the target is settled.
//	  - dist:    map[v] = minimal distance from Source to v, or +Inf if unreachable.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path from Source,
//	              or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent calls on an unchanging graph are safe.
package dijkstra
