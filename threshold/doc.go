// Package threshold answers minimum bottleneck queries on a core.Graph.
//
// SmallestConnectingThreshold(g, start, end) returns the smallest T such that
// start and end share a threshold component at T (see package components),
// i.e. the minimax edge weight over all start–end paths.
//
// Algorithm:
//
//  1. Take the distinct edges of g and sort them ascending by weight
//     (stable, so ties keep core's edge order).
//  2. Register every node in a fresh unionfind.UnionFind.
//  3. Union edge endpoints in that order; the first union after which start
//     and end share a root yields the answer: that edge's weight.
//
// This is Kruskal's algorithm stopped at first connection, so the answer equals
// the largest edge weight on the start–end path of any minimum spanning tree.
//
// Results:
//
//   - start == end (registered): (0, true) without scanning edges.
//   - unknown start or end, nil graph: (0, false).
//   - never connected: (0, false).
//
// The bool is the sentinel; 0 alongside false is not a weight.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
package threshold
