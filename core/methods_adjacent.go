// File: methods_adjacent.go
// Role: Neighborhood APIs: Neighbors, NeighborEdges, NeighborCount.
// Determinism:
//   - Neighbors are returned in the order the first edge to each was inserted.
// Concurrency:
//   - Read-only; safe for concurrent readers once construction is finished.

package core

// Neighbors returns the labels adjacent to label in first-insertion order.
// An unknown label has no neighbors and yields an empty (nil) slice.
// A self-loop makes label appear in its own neighbor list once.
//
// The returned slice is a copy.
// Complexity: O(d), d = degree of label.
func (g *Graph) Neighbors(label string) []string {
	set, ok := g.adjacency[label]
	if !ok {
		return nil
	}
	out := make([]string, len(set.order))
	copy(out, set.order)

	return out
}

// NeighborEdges returns one Edge per neighbor of label, oriented away from
// label (Edge.From == label) and carrying the stored weight. Order matches
// Neighbors(label). Unknown labels yield nil.
//
// Traversal packages use this to read neighbors and weights in one pass.
// Complexity: O(d).
func (g *Graph) NeighborEdges(label string) []Edge {
	set, ok := g.adjacency[label]
	if !ok {
		return nil
	}
	out := make([]Edge, len(set.order))
	for i, nbr := range set.order {
		out[i] = Edge{From: label, To: nbr, Weight: set.weight[nbr]}
	}

	return out
}

// NeighborCount returns the number of distinct neighbors of label,
// which is always len(Neighbors(label)). Unknown labels have 0.
// Complexity: O(1).
func (g *Graph) NeighborCount(label string) int {
	set, ok := g.adjacency[label]
	if !ok {
		return 0
	}

	return len(set.order)
}
