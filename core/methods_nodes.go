// File: methods_nodes.go
// Role: Node registration and node-level queries: AddNode/HasNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns labels in creation order (first adjacency entry wins).
// Concurrency:
//   - No locking; see package doc for the build-then-read contract.

package core

// AddNode registers label without any edge so that isolated nodes survive
// loading. Registering a known label is a no-op.
//
// Errors:
//   - ErrEmptyLabel: if label == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	g.ensureNode(label)

	return nil
}

// ensureNode creates the adjacency entry for label on first sight and
// returns its neighbor set.
func (g *Graph) ensureNode(label string) *neighborSet {
	set, ok := g.adjacency[label]
	if !ok {
		set = newNeighborSet()
		g.adjacency[label] = set
		g.position[label] = len(g.labels)
		g.labels = append(g.labels, label)
	}

	return set
}

// HasNode reports whether label was registered.
// Complexity: O(1).
func (g *Graph) HasNode(label string) bool {
	_, ok := g.adjacency[label]
	return ok
}

// Nodes returns all node labels in creation order.
// The returned slice is a copy; callers may modify it.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.labels) }

// precedes reports whether a was registered before b. Both labels must be known.
func (g *Graph) precedes(a, b string) bool {
	return g.position[a] < g.position[b]
}
