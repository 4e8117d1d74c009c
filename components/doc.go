// Package components partitions a core.Graph into threshold components.
//
// A threshold component is a maximal set of nodes connected using only edges
// whose weight is ≤ T. Every registered node belongs to exactly one component;
// a node whose incident edges all exceed T (or an isolated node) forms a
// singleton.
//
// Traversal is breadth-first over nodes in creation order, expanding neighbors
// in first-insertion order, so both the list of components and the order of
// nodes inside each component are reproducible.
//
// A NaN threshold admits no edge: every node is its own component.
//
// Complexity: O(V + E) time, O(V) extra memory.
package components
