// File: methods_edges.go
// Role: Edge insertion and edge queries: InsertEdge/EdgeWeight/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() walks nodes in creation order and neighbors in insertion order,
//     reporting each unordered pair once.
// Concurrency:
//   - No locking; InsertEdge must not run concurrently with any other method.

package core

import "math"

// InsertEdge adds the undirected edge u–v with weight w.
//
// Steps:
//  1. Validate labels (ErrEmptyLabel) and weight (ErrBadWeight for NaN).
//  2. Ensure both endpoints have an adjacency entry (creation order recorded).
//  3. Store v in u's neighbor set and u in v's neighbor set with weight w;
//     a second insertion for the same pair replaces the weight in place.
//  4. Count the call.
//
// No sign check is made; negative weights are accepted here and break the
// guarantees of the weighted algorithms.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(u, v string, w float64) error {
	// 1) Input validation
	if u == "" || v == "" {
		return ErrEmptyLabel
	}
	if math.IsNaN(w) {
		return ErrBadWeight
	}

	// 2) Endpoints
	su := g.ensureNode(u)
	sv := g.ensureNode(v)

	// 3) Symmetric adjacency; for a self-loop both puts hit the same set.
	su.put(v, w)
	sv.put(u, w)

	// 4) Every call counts, duplicates included.
	g.insertions++

	return nil
}

// EdgeWeight returns the weight stored for the pair u–v.
// The boolean is false when no such edge exists (including unknown labels),
// so a missing edge is never confused with a weight value.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v string) (float64, bool) {
	set, ok := g.adjacency[u]
	if !ok {
		return 0, false
	}
	w, ok := set.weight[v]

	return w, ok
}

// HasEdge reports whether u and v are adjacent. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.EdgeWeight(u, v)
	return ok
}

// EdgeCount returns the number of InsertEdge calls that succeeded.
// Duplicate insertions for one pair are all counted; see Stats().DistinctEdges
// for the number of unordered pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.insertions }

// Edges returns every distinct unordered pair once, with the weight currently
// stored for it. From is the endpoint created first; the slice is ordered by
// From's creation order, then by To's position in From's neighbor list.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.insertions)
	var (
		set *neighborSet
		nbr string
	)
	for _, label := range g.labels {
		set = g.adjacency[label]
		for _, nbr = range set.order {
			// Report each pair from its earlier endpoint only; self-loops have
			// nbr == label and pass exactly once.
			if nbr != label && g.precedes(nbr, label) {
				continue
			}
			out = append(out, Edge{From: label, To: nbr, Weight: set.weight[nbr]})
		}
	}

	return out
}
