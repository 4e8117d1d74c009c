// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a built graph.
// Policy:
//   - No algorithms here beyond a single counting pass.
//   - Every exported function documents complexity.

package core

import "math"

// GraphStats is a snapshot of a Graph's size and weight range.
type GraphStats struct {
	// Nodes is the number of registered labels.
	Nodes int

	// Insertions is the number of InsertEdge calls (EdgeCount()).
	Insertions int

	// DistinctEdges is the number of unordered pairs actually stored.
	DistinctEdges int

	// SelfLoops is the number of labels adjacent to themselves.
	SelfLoops int

	// Isolated is the number of labels with no neighbor at all.
	Isolated int

	// MinWeight and MaxWeight bound the stored weights; both are 0 when
	// DistinctEdges == 0.
	MinWeight float64
	MaxWeight float64
}

// Stats produces a deterministic snapshot of the graph's size figures.
//
// Implementation:
//   - Stage 1: Copy the O(1) counters.
//   - Stage 2: Walk Edges() once to count distinct pairs and loops, and track the weight range.
//   - Stage 3: Count labels with an empty neighbor set.
//
// Complexity:
//   - Time O(V+E), Space O(E) for the temporary edge list.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		Nodes:      len(g.labels),
		Insertions: g.insertions,
	}

	minW, maxW := math.Inf(1), math.Inf(-1)
	for _, e := range g.Edges() {
		stats.DistinctEdges++
		if e.From == e.To {
			stats.SelfLoops++
		}
		minW = math.Min(minW, e.Weight)
		maxW = math.Max(maxW, e.Weight)
	}
	if stats.DistinctEdges > 0 {
		stats.MinWeight, stats.MaxWeight = minW, maxW
	}

	for _, label := range g.labels {
		if len(g.adjacency[label].order) == 0 {
			stats.Isolated++
		}
	}

	return stats
}
