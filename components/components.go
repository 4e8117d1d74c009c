package components

import (
	"github.com/katalvlaran/wgraph/core"
)

// ConnectedComponents returns the threshold components of g at threshold T.
// Components are ordered by their first node in g.Nodes(); each component
// starts with that node followed by BFS discovery order.
// A nil graph yields nil.
func ConnectedComponents(g *core.Graph, T float64) [][]string {
	if g == nil {
		return nil
	}

	nodes := g.Nodes()
	seen := make(map[string]bool, len(nodes))
	var comps [][]string

	for _, root := range nodes {
		if seen[root] {
			continue
		}
		comps = append(comps, collect(g, root, T, seen))
	}

	return comps
}

// ComponentOf returns the threshold component containing label, in the same
// BFS order ConnectedComponents would use when starting from label.
// Unknown labels and a nil graph yield nil.
func ComponentOf(g *core.Graph, label string, T float64) []string {
	if g == nil || !g.HasNode(label) {
		return nil
	}

	return collect(g, label, T, make(map[string]bool))
}

// collect runs one BFS from root, marking every reached node in seen.
// Edges with weight > T (or any edge when T is NaN) are not followed.
func collect(g *core.Graph, root string, T float64, seen map[string]bool) []string {
	queue := []string{root}
	seen[root] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, e := range g.NeighborEdges(u) {
			// NaN compares false, so a NaN threshold admits nothing.
			if !(e.Weight <= T) || seen[e.To] {
				continue
			}
			seen[e.To] = true
			queue = append(queue, e.To)
		}
	}

	return queue
}
