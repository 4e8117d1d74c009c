package threshold

import (
	"sort"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/unionfind"
)

// SmallestConnectingThreshold returns the minimum bottleneck weight between
// start and end, and false if no path joins them.
func SmallestConnectingThreshold(g *core.Graph, start, end string) (float64, bool) {
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return 0, false
	}
	if start == end {
		return 0, true
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := unionfind.NewFrom(g.Nodes())
	for _, e := range edges {
		if joins(uf, e, start, end) {
			return e.Weight, true
		}
	}

	return 0, false
}

// joins merges e's endpoints and reports whether that merge put start and end
// in one set. uf holds every node of the graph, so an unknown-element error
// means e is not from that graph; it is treated as no join.
func joins(uf *unionfind.UnionFind, e core.Edge, start, end string) bool {
	merged, err := uf.Union(e.From, e.To)
	if err != nil || !merged {
		return false
	}
	ok, err := uf.Connected(start, end)

	return err == nil && ok
}
