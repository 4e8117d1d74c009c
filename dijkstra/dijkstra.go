// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes in g. It accepts functional options to customize
// behavior (ReturnPath, MaxDistance, InfEdgeThreshold, Target).
//
// Returns:
//
//   - dist: map from node label to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 5) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	if err := CheckWeights(g); err != nil {
		return nil, nil, err
	}

	// 6) Run the main loop.
	r := newRunner(g, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the cheapest path from start to end as a Path of steps.
// It is total over its input:
//   - nil graph, unknown start or end, or unreachable end: nil;
//   - start == end (known): a single zero-weight Step{start, start, 0};
//   - otherwise one Step per edge, Weight = dist[To] - dist[From].
//
// Weights are assumed non-negative and are not re-validated here; call
// CheckWeights first, or use Dijkstra, for a checked run.
//
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, start, end string) Path {
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return nil
	}
	if start == end {
		return Path{{From: start, To: start, Weight: 0}}
	}

	cfg := DefaultOptions(start)
	cfg.ReturnPath = true
	cfg.Target = end
	r := newRunner(g, cfg)
	r.process()

	if math.IsInf(r.dist[end], 1) {
		return nil
	}

	// Walk predecessors back from end, then reverse.
	var path Path
	for cur := end; cur != start; cur = r.prev[cur] {
		from := r.prev[cur]
		path = append(path, Step{From: from, To: cur, Weight: r.dist[cur] - r.dist[from]})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// CheckWeights returns ErrNegativeWeight, naming the first offending edge in
// Edges() order, if any edge of g is negative. A nil graph passes.
// Complexity: O(V + E).
func CheckWeights(g *core.Graph) error {
	if g == nil {
		return nil
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s–%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	dist    map[string]float64 // Maps node label → current best distance from Source.
	prev    map[string]string  // Maps node label → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a node's distance is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
	pushes  int                // Monotonic push counter for FIFO tie-breaking.
}

// newRunner allocates state and seeds the heap with Source at distance 0.
// Predecessors are tracked only when cfg.ReturnPath is set.
func newRunner(g *core.Graph, cfg Options) *runner {
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(nodes))
	}

	// 1) dist[v] = +∞ for every node; prev[v] = "".
	inf := math.Inf(1)
	for _, v := range nodes {
		r.dist[v] = inf
		if r.prev != nil {
			r.prev[v] = ""
		}
	}

	// 2) Distance to the source is zero.
	r.dist[cfg.Source] = 0

	// 3) Initialize the heap and push the source.
	heap.Init(&r.pq)
	r.push(cfg.Source, 0)

	return r
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the node
// with the minimum distance from the source and relaxes its incident edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The Target node has just been settled.
func (r *runner) process() {
	var (
		u string
		d float64
	)
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// 2) Skip stale entries of already settled nodes.
		if r.visited[u] {
			continue
		}

		// 3) Beyond MaxDistance nothing else can be settled.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Settle u.
		r.visited[u] = true
		if r.options.Target != "" && u == r.options.Target {
			break
		}

		// 5) Relax all edges incident to u.
		r.relax(u)
	}
}

// relax examines each edge incident to u and attempts to improve distances to its neighbors.
// Edges at or above InfEdgeThreshold are ignored. A strictly shorter candidate
// updates dist and prev and pushes a new heap entry.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) {
	var (
		v       string
		w       float64
		newDist float64
	)
	for _, e := range r.g.NeighborEdges(u) {
		v = e.To
		w = e.Weight

		// Settled nodes are final.
		if r.visited[v] {
			continue
		}

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; equal distances keep the earlier predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		// Lazy decrease-key: older entries for v stay in the heap and are skipped on pop.
		r.push(v, newDist)
	}
}

// push stamps a new heap entry with the next sequence number.
func (r *runner) push(id string, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.pushes})
	r.pushes++
}

// nodeItem represents a node and its tentative distance from the source.
// seq records push order so that equal distances pop first-in, first-out.
type nodeItem struct {
	id   string
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) {
	*pq = append(*pq, x.(*nodeItem))
}

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
