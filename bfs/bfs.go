// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, neighbor filtering and early stop.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// queueItem pairs a node label with its BFS depth and its parent's label.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(startID, 0, "")
	if w.res.Found {
		return w.res, nil
	}
	// Main loop
	return w.res, w.loop()
}

// ShortestPath returns the fewest-hops path from start to end, both ends
// included. It is total over its input:
//   - start == end (known): [start];
//   - unknown start or end, nil graph, or no path: nil.
//
// The search stops as soon as end is discovered.
// Complexity: O(V + E) worst case.
func ShortestPath(g *core.Graph, start, end string) []string {
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return nil
	}
	if start == end {
		return []string{start}
	}

	res, err := BFS(g, start, WithTarget(end))
	if err != nil || !res.Found {
		return nil
	}
	path, err := res.PathTo(end)
	if err != nil {
		return nil
	}

	return path
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue. Discovering the target flags the result.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
	if w.opts.Target != "" && id == w.opts.Target {
		w.res.Found = true
	}
}

// loop processes the queue until empty, error, or the target is found.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
		if w.res.Found {
			return nil
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor, stopping right after the target is discovered.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.NeighborEdges(item.id) {
		if w.visited[e.To] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, e.To, e.Weight) {
			continue
		}
		w.enqueue(e.To, nextDepth, item.id)
		if w.res.Found {
			return
		}
	}
}
