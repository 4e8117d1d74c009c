// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// ErrInvalidGraph indicates that MST algorithms received no graph to work on.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrEmptyRoot indicates that no start node was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. It also covers the empty graph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   string — start node label for Prim; ignored when Method == MethodKruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, then applies opts in order:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal).
//
// Complexity: O(len(opts)).
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, opts.Root).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — slice of edges in MST (empty if graph has a single node).
//	float64     — total weight of MST (zero if no edges).
//	error       — non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// Bottleneck returns the largest edge weight on the tree path between u and v
// in the spanning tree (or forest) mst, and false when no such path exists.
// u == v yields (0, true).
//
// Complexity: O(len(mst)).
func Bottleneck(mst []core.Edge, u, v string) (float64, bool) {
	if u == v {
		return 0, true
	}

	adj := make(map[string][]core.Edge, 2*len(mst))
	for _, e := range mst {
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], core.Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	// Iterative DFS carrying the running maximum; a tree has one path per pair.
	type frame struct {
		node string
		max  float64
	}
	seen := map[string]bool{u: true}
	stack := []frame{{node: u, max: math.Inf(-1)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range adj[f.node] {
			if seen[e.To] {
				continue
			}
			m := math.Max(f.max, e.Weight)
			if e.To == v {
				return m, true
			}
			seen[e.To] = true
			stack = append(stack, frame{node: e.To, max: m})
		}
	}

	return 0, false
}
