// Package core defines the Graph and Edge types together with the sentinel
// errors returned while building a graph.
//
// This file declares Edge, Graph, the internal neighbor set, sentinel errors,
// and the NewGraph/FromEdges constructors.
//
// Errors:
//
//	ErrEmptyLabel     - node label is the empty string.
//	ErrBadWeight      - edge weight is NaN.
//	ErrNodeNotFound   - requested node does not exist (used by strict callers).
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that an empty node label was supplied.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrBadWeight indicates an edge weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: edge weight is not a number")

	// ErrNodeNotFound indicates an operation referenced a node that was never inserted.
	// Core queries never return it; algorithm packages with strict contracts do.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is one undirected connection between two node labels.
//
// From and To carry no direction; Edges() reports each unordered pair once with
// From being the endpoint that was registered first.
type Edge struct {
	// From is one endpoint label.
	From string

	// To is the other endpoint label.
	To string

	// Weight is the cost attached to the pair.
	Weight float64
}

// neighborSet keeps the neighbors of one node in first-insertion order
// together with the current weight for each of them.
type neighborSet struct {
	order  []string           // neighbor labels, first-insertion order
	weight map[string]float64 // neighbor label → latest weight
}

func newNeighborSet() *neighborSet {
	return &neighborSet{weight: make(map[string]float64)}
}

// put stores w for nbr, appending nbr to the order on first sight.
func (s *neighborSet) put(nbr string, w float64) {
	if _, ok := s.weight[nbr]; !ok {
		s.order = append(s.order, nbr)
	}
	s.weight[nbr] = w
}

// Graph is an undirected weighted graph over string labels.
//
// adjacency maps every known label to its neighbor set; labels records the same
// keys in creation order and position inverts it for O(1) order comparisons.
// insertions counts InsertEdge calls, duplicates included.
type Graph struct {
	adjacency  map[string]*neighborSet
	labels     []string
	position   map[string]int
	insertions int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]*neighborSet),
		position:  make(map[string]int),
	}
}

// FromEdges builds a Graph by calling InsertEdge for every element of edges in order.
// The first failing edge aborts construction and is reported with its index.
// Complexity: O(len(edges)) amortized.
func FromEdges(edges []Edge) (*Graph, error) {
	g := NewGraph()
	for i, e := range edges {
		if err := g.InsertEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("core: edge #%d (%q, %q): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
