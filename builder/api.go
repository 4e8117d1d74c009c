// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go — public entry points: Constructor, BuildGraph and Topology.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor adds nodes and edges to g using the resolved configuration.
// Implementations must not panic; they return wrapped sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new graph and applies every constructor in order.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology names a constructor and its size parameters, for callers that
// select a shape at run time.
type Topology struct {
	Kind string  // path, cycle, star, wheel, complete, grid or random
	N    int     // node count (all kinds except grid)
	Rows int     // grid only
	Cols int     // grid only
	P    float64 // random only
}

// Constructor resolves t to its Constructor.
func (t Topology) Constructor() (Constructor, error) {
	switch t.Kind {
	case "path":
		return Path(t.N), nil
	case "cycle":
		return Cycle(t.N), nil
	case "star":
		return Star(t.N), nil
	case "wheel":
		return Wheel(t.N), nil
	case "complete":
		return Complete(t.N), nil
	case "grid":
		return Grid(t.Rows, t.Cols), nil
	case "random":
		return RandomSparse(t.N, t.P), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, t.Kind)
	}
}

// addNodes registers labels idFn(from)…idFn(to-1).
func addNodes(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u–v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.InsertEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: InsertEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
