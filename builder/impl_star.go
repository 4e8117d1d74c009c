// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds CenterID first, then leaves idFn(1)..idFn(n-1) with their spokes.
//   - Returns only sentinel errors; never panics.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterID is the hub label used by Star and Wheel.
	CenterID = "Center"
)

// Star builds a hub CenterID joined to leaves idFn(1)…idFn(n-1).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddNode(CenterID); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterID, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, CenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
