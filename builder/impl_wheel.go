// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Builds the rim with Cycle(n-1), then spokes from CenterID in rim order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds a rim Cycle(n-1) over idFn(0)…idFn(n-2) plus a spoke from
// CenterID to every rim node. Rim edges come first, then spokes.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, CenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
