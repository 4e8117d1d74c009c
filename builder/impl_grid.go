// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Labels are "r,c" (GridID); cfg.idFn is not consulted.
//   - Nodes row by row, then per cell the right edge before the down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"; IDFn does not apply to grids
)

// GridID returns the label of cell (r, c) as used by Grid.
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid builds a rows×cols 4-neighbourhood lattice. Nodes are created row by
// row; each cell then links right and down.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddNode(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
