// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - rows*cols == V (else ErrDimensionMismatch).
//   - Vertex of cell (r, c) is r*cols + c (row-major).
//   - For each cell in row-major order: right edge first, then down edge.
//
// Complexity:
//   - Time: O(rows*cols). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/spgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridIndex returns the vertex index of cell (r, c) in a grid with cols columns.
func GridIndex(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, "rows=%d, cols=%d < min=%d: %w", rows, cols, minGridDim, ErrTooFewVertices)
		}
		if n := g.VertexCount(); rows*cols != n {
			return builderErrorf(methodGrid, "%d×%d != n=%d: %w", rows, cols, n, ErrDimensionMismatch)
		}

		var (
			r, c, u, v int
			w          float64
		)
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = GridIndex(r, c, cols)
				if c+1 < cols {
					v = GridIndex(r, c+1, cols)
					w = cfg.weight()
					if err := g.AddEdge(u, v, w); err != nil {
						return builderErrorf(methodGrid, "AddEdge(%d—%d, w=%g): %w", u, v, w, err)
					}
				}
				if r+1 < rows {
					v = GridIndex(r+1, c, cols)
					w = cfg.weight()
					if err := g.AddEdge(u, v, w); err != nil {
						return builderErrorf(methodGrid, "AddEdge(%d—%d, w=%g): %w", u, v, w, err)
					}
				}
			}
		}

		return nil
	}
}
