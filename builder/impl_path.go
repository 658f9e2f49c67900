// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// impl_path.go - implementation of Path() constructor.
//
// Contract:
//   - V ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)—i for i=1..V-1 in stable increasing order.
//   - Weights drawn from cfg.weightFn.
//
// Complexity:
//   - Time: O(V). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/spgraph/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links all vertices into the path 0—1—…—(V-1).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return builderErrorf(methodPath, "n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}

		var w float64
		for i := 1; i < n; i++ {
			w = cfg.weight()
			if err := g.AddEdge(i-1, i, w); err != nil {
				return builderErrorf(methodPath, "AddEdge(%d—%d, w=%g): %w", i-1, i, w, err)
			}
		}

		return nil
	}
}
