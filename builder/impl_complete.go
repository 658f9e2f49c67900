// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   - V ≥ 1 (else ErrTooFewVertices).
//   - Emits i—j for every unordered pair i<j, i asc then j asc.
//
// Complexity:
//   - Time: O(V²). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/spgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_V.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, "n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}

		var (
			i, j int
			w    float64
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				w = cfg.weight()
				if err := g.AddEdge(i, j, w); err != nil {
					return builderErrorf(methodComplete, "AddEdge(%d—%d, w=%g): %w", i, j, w, err)
				}
			}
		}

		return nil
	}
}
