// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// impl_star.go - implementation of Star(center) constructor.
//
// Contract:
//   - V ≥ 2 (else ErrTooFewVertices); center ∈ [0, V) (else core.ErrOutOfRange).
//   - Emits center—leaf for every other vertex in ascending order.
//
// Complexity:
//   - Time: O(V). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/spgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that connects center to every other vertex.
func Star(center int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minStarNodes {
			return builderErrorf(methodStar, "n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.CheckVertex(center); err != nil {
			return builderErrorf(methodStar, "center: %w", err)
		}

		var w float64
		for leaf := 0; leaf < n; leaf++ {
			if leaf == center {
				continue
			}
			w = cfg.weight()
			if err := g.AddEdge(center, leaf, w); err != nil {
				return builderErrorf(methodStar, "AddEdge(%d—%d, w=%g): %w", center, leaf, w, err)
			}
		}

		return nil
	}
}
