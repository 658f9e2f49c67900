// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   - V ≥ 3 (else ErrTooFewVertices).
//   - Emits i—(i+1) for i=0..V-2, then the closing edge (V-1)—0.
//
// Complexity:
//   - Time: O(V). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/spgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that links all vertices into the ring C_V.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}

		var (
			v int
			w float64
		)
		for u := 0; u < n; u++ {
			v = (u + 1) % n
			w = cfg.weight()
			if err := g.AddEdge(u, v, w); err != nil {
				return builderErrorf(methodCycle, "AddEdge(%d—%d, w=%g): %w", u, v, w, err)
			}
		}

		return nil
	}
}
