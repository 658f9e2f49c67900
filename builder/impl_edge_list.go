// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// impl_edge_list.go - implementation of EdgeList(edges) constructor.
//
// Contract:
//   - Adds every edge exactly as given, in order, with its own weight
//     (cfg.weightFn is not consulted).
//   - Endpoint or weight errors from core pass through wrapped.

package builder

import (
	"github.com/katalvlaran/spgraph/core"
)

const methodEdgeList = "EdgeList"

// EdgeList returns a Constructor that adds a fixed list of edges.
// The slice is copied, so later changes by the caller do not leak in.
func EdgeList(edges []core.Edge) Constructor {
	list := make([]core.Edge, len(edges))
	copy(list, edges)

	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range list {
			if err := g.AddEdge(e.U, e.V, e.Weight); err != nil {
				return builderErrorf(methodEdgeList, "edge #%d (%d—%d, w=%g): %w", i, e.U, e.V, e.Weight, err)
			}
		}

		return nil
	}
}
