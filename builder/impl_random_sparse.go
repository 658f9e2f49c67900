// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - V ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p == 0 adds nothing, p == 1 is Complete().
//
// Complexity:
//   - Time: O(V²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order (i asc, j asc), so a fixed seed fixes the edge set
//     and the weights.

package builder

import (
	"github.com/katalvlaran/spgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(V, p).
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minRandomSparseVertices {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		var (
			i, j int
			w    float64
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				w = cfg.weight()
				if err := g.AddEdge(i, j, w); err != nil {
					return builderErrorf(methodRandomSparse, "AddEdge(%d—%d, w=%g): %w", i, j, w, err)
				}
			}
		}

		return nil
	}
}
