// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g with n vertices,
//     resolves cfg, runs cons in order.
//   - Constructors only add edges; the vertex set [0, n) is fixed by BuildGraph.
//   - Determinism: same n/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Draw weights only through cfg.weight() so seeding stays effective.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any error is wrapped with the context "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Errors:
//   - core.ErrInvalidArgument for n < 0.
//   - ErrConstructFailed for a nil constructor.
//   - Whatever a constructor returns (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// TextbookEdges is the classic 9-vertex weighted example used to teach
// Dijkstra's algorithm. Distances from vertex 0 are
// {0:0, 1:4, 2:12, 3:19, 4:21, 5:11, 6:9, 7:8, 8:14}.
var TextbookEdges = []core.Edge{
	{U: 0, V: 1, Weight: 4},
	{U: 0, V: 7, Weight: 8},
	{U: 1, V: 2, Weight: 8},
	{U: 1, V: 7, Weight: 11},
	{U: 2, V: 3, Weight: 7},
	{U: 2, V: 8, Weight: 2},
	{U: 2, V: 5, Weight: 4},
	{U: 3, V: 4, Weight: 9},
	{U: 3, V: 5, Weight: 14},
	{U: 4, V: 5, Weight: 10},
	{U: 5, V: 6, Weight: 2},
	{U: 6, V: 7, Weight: 1},
	{U: 6, V: 8, Weight: 6},
	{U: 7, V: 8, Weight: 7},
}

// TextbookVertices is the vertex count of the TextbookEdges graph.
const TextbookVertices = 9

// Textbook builds a fresh copy of the 9-vertex TextbookEdges graph.
func Textbook() (*core.Graph, error) {
	return BuildGraph(TextbookVertices, nil, EdgeList(TextbookEdges))
}
