// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbor lists preserve insertion order per vertex.
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge connects u and v with an undirected edge of weight w.
//
// Steps:
//  1. Validate u and v against [0, V) (ErrOutOfRange).
//  2. Validate w: negative or NaN ⇒ ErrInvalidWeight.
//  3. Under the write lock append (v, w) to u's list and (u, w) to v's list.
//     A self-loop (u == v) is stored once.
//
// Parallel edges are never merged. +Inf is a legal weight: such an edge
// exists but can never shorten a path.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if err := checkVertex(u, g.n); err != nil {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, err)
	}
	if err := checkVertex(v, g.n); err != nil {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, err)
	}
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("AddEdge(%d, %d): %w: weight=%g", u, v, ErrInvalidWeight, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})
	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	if u != v {
		g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})
	}

	return nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
