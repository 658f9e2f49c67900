// File: methods_vertices.go
// Role: Vertex queries: VertexCount/HasVertex/Neighbors/Degree.
//
// Concurrency:
//   - The vertex count is immutable and read without locking.
//   - Adjacency reads take the read lock.

package core

import "fmt"

// VertexCount returns V, the number of vertices fixed at construction.
func (g *Graph) VertexCount() int { return g.n }

// HasVertex reports whether u lies in [0, V).
func (g *Graph) HasVertex(u int) bool { return u >= 0 && u < g.n }

// Neighbors returns a copy of u's adjacency entries in insertion order.
// Parallel edges appear once per edge; a self-loop appears once.
//
// Errors:
//   - ErrOutOfRange: u outside [0, V).
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if err := checkVertex(u, g.n); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, err)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Degree returns the number of adjacency entries of u.
// A self-loop counts once, each parallel edge counts separately.
func (g *Graph) Degree(u int) (int, error) {
	if err := checkVertex(u, g.n); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", u, err)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}
