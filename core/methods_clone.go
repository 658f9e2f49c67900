// File: methods_clone.go
// Role: Deep copy of a graph.
// Concurrency:
//   - Read lock on the source; the clone shares no memory with it.

package core

// Clone returns a deep copy of g: same vertex count, same edges in the same
// order, same adjacency lists. Later AddEdge calls on either graph do not
// affect the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		n:     g.n,
		adj:   make([][]Neighbor, g.n),
		edges: make([]Edge, len(g.edges)),
	}
	copy(clone.edges, g.edges)
	for u, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		clone.adj[u] = make([]Neighbor, len(list))
		copy(clone.adj[u], list)
	}

	return clone
}
