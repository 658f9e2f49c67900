// File: view.go
// Role: Zero-copy read-only adjacency view for algorithms.
// Concurrency:
//   - Read executes its callback while holding the graph's read lock, so the
//     adjacency cannot change for the duration of one algorithm run.

package core

// Adjacency is a read-only view of a graph's neighbor lists, valid only
// inside the Read callback that produced it.
type Adjacency struct {
	adj [][]Neighbor
}

// Len returns the number of vertices in the view.
func (a Adjacency) Len() int { return len(a.adj) }

// Neighbors returns u's adjacency entries without copying.
// The slice must not be modified or retained after Read returns.
// u must be a valid vertex; callers validate indices before reading.
func (a Adjacency) Neighbors(u int) []Neighbor { return a.adj[u] }

// Read calls fn with a view of the adjacency lists while holding the read
// lock, and returns fn's error. AddEdge calls issued concurrently block until
// fn returns.
//
// fn must not call AddEdge on the same graph: that would deadlock.
func (g *Graph) Read(fn func(Adjacency) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(Adjacency{adj: g.adj})
}
