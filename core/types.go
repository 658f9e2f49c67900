// File: types.go
// Role: Graph, Edge and Neighbor types, sentinel errors, NewGraph.
//
// Errors:
//
//	ErrInvalidArgument - negative vertex count passed to NewGraph.
//	ErrOutOfRange      - vertex index outside [0, V).
//	ErrInvalidWeight   - negative or NaN edge weight.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a malformed constructor argument (negative vertex count).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrOutOfRange indicates a vertex index outside [0, V).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrInvalidWeight indicates a negative or NaN edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")
)

// Edge is one undirected weighted connection between U and V, as it was added.
// U == V describes a self-loop.
type Edge struct {
	// U is the first endpoint passed to AddEdge.
	U int

	// V is the second endpoint passed to AddEdge.
	V int

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Neighbor is a single adjacency entry: the vertex on the other side of an
// edge and the weight of that edge.
type Neighbor struct {
	To     int
	Weight float64
}

// Graph is a weighted undirected graph over the vertices [0, V).
//
// The vertex count is fixed at construction. Each AddEdge call appends one
// entry to both endpoint lists (a self-loop appends one entry), so parallel
// edges are kept side by side and the adjacency relation is always symmetric.
type Graph struct {
	mu sync.RWMutex // guards adj and edges

	n     int          // vertex count, immutable after NewGraph
	adj   [][]Neighbor // adj[u] = neighbors of u in insertion order
	edges []Edge       // edge catalogue in insertion order
}

// NewGraph creates a graph with n vertices and no edges.
// It returns ErrInvalidArgument if n is negative.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: vertex count %d is negative", ErrInvalidArgument, n)
	}

	return &Graph{
		n:   n,
		adj: make([][]Neighbor, n),
	}, nil
}

// checkVertex validates that u lies in [0, n).
func checkVertex(u, n int) error {
	if u < 0 || u >= n {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrOutOfRange, u, n)
	}

	return nil
}

// CheckVertex reports ErrOutOfRange (wrapped with the offending index) when u
// is not a vertex of g. Algorithms use it to validate caller input.
func (g *Graph) CheckVertex(u int) error {
	return checkVertex(u, g.n)
}
