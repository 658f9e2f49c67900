// Package core provides the in-memory weighted undirected Graph that the
// shortest-path algorithms in this module run on.
//
// Vertices are the integers [0, V), where V is fixed by NewGraph. Edges are
// stored as adjacency lists:
//
//	adj[u] = [(v1, w1), (v2, w2), ...]
//
// and every AddEdge(u, v, w) appends to both adj[u] and adj[v], so the
// adjacency relation is symmetric at all times. Parallel edges are kept as
// separate entries; self-loops are allowed and stored once.
//
// Core methods:
//
//	NewGraph(n int) (*Graph, error)             // O(n)
//	AddEdge(u, v int, w float64) error          // O(1) amortized
//	Neighbors(u int) ([]Neighbor, error)        // O(deg(u)), copy
//	Degree(u int) (int, error)                  // O(1)
//	Edges() []Edge                              // O(E), insertion order
//	VertexCount() int / EdgeCount() int         // O(1)
//	Read(fn func(Adjacency) error) error        // zero-copy view under read lock
//	Clone() *Graph                              // O(V + E)
//
// Weights:
//
//   - Must be non-negative and not NaN (ErrInvalidWeight otherwise).
//     Rejecting negative weights up front keeps Dijkstra's precondition true
//     for every graph this package can build.
//   - +Inf is accepted and behaves like an edge that can never be used.
//
// Errors:
//
//   - ErrInvalidArgument: NewGraph with n < 0.
//   - ErrOutOfRange:      any vertex index outside [0, V).
//   - ErrInvalidWeight:   negative or NaN weight in AddEdge.
//
// All errors are wrapped with call context; branch on them with errors.Is.
//
// Concurrency:
//
//   - A sync.RWMutex guards the adjacency lists and the edge catalogue.
//   - Any number of readers (Neighbors, Edges, Read, Clone) may run together.
//   - AddEdge waits for in-flight readers, so an algorithm running inside
//     Read always sees one consistent graph.
package core
