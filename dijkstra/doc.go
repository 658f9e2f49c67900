// Package dijkstra provides an implementation of Dijkstra's single-source
// shortest-path algorithm on core.Graph (weighted, undirected, vertices [0, V)).
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a source vertex to every
//     vertex in O((V + E) log V) time.
//   - It relies on a min-heap (container/heap) to always expand the next-closest vertex.
//   - Stale heap entries are dropped lazily on pop: there is no decrease-key.
//   - Unreachable vertices keep +Inf (math.Inf(1)); callers must check with
//     DistanceTable.Reachable or math.IsInf, nothing is substituted for them.
//
// Algorithm:
//
//  1. dist[v] = +Inf for all v, dist[source] = 0; push (0, source).
//  2. Pop the minimum (d, u). If d > dist[u] the entry is stale: skip it.
//  3. For every neighbor (n, w) of u: cand = dist[u] + w; if cand < dist[n],
//     set dist[n] = cand and push (cand, n).
//  4. Repeat until the heap is empty.
//
// Equal-distance entries may pop in any order; final distances are identical
// for every order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        g == nil.
//   - ErrOptionViolation: negative/NaN MaxDistance, non-positive/NaN InfEdgeThreshold.
//   - core.ErrOutOfRange: source outside [0, V) (including source == V).
//   - ErrNoPath:          Result.PathTo on an unreachable vertex.
//   - ErrNoPredecessors:  Result.PathTo without WithReturnPath.
//
// Negative weights cannot occur: core.Graph.AddEdge rejects them with
// core.ErrInvalidWeight.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error)
//
//	  - opts:
//	      • WithReturnPath():              fill Result.Prev, enable Result.PathTo.
//	      • WithMaxDistance(float64):      stop relaxing beyond the given distance.
//	      • WithInfEdgeThreshold(float64): skip any edge whose weight ≥ threshold.
//	      • WithOnVisit(fn), WithOnRelax(fn): observation hooks.
//	  - Result.Dist:  DistanceTable, one float64 per vertex.
//	  - Result.Prev:  predecessor per vertex or NoPredecessor; nil without WithReturnPath.
//	  - Result.Stats: pushes, pops, stale skips and relaxations of the run.
//
// Thread safety:
//
//   - A run holds the graph's read lock for its whole duration, so any number
//     of Dijkstra calls may share one graph, and AddEdge calls wait for them.
//   - Hooks run on the calling goroutine while that lock is held; they must
//     not call AddEdge on the same graph.
package dijkstra
