// Package spgraph computes single-source shortest paths over weighted
// undirected graphs whose vertices are the integers 0..V-1.
//
// What is inside?
//
//	core/      — Graph: fixed vertex count, symmetric adjacency lists,
//	             non-negative weights, thread-safe under an RWMutex
//	dijkstra/  — Dijkstra(g, source, opts...) with a binary heap and lazy
//	             deletion of stale entries; distances, predecessors, hooks
//	builder/   — deterministic fixtures: path, cycle, star, complete, grid,
//	             random sparse, explicit edge lists, the textbook graph
//	cmd/spgraph — command-line driver (demo, run, version)
//
// Quick example:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(0, 1, 2.5)
//	_ = g.AddEdge(2, 3, 1)
//	res, _ := dijkstra.Dijkstra(g, 0)
//	// res.Dist == [0 2.5 +Inf +Inf]
//
// Unreachable vertices keep a distance of +Inf. Errors are sentinel values
// matched with errors.Is: core.ErrInvalidArgument, core.ErrOutOfRange,
// core.ErrInvalidWeight and the dijkstra.Err* values.
//
//	go get github.com/katalvlaran/spgraph
package spgraph
