// Package builder produces deterministic core.Graph fixtures for tests,
// benchmarks, examples and the command-line driver.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, opts, cons...): create a graph with n vertices and run
//     every Constructor on it in order.
//     – Textbook(): the classic 9-vertex Dijkstra example (TextbookEdges).
//   - Topology constructors (Constructor implementations):
//     – Path(), Cycle(), Star(center), Complete(), Grid(rows, cols),
//     RandomSparse(p), EdgeList(edges).
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithWeightFn.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:    constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:   fixed user-provided value.
//     – UniformWeightFn:    uniform ∼U[min,max).
//     – IntUniformWeightFn: integers uniform on [min,max].
//
// Guarantees:
//
//   - Same n, options, seed and constructor order ⇒ identical edge lists.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrDimensionMismatch, ErrConstructFailed).
//   - Option constructors panic on nil arguments (programmer error).
package builder
