package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/spgraph/builder"
	"github.com/katalvlaran/spgraph/dijkstra"
)

// BenchmarkDijkstra_Path runs Dijkstra on a path of N vertices.
func BenchmarkDijkstra_Path(b *testing.B) {
	const N = 10000
	g, err := builder.BuildGraph(N, nil, builder.Path())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0)
	}
}

// BenchmarkDijkstra_Grid runs Dijkstra on a 100×100 grid with random weights.
func BenchmarkDijkstra_Grid(b *testing.B) {
	const rows, cols = 100, 100
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
	}
	g, err := builder.BuildGraph(rows*cols, opts, builder.Grid(rows, cols))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(rows*cols + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0)
	}
}

// BenchmarkDijkstra_RandomSparse runs Dijkstra with paths on G(2000, 0.005).
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	const N = 2000
	opts := []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFn(builder.IntUniformWeightFn(1, 100)),
	}
	g, err := builder.BuildGraph(N, opts, builder.RandomSparse(0.005))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	}
}
