package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spgraph/core"
)

// ExampleGraph demonstrates construction, symmetric edge insertion and queries.
func ExampleGraph() {
	g, err := core.NewGraph(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 2.5)

	nbs, _ := g.Neighbors(1)
	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())
	fmt.Println("neighbors of 1:", nbs)

	// Output:
	// vertices: 3 edges: 2
	// neighbors of 1: [{0 4} {2 2.5}]
}

// ExampleGraph_AddEdge shows how invalid input is reported.
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(2)

	err := g.AddEdge(0, 2, 1)
	fmt.Println(errors.Is(err, core.ErrOutOfRange))

	err = g.AddEdge(0, 1, -3)
	fmt.Println(errors.Is(err, core.ErrInvalidWeight))

	// Output:
	// true
	// true
}
