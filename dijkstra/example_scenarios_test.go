package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/spgraph/core"
	"github.com/katalvlaran/spgraph/dijkstra"
)

// Example_cityRoute finds the fastest drive between two intersections.
// Travel times are minutes; the C–D road is closed, modelled as a huge
// weight that WithInfEdgeThreshold turns into "impassable".
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]    <-- C–D is closed
//	  | \        \10
//	5 |  \       [E]
//	  |   \        \3
//	 [D]---6-------[F]
func Example_cityRoute() {
	names := []string{"A", "B", "C", "D", "E", "F"}
	const A, B, C, D, E, F = 0, 1, 2, 3, 4, 5

	g, _ := core.NewGraph(len(names))
	roads := []core.Edge{
		{U: A, V: B, Weight: 4},
		{U: A, V: C, Weight: 2},
		{U: B, V: C, Weight: 1},
		{U: B, V: D, Weight: 5},
		{U: C, V: D, Weight: 1e9},
		{U: C, V: E, Weight: 10},
		{U: D, V: F, Weight: 6},
		{U: E, V: F, Weight: 3},
	}
	for _, r := range roads {
		_ = g.AddEdge(r.U, r.V, r.Weight)
	}

	res, err := dijkstra.Dijkstra(g, A,
		dijkstra.WithReturnPath(),
		dijkstra.WithInfEdgeThreshold(1e6),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.PathTo(F)
	fmt.Println("Fastest route from A to F:")
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		fmt.Printf("  %s → %s : %g min\n", names[u], names[v], res.Dist[v]-res.Dist[u])
	}
	fmt.Printf("Total travel time: %g minutes\n", res.Dist[F])
	// Output:
	// Fastest route from A to F:
	//   A → C : 2 min
	//   C → B : 1 min
	//   B → D : 5 min
	//   D → F : 6 min
	// Total travel time: 14 minutes
}

// Example_terrain picks the least-energy trail across six waypoints.
//
//	P1───1───P2───3───P3
//	 │       │
//	 4       2
//	 │       │
//	P4───1───P5───5───P6
func Example_terrain() {
	const P1, P2, P3, P4, P5, P6 = 0, 1, 2, 3, 4, 5

	g, _ := core.NewGraph(6)
	_ = g.AddEdge(P1, P2, 1)
	_ = g.AddEdge(P2, P3, 3)
	_ = g.AddEdge(P1, P4, 4)
	_ = g.AddEdge(P2, P5, 2)
	_ = g.AddEdge(P4, P5, 1)
	_ = g.AddEdge(P5, P6, 5)

	settled := 0
	res, _ := dijkstra.Dijkstra(g, P1,
		dijkstra.WithReturnPath(),
		dijkstra.WithOnVisit(func(int, float64) { settled++ }),
	)

	path, _ := res.PathTo(P6)
	for i := range path {
		path[i]++ // waypoint labels are 1-based
	}
	fmt.Println("trail:", path, "energy:", res.Dist[P6])
	fmt.Println("waypoints settled:", settled)
	// Output:
	// trail: [1 2 5 6] energy: 8
	// waypoints settled: 6
}
