package shortest_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/builder"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/shortest"
)

// ExampleShortestPaths runs the engine on the seven-vertex reference
// graph. No edge is negative, so Dijkstra is selected; D is reached
// only through E (A→F→E→D, cost 11).
// fmt prints map keys sorted, so the output is deterministic.
func ExampleShortestPaths() {
	g, err := builder.Build(nil, builder.Demo())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := shortest.ShortestPaths(g, shortest.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Algorithm used:", res.Algorithm)
	fmt.Println("Shortest path from A:", res.Dist)
	// Output:
	// Algorithm used: Dijkstra
	// Shortest path from A: map[A:0 B:2 C:6 D:11 E:9 F:2 G:3]
}

// ExampleShortestPaths_negativeEdge shows the dispatch flipping to
// Bellman-Ford as soon as one edge weight drops below zero.
func ExampleShortestPaths_negativeEdge() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", -3)
	g.AddEdge("B", "D", 2)

	res, err := shortest.ShortestPaths(g, shortest.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Algorithm used:", res.Algorithm)
	fmt.Println("Shortest path from A:", res.Dist)
	// Output:
	// Algorithm used: Bellman-Ford
	// Shortest path from A: map[A:0 B:-1 C:2 D:1]
}

// ExampleShortestPaths_negativeCycleCheck demonstrates opting into
// negative-cycle detection instead of the default silent under-relaxation.
func ExampleShortestPaths_negativeCycleCheck() {
	g, err := builder.Build(nil, builder.DemoNegative())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = shortest.ShortestPaths(
		g,
		shortest.Source("A"),
		shortest.WithNegativeCycleCheck(),
	)
	fmt.Println(err != nil)
	// Output:
	// true
}
