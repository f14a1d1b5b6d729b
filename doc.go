// Package wayfind is a small in-memory toolkit for single-source
// shortest-path computation over directed weighted graphs — with an
// engine that picks the right algorithm for you.
//
// 🚀 What is wayfind?
//
//	A compact library made of three pieces:
//		• core/     — directed weighted multigraph: vertices, ordered
//		              outgoing edges, negative-weight inspection
//		• shortest/ — the engine: inspects edge weights once, then runs
//		              either Dijkstra (non-negative graphs) or
//		              Bellman-Ford (any negative edge), and labels the
//		              result with the algorithm that actually executed
//		• builder/  — deterministic graph fixtures for tests, benchmarks
//		              and demos (paths, cycles, complete, seeded random)
//
// ✨ Why choose wayfind?
//
//   - One entry point – hand over a graph and a source, get back
//     distances plus the algorithm label; no manual algorithm choice
//   - Predictable – sorted vertex enumeration, documented tie-breaks,
//     identical results on repeated calls
//   - Honest about negatives – negative edges switch the engine to
//     Bellman-Ford; reachable negative cycles can optionally be
//     detected and reported as an error
//
// Quick taste:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "C", 4)
//	res, err := shortest.ShortestPaths(g, shortest.Source("A"))
//	// res.Algorithm == shortest.AlgorithmDijkstra, res.Dist["C"] == 6
//
// Dive into each package's doc.go for contracts, complexity and the
// full error taxonomy.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
