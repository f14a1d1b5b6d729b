// Package shortest computes single-source shortest distances over a
// core.Graph, automatically selecting between Dijkstra and
// Bellman-Ford based on the presence of negative edge weights.
//
// Overview:
//
//   - ShortestPaths is the single entry point: it validates its inputs,
//     inspects the graph for negative edges exactly once, dispatches to
//     the matching algorithm, and returns a Result holding the label of
//     the algorithm that actually executed plus a distance for every
//     vertex in the graph.
//   - Graphs with no negative edge run Dijkstra; any negative edge
//     switches the engine to Bellman-Ford. The Result label is set from
//     the executed branch, never re-derived afterwards.
//   - Unreached vertices map to math.Inf(1); the source maps to 0.
//
// Algorithm variants:
//
//   - Dijkstra (default): next-vertex selection by dense linear scan
//     over the unsettled set — a deliberate O(V² + E) design suited to
//     the small static graphs this engine targets. Ties are broken by
//     the lexicographically smallest vertex ID.
//   - Dijkstra (WithHeapSelection): selection via a yagh min-heap with
//     native decrease-key, O((V + E) log V). Distances are identical to
//     the dense variant; only which equal-cost vertex settles first may
//     differ.
//   - Bellman-Ford: exactly V−1 relaxation rounds over a fixed edge
//     order, O(V·E). By default there is no negative-cycle detection:
//     graphs with a reachable negative cycle silently stop after V−1
//     rounds. WithNegativeCycleCheck adds one detection pass and
//     surfaces ErrNegativeCycle instead of a partial result.
//
// Concurrency:
//
//   - Each call freezes the graph into private dense-indexed state, so
//     concurrent invocations on the same read-only graph are safe.
//     Mutating the graph during a call is not supported.
//
// Errors (sentinel):
//
//   - ErrEmptySource    if no Source option was supplied.
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrSourceNotFound if the source vertex is absent from the graph.
//   - ErrNegativeCycle  if WithNegativeCycleCheck is set and a
//     reachable negative cycle exists.
//
// Example usage:
//
//	res, err := shortest.ShortestPaths(g, shortest.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Algorithm used: %s\n", res.Algorithm)
//	fmt.Printf("Distance to C: %v\n", res.Dist["C"])
package shortest
