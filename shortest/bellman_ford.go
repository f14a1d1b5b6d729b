// File: bellman_ford.go
// Role: Bellman-Ford, the branch taken whenever the graph carries a
// negative edge weight. Correct on any graph without a reachable
// negative cycle, so it also serves as an unconditional fallback.
package shortest

import "fmt"

// bellmanFord computes shortest distances from src by exactly n−1
// relaxation rounds over the frozen arc list:
//
//  1. dist[v] = +Inf for every vertex, dist[src] = 0.
//  2. Repeat n−1 times: relax every arc in fixed order (sources in
//     ascending index order, insertion order within a source).
//  3. Return dist after the fixed number of rounds.
//
// +Inf arithmetic makes unreached sources inert: Inf + w == Inf never
// improves anything, so no reachability guard is needed.
//
// With detect set, one extra pass runs after the rounds; any arc that
// could still improve a distance proves a negative cycle reachable from
// src and yields ErrNegativeCycle with no distances. Without detect,
// such graphs silently return the under-relaxed values — the documented
// default behavior.
//
// Complexity: O(V·E), Space O(V).
func bellmanFord(fz *frozen, src int, detect bool) ([]float64, error) {
	n := len(fz.ids)
	dist := newDistances(n, src)

	for round := 0; round < n-1; round++ {
		for _, a := range fz.arcs {
			if d := dist[a.from] + a.weight; d < dist[a.to] {
				dist[a.to] = d
			}
		}
	}

	if detect {
		for _, a := range fz.arcs {
			if dist[a.from]+a.weight < dist[a.to] {
				return nil, fmt.Errorf("%w: edge %s→%s still improvable after %d rounds",
					ErrNegativeCycle, fz.ids[a.from], fz.ids[a.to], n-1)
			}
		}
	}

	return dist, nil
}
