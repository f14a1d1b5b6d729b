// File: dijkstra.go
// Role: Dijkstra variant for graphs with no negative edge weight.
//
// The dispatcher guarantees the no-negative-edge precondition; neither
// variant re-checks it.
package shortest

import (
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// dijkstraDense computes shortest distances from src by repeated
// linear-scan selection — the O(V²+E) priority-queue-free design:
//
//  1. dist[v] = +Inf for every vertex, dist[src] = 0.
//  2. While unsettled vertices remain, pick the unsettled vertex with
//     the minimum tentative distance; ties go to the lowest dense
//     index, i.e. the lexicographically smallest vertex ID.
//  3. Relax every outgoing arc of the picked vertex, then settle it.
//
// Exactly n selection rounds run, so every vertex (reachable or not)
// ends up settled and carries a final distance.
func dijkstraDense(fz *frozen, src int) []float64 {
	n := len(fz.ids)
	dist := newDistances(n, src)

	// settled tracks finalized vertices; scanning skips them.
	settled := sparsesets.New(n)

	for round := 0; round < n; round++ {
		// Select u = argmin over unsettled vertices. Strict "<" keeps
		// the first (lowest-index) vertex on ties.
		u := -1
		best := math.Inf(1)
		for v := 0; v < n; v++ {
			if settled.Contains(v) {
				continue
			}
			if u < 0 || dist[v] < best {
				u = v
				best = dist[v]
			}
		}

		settled.Insert(u)

		// An unreached vertex has nothing useful to relax.
		if math.IsInf(dist[u], 1) {
			continue
		}

		for _, a := range fz.outs[u] {
			if d := dist[u] + a.weight; d < dist[a.to] {
				dist[a.to] = d
			}
		}
	}

	return dist
}

// dijkstraHeap computes the same distances as dijkstraDense using a
// yagh min-heap for next-vertex selection, O((V+E) log V). The heap is
// keyed by dense vertex index, so Put doubles as decrease-key and each
// vertex is popped at most once.
func dijkstraHeap(fz *frozen, src int) []float64 {
	n := len(fz.ids)
	dist := newDistances(n, src)

	h := yagh.New[float64](n)
	h.Put(src, 0)

	for h.Size() > 0 {
		entry := h.Pop()
		u, c := entry.Elem, entry.Cost

		for _, a := range fz.outs[u] {
			if d := c + a.weight; d < dist[a.to] {
				dist[a.to] = d
				h.Put(a.to, d)
			}
		}
	}

	return dist
}
