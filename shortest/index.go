package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// arc is a graph edge rewritten against dense vertex indices.
type arc struct {
	from   int
	to     int
	weight float64
}

// frozen is an immutable dense-indexed snapshot of a core.Graph, taken
// once per ShortestPaths call. Index 0..n-1 follows core.Vertices()
// (lexicographic ascending), so "lowest index" and "lexicographically
// smallest ID" coincide everywhere the algorithms break ties.
type frozen struct {
	ids   []string       // dense index → vertex ID, sorted ascending
	index map[string]int // vertex ID → dense index
	outs  [][]arc        // outgoing arcs per vertex, insertion order
	arcs  []arc          // all arcs: sources ascending, insertion order within a source
}

// freeze snapshots g into dense-indexed slices.
// Complexity: O(V log V + E).
func freeze(g *core.Graph) (*frozen, error) {
	ids := g.Vertices()
	n := len(ids)

	fz := &frozen{
		ids:   ids,
		index: make(map[string]int, n),
		outs:  make([][]arc, n),
	}
	for i, id := range ids {
		fz.index[id] = i
	}

	for u, id := range ids {
		edges, err := g.OutEdges(id)
		if err != nil {
			// Unreachable for IDs enumerated by Vertices(); surfaced for safety.
			return nil, fmt.Errorf("shortest: failed to freeze outgoing edges of %q: %w", id, err)
		}
		for _, e := range edges {
			a := arc{from: u, to: fz.index[e.To], weight: e.Weight}
			fz.outs[u] = append(fz.outs[u], a)
			fz.arcs = append(fz.arcs, a)
		}
	}

	return fz, nil
}

// newDistances allocates the per-call distance slice: +Inf everywhere,
// 0 at the source.
func newDistances(n, src int) []float64 {
	dist := make([]float64, n)
	inf := math.Inf(1)
	for i := range dist {
		dist[i] = inf
	}
	dist[src] = 0

	return dist
}
