// Package shortest implements the auto-selecting single-source
// shortest-path engine over a core.Graph.
//
// This file holds the ShortestPaths entry point: validation, the single
// negative-edge inspection, dispatch, and Result assembly.
package shortest

import (
	"github.com/katalvlaran/wayfind/core"
)

// ShortestPaths computes minimum distances from the source vertex
// (Options.Source) to every vertex in g.
//
// Returns:
//
//   - res: Result with the label of the algorithm that executed and a
//     distance for every vertex in g (math.Inf(1) if unreached,
//     0 for the source).
//   - err: one of the sentinel errors, or nil on success.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrGraphNil).
//  3. g must contain Source (ErrSourceNotFound).
//
// Algorithm selection: g.HasNegativeEdge() is evaluated exactly once;
// its value drives both the dispatch and the Result label, so the label
// always names the algorithm that actually ran.
//
// Complexity: O(V²+E) dense Dijkstra, O((V+E) log V) with
// WithHeapSelection, O(V·E) Bellman-Ford.
func ShortestPaths(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options from the functional arguments.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, ErrSourceNotFound
	}

	// 5) Snapshot the graph into dense-indexed state. All further work
	//    is local to this call.
	fz, err := freeze(g)
	if err != nil {
		return nil, err
	}
	src := fz.index[cfg.Source]

	// 6) Inspect edge weights once; the cached value decides both the
	//    branch and the label.
	negative := g.HasNegativeEdge()

	// 7) Dispatch.
	var algo Algorithm
	var dist []float64
	if negative {
		algo = AlgorithmBellmanFord
		dist, err = bellmanFord(fz, src, cfg.DetectNegativeCycle)
		if err != nil {
			return nil, err
		}
	} else {
		algo = AlgorithmDijkstra
		if cfg.HeapSelection {
			dist = dijkstraHeap(fz, src)
		} else {
			dist = dijkstraDense(fz, src)
		}
	}

	// 8) Assemble the Result keyed back by vertex ID.
	out := make(map[string]float64, len(fz.ids))
	for i, id := range fz.ids {
		out[id] = dist[i]
	}

	return &Result{Algorithm: algo, Dist: out}, nil
}
