// Invariant checks from the engine's contract: source distance zero,
// +Inf for unreached vertices, idempotent calls, triangle inequality
// over every edge, and the label rule tied to negative-edge presence.
package shortest_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/builder"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/shortest"
)

// propertyGraphs yields a spread of non-negative fixtures worth
// checking invariants on.
func propertyGraphs(t *testing.T) map[string]*core.Graph {
	t.Helper()

	graphs := make(map[string]*core.Graph)
	var err error

	graphs["demo"], err = builder.Build(nil, builder.Demo())
	require.NoError(t, err)
	graphs["cycle"], err = builder.Build(nil, builder.Cycle(8))
	require.NoError(t, err)
	graphs["complete"], err = builder.Build(nil, builder.Complete(6))
	require.NoError(t, err)
	graphs["random-7"], err = builder.Build([]builder.Option{builder.WithSeed(7)}, builder.RandomSparse(40, 120))
	require.NoError(t, err)
	graphs["random-99"], err = builder.Build([]builder.Option{builder.WithSeed(99)}, builder.RandomSparse(25, 50))
	require.NoError(t, err)

	return graphs
}

// sourceOf picks the deterministic first vertex of a graph.
func sourceOf(t *testing.T, g *core.Graph) string {
	t.Helper()
	ids := g.Vertices()
	require.NotEmpty(t, ids)

	return ids[0]
}

func TestProperty_SourceDistanceZero(t *testing.T) {
	for name, g := range propertyGraphs(t) {
		t.Run(name, func(t *testing.T) {
			src := sourceOf(t, g)
			res, err := shortest.ShortestPaths(g, shortest.Source(src))
			require.NoError(t, err)
			assert.Equal(t, float64(0), res.Dist[src])
		})
	}
}

func TestProperty_EveryVertexAssigned(t *testing.T) {
	for name, g := range propertyGraphs(t) {
		t.Run(name, func(t *testing.T) {
			res, err := shortest.ShortestPaths(g, shortest.Source(sourceOf(t, g)))
			require.NoError(t, err)
			assert.Len(t, res.Dist, g.VertexCount())
			for _, id := range g.Vertices() {
				_, ok := res.Dist[id]
				assert.True(t, ok, "vertex %q missing from distance mapping", id)
			}
		})
	}
}

func TestProperty_UnreachableIsInfinite(t *testing.T) {
	// Every demo vertex is reachable from A (D through E), so add an
	// isolated vertex and a vertex with only an outgoing arc — neither
	// has an incoming path from A.
	g, err := builder.Build(nil, builder.Demo())
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Island"))
	require.NoError(t, g.AddEdge("Upstream", "A", 1))

	res, err := shortest.ShortestPaths(g, shortest.Source("A"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist["Island"], 1))
	assert.True(t, math.IsInf(res.Dist["Upstream"], 1))
	assert.Equal(t, float64(11), res.Dist["D"], "D is reachable: A→F→E→D")
}

func TestProperty_Idempotence(t *testing.T) {
	for name, g := range propertyGraphs(t) {
		t.Run(name, func(t *testing.T) {
			src := sourceOf(t, g)
			first, err := shortest.ShortestPaths(g, shortest.Source(src))
			require.NoError(t, err)
			second, err := shortest.ShortestPaths(g, shortest.Source(src))
			require.NoError(t, err)

			assert.Equal(t, first.Algorithm, second.Algorithm)
			if diff := cmp.Diff(first.Dist, second.Dist); diff != "" {
				t.Errorf("repeated call changed distances (-first +second):\n%s", diff)
			}
		})
	}
}

func TestProperty_TriangleInequality(t *testing.T) {
	for name, g := range propertyGraphs(t) {
		t.Run(name, func(t *testing.T) {
			res, err := shortest.ShortestPaths(g, shortest.Source(sourceOf(t, g)))
			require.NoError(t, err)

			for _, u := range g.Vertices() {
				edges, err := g.OutEdges(u)
				require.NoError(t, err)
				for _, e := range edges {
					if math.IsInf(res.Dist[e.From], 1) {
						continue
					}
					assert.LessOrEqual(t, res.Dist[e.To], res.Dist[e.From]+e.Weight,
						"edge %s→%s(%v) violates triangle inequality", e.From, e.To, e.Weight)
				}
			}
		})
	}
}

func TestProperty_LabelFollowsNegativeEdgePresence(t *testing.T) {
	nonNeg, err := builder.Build(nil, builder.Demo())
	require.NoError(t, err)
	neg, err := builder.Build(nil, builder.DemoNegative())
	require.NoError(t, err)

	res, err := shortest.ShortestPaths(nonNeg, shortest.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, shortest.AlgorithmDijkstra, res.Algorithm)

	res, err = shortest.ShortestPaths(neg, shortest.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, shortest.AlgorithmBellmanFord, res.Algorithm)
}
