// Package shortest defines configuration options, the Result type and
// sentinel errors for the shortest-path engine; the entry point and the
// algorithm implementations live in shortest.go, dijkstra.go and
// bellman_ford.go.
package shortest

import "errors"

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrEmptySource indicates that no source vertex ID was supplied.
	ErrEmptySource = errors.New("shortest: source vertex ID is empty")

	// ErrGraphNil indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrSourceNotFound = errors.New("shortest: source vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle reachable
	// from the source was detected. Returned only when the engine runs
	// with WithNegativeCycleCheck; no partial distances accompany it.
	ErrNegativeCycle = errors.New("shortest: negative cycle reachable from source")
)

// Algorithm labels which shortest-path algorithm produced a Result.
type Algorithm string

const (
	// AlgorithmDijkstra is reported when the engine ran its Dijkstra
	// variant (graph had no negative edge).
	AlgorithmDijkstra Algorithm = "Dijkstra"

	// AlgorithmBellmanFord is reported when the engine ran Bellman-Ford
	// (graph contained at least one negative edge).
	AlgorithmBellmanFord Algorithm = "Bellman-Ford"
)

// Result is the outcome of one ShortestPaths invocation.
//
// Algorithm names the branch that actually executed. Dist maps every
// vertex in the graph to its minimum distance from the source;
// unreached vertices map to math.Inf(1) and the source maps to 0.
// The Result is created fresh per call and owned by the caller.
type Result struct {
	Algorithm Algorithm
	Dist      map[string]float64
}

// Options configures the behavior of the shortest-path engine.
//
// Source        – starting vertex ID (must be non-empty and present in the graph).
// HeapSelection – use min-heap next-vertex selection for Dijkstra
// instead of the default dense linear scan.
// DetectNegativeCycle – run one extra Bellman-Ford pass and return
// ErrNegativeCycle if any distance is still improvable.
type Options struct {
	Source              string // The ID of the source vertex
	HeapSelection       bool   // Heap-based Dijkstra selection strategy
	DetectNegativeCycle bool   // Extra Bellman-Ford detection pass
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// Source sets the Source field of Options to the given vertex ID.
// Must be supplied to specify the starting vertex.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithHeapSelection switches Dijkstra's next-vertex selection from the
// default dense linear scan (O(V²+E)) to a min-heap (O((V+E) log V)).
// Resulting distances are identical; only the settling order of
// equal-distance vertices may differ. Ignored when Bellman-Ford runs.
func WithHeapSelection() Option {
	return func(o *Options) {
		o.HeapSelection = true
	}
}

// WithNegativeCycleCheck enables negative-cycle detection after the
// V−1 Bellman-Ford rounds. When a reachable negative cycle exists the
// engine returns ErrNegativeCycle instead of the silently under-relaxed
// distances. Off by default; ignored when Dijkstra runs.
func WithNegativeCycleCheck() Option {
	return func(o *Options) {
		o.DetectNegativeCycle = true
	}
}

// DefaultOptions returns an Options struct initialized with the engine
// defaults for the given source vertex ID: dense Dijkstra selection and
// no negative-cycle detection.
func DefaultOptions(source string) Options {
	return Options{
		Source:              source,
		HeapSelection:       false,
		DetectNegativeCycle: false,
	}
}
