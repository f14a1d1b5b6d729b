// Package core provides the in-memory directed weighted multigraph
// that the rest of wayfind computes over.
//
// Overview:
//
//   - Vertices are identified by opaque, non-empty string IDs and carry
//     no attributes beyond identity.
//   - Edges are directed, belong to their source vertex, and carry a
//     float64 weight that may be negative. Parallel edges between the
//     same pair of vertices are kept independently — no deduplication,
//     no weight summation. Self-loops are permitted.
//   - AddEdge registers both endpoints automatically, so every vertex
//     that appears anywhere in the graph (as a source or as a target)
//     is a member of the vertex set. Sink vertices simply have an empty
//     outgoing list.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending; this
//     is the stable enumeration surface higher-level algorithms rely on
//     for reproducible iteration and tie-breaking.
//   - OutEdges() preserves edge insertion order per source vertex.
//
// Concurrency:
//
//   - Construction is guarded by a sync.RWMutex, so graphs may be built
//     from multiple goroutines. Once handed to an algorithm the graph
//     is treated as immutable; concurrent read-only queries are safe.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID  if a vertex ID is the empty string.
//   - ErrVertexNotFound if a queried vertex does not exist.
package core
