// File: methods.go
// Role: Graph construction and read-only queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - OutEdges() preserves per-source insertion order.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Returns ErrEmptyVertexID if id is the empty string; adding an
// existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge appends a directed edge from → to with the given weight.
//
// Both endpoints are registered in the vertex catalog automatically,
// so a target that never appears as a source is still a member of
// Vertices() (with an empty outgoing list). Parallel edges and
// self-loops are stored as-is; weight may be negative.
//
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.outgoing[from] = append(g.outgoing[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// The set covers every ID that appeared as an AddVertex argument or as
// either endpoint of an AddEdge call. Rely on this ordering for
// reproducible traversal seeds and stable test assertions.
// Complexity: O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// OutEdges returns a copy of the ordered outgoing edges of id; the
// slice is empty (non-nil) for a vertex with no outgoing edges.
//
// Returns ErrVertexNotFound if id is not in the vertex set, and
// ErrEmptyVertexID for the empty string.
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	src := g.outgoing[id]
	out := make([]Edge, len(src))
	copy(out, src)

	return out, nil
}

// HasNegativeEdge reports whether any edge in the graph has a weight
// strictly below zero.
//
// This is an O(E) scan on every call; the expected graph sizes make
// caching unnecessary, and the scan stays trivially correct without
// any bookkeeping on mutation.
func (g *Graph) HasNegativeEdge() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, edges := range g.outgoing {
		for _, e := range edges {
			if e.Weight < 0 {
				return true
			}
		}
	}

	return false
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges in the graph, counting
// parallel edges individually.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
