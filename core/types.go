// Package core defines the central Graph and Edge types and the
// operations for building and querying directed weighted multigraphs.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph
// constructor; query and mutation methods live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge represents a directed connection between two vertices.
//
// An Edge belongs to its source vertex From; OutEdges(From) returns it
// in insertion order. Weight is a real number and may be negative.
// Parallel edges between the same (From, To) pair are independent.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge. May be negative.
	Weight float64
}

// Graph is the core in-memory directed weighted multigraph.
//
// Vertices are stored in a catalog keyed by ID; outgoing edges are
// stored per source vertex in insertion order. mu guards both.
type Graph struct {
	mu sync.RWMutex

	// vertices is the catalog of every vertex ID that has appeared
	// either via AddVertex or as an endpoint of AddEdge.
	vertices map[string]struct{}

	// outgoing[id] holds the ordered outgoing edges of id.
	// A vertex with no outgoing edges has no entry (or an empty slice);
	// both cases are equivalent for queries.
	outgoing map[string][]Edge

	// edgeCount tracks the total number of edges across all sources.
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		outgoing: make(map[string][]Edge),
	}
}
