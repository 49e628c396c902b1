// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors, constructor.
// Concurrency:
//   - mu guards vertices, order, adjacency, edgeCount and frozen.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Vertex represents one distinct word in the graph.
type Vertex struct {
	// ID is the word itself and uniquely identifies the Vertex.
	ID string
}

// Edge is an undirected relation between two vertices.
// From is always the lexicographically smaller endpoint.
type Edge struct {
	From string
	To   string
}

// Graph is the in-memory word graph.
//
// Vertices are arena-held in the vertices map; edges are relations stored
// as mirrored adjacency sets keyed by vertex ID, never as pointers between
// vertices.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]*Vertex
	order     []string                       // vertex IDs in insertion order
	adjacency map[string]map[string]struct{} // adjacency[a][b] iff a–b
	edgeCount int
	frozen    bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make(map[string]*Vertex, n)
			g.order = make([]string, 0, n)
			g.adjacency = make(map[string]map[string]struct{}, n)
		}
	}
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
