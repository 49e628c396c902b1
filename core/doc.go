// Package core provides the thread-safe, in-memory word graph that the
// ladder builder fills and the bfs package walks.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are words, keyed by the word itself (owned string IDs).
//   - Edges are undirected and unweighted; adjacency is stored as
//     adjacency[a][b] = struct{}{} mirrored in adjacency[b][a].
//   - Self-loops are rejected (ErrLoopNotAllowed); a repeated edge is a no-op.
//   - A single sync.RWMutex guards vertices and adjacency.
//   - Freeze seals the graph: every later mutation returns ErrFrozen, so one
//     built graph can back any number of concurrent read-only searches.
//
// Determinism
//
//	Vertices() returns words in insertion order and NeighborIDs() in
//	lexicographic order. Traversals that iterate NeighborIDs therefore
//	produce reproducible results.
//
// Core Methods:
//
//	AddVertex(id string) error            // O(1)
//	AddEdge(a, b string) (bool, error)    // O(1)
//	HasVertex(id string) bool             // O(1)
//	HasEdge(a, b string) bool             // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d log d)
//	Degree(id string) (int, error)        // O(1)
//	Vertices() []string                   // O(V)
//	Edges() []Edge                        // O(E log E)
//	VertexCount(), EdgeCount() int        // O(1)
//	Freeze(), Frozen()                    // O(1)
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - edge from a vertex to itself.
//	ErrFrozen          - mutation attempted after Freeze.
package core
