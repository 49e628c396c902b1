// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle, neighborhood queries, freezing.
// Determinism:
//   - Vertices() returns IDs in insertion order.
//   - NeighborIDs() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges sorted by (From, To).
// Concurrency:
//   - Mutators hold mu for writing; queries hold mu for reading.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject mutation of a frozen graph (ErrFrozen).
//   - Stage 3: If absent, register the Vertex, its insertion position and an empty adjacency set.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrFrozen: if the graph has been frozen.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if absent and reports whether it was added.
// Caller must hold the write lock.
func (g *Graph) addVertexLocked(id string) bool {
	if _, ok := g.vertices[id]; ok {
		return false
	}
	g.vertices[id] = &Vertex{ID: id}
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]struct{})

	return true
}

// AddEdge inserts the undirected edge a–b, creating missing endpoints.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and reject self-loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, reject mutation of a frozen graph (ErrFrozen).
//   - Stage 3: Ensure both vertices exist.
//   - Stage 4: If the edge is new, record it in both adjacency sets and bump the edge count.
//
// Returns:
//   - bool: true if a new edge was inserted, false if it already existed.
//   - error: nil on success; otherwise a sentinel error.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(a, b string) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyVertexID
	}
	if a == b {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return false, ErrFrozen
	}
	g.addVertexLocked(a)
	g.addVertexLocked(b)

	if _, ok := g.adjacency[a][b]; ok {
		return false, nil
	}
	// mirror: a–b is stored on both sides
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++

	return true, nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the undirected edge a–b exists.
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
//
// Notes:
//   - The returned slice is freshly allocated; callers may modify it.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(set), nil
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every undirected edge once, with From < To, sorted by (From, To).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for a, set := range g.adjacency {
		for b := range set {
			if a < b {
				out = append(out, Edge{From: a, To: b})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E| (each undirected edge counted once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Freeze seals the graph against further mutation. Idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}
