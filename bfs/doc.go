// Package bfs provides breadth-first search over a word graph, returning
// shortest ladders, unweighted shortest-path distances, parent links, and
// visit order.
//
// What
//
//   - ShortestPath(g, start, end): the fewest-step sequence of words from
//     start to end, or found == false.
//   - Search(g, start): a full traversal returning a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks at two stages: OnEnqueue and OnVisit (which may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	All edges have unit cost and vertices are finalized in non-decreasing
//	distance order, so the first time the goal is dequeued its BFS-tree path
//	is a shortest path. Time O(V + E).
//
// Search state
//
//	The visited set, queue, depth and parent maps belong to a single call.
//	Nothing is written back to the graph, so one frozen graph can serve many
//	sequential or concurrent searches.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them. core.Graph
//	returns them sorted lexicographically, so when several shortest ladders
//	tie, the same one is returned on every run.
//
// Missing words
//
//	ShortestPath treats an absent start or end as "no path" (nil, false, nil).
//	Search, which has no goal, reports an absent start as ErrStartVertexNotFound.
//
// Usage
//
//	path, found, err := bfs.ShortestPath(g, "cold", "warm",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(10),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if Search's start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if NeighborIDs fails for any vertex.
//   - context errors and wrapped OnVisit hook errors.
package bfs
