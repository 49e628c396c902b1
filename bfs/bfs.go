// Package bfs provides breadth-first search over a word graph,
// returning shortest ladders, unweighted distances, parent links and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. One walker serves one call.
type walker struct {
	graph   Graph
	opts    Options
	ctx     context.Context
	target  string
	hasGoal bool
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// ShortestPath returns a shortest sequence of vertex IDs from start to end,
// both inclusive.
//
// The boolean is false when no path exists: start or end is absent from g,
// end is unreachable, or every path is longer than WithMaxDepth allows.
// Absence is a normal outcome and is never reported as an error.
// Errors are reserved for a nil graph, invalid options, neighbor lookup
// failures, context cancellation and OnVisit hook errors.
//
// When start == end the result is [start]. Among equally short paths the one
// returned is the first reached under g's neighbor order.
func ShortestPath(g Graph, start, end string, opts ...Option) ([]string, bool, error) {
	if isNil(g) {
		return nil, false, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, false, err
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, false, nil
	}

	w := newWalker(g, o)
	w.target, w.hasGoal = end, true
	w.enqueue(start, 0, "")
	found, err := w.loop()
	if err != nil || !found {
		return nil, false, err
	}
	path, _ := w.res.PathTo(end)

	return path, true, nil
}

// Search runs a full breadth-first traversal from startID and returns the
// visit order, depths and BFS tree.
// Returns ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, context errors or any OnVisit hook error.
func Search(g Graph, startID string, opts ...Option) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o)
	w.enqueue(startID, 0, "")
	if _, err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// isNil reports whether g is nil, including a nil *core.Graph held in the
// interface.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)

	return ok && cg == nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g Graph, o Options) *walker {
	n := g.VertexCount()

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// enqueue marks id visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if d > 0 {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, goal reached, error or cancellation.
// It reports whether the goal was dequeued.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return false, err
		}
		if w.hasGoal && item.id == w.target {
			return true, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return false, err
		}
	}

	return false, nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
