// Package bfs provides breadth-first search over a core.AdjacencyView,
// returning hop distances, parent links, and visit order.
//
// Edge weights are ignored: the traversal answers reachability questions,
// chiefly "is this generated graph connected?".
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathquiz/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   core.AdjacencyView
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search over adj starting from start.
// Returns ErrEmptyView or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS(adj core.AdjacencyView, start int, opts ...Option) (*BFSResult, error) {
	if adj.Len() == 0 {
		return nil, ErrEmptyView
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= adj.Len() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := adj.Len()
	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unvisited
		w.res.Parent[i] = Unvisited
	}

	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue marks id seen at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, a := range w.adj.Neighbors(item.id) {
			if w.res.Depth[a.To] == Unvisited {
				w.enqueue(a.To, next, item.id)
			}
		}
	}

	return nil
}

// Connected reports whether every node of adj is reachable from node 0.
// An empty view is not connected.
func Connected(adj core.AdjacencyView) bool {
	res, err := BFS(adj, 0)
	if err != nil {
		return false
	}

	return len(res.Order) == adj.Len()
}

// Unreached returns, in ascending order, the nodes that cannot be reached from start.
func Unreached(adj core.AdjacencyView, start int) ([]int, error) {
	res, err := BFS(adj, start)
	if err != nil {
		return nil, err
	}
	var out []int
	for v := range res.Depth {
		if res.Depth[v] == Unvisited {
			out = append(out, v)
		}
	}

	return out, nil
}
