package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathquiz/core"
)

// Run computes shortest distances from start over adj and stops as soon as
// end is finalized (unless WithoutEarlyExit is given).
//
// Returns the final solver state; use Result.Answer for the (distance, path)
// pair. An unreachable end is not an error.
//
// Preconditions and validation (in order):
//  1. adj must have at least one node (ErrNilAdjacency).
//  2. start and end must lie in [0, N) (ErrNodeOutOfRange).
//  3. No arc may carry a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run(adj core.AdjacencyView, start, end int, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	n := adj.Len()
	if n == 0 {
		return nil, ErrNilAdjacency
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%w: start=%d end=%d with N=%d", ErrNodeOutOfRange, start, end, n)
	}

	// 3) Pre-scan all arcs to detect negative weights. Fail fast.
	for u, arcs := range adj {
		for _, a := range arcs {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	// 4) Prepare state and run the main loop.
	r := &runner{
		adj:     adj,
		options: cfg,
		end:     end,
		res:     newResult(n, start, end),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.res, nil
}

// ShortestPath returns the Answer for (start, end) over adj.
// start == end yields Distance 0 and Path [start].
func ShortestPath(adj core.AdjacencyView, start, end int, opts ...Option) (core.Answer, error) {
	res, err := Run(adj, start, end, opts...)
	if err != nil {
		return core.Answer{}, err
	}

	return res.Answer(), nil
}

// Solve derives the adjacency view of g and answers ep.
func Solve(g *core.Graph, ep core.Endpoints, opts ...Option) (core.Answer, error) {
	if g == nil {
		return core.Answer{}, ErrNilAdjacency
	}

	return ShortestPath(g.Adjacency(), ep.Start, ep.End, opts...)
}

// runner holds the mutable state for a single solver execution.
type runner struct {
	adj     core.AdjacencyView // read-only within the run
	options Options
	end     int
	res     *Result // dist / prev / finalized
	pq      nodePQ  // min-heap with lazy deletion
	seq     uint64  // insertion counter for consistent tie-breaks
}

// init sets dist[start] = 0 and seeds the frontier with (0, start).
func (r *runner) init() {
	r.res.Dist[r.res.Start] = 0
	heap.Init(&r.pq)
	r.push(r.res.Start, 0)
}

// push adds (dist, id) to the frontier.
func (r *runner) push(id int, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// process is the main loop. It repeatedly extracts the frontier entry with
// the smallest distance, finalizes it, and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable nodes finalized).
//   - The end node was finalized and EarlyExit is on.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item = heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries for nodes already finalized.
		if r.res.Finalized[item.id] {
			continue
		}

		// 3) Finalize: item.dist is now the true minimum distance.
		r.res.Finalized[item.id] = true
		r.options.OnFinalize(item.id, item.dist)

		// 4) The reference answer is determined once end is final.
		if item.id == r.end && r.options.EarlyExit {
			return
		}

		// 5) Relax arcs to non-finalized neighbours.
		r.relax(item.id)
	}
}

// relax examines every arc leaving u. If a strictly shorter route to a
// neighbour v is found, dist[v] and prev[v] are updated and (dist, v) is
// pushed; the outdated entry stays in the heap and is skipped when popped.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	var cand int64
	for _, a := range r.adj[u] {
		if r.res.Finalized[a.To] {
			continue
		}
		// Guard against int64 overflow; such a route can never be shortest.
		if a.Weight > core.Unreachable-du {
			continue
		}
		cand = du + a.Weight
		if cand >= r.res.Dist[a.To] {
			continue
		}
		r.res.Dist[a.To] = cand
		r.res.Prev[a.To] = u
		r.push(a.To, cand)
	}
}

// nodeItem is a frontier entry: a node, its tentative distance, and the
// push sequence number used to break distance ties consistently.
type nodeItem struct {
	id   int
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
