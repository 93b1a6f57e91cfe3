// Package core: Graph method implementations.
//
// All operations are O(1) amortized except Edges/Adjacency, which copy.
// Duplicate detection uses an unordered-pair index so that (u,v) and (v,u)
// collide.

package core

import "fmt"

// NewGraph creates an empty Graph over nodes 0..n-1.
// Returns ErrTooFewNodes if n < 1.
// Complexity: O(1).
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}

	return &Graph{
		n:     n,
		edges: make([]Edge, 0, 2*n),
		index: make(map[pairKey]int, 2*n),
	}, nil
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether id lies in [0, N).
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < g.n
}

// AddEdge inserts the undirected edge {u,v} with weight w.
//
// Errors (checked in order):
//   - ErrNodeOutOfRange if u or v is outside [0, N).
//   - ErrLoopNotAllowed if u == v.
//   - ErrBadWeight if w < 1.
//   - ErrMultiEdgeNotAllowed if {u,v} already exists in either orientation.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%w: edge %d-%d with N=%d", ErrNodeOutOfRange, u, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}
	if w < 1 {
		return fmt.Errorf("%w: edge %d-%d weight=%d", ErrBadWeight, u, v, w)
	}
	k := keyOf(u, v)
	if _, exists := g.index[k]; exists {
		return fmt.Errorf("%w: edge %d-%d", ErrMultiEdgeNotAllowed, u, v)
	}
	g.index[k] = len(g.edges)
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})

	return nil
}

// HasEdge reports whether {u,v} exists, regardless of orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.index[keyOf(u, v)]

	return ok
}

// Weight returns the weight of {u,v} and whether the edge exists.
func (g *Graph) Weight(u, v int) (int64, bool) {
	i, ok := g.index[keyOf(u, v)]
	if !ok {
		return 0, false
	}

	return g.edges[i].Weight, true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Triples returns every edge in the external (u, v, w) shape, in insertion order.
func (g *Graph) Triples() [][3]int64 {
	out := make([][3]int64, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Triple()
	}

	return out
}
