// File: view.go
// Role: read-only adjacency view derived from a Graph.
// Determinism:
//   - Arcs of each node appear in edge insertion order.
// Notes:
//   - The view is a snapshot; later AddEdge calls do not show up in it.

package core

// AdjacencyView maps each node to its (neighbor, weight) arcs.
// Index i holds the arcs of node i; len(view) == N.
type AdjacencyView [][]Arc

// Adjacency derives the AdjacencyView of g. Each undirected edge
// contributes one Arc to both endpoints.
//
// Complexity: O(V + E).
func (g *Graph) Adjacency() AdjacencyView {
	// Count degrees first so every row is allocated exactly once.
	deg := make([]int, g.n)
	for _, e := range g.edges {
		deg[e.U]++
		deg[e.V]++
	}
	view := make(AdjacencyView, g.n)
	for i := range view {
		view[i] = make([]Arc, 0, deg[i])
	}
	for _, e := range g.edges {
		view[e.U] = append(view[e.U], Arc{To: e.V, Weight: e.Weight})
		view[e.V] = append(view[e.V], Arc{To: e.U, Weight: e.Weight})
	}

	return view
}

// Len returns the number of nodes covered by the view.
func (a AdjacencyView) Len() int { return len(a) }

// Neighbors returns the arcs leaving u, or nil when u is out of range.
func (a AdjacencyView) Neighbors(u int) []Arc {
	if u < 0 || u >= len(a) {
		return nil
	}

	return a[u]
}
