// Package core defines the data model shared by every pathquiz package:
// integer Nodes, weighted undirected Edges, the Graph that owns them, the
// derived AdjacencyView consumed by the solver, the Endpoints pair and the
// Answer produced for a (Graph, Endpoints) pair.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are the integers 0..N-1; there is no vertex payload.
//   - Edges are undirected, carry a strictly positive int64 weight,
//     and at most one edge may join any unordered pair {u,v}.
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - Duplicates in either orientation are rejected (ErrMultiEdgeNotAllowed).
//
// Edges() preserves insertion order, so a seeded generator yields the same
// edge list on every run.
//
// Derived view:
//
//	adj := g.Adjacency()   // O(V+E), read-only afterwards
//	for _, a := range adj.Neighbors(u) { _ = a.To; _ = a.Weight }
//
// Each undirected edge contributes one Arc to each endpoint.
//
// Answer:
//
//	Answer{Distance: 7, Path: []int{0, 1, 2}}.String()
//	// "Distance: 7, Path: 0->1->2"
//
// An unreachable target is a valid Answer (Distance == Unreachable, empty
// Path), never an error.
//
// Concurrency:
//
//	Graph is not safe for concurrent mutation. Generation and solving are
//	single-threaded; share a Graph across goroutines only after it is built.
package core
