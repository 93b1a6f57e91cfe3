// Package bfs implements breadth-first traversal over a core.AdjacencyView.
//
// It is the "pure traversal check" used to certify generated fixture graphs:
//
//	ok := bfs.Connected(g.Adjacency())
//
// BFS visits nodes in non-decreasing hop count from the start, records each
// node's depth and BFS-tree parent, and supports cancellation via context,
// a depth limit and an OnVisit hook.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
package bfs
