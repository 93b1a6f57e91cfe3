// Package dijkstra computes the reference answer of a fixture: the
// minimum-weight distance and one optimal path between two nodes of a
// weighted undirected graph with non-negative integer weights.
//
// The solver is the textbook greedy relaxation: it repeatedly finalizes the
// frontier node with the smallest tentative distance and relaxes its arcs.
// Because weights are non-negative, a finalized node's distance is its true
// minimum and never changes again.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and finalized slices.
//   - O(E) worst-case heap entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - Lazy deletion: improved distances are pushed as new entries and stale
//     entries are discarded on pop if their node is already finalized.
//   - Equal-distance entries pop in push order, so reruns are reproducible.
//   - The loop stops as soon as the end node is finalized; WithoutEarlyExit
//     keeps going until the frontier is empty.
//   - start == end yields distance 0 and the single-node path [start].
//   - An unreachable end yields core.UnreachableAnswer(), never an error.
//
// Example:
//
//	ans, err := dijkstra.Solve(g, core.Endpoints{Start: 0, End: 2})
//	fmt.Println(ans) // Distance: 7, Path: 0->1->2
package dijkstra
