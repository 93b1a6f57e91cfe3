// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// impl_spanning_tree.go - implementation of the RandomSpanningTree constructor.
//
// Canonical model:
//   - Grow a tree from RootNode: each step joins a uniformly random node of the
//     tree ("used") to a uniformly random node outside it ("unused").
//   - Exactly n-1 edges; the result is connected whatever the RNG yields.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil when n > 1 (else ErrNeedRandSource).
//   - Draw order per step: from, to, weight.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(n) for the used/unused pools.

package builder

import (
	"github.com/katalvlaran/pathquiz/core"
)

// RandomSpanningTree returns a Constructor that adds a uniformly grown random
// spanning tree over all nodes of g.
func RandomSpanningTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()

		// 1) Validate parameters early (fail fast, no side-effects).
		if err := validateMin(MethodSpanningTree, n, MinTreeNodes); err != nil {
			return err
		}
		if n == MinTreeNodes {
			return nil // a lone node is already spanned
		}
		if cfg.rng == nil {
			return builderErrorf(MethodSpanningTree, ErrNeedRandSource, "n=%d", n)
		}
		rng := cfg.rng

		// 2) Seed the pools: used = {root}, unused = every other node.
		used := make([]int, 1, n)
		used[0] = RootNode
		unused := make([]int, 0, n-1)
		for v := 0; v < n; v++ {
			if v != RootNode {
				unused = append(unused, v)
			}
		}

		var (
			from, to, idx int
			w             int64
		)
		// 3) Attach one unused node per step until the pool is empty.
		for len(unused) > 0 {
			from = used[rng.Intn(len(used))]
			idx = rng.Intn(len(unused))
			to = unused[idx]
			w = cfg.weightFn(rng)

			if err := g.AddEdge(from, to, w); err != nil {
				return builderErrorf(MethodSpanningTree, ErrConstructFailed, "AddEdge(%d-%d, w=%d): %v", from, to, w, err)
			}

			// Move 'to' into the tree: swap-remove from unused, append to used.
			last := len(unused) - 1
			unused[idx] = unused[last]
			unused = unused[:last]
			used = append(used, to)
		}

		// 4) Invariant: n-1 edges, every node joined to the root's component.
		return nil
	}
}
