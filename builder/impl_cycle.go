// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// impl_cycle.go - implementation of the Cycle constructor.
//
// Contract:
//   - g must have ≥ 3 nodes (else ErrTooFewVertices); smaller rings would
//     need a self-loop or a duplicate pair.
//   - Emits (i-1)-i for i=1..n-1, then the closing edge (n-1)-0.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, in emission order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/pathquiz/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that joins all nodes of g into the ring
// 0-1-...-(n-1)-0. Every pair of nodes has exactly two simple routes.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}

		var w int64
		for i := 1; i <= n; i++ {
			u, v := i-1, i%n
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return builderErrorf(methodCycle, ErrConstructFailed, "AddEdge(%d-%d, w=%d): %v", u, v, w, err)
			}
		}

		return nil
	}
}
