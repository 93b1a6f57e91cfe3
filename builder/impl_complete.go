// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// impl_complete.go: implementation of the Complete constructor.
//
// Contract:
//   • g must have ≥ 1 node (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, in lexicographic
//     order of (i,j).
//   • Weight policy: cfg.weightFn(cfg.rng) per pair, in emission order.
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import "github.com/katalvlaran/pathquiz/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that adds every possible edge of g (K_n).
// It is the densest input the solver can meet and is used to stress it.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}

		var w int64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w = cfg.weightFn(cfg.rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return builderErrorf(methodComplete, ErrConstructFailed, "AddEdge(%d-%d, w=%d): %v", i, j, w, err)
				}
			}
		}

		return nil
	}
}
