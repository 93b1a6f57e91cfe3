// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// impl_path.go - implementation of the Path constructor.
//
// Contract:
//   - g must have ≥ 2 nodes (else ErrTooFewVertices).
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, in emission order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic edge emission order by increasing i.
//   - Deterministic weights given fixed cfg.rng/weightFn.

package builder

import "github.com/katalvlaran/pathquiz/core"

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that joins all nodes of g into the simple path
// 0-1-2-...-(n-1). Between 0 and n-1 there is exactly one route, which makes
// it a handy fixture with a known answer.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}

		var w int64
		for i := 1; i < n; i++ {
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(i-1, i, w); err != nil {
				return builderErrorf(methodPath, ErrConstructFailed, "AddEdge(%d-%d, w=%d): %v", i-1, i, w, err)
			}
		}

		return nil
	}
}
