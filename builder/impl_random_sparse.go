// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// impl_random_sparse.go: implementation of the RandomSparse constructor
// (Erdős–Rényi G(n,p)).
//
// Contract:
//   - g must have ≥ 1 node (else ErrTooFewVertices).
//   - p ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Each unordered pair {i,j}, i<j, is visited once in lexicographic order
//     and kept with probability p; the weight is drawn only for kept pairs.
//   - The result is NOT guaranteed to be connected; it is the source of
//     graphs with unreachable targets.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/pathquiz/core"

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparse    = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that keeps each possible edge of g
// independently with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if err := validateMin(methodRandomSparse, n, minRandomSparse); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
		}
		if p == probMin {
			return nil
		}
		rng := cfg.rng
		if rng == nil && p < probMax {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		var w int64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p == 1 keeps every pair without consuming randomness.
				if p < probMax && rng.Float64() >= p {
					continue
				}
				w = cfg.weightFn(rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return builderErrorf(methodRandomSparse, ErrConstructFailed, "AddEdge(%d-%d, w=%d): %v", i, j, w, err)
				}
			}
		}

		return nil
	}
}
