// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// impl_extra_edges.go - implementation of the RandomExtraEdges constructor.
//
// Canonical model:
//   - Sample k uniformly in [0, maxExtra].
//   - Make k attempts; each draws u, v uniformly in [0, n).
//   - A draw with u == v or an existing pair {u,v} is skipped, not retried.
//
// The realized number of extra edges is therefore ≤ k. That slack is accepted.
//
// Contract:
//   - maxExtra ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - A weight is drawn only for accepted pairs.
//
// Complexity: O(maxExtra) expected time, O(1) extra space.

package builder

import (
	"github.com/katalvlaran/pathquiz/core"
)

// RandomExtraEdges returns a Constructor that makes up to maxExtra random
// attempts to add edges between existing nodes of g.
func RandomExtraEdges(maxExtra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodExtraEdges, maxExtra, 0); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodExtraEdges, ErrNeedRandSource, "maxExtra=%d", maxExtra)
		}
		rng := cfg.rng
		n := g.NodeCount()

		attempts := rng.Intn(maxExtra + 1)

		var (
			u, v int
			w    int64
		)
		for i := 0; i < attempts; i++ {
			u = rng.Intn(n)
			v = rng.Intn(n)
			if u == v || g.HasEdge(u, v) {
				continue // skipped draws are not resampled
			}
			w = cfg.weightFn(rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return builderErrorf(MethodExtraEdges, ErrConstructFailed, "AddEdge(%d-%d, w=%d): %v", u, v, w, err)
			}
		}

		return nil
	}
}
