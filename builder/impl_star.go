// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// impl_star.go - implementation of the Star constructor.
//
// Contract:
//   - g must have ≥ 2 nodes (else ErrTooFewVertices).
//   - Hub is RootNode; spokes RootNode-leaf are emitted by increasing leaf id.
//   - Weight policy: cfg.weightFn(cfg.rng) per spoke, in emission order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/pathquiz/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that connects every node of g to RootNode.
// Any leaf-to-leaf route goes through the hub.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}

		var w int64
		for leaf := 0; leaf < n; leaf++ {
			if leaf == RootNode {
				continue
			}
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(RootNode, leaf, w); err != nil {
				return builderErrorf(methodStar, ErrConstructFailed, "AddEdge(%d-%d, w=%d): %v", RootNode, leaf, w, err)
			}
		}

		return nil
	}
}
