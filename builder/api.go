// SPDX-License-Identifier: MIT
// Package: pathquiz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same n/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathquiz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw randomness only from cfg.rng.
//   - Never emit self-loops or duplicate pairs.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph over n nodes, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return build(n, newBuilderConfig(bopts...), cons...)
}

// build is BuildGraph with an already resolved config, so that Generate can
// keep using the same RNG for endpoint selection afterwards.
func build(n int, cfg builderConfig, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %v", ErrTooFewVertices, err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate builds one fixture graph: a random spanning tree over numNodes
// nodes, up to numNodes extra edges, and a (start, end) pair with start != end.
// Edge weights are uniform integers in [1, maxWeight] unless a later
// WithWeightFn/WithUniformWeight option overrides them.
//
// The RNG must be supplied via WithSeed or WithRand; it is consumed in the
// order tree → extra edges → endpoints.
//
// Errors: ErrTooFewVertices (numNodes < 2), ErrBadWeightRange (maxWeight < 1),
// ErrNeedRandSource (no RNG).
func Generate(numNodes, maxWeight int, opts ...BuilderOption) (*core.Graph, core.Endpoints, error) {
	if err := validateMin(MethodGenerate, numNodes, MinGenerateNodes); err != nil {
		return nil, core.Endpoints{}, err
	}
	if int64(maxWeight) < MinWeight {
		return nil, core.Endpoints{}, fmt.Errorf("%s: max_weight=%d < %d: %w",
			MethodGenerate, maxWeight, MinWeight, ErrBadWeightRange)
	}

	// The uniform weight policy goes first so callers can still override it.
	all := make([]BuilderOption, 0, len(opts)+1)
	all = append(all, WithUniformWeight(MinWeight, int64(maxWeight)))
	all = append(all, opts...)
	cfg := newBuilderConfig(all...)
	if cfg.rng == nil {
		return nil, core.Endpoints{}, fmt.Errorf("%s: %w", MethodGenerate, ErrNeedRandSource)
	}

	g, err := build(numNodes, cfg, RandomSpanningTree(), RandomExtraEdges(numNodes))
	if err != nil {
		return nil, core.Endpoints{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	ep, err := PickEndpoints(numNodes, cfg.rng)
	if err != nil {
		return nil, core.Endpoints{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return g, ep, nil
}
