// Package pipeline wires the generator, solver, audit, fixture writer and
// renderer into the per-fixture run used by the command line.
//
// Fixture ids are 1-based. Fixture i has cfg.NodeCounts[i-1] nodes and is
// generated from its own RNG seeded with cfg.BaseSeed + i, so any single
// fixture can be regenerated alone.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathquiz/builder"
	"github.com/katalvlaran/pathquiz/config"
	"github.com/katalvlaran/pathquiz/core"
	"github.com/katalvlaran/pathquiz/dijkstra"
	"github.com/katalvlaran/pathquiz/fixture"
	"github.com/katalvlaran/pathquiz/render"
)

// Result describes one generated fixture.
type Result struct {
	ID        int
	Nodes     int
	Edges     int
	Seed      int64
	Endpoints core.Endpoints
	Answer    core.Answer
	File      string
	DotFile   string // empty unless cfg.Dot
}

// Run generates every fixture of cfg in order. It stops at the first error
// or when ctx is cancelled; the results produced so far are returned either way.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := fixture.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(cfg.NodeCounts))
	for i, n := range cfg.NodeCounts {
		if err = ctx.Err(); err != nil {
			return results, err
		}
		id := i + 1
		res, err := one(cfg, format, id, n)
		if err != nil {
			log.Error("fixture failed", zap.Int("graph_id", id), zap.Int("nodes", n), zap.Error(err))
			return results, fmt.Errorf("fixture %d: %w", id, err)
		}
		log.Info("fixture generated",
			zap.Int("graph_id", res.ID),
			zap.Int("nodes", res.Nodes),
			zap.Int("edges", res.Edges),
			zap.Int64("seed", res.Seed),
			zap.Int("start", res.Endpoints.Start),
			zap.Int("end", res.Endpoints.End),
			zap.Int64("distance", res.Answer.Distance),
			zap.Ints("path", res.Answer.Path),
			zap.String("file", res.File),
		)
		if res.DotFile != "" {
			log.Debug("drawing written", zap.Int("graph_id", id), zap.String("file", res.DotFile))
		}
		results = append(results, res)
	}

	return results, nil
}

// one runs a single fixture: generate, solve, audit, persist, draw.
func one(cfg config.Config, format fixture.Format, id, n int) (Result, error) {
	seed := cfg.BaseSeed + int64(id)
	g, ep, err := builder.Generate(n, cfg.MaxWeight, builder.WithSeed(seed))
	if err != nil {
		return Result{}, err
	}
	ans, err := dijkstra.Solve(g, ep)
	if err != nil {
		return Result{}, err
	}
	if err = fixture.Audit(g, ep, int64(cfg.MaxWeight), ans); err != nil {
		return Result{}, err
	}
	if cfg.CrossCheck {
		if err = fixture.CrossCheck(g, ep, ans); err != nil {
			return Result{}, err
		}
	}

	file, err := fixture.Write(cfg.OutputDir, fixture.NewRecord(id, g, ep), n, format)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		ID:        id,
		Nodes:     n,
		Edges:     g.EdgeCount(),
		Seed:      seed,
		Endpoints: ep,
		Answer:    ans,
		File:      file,
	}

	if cfg.Dot {
		title := fmt.Sprintf("Graph %d: %d nodes, shortest path %d -> %d", id, n, ep.Start, ep.End)
		dot, err := render.DOT(g, ep, ans.Path, render.WithTitle(title))
		if err != nil {
			return Result{}, err
		}
		res.DotFile = filepath.Join(cfg.OutputDir, render.FileName(id, n))
		if err = os.WriteFile(res.DotFile, []byte(dot), 0o644); err != nil {
			return Result{}, fmt.Errorf("write drawing: %w", err)
		}
	}

	return res, nil
}
