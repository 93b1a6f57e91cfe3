package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pathquiz/config"
	"github.com/katalvlaran/pathquiz/fixture"
	"github.com/katalvlaran/pathquiz/pipeline"
	"github.com/katalvlaran/pathquiz/validator"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	c := config.Default()
	c.NodeCounts = []int{6, 12, 20}
	c.OutputDir = t.TempDir()

	return c
}

func TestRun_WritesFixtures(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dot = true
	cfg.CrossCheck = true

	obs, logs := observer.New(zapcore.DebugLevel)
	results, err := pipeline.Run(context.Background(), cfg, zap.New(obs))
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, i+1, res.ID)
		assert.Equal(t, cfg.NodeCounts[i], res.Nodes)
		assert.Equal(t, cfg.BaseSeed+int64(i+1), res.Seed)
		assert.GreaterOrEqual(t, res.Edges, res.Nodes-1)
		assert.True(t, res.Answer.Reachable())
		assert.Equal(t, filepath.Join(cfg.OutputDir, fixture.FileName(res.ID, res.Nodes, fixture.FormatJSON)), res.File)
		assert.FileExists(t, res.File)
		assert.FileExists(t, res.DotFile)

		rec, err := fixture.Read(res.File)
		require.NoError(t, err)
		assert.Equal(t, res.Endpoints, rec.Endpoints())
		assert.Len(t, rec.Graph, res.Edges)
	}

	generated := logs.FilterMessage("fixture generated").All()
	require.Len(t, generated, 3)
	fields := generated[0].ContextMap()
	assert.EqualValues(t, 1, fields["graph_id"])
	assert.EqualValues(t, 6, fields["nodes"])
	assert.EqualValues(t, results[0].Answer.Distance, fields["distance"])
	assert.Equal(t, results[0].File, fields["file"])
	assert.Equal(t, 3, logs.FilterMessage("drawing written").Len())
}

func TestRun_Deterministic(t *testing.T) {
	a := testConfig(t)
	b := testConfig(t)

	ra, err := pipeline.Run(context.Background(), a, zaptest.NewLogger(t))
	require.NoError(t, err)
	rb, err := pipeline.Run(context.Background(), b, zaptest.NewLogger(t))
	require.NoError(t, err)

	for i := range ra {
		assert.Equal(t, ra[i].Answer, rb[i].Answer)
		da, err := os.ReadFile(ra[i].File)
		require.NoError(t, err)
		db, err := os.ReadFile(rb[i].File)
		require.NoError(t, err)
		assert.Equal(t, da, db)
	}
}

func TestRun_SingleFixtureReproducible(t *testing.T) {
	// Fixture 3 depends only on base seed + 3, not on earlier fixtures.
	full := testConfig(t)
	ra, err := pipeline.Run(context.Background(), full, nil)
	require.NoError(t, err)

	alone := testConfig(t)
	alone.NodeCounts = []int{20}
	alone.BaseSeed = full.BaseSeed + 2
	rb, err := pipeline.Run(context.Background(), alone, nil)
	require.NoError(t, err)

	assert.Equal(t, ra[2].Answer, rb[0].Answer)
	assert.Equal(t, ra[2].Endpoints, rb[0].Endpoints)
}

func TestRun_YAML(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = "yaml"
	results, err := pipeline.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, ".yaml", filepath.Ext(results[0].File))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := pipeline.Run(ctx, testConfig(t), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxWeight = 0
	_, err := pipeline.Run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadAndCheck(t *testing.T) {
	cfg := testConfig(t)
	results, err := pipeline.Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	q, err := pipeline.Load(results[1].File)
	require.NoError(t, err)
	assert.Equal(t, results[1].Answer, q.Answer)

	good := q.Answer.String()
	assert.True(t, q.Check(good, false).OK)
	assert.True(t, q.Check(good, true).OK)

	v := q.Check("Distance: 0, Path: 1->2", false)
	assert.False(t, v.OK)

	v = q.Check("gibberish", true)
	assert.False(t, v.OK)
	assert.Contains(t, v.Reason, validator.ReasonMalformedAnswer)
}

func TestLoad_RejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"graph_id":1,"graph":[[0,1,3],[1,0,4]],"start_node":0,"end_node":1}`), 0o644))
	_, err := pipeline.Load(path)
	assert.ErrorIs(t, err, fixture.ErrDuplicateEdge)
}

func TestLoad_RejectsHugeNodeID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"graph_id":1,"graph":[[0,4000000000000000000,3]],"start_node":0,"end_node":1,"instructions":""}`), 0o644))

	var err error
	require.NotPanics(t, func() { _, err = pipeline.Load(path) })
	assert.ErrorIs(t, err, fixture.ErrNodeOutOfRange)
}
