package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathquiz/config"
)

func TestDefault_IsValid(t *testing.T) {
	d := config.Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, []int{20, 50, 80, 100, 120}, d.NodeCounts)
	assert.Equal(t, 20, d.MaxWeight)
	assert.Equal(t, int64(42), d.BaseSeed)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pathquiz.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
node_counts: [5, 6]
max_weight: 9
base_seed: 7
format: yaml
dot: true
`), 0o644))

	c, err := config.Load(config.New(), file)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, c.NodeCounts)
	assert.Equal(t, 9, c.MaxWeight)
	assert.Equal(t, int64(7), c.BaseSeed)
	assert.Equal(t, "yaml", c.Format)
	assert.True(t, c.Dot)
	assert.Equal(t, ".", c.OutputDir, "unset keys keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PATHQUIZ_MAX_WEIGHT", "7")
	t.Setenv("PATHQUIZ_CROSS_CHECK", "true")

	c, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, c.MaxWeight)
	assert.True(t, c.CrossCheck)
}

func TestLoad_FlagsOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--max-weight=3", "--node-counts=4,8", "--log-level=debug"}))

	v := config.New()
	require.NoError(t, config.BindFlags(v, fs))
	c, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxWeight)
	assert.Equal(t, []int{4, 8}, c.NodeCounts)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, int64(42), c.BaseSeed, "unset flag keeps default")
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]struct {
		mutate func(*config.Config)
		field  string
	}{
		"no fixtures":   {func(c *config.Config) { c.NodeCounts = nil }, "NodeCounts"},
		"tiny fixture":  {func(c *config.Config) { c.NodeCounts = []int{20, 1} }, "NodeCounts"},
		"zero weight":   {func(c *config.Config) { c.MaxWeight = 0 }, "MaxWeight"},
		"bad format":    {func(c *config.Config) { c.Format = "xml" }, "Format"},
		"no output dir": {func(c *config.Config) { c.OutputDir = "" }, "OutputDir"},
		"bad log level": {func(c *config.Config) { c.LogLevel = "loud" }, "LogLevel"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)

			var verrs validation.Errors
			require.True(t, errors.As(err, &verrs))
			assert.Contains(t, verrs, tc.field)
		})
	}
}
