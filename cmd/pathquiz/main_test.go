package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathquiz/fixture"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

func TestCLI_GenerateSolveValidate(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--node-counts", "5,8", "--out", dir, "--dot", "--log-level", "error")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Question 1:")
	assert.Contains(t, out, "Question 2:")

	file := filepath.Join(dir, fixture.FileName(2, 8, fixture.FormatJSON))
	assert.FileExists(t, file)
	assert.FileExists(t, filepath.Join(dir, "graph_2_8_nodes.dot"))

	out, err = execute(t, "solve", file, "--log-level", "error")
	require.NoError(t, err)
	answer := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(answer, "Distance: "), answer)

	out, err = execute(t, "validate", file, "--answer", answer, "--log-level", "error")
	require.NoError(t, err, out)
	assert.Contains(t, out, "PASS")

	out, err = execute(t, "validate", file, answer, "--strict", "--log-level", "error")
	require.NoError(t, err, out)
	assert.Contains(t, out, "PASS")

	out, err = execute(t, "validate", file, "Distance: 0, Path: 0", "--log-level", "error")
	assert.ErrorIs(t, err, errAnswerRejected)
	assert.Contains(t, out, "FAIL")
}

func TestCLI_GenerateYAMLFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "pathquiz.yaml")
	require.NoError(t, writeFile(cfgFile, "node_counts: [4]\nformat: yaml\noutput_dir: "+dir+"\nlog_level: error\n"))

	_, err := execute(t, "generate", "--config", cfgFile)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, fixture.FileName(1, 4, fixture.FormatYAML)))
}

func TestCLI_Errors(t *testing.T) {
	_, err := execute(t, "generate", "--max-weight", "0", "--out", t.TempDir())
	assert.Error(t, err)

	_, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = execute(t, "validate", "whatever.json")
	assert.Error(t, err)

	_, err = execute(t, "generate", "--log-level", "loud", "--out", t.TempDir())
	assert.Error(t, err)
}
