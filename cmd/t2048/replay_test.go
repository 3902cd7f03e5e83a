package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestReplayIsDeterministic(t *testing.T) {
	args := []string{"replay", "--seed", "7", "--log-level", "error", "left", "up", "right", "down", "left"}

	first := execute(t, args...)
	second := execute(t, args...)

	assert.Contains(t, first, "seed 7")
	assert.Contains(t, first, "/5  max")
	assert.Equal(t, first, second)
}

func TestReplayRejectsUnknownDirection(t *testing.T) {
	rootCmd.SetArgs([]string{"replay", "--seed", "1", "sideways"})
	rootCmd.SetOut(&bytes.Buffer{})
	assert.ErrorContains(t, rootCmd.Execute(), "unknown direction")
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out := execute(t, "config")
	assert.Contains(t, out, "# source:")
	assert.Contains(t, out, "four_odds: 9")
	assert.Contains(t, out, "velocity: 2750")
}
