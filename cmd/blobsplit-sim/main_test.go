package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blobsplit/internal/autoplay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfigAppliesFileThenOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: 50\nstrategy: newest\n"), 0o644))

	configPath = path
	overrides = map[string]string{"ticks": "75"}
	t.Cleanup(func() {
		configPath = ""
		overrides = nil
	})

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.Ticks)
	assert.Equal(t, autoplay.StrategyNewest, cfg.Strategy)
}

func TestPrintResults(t *testing.T) {
	results := []autoplay.Result{
		{Seed: 1, Ticks: 10, Games: 1, BestScore: 100, Merges: 2, Splits: 1, PeakCircles: 2},
		{Seed: 2, Ticks: 10, Games: 0},
	}
	var buf bytes.Buffer

	require.NoError(t, printResults(&buf, results, autoplay.Summarize(results)))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "seed")
	assert.Contains(t, out, "runs=2 games=1")
	assert.Contains(t, out, "max=100 (seed 1)")
}

func TestRootCommandRunsSweep(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--runs", "2", "--workers", "1", "--set", "ticks=40,strategy=idle"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		overrides = nil
		logger = zap.NewNop()
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "runs=2 games=0")
}
