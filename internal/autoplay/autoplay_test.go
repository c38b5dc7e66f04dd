package autoplay

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIdleKeepsSingleCircle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyIdle
	cfg.Ticks = 100

	res, err := Run(context.Background(), cfg, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Ticks)
	assert.Zero(t, res.Games)
	assert.Zero(t, res.Splits)
	assert.Zero(t, res.Score)
	assert.Equal(t, 1, res.PeakCircles)
	assert.False(t, res.GameOver)
}

func TestRunFirstSplitEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyNewest
	cfg.Ticks = 100
	cfg.Restart = false

	res, err := Run(context.Background(), cfg, 3, nil)
	require.NoError(t, err)
	assert.True(t, res.GameOver)
	assert.Equal(t, 1, res.Ticks, "run should stop once the game is over")
	assert.Equal(t, 1, res.Games)
	assert.Equal(t, 1, res.Splits)
	assert.Equal(t, 2, res.Merges)
	assert.Equal(t, 100, res.Score)
}

func TestRunRestartsAfterGameOver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyNewest
	cfg.Ticks = 100
	cfg.TapEvery = 30

	res, err := Run(context.Background(), cfg, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Ticks)
	assert.Equal(t, 4, res.Games)
	assert.Equal(t, 4, res.Splits)
	assert.Equal(t, 100, res.BestScore)
	assert.False(t, res.GameOver)
	assert.Zero(t, res.Score)
}

func TestRunDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyRandom
	cfg.Ticks = 600

	first, err := Run(context.Background(), cfg, 77, nil)
	require.NoError(t, err)
	second, err := Run(context.Background(), cfg, 77, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed produced different results (-first +second):\n%s", diff)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, DefaultConfig(), 1, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TapEvery = 0

	_, err := Run(context.Background(), cfg, 1, nil)
	require.Error(t, err)
}

func TestRunManyMatchesSequentialRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyRandom
	cfg.Ticks = 300
	seeds := Seeds(10, 8)

	results, err := RunMany(context.Background(), cfg, seeds, 3, nil)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, seed := range seeds {
		want, err := Run(context.Background(), cfg, seed, nil)
		require.NoError(t, err)
		assert.Equal(t, want, results[i], "seed %d", seed)
	}
}

func TestRunManyPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunMany(ctx, DefaultConfig(), Seeds(1, 4), 2, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []int64{5, 6, 7}, Seeds(5, 3))
	assert.Nil(t, Seeds(5, 0))
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]Result{
		{Seed: 1, BestScore: 100, Games: 2, Ticks: 10},
		{Seed: 2, BestScore: 300, Games: 1, Ticks: 30},
		{Seed: 3, BestScore: 200, Games: 0, Ticks: 20},
	})
	assert.Equal(t, 3, sum.Runs)
	assert.Equal(t, 3, sum.Games)
	assert.Equal(t, 300, sum.MaxScore)
	assert.Equal(t, int64(2), sum.BestSeed)
	assert.InDelta(t, 200, sum.MeanScore, 1e-9)
	assert.InDelta(t, 20, sum.MeanTicks, 1e-9)

	assert.Equal(t, Summary{}, Summarize(nil))
}
