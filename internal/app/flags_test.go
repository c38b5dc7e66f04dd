package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("blobsplit", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, cfg.Parse(fs, nil))
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 1024\nheight: 768\nseed: 9\ndebug: true\n"), 0o644))

	cfg := NewConfig()
	fs := flag.NewFlagSet("blobsplit", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, cfg.Parse(fs, []string{"-config", path, "-seed", "5"}))
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(5), cfg.Seed, "explicit flag should override the file")
}

func TestConfigFileRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 0\n"), 0o644))

	err := NewConfig().LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestConfigMissingFile(t *testing.T) {
	err := NewConfig().LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEffectiveSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 7
	assert.Equal(t, int64(7), cfg.EffectiveSeed())

	cfg.Seed = 0
	assert.NotZero(t, cfg.EffectiveSeed())
}

func TestLoggerNopUnlessDebug(t *testing.T) {
	cfg := NewConfig()
	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "nop logger should not enable debug")

	cfg.Debug = true
	log, err = cfg.Logger()
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
