package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RENDER_OUTPUT_DIR", filepath.Join(dir, "out"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 2, cfg.Search.Dimension)
	assert.Equal(t, -10.0, cfg.Search.LowerBound)
	assert.Equal(t, 10.0, cfg.Search.UpperBound)
	assert.Equal(t, 20000, cfg.Search.SampleCount)
	assert.Equal(t, "sphere", cfg.Search.Objective)
	assert.Equal(t, int64(0), cfg.Search.Seed)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 200, cfg.Render.GridSize)
	assert.Equal(t, "", cfg.Report.CSVPath)

	// The render output directory gets created during Load
	info, err := os.Stat(cfg.Render.OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SEARCH_DIMENSION", "3")
	t.Setenv("SEARCH_LOWER_BOUND", "-5.5")
	t.Setenv("SEARCH_UPPER_BOUND", "5.5")
	t.Setenv("SEARCH_SAMPLE_COUNT", "100")
	t.Setenv("SEARCH_OBJECTIVE", "rastrigin")
	t.Setenv("SEARCH_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RENDER_ENABLED", "false")
	t.Setenv("RENDER_OUTPUT_DIR", filepath.Join(dir, "never-created"))
	t.Setenv("RENDER_FRAME_DELAY", "250ms")
	t.Setenv("REPORT_CSV_PATH", filepath.Join(dir, "trace.csv"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Search.Dimension)
	assert.Equal(t, -5.5, cfg.Search.LowerBound)
	assert.Equal(t, 5.5, cfg.Search.UpperBound)
	assert.Equal(t, 100, cfg.Search.SampleCount)
	assert.Equal(t, "rastrigin", cfg.Search.Objective)
	assert.Equal(t, int64(42), cfg.Search.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Render.Enabled)
	assert.Equal(t, "250ms", cfg.Render.FrameDelay.String())
	assert.Equal(t, filepath.Join(dir, "trace.csv"), cfg.Report.CSVPath)

	// Rendering disabled: the output directory must not be created
	_, err = os.Stat(cfg.Render.OutputDir)
	assert.True(t, os.IsNotExist(err))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SEEKR_TEST_STR", "value")
	t.Setenv("SEEKR_TEST_INT", "17")
	t.Setenv("SEEKR_TEST_BOOL", "true")
	t.Setenv("SEEKR_TEST_BAD_INT", "not-a-number")

	assert.Equal(t, "value", GetEnv("SEEKR_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SEEKR_TEST_MISSING", "fallback"))
	assert.Equal(t, 17, GetEnvAsInt("SEEKR_TEST_INT", 3))
	assert.Equal(t, 3, GetEnvAsInt("SEEKR_TEST_BAD_INT", 3))
	assert.True(t, GetEnvAsBool("SEEKR_TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("SEEKR_TEST_MISSING", false))
}
