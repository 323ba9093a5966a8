package render

import (
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyleftdev/SEEKR/internal/search"
)

func sphere(x []float64) (float64, error) {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum, nil
}

func testTrace() search.Trace {
	return search.Trace{
		{Coordinates: []float64{8, -7}, Value: 113, Iteration: 0},
		{Coordinates: []float64{4, 3}, Value: 25, Iteration: 2},
		{Coordinates: []float64{-1, 1}, Value: 2, Iteration: 9},
	}
}

func testSearchConfig() search.Config {
	return search.Config{
		Dimension:   2,
		LowerBound:  -10,
		UpperBound:  10,
		SampleCount: 10,
		Objective:   sphere,
	}
}

func TestRenderWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(Config{
		OutputDir:  dir,
		GridSize:   32,
		FrameDelay: 500 * time.Millisecond,
	}, nil)

	trace := testTrace()
	require.NoError(t, r.Render(testSearchConfig(), sphere, trace))

	// The surface plot must decode as a PNG
	pf, err := os.Open(filepath.Join(dir, "surface.png"))
	require.NoError(t, err)
	defer pf.Close()
	img, err := png.Decode(pf)
	require.NoError(t, err)
	assert.False(t, img.Bounds().Empty())

	// The replay must carry one frame per improving point at the
	// configured delay, playing once
	gf, err := os.Open(filepath.Join(dir, "search.gif"))
	require.NoError(t, err)
	defer gf.Close()
	replay, err := gif.DecodeAll(gf)
	require.NoError(t, err)
	assert.Len(t, replay.Image, len(trace))
	assert.Equal(t, -1, replay.LoopCount)
	for _, d := range replay.Delay {
		assert.Equal(t, 50, d, "delay is in 100ths of a second")
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	r := NewRenderer(Config{OutputDir: t.TempDir(), GridSize: 8}, nil)

	cfg := testSearchConfig()
	cfg.Dimension = 3
	err := r.Render(cfg, sphere, testTrace())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension 2")

	err = r.Render(testSearchConfig(), sphere, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace is empty")
}

func TestRenderPropagatesObjectiveError(t *testing.T) {
	r := NewRenderer(Config{OutputDir: t.TempDir(), GridSize: 8}, nil)

	cause := fmt.Errorf("mesh evaluation failed")
	failing := func(x []float64) (float64, error) { return 0, cause }

	err := r.Render(testSearchConfig(), failing, testTrace())
	require.Error(t, err)
	assert.Contains(t, err.Error(), cause.Error())
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	assert.Equal(t, ".", r.cfg.OutputDir)
	assert.Equal(t, defaultGridSize, r.cfg.GridSize)
	assert.Equal(t, defaultFrameDelay, r.cfg.FrameDelay)
	assert.NotNil(t, r.logger)
}
