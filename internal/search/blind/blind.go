// Package blind implements blind search: uniform random sampling over a
// bounded domain with a running strict minimum.
package blind

import (
	"math/rand"
	"time"

	"github.com/copyleftdev/SEEKR/internal/errors"
	"github.com/copyleftdev/SEEKR/internal/search"
)

// BlindSearch implements the blind search strategy
type BlindSearch struct {
	// Configuration
	config search.Config

	// Random number generator
	rng *rand.Rand

	// Best point found
	best *search.Point

	// Improving trace of the latest run
	trace search.Trace
}

// NewBlindSearch creates a new blind search strategy. The configuration is
// validated up front so a misconfigured search fails before any sampling.
func NewBlindSearch(config search.Config) (*BlindSearch, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Initialize random number generator
	rng := rand.New(rand.NewSource(config.RandomSeed))
	if config.RandomSeed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &BlindSearch{
		config: config,
		rng:    rng,
	}, nil
}

// Run executes one complete search and returns the improving trace together
// with the best value found. It implements search.Strategy.
func (bs *BlindSearch) Run(config search.Config) (*search.Result, error) {
	// Update config if provided
	if config.Objective != nil {
		bs.config = config
	}

	if err := bs.config.Validate(); err != nil {
		return nil, err
	}

	return bs.runSequence(bs.sampleAxes())
}

// GetBest returns the best point found so far, or nil before any run
func (bs *BlindSearch) GetBest() *search.Point {
	return bs.best
}

// GetTrace returns the improving trace accumulated so far
func (bs *BlindSearch) GetTrace() search.Trace {
	return bs.trace
}

// sampleAxes draws SampleCount uniform values for every axis. Generation is
// axis-major: all samples for axis 0 are drawn before any sample of axis 1,
// so a fixed seed reproduces the exact candidate sequence.
func (bs *BlindSearch) sampleAxes() [][]float64 {
	span := bs.config.UpperBound - bs.config.LowerBound
	axes := make([][]float64, bs.config.Dimension)

	for i := range axes {
		samples := make([]float64, bs.config.SampleCount)
		for j := range samples {
			samples[j] = bs.config.LowerBound + bs.rng.Float64()*span
		}
		axes[i] = samples
	}

	return axes
}

// runSequence evaluates an axis-major candidate matrix in sequential order.
// Candidate i is assembled from the i-th value of every axis. Given the same
// matrix and objective it always produces the same result, which is what
// makes Run reproducible under a fixed seed.
func (bs *BlindSearch) runSequence(axes [][]float64) (*search.Result, error) {
	// Reset state so a reused strategy starts a fresh trace
	bs.best = nil
	bs.trace = nil

	sampleCount := len(axes[0])
	candidate := make([]float64, len(axes))

	for i := 0; i < sampleCount; i++ {
		for d := range axes {
			candidate[d] = axes[d][i]
		}

		value, err := bs.evaluate(candidate)
		if err != nil {
			return nil, search.WrapObjectiveFailure(err, "error evaluating objective function").
				WithOperation("run").WithComponent("blind_search")
		}

		bs.updateBest(candidate, value, i)
	}

	return &search.Result{
		BestValue:   bs.best.Value,
		Trace:       bs.trace,
		Evaluations: sampleCount,
	}, nil
}

// evaluate calls the objective with a panic guard, since the function is
// injected by the caller and not under our control.
func (bs *BlindSearch) evaluate(x []float64) (float64, error) {
	var value float64
	err := errors.Recovery("evaluate", "blind_search", func() error {
		var err error
		value, err = bs.config.Objective(x)
		return err
	})
	return value, err
}

// updateBest appends the point to the trace when it strictly improves the
// running best. The first evaluation always improves. NaN comparisons are
// false, so a NaN value never displaces an existing best.
func (bs *BlindSearch) updateBest(x []float64, value float64, iteration int) {
	if bs.best == nil || value < bs.best.Value {
		point := search.Point{
			Coordinates: append([]float64(nil), x...),
			Value:       value,
			Iteration:   iteration,
		}
		bs.best = &point
		bs.trace = append(bs.trace, point)
	}
}
