// Package search defines the data model and strategy contract for the
// SEEKR blind search demo.
package search

// Strategy defines the interface for search strategies
type Strategy interface {
	// Run executes one complete search over the configured domain
	Run(config Config) (*Result, error)
}

// Config contains configuration for one search run.
// It is immutable for the duration of the run.
type Config struct {
	// Dimension is the number of coordinates in a candidate (>= 1)
	Dimension int

	// LowerBound and UpperBound delimit every axis (LowerBound < UpperBound)
	LowerBound float64
	UpperBound float64

	// SampleCount is the number of candidates to evaluate (>= 1)
	SampleCount int

	// Objective function to minimize
	Objective ObjectiveFunc

	// RandomSeed for reproducibility; 0 seeds from the wall clock
	RandomSeed int64
}

// ObjectiveFunc defines the function to be minimized. It must be pure and
// deterministic given its input; an error return aborts the run.
type ObjectiveFunc func(x []float64) (float64, error)

// Point is a candidate together with its objective value.
type Point struct {
	// Coordinates of the evaluated candidate
	Coordinates []float64
	// Value of the objective at Coordinates
	Value float64
	// Iteration is the sequential sample index at which the point was evaluated
	Iteration int
}

// Trace is the ordered subsequence of evaluated points that strictly
// improved on the best value seen so far. The first evaluated point is
// always included; values are strictly decreasing afterwards.
type Trace []Point

// Last returns the final (best) point of the trace.
// It panics on an empty trace; a successful run never produces one.
func (t Trace) Last() Point {
	return t[len(t)-1]
}

// Values returns the objective values of the trace in order.
func (t Trace) Values() []float64 {
	vals := make([]float64, len(t))
	for i, p := range t {
		vals[i] = p.Value
	}
	return vals
}

// Result contains the outcome of a search run.
type Result struct {
	// BestValue is the minimum observed value; equals Trace.Last().Value
	BestValue float64
	// Trace of improving points in evaluation order
	Trace Trace
	// Evaluations is the number of objective evaluations performed
	Evaluations int
}

// Validate checks the configuration invariants. It returns an
// invalid-configuration error describing the first violation found.
func (c Config) Validate() error {
	if c.Dimension < 1 {
		return InvalidConfigurationf("dimension must be positive, got %d", c.Dimension).
			WithOperation("validate").WithComponent("search")
	}
	if c.SampleCount < 1 {
		return InvalidConfigurationf("sample count must be positive, got %d", c.SampleCount).
			WithOperation("validate").WithComponent("search")
	}
	if c.LowerBound >= c.UpperBound {
		return InvalidConfigurationf("lower bound must be less than upper bound, got [%v, %v]", c.LowerBound, c.UpperBound).
			WithOperation("validate").WithComponent("search")
	}
	if c.Objective == nil {
		return NewInvalidConfiguration("objective function is required").
			WithOperation("validate").WithComponent("search")
	}
	return nil
}
