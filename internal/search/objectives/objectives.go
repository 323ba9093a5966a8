// Package objectives provides the benchmark functions the demo minimizes.
package objectives

import (
	"fmt"
	"math"

	"github.com/copyleftdev/SEEKR/internal/search"
)

// Minimum is a known global minimum of an objective.
type Minimum struct {
	// X is the location of the minimum
	X []float64
	// F is the objective value at X
	F float64
}

// Objective is a named benchmark function with known global minima.
type Objective interface {
	// Name returns the identifier used for objective selection
	Name() string

	// Func evaluates the objective at x
	Func(x []float64) float64

	// Minima returns known global minima, used for testing
	Minima() []Minimum
}

// Sphere implements the sphere function, the sum of squared coordinates.
// It is defined for any dimension >= 1 with its global minimum 0 at the
// origin. This is the demo's default objective.
type Sphere struct{}

func (Sphere) Name() string { return "sphere" }

func (Sphere) Func(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func (Sphere) Minima() []Minimum {
	return []Minimum{
		{X: []float64{0, 0}, F: 0},
	}
}

// Rastrigin implements the Rastrigin function, a highly multimodal
// benchmark with its global minimum 0 at the origin.
//
// References:
//   - Rastrigin, L. A.: Systems of extremal control. Nauka (1974)
type Rastrigin struct{}

func (Rastrigin) Name() string { return "rastrigin" }

func (Rastrigin) Func(x []float64) float64 {
	sum := 10 * float64(len(x))
	for _, v := range x {
		sum += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return sum
}

func (Rastrigin) Minima() []Minimum {
	return []Minimum{
		{X: []float64{0, 0}, F: 0},
	}
}

// Rosenbrock implements the Rosenbrock valley function with its global
// minimum 0 at (1, ..., 1).
//
// References:
//   - Rosenbrock, H. H.: An Automatic Method for Finding the Greatest or
//     Least Value of a Function. The Computer Journal 3 (1960), 175-184
type Rosenbrock struct{}

func (Rosenbrock) Name() string { return "rosenbrock" }

func (Rosenbrock) Func(x []float64) float64 {
	if len(x) < 2 {
		panic("dimension of the problem must be at least 2")
	}

	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum
}

func (Rosenbrock) Minima() []Minimum {
	return []Minimum{
		{X: []float64{1, 1}, F: 0},
	}
}

// ByName resolves an objective by its identifier.
func ByName(name string) (Objective, error) {
	switch name {
	case "sphere":
		return Sphere{}, nil
	case "rastrigin":
		return Rastrigin{}, nil
	case "rosenbrock":
		return Rosenbrock{}, nil
	default:
		return nil, fmt.Errorf("unknown objective %q", name)
	}
}

// Bind adapts a benchmark objective to the core search signature. The
// returned function never fails on its own; a panicking objective is the
// runner's concern.
func Bind(o Objective) search.ObjectiveFunc {
	return func(x []float64) (float64, error) {
		return o.Func(x), nil
	}
}
