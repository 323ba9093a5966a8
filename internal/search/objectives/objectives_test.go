package objectives

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveValues(t *testing.T) {
	tests := []struct {
		name      string
		objective Objective
		x         []float64
		want      float64
	}{
		{
			name:      "sphere at origin",
			objective: Sphere{},
			x:         []float64{0, 0},
			want:      0,
		},
		{
			name:      "sphere at (3, 4)",
			objective: Sphere{},
			x:         []float64{3, 4},
			want:      25,
		},
		{
			name:      "sphere in one dimension",
			objective: Sphere{},
			x:         []float64{-2},
			want:      4,
		},
		{
			name:      "rastrigin at origin",
			objective: Rastrigin{},
			x:         []float64{0, 0},
			want:      0,
		},
		{
			name:      "rastrigin at unit point",
			objective: Rastrigin{},
			x:         []float64{1, 1},
			want:      2,
		},
		{
			name:      "rosenbrock at minimum",
			objective: Rosenbrock{},
			x:         []float64{1, 1},
			want:      0,
		},
		{
			name:      "rosenbrock at origin",
			objective: Rosenbrock{},
			x:         []float64{0, 0},
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.objective.Func(tt.x)
			assert.InDelta(t, tt.want, got, 1e-10)
		})
	}
}

func TestMinimaAreConsistent(t *testing.T) {
	for _, o := range []Objective{Sphere{}, Rastrigin{}, Rosenbrock{}} {
		for _, min := range o.Minima() {
			assert.InDelta(t, min.F, o.Func(min.X), 1e-10,
				"%s minimum at %v", o.Name(), min.X)
		}
	}
}

func TestRosenbrockPanicsBelowTwoDimensions(t *testing.T) {
	assert.Panics(t, func() { Rosenbrock{}.Func([]float64{1}) })
}

func TestByName(t *testing.T) {
	for _, name := range []string{"sphere", "rastrigin", "rosenbrock"} {
		o, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, o.Name())
	}

	_, err := ByName("gradient-descent")
	assert.Error(t, err)
}

func TestBind(t *testing.T) {
	f := Bind(Sphere{})

	got, err := f([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)
	assert.False(t, math.IsNaN(got))
}
