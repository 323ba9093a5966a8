package search

import (
	"math"
	"testing"
)

// testObjectiveFunc is a simple quadratic objective function for testing
func testObjectiveFunc(x []float64) (float64, error) {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum, nil
}

// assertFloat64SlicesEqual checks if two float64 slices are approximately equal
func assertFloat64SlicesEqual(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("at index %d: got %v, want %v (tolerance %v)", i, got[i], want[i], tol)
		}
	}
}

// assertStrictlyDecreasing checks that the values strictly decrease.
func assertStrictlyDecreasing(t *testing.T, values []float64) {
	t.Helper()

	for i := 1; i < len(values); i++ {
		if !(values[i] < values[i-1]) {
			t.Fatalf("values not strictly decreasing at index %d: %v then %v", i, values[i-1], values[i])
		}
	}
}

// assertResultInvariants checks the contract every successful run satisfies:
// a non-empty trace with strictly decreasing values whose last value is the
// best value. NaN best values are compared with math.IsNaN.
func assertResultInvariants(t *testing.T, result *Result) {
	t.Helper()

	if result == nil {
		t.Fatal("result is nil")
	}
	if len(result.Trace) == 0 {
		t.Fatal("trace is empty")
	}
	assertStrictlyDecreasing(t, result.Trace.Values())

	last := result.Trace.Last().Value
	if math.IsNaN(result.BestValue) {
		if !math.IsNaN(last) {
			t.Fatalf("best value is NaN but trace ends with %v", last)
		}
		return
	}
	if result.BestValue != last {
		t.Fatalf("best value %v does not equal last trace value %v", result.BestValue, last)
	}
}
