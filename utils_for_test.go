package hinge

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// Check that a function panics.
// https://stackoverflow.com/a/31596110
func assertPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("The code did not panic")
		}
	}()
	f()
}

// Test whether two values are equal up to a tolerance.
func almostEqual(a, b float64) bool {
	const tol = 1.0e-06
	if b == 0 {
		return math.Abs(a) < tol
	}
	return math.Abs(a-b)/math.Abs(b) < tol
}

// Generate a random problem with normal weights of the given scale, standard
// normal features and uniform labels.
func randProblem(rnd *rand.Rand, n, d, c int, scale float64) (W, X *mat.Dense, y []int) {
	W = mat.NewDense(d, c, nil)
	W.Apply(func(_, _ int, _ float64) float64 {
		return scale * rnd.NormFloat64()
	}, W)
	X = mat.NewDense(n, d, nil)
	X.Apply(func(_, _ int, _ float64) float64 {
		return rnd.NormFloat64()
	}, X)
	y = make([]int, n)
	for ii := range y {
		y[ii] = rnd.Intn(c)
	}
	return
}
