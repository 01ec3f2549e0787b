package hinge

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NumericGradient estimates the gradient of f's loss with respect to every
// entry of W by central finite differences with step h.
func NumericGradient(f LossFunc, W, X mat.Matrix, y []int, reg float64, h float64) *mat.Dense {
	d, c := W.Dims()
	w0 := mat.DenseCopyOf(W)

	loss := func(w []float64) float64 {
		l, _ := f(mat.NewDense(d, c, w), X, y, reg)
		return l
	}
	grad := fd.Gradient(nil, loss, w0.RawMatrix().Data, &fd.Settings{
		Formula: fd.Central,
		Step:    h,
	})
	return mat.NewDense(d, c, grad)
}

// GradCheckSparse compares analytic against a centered difference at numChecks
// randomly chosen entries of W and returns the relative error of each.
func GradCheckSparse(f LossFunc, W, X mat.Matrix, y []int, reg float64,
	analytic mat.Matrix, numChecks int, h float64, rnd *rand.Rand) []float64 {
	d, c := W.Dims()
	w := mat.DenseCopyOf(W)
	errs := make([]float64, numChecks)
	for ii := 0; ii < numChecks; ii++ {
		r, s := rnd.Intn(d), rnd.Intn(c)
		old := w.At(r, s)

		w.Set(r, s, old+h)
		lossPlus, _ := f(w, X, y, reg)
		w.Set(r, s, old-h)
		lossMinus, _ := f(w, X, y, reg)
		w.Set(r, s, old)

		num := (lossPlus - lossMinus) / (2 * h)
		ana := analytic.At(r, s)
		errs[ii] = relError(num, ana)
		logf(2, "numerical: %f analytic: %f, relative error: %e\n", num, ana, errs[ii])
	}
	return errs
}

// RelError returns the largest elementwise relative error between a and b.
func RelError(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	errs := make([]float64, 0, r*c)
	for ii := 0; ii < r; ii++ {
		for jj := 0; jj < c; jj++ {
			errs = append(errs, relError(a.At(ii, jj), b.At(ii, jj)))
		}
	}
	return floats.Max(errs)
}

func relError(a, b float64) float64 {
	return math.Abs(a-b) / math.Max(1e-8, math.Abs(a)+math.Abs(b))
}
