package hinge

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SVMLossVectorized computes the same loss and gradient as SVMLossNaive using
// whole-matrix operations: one product for the N x C score matrix, an indicator
// matrix of margin violations, and one product for the gradient.
func SVMLossVectorized(W, X mat.Matrix, y []int, reg float64) (loss float64, dW *mat.Dense) {
	n, d, c := checkInputs(W, X, y, reg)
	logf(2, "SVMLossVectorized: N=%d D=%d C=%d reg=%g\n", n, d, c, reg)

	var scores mat.Dense
	scores.Mul(X, W)

	correct := make([]float64, n)
	for ii, yi := range y {
		correct[ii] = scores.At(ii, yi)
	}

	// 1 wherever s_j + delta > s_yi. This also marks the correct class itself,
	// whose margin is always delta, so it has to be cleared.
	ind := mat.NewDense(n, c, nil)
	ind.Apply(func(i, j int, v float64) float64 {
		if v+Delta > correct[i] {
			return 1
		}
		return 0
	}, &scores)
	for ii, yi := range y {
		ind.Set(ii, yi, 0)
	}

	var margins mat.Dense
	margins.Apply(func(i, j int, v float64) float64 {
		return v + Delta - correct[i]
	}, &scores)
	margins.MulElem(&margins, ind)

	nf := float64(n)
	loss = mat.Sum(&margins)/nf + l2Penalty(W, reg)

	// Each violation pulls x_i away from the correct class once.
	for ii, yi := range y {
		row := ind.RawRowView(ii)
		row[yi] = -floats.Sum(row)
		logf(3, "Sample %d (label %d): %.0f violations\n", ii, yi, -row[yi])
	}

	dW = mat.NewDense(d, c, nil)
	dW.Mul(X.T(), ind)
	dW.Scale(1/nf, dW)
	addL2Grad(dW, W, reg)
	return
}
