package hinge

import (
	"gonum.org/v1/gonum/mat"
)

// MarginLoss computes the hinge loss max(0, margin) for a single class margin
// and its derivative with respect to the margin. A margin of exactly zero is not
// a violation.
func MarginLoss(margin float64) (loss float64, grad float64) {
	if margin > 0 {
		return margin, 1.0
	}
	return 0.0, 0.0
}

// SVMLossNaive computes the structured SVM loss and gradient with explicit
// loops over samples, classes and feature dims. Panics if the inputs have
// inconsistent shapes or a label is out of range.
func SVMLossNaive(W, X mat.Matrix, y []int, reg float64) (loss float64, dW *mat.Dense) {
	n, d, c := checkInputs(W, X, y, reg)
	logf(2, "SVMLossNaive: N=%d D=%d C=%d reg=%g\n", n, d, c, reg)

	dW = mat.NewDense(d, c, nil)
	scores := make([]float64, c)
	xi := make([]float64, d)
	for ii := 0; ii < n; ii++ {
		mat.Row(xi, ii, X)
		for jj := 0; jj < c; jj++ {
			s := 0.0
			for kk := 0; kk < d; kk++ {
				s += xi[kk] * W.At(kk, jj)
			}
			scores[jj] = s
		}

		yi := y[ii]
		correct := scores[yi]
		violated := 0
		for jj := 0; jj < c; jj++ {
			if jj == yi {
				continue
			}
			l, g := MarginLoss(scores[jj] - correct + Delta)
			if g == 0 {
				continue
			}
			loss += l
			violated++
			// +x_i to the violating class, -x_i to the correct class.
			for kk := 0; kk < d; kk++ {
				dW.Set(kk, jj, dW.At(kk, jj)+xi[kk])
				dW.Set(kk, yi, dW.At(kk, yi)-xi[kk])
			}
		}
		logf(3, "Sample %d (label %d): %d violations\n", ii, yi, violated)
	}

	// Average over the batch, then regularize.
	nf := float64(n)
	loss /= nf
	loss += l2Penalty(W, reg)

	dW.Scale(1/nf, dW)
	addL2Grad(dW, W, reg)
	return
}
