// Package hinge implements the multiclass structured SVM (hinge) loss and its
// gradient with respect to a linear classifier's weights.
//
// Two interchangeable evaluators are provided. SVMLossNaive loops over every
// sample and class explicitly, and SVMLossVectorized computes the same
// quantities with whole-matrix operations. Both take a D x C weight matrix W, an
// N x D batch X, N integer labels y in [0, C), and an L2 regularization strength,
// and return the loss and a freshly allocated D x C gradient.
package hinge

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Delta is the margin by which the correct class score must beat every other
// class score.
const Delta = 1.0

// A LossFunc computes a loss and its gradient with respect to W.
type LossFunc func(W, X mat.Matrix, y []int, reg float64) (loss float64, dW *mat.Dense)

// Check that W, X, y and reg have consistent shapes and return the batch size,
// feature dim and number of classes.
func checkInputs(W, X mat.Matrix, y []int, reg float64) (n, d, c int) {
	d, c = W.Dims()
	n, dX := X.Dims()
	if dX != d {
		panic(fmt.Sprintf("X has %d columns; expected %d (rows of W)", dX, d))
	}
	if len(y) != n {
		panic(fmt.Sprintf("Got %d labels for %d samples", len(y), n))
	}
	if n == 0 {
		panic("Empty batch")
	}
	for ii, label := range y {
		if label < 0 || label >= c {
			panic(fmt.Sprintf("Label y[%d] = %d out of range [0, %d)", ii, label, c))
		}
	}
	if reg < 0 {
		panic(fmt.Sprintf("Expected reg >= 0; got %g", reg))
	}
	return
}

// l2Penalty returns reg * sum(W^2). Note there is no 0.5 factor, so the matching
// gradient term is 2 * reg * W.
func l2Penalty(W mat.Matrix, reg float64) float64 {
	var sq mat.Dense
	sq.MulElem(W, W)
	return reg * mat.Sum(&sq)
}

// addL2Grad adds 2 * reg * W to dW in place.
func addL2Grad(dW *mat.Dense, W mat.Matrix, reg float64) {
	var g mat.Dense
	g.Scale(2*reg, W)
	dW.Add(dW, &g)
}
