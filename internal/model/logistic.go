package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Classifier is a fitted binary logistic model over standardized features.
type Classifier struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Proba returns the probability of the positive (at-risk) class.
func (c *Classifier) Proba(v []float64) float64 {
	return sigmoid(floats.Dot(c.Weights, v) + c.Bias)
}

// Predict returns the class label, 1 when the positive probability reaches
// one half.
func (c *Classifier) Predict(v []float64) int {
	if c.Proba(v) >= 0.5 {
		return 1
	}
	return 0
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// TrainClassifier fits a logistic model by full-batch gradient descent.
// Inputs are assumed standardized, so a modest fixed rate converges.
func TrainClassifier(x *mat.Dense, y []float64, epochs int, rate float64) *Classifier {
	rows, cols := x.Dims()
	w := mat.NewVecDense(cols, nil)
	bias := 0.0

	z := mat.NewVecDense(rows, nil)
	resid := mat.NewVecDense(rows, nil)
	grad := mat.NewVecDense(cols, nil)

	for e := 0; e < epochs; e++ {
		z.MulVec(x, w)
		gradBias := 0.0
		for i := 0; i < rows; i++ {
			r := sigmoid(z.AtVec(i)+bias) - y[i]
			resid.SetVec(i, r)
			gradBias += r
		}
		grad.MulVec(x.T(), resid)
		for j := 0; j < cols; j++ {
			w.SetVec(j, w.AtVec(j)-rate*grad.AtVec(j)/float64(rows))
		}
		bias -= rate * gradBias / float64(rows)
	}

	out := &Classifier{Weights: make([]float64, cols), Bias: bias}
	for j := 0; j < cols; j++ {
		out.Weights[j] = w.AtVec(j)
	}
	return out
}
