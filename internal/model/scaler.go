package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Scaler is a fitted center/scale transform, one mean and deviation per
// feature column.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// FitScaler computes per-column mean and standard deviation over a training
// matrix. Constant columns get a deviation of 1 so Transform stays defined.
func FitScaler(x mat.Matrix) *Scaler {
	rows, cols := x.Dims()
	s := &Scaler{Mean: make([]float64, cols), Std: make([]float64, cols)}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		s.Mean[j] = mean
		s.Std[j] = std
	}
	return s
}

// Dims returns the feature width the scaler was fitted on.
func (s *Scaler) Dims() int { return len(s.Mean) }

// Transform standardizes one feature vector.
func (s *Scaler) Transform(v []float64) ([]float64, error) {
	if len(v) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(v))
	}
	out := make([]float64, len(v))
	for i := range v {
		out[i] = (v[i] - s.Mean[i]) / s.Std[i]
	}
	return out, nil
}
