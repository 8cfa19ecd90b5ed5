package model

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"riskscreen/internal/disease"
)

const (
	corpusSeed = 42
	corpusSize = 1000

	trainEpochs = 300
	trainRate   = 0.5
)

// boundary is the linear decision rule a synthetic corpus is labeled with:
// label 1 when the weighted sum of the listed dimensions plus noise exceeds
// the threshold.
type boundary struct {
	dims      int
	weights   map[int]float64
	threshold float64
}

var boundaries = map[disease.ID]boundary{
	disease.Diabetes: {dims: 8, weights: map[int]float64{0: 0.3, 1: 0.4, 5: 0.3}, threshold: 0.5},
	disease.Heart:    {dims: 12, weights: map[int]float64{0: 0.25, 4: 0.35, 7: 0.25, 9: 0.15}, threshold: 0.4},
	disease.Liver:    {dims: 10, weights: map[int]float64{2: 0.4, 3: 0.3, 8: 0.3}, threshold: 0.3},
	disease.Kidney:   {dims: 11, weights: map[int]float64{1: 0.3, 5: 0.35, 9: 0.35}, threshold: 0.35},
	disease.Stroke:   {dims: 10, weights: map[int]float64{0: 0.3, 3: 0.3, 6: 0.4}, threshold: 0.5},
}

// TrainAll fits one pipeline per disease on a seeded synthetic corpus.
// It is the stand-in for ops-supplied artifacts (see LoadAll): deterministic,
// built once at startup, read-only afterwards.
func TrainAll() map[disease.ID]*Pipeline {
	out := make(map[disease.ID]*Pipeline, len(boundaries))
	for _, id := range disease.IDs() {
		out[id] = trainOne(boundaries[id])
	}
	return out
}

func trainOne(b boundary) *Pipeline {
	rng := rand.New(rand.NewSource(corpusSeed))
	x, y := syntheticCorpus(rng, corpusSize, b)

	scaler := FitScaler(x)
	scaled := mat.NewDense(corpusSize, b.dims, nil)
	for i := 0; i < corpusSize; i++ {
		row, _ := scaler.Transform(x.RawRowView(i))
		scaled.SetRow(i, row)
	}

	return &Pipeline{
		Scaler:     scaler,
		Classifier: TrainClassifier(scaled, y, trainEpochs, trainRate),
	}
}

func syntheticCorpus(rng *rand.Rand, n int, b boundary) (*mat.Dense, []float64) {
	x := mat.NewDense(n, b.dims, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < b.dims; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
	}

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		// Dimension order is fixed so float summation stays reproducible.
		sum := 0.0
		for j := 0; j < b.dims; j++ {
			if w, ok := b.weights[j]; ok {
				sum += w * x.At(i, j)
			}
		}
		sum += 0.1 * rng.NormFloat64()
		if sum > b.threshold {
			y[i] = 1
		}
	}
	return x, y
}
