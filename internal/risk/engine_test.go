package risk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskscreen/internal/disease"
	"riskscreen/internal/model"
)

func TestEnginePredict(t *testing.T) {
	engine := NewEngine(model.TrainAll())

	prediction, probability, err := engine.Predict(disease.Diabetes, []float64{2, 148, 72, 35, 94, 33.6, 0.627, 50})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, probability, 0.0)
	assert.LessOrEqual(t, probability, 1.0)
	if probability >= 0.5 {
		assert.Equal(t, 1, prediction)
	} else {
		assert.Equal(t, 0, prediction)
	}
}

func TestEngineUnknownDisease(t *testing.T) {
	engine := NewEngine(model.TrainAll())
	_, _, err := engine.Predict(disease.ID("gout"), []float64{1})
	assert.True(t, errors.Is(err, disease.ErrUnknown))
}

func TestEngineWidthMismatch(t *testing.T) {
	engine := NewEngine(model.TrainAll())
	_, _, err := engine.Predict(disease.Diabetes, []float64{1, 2, 3})
	require.Error(t, err)
	assert.False(t, errors.Is(err, disease.ErrUnknown))
}
