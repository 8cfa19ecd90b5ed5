package risk

import (
	"fmt"

	"riskscreen/internal/disease"
	"riskscreen/internal/model"
)

// Engine serves predictions from the fitted per-disease pipelines. The
// pipeline map is built once at startup and never mutated, so the engine is
// safe for concurrent use.
type Engine struct {
	pipelines map[disease.ID]*model.Pipeline
}

func NewEngine(pipelines map[disease.ID]*model.Pipeline) *Engine {
	return &Engine{pipelines: pipelines}
}

// Predict scales the feature vector and returns the class label together
// with the positive-class probability. A disease without a registered
// pipeline yields disease.ErrUnknown; a width mismatch is a programming
// error surfaced as-is, never silently padded.
func (e *Engine) Predict(id disease.ID, features []float64) (int, float64, error) {
	p, ok := e.pipelines[id]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", disease.ErrUnknown, id)
	}
	if len(features) != p.Dims() {
		return 0, 0, fmt.Errorf("%s: pipeline expects %d features, got %d", id, p.Dims(), len(features))
	}

	scaled, err := p.Scaler.Transform(features)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", id, err)
	}
	probability := p.Classifier.Proba(scaled)
	prediction := 0
	if probability >= 0.5 {
		prediction = 1
	}
	return prediction, probability, nil
}
