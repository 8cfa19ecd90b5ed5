package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"riskscreen/internal/disease"
)

// Pipeline couples a fitted scaler with its classifier. Pipelines are
// opaque to callers: built or loaded once at startup, then read-only.
type Pipeline struct {
	Scaler     *Scaler     `json:"scaler"`
	Classifier *Classifier `json:"classifier"`
}

// Dims returns the feature width the pipeline expects.
func (p *Pipeline) Dims() int { return p.Scaler.Dims() }

// SaveAll writes one JSON artifact per disease into dir.
func SaveAll(dir string, pipelines map[disease.ID]*Pipeline) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifacts dir: %w", err)
	}
	for id, p := range pipelines {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s pipeline: %w", id, err)
		}
		if err := os.WriteFile(artifactPath(dir, id), data, 0o644); err != nil {
			return fmt.Errorf("write %s pipeline: %w", id, err)
		}
	}
	return nil
}

// LoadAll reads a fitted pipeline per disease from dir. Every disease must
// have an artifact; a missing or unreadable one is fatal to startup.
func LoadAll(dir string, ids []disease.ID) (map[disease.ID]*Pipeline, error) {
	out := make(map[disease.ID]*Pipeline, len(ids))
	for _, id := range ids {
		data, err := os.ReadFile(artifactPath(dir, id))
		if err != nil {
			return nil, fmt.Errorf("read %s pipeline: %w", id, err)
		}
		var p Pipeline
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode %s pipeline: %w", id, err)
		}
		if p.Scaler == nil || p.Classifier == nil {
			return nil, fmt.Errorf("%s pipeline artifact is incomplete", id)
		}
		if len(p.Classifier.Weights) != p.Scaler.Dims() {
			return nil, fmt.Errorf("%s pipeline artifact has mismatched widths", id)
		}
		out[id] = &p
	}
	return out, nil
}

func artifactPath(dir string, id disease.ID) string {
	return filepath.Join(dir, string(id)+".json")
}
