package assessment

import (
	"time"

	"riskscreen/internal/disease"
	"riskscreen/internal/risk"
)

// PatientInfo is the demographic block captured alongside every screening.
// Name and gender are display-only and default to "N/A" when omitted.
type PatientInfo struct {
	Name   string
	Age    int
	Gender string
}

// Result is one completed screening: the raw submission plus everything
// derived from it. It is immutable once stored.
type Result struct {
	Disease     disease.ID
	Patient     PatientInfo
	Inputs      map[string]string
	Prediction  int
	Probability float64
	Tier        risk.Tier
	Advice      risk.Advice
	CreatedAt   time.Time
}

// Positive reports whether the model flagged the patient as at risk.
func (r *Result) Positive() bool { return r.Prediction == 1 }
