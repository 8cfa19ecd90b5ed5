package assessment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"riskscreen/internal/disease"
	"riskscreen/internal/risk"
)

// ReportBuilder produces downloadable exports from a stored result. Both
// methods return the path of the file they wrote.
type ReportBuilder interface {
	BuildPDF(res *Result) (string, error)
	BuildCSV(res *Result) (string, error)
}

// Service runs the screening flow end to end: validate the submission,
// assemble the feature vector, score it, attach advice, cache the result.
type Service struct {
	registry *disease.Registry
	engine   *risk.Engine
	store    *Store
	reports  ReportBuilder
	log      *logrus.Logger
}

func NewService(registry *disease.Registry, engine *risk.Engine, store *Store, reports ReportBuilder, log *logrus.Logger) *Service {
	return &Service{
		registry: registry,
		engine:   engine,
		store:    store,
		reports:  reports,
		log:      log,
	}
}

// RunPrediction performs one screening. Nothing is cached on failure, so a
// rejected submission never shadows an earlier valid result.
func (s *Service) RunPrediction(diseaseID string, fields map[string]string, token string) (*Result, error) {
	spec, err := s.registry.Lookup(diseaseID)
	if err != nil {
		return nil, err
	}

	patient, err := parsePatient(fields)
	if err != nil {
		return nil, err
	}

	features, err := disease.BuildFeatures(spec, fields)
	if err != nil {
		return nil, err
	}

	prediction, probability, err := s.engine.Predict(spec.ID, features)
	if err != nil {
		return nil, fmt.Errorf("predict %s: %w", spec.ID, err)
	}

	tier := risk.TierFor(probability)
	res := &Result{
		Disease:     spec.ID,
		Patient:     patient,
		Inputs:      fields,
		Prediction:  prediction,
		Probability: probability,
		Tier:        tier,
		Advice:      risk.Recommendations(spec.ID, tier),
		CreatedAt:   s.store.now(),
	}
	s.store.Put(token, res)

	s.log.WithFields(logrus.Fields{
		"disease":     spec.ID,
		"prediction":  prediction,
		"probability": fmt.Sprintf("%.4f", probability),
		"tier":        tier,
	}).Info("screening completed")

	return res, nil
}

// DownloadPDF builds the PDF for the caller's latest screening and returns
// the file path plus the attachment name to serve it under.
func (s *Service) DownloadPDF(token string) (string, string, error) {
	res, err := s.store.Get(token)
	if err != nil {
		return "", "", err
	}
	path, err := s.reports.BuildPDF(res)
	if err != nil {
		return "", "", fmt.Errorf("build pdf report: %w", err)
	}
	return path, fmt.Sprintf("%s_prediction_report.pdf", res.Disease), nil
}

// DownloadCSV builds the data export for the caller's latest screening.
func (s *Service) DownloadCSV(token string) (string, string, error) {
	res, err := s.store.Get(token)
	if err != nil {
		return "", "", err
	}
	path, err := s.reports.BuildCSV(res)
	if err != nil {
		return "", "", fmt.Errorf("build csv export: %w", err)
	}
	return path, fmt.Sprintf("%s_prediction_data.csv", res.Disease), nil
}

func parsePatient(fields map[string]string) (PatientInfo, error) {
	p := PatientInfo{Name: "N/A", Gender: "N/A"}
	if v := strings.TrimSpace(fields["name"]); v != "" {
		p.Name = v
	}
	if v := strings.TrimSpace(fields["gender"]); v != "" {
		p.Gender = v
	}

	raw := strings.TrimSpace(fields["age"])
	age, err := strconv.Atoi(raw)
	if err != nil || age <= 0 {
		return PatientInfo{}, &disease.InvalidInputError{Field: "age", Reason: "must be a positive integer"}
	}
	p.Age = age
	return p, nil
}
