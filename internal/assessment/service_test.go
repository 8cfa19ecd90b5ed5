package assessment

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskscreen/internal/disease"
	"riskscreen/internal/model"
	"riskscreen/internal/risk"
)

type stubReports struct {
	pdfCalls int
	csvCalls int
}

func (s *stubReports) BuildPDF(*Result) (string, error) {
	s.pdfCalls++
	return "/tmp/report.pdf", nil
}

func (s *stubReports) BuildCSV(*Result) (string, error) {
	s.csvCalls++
	return "/tmp/data.csv", nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(t *testing.T) (*Service, *Store, *stubReports) {
	t.Helper()
	registry := disease.NewRegistry()
	engine := risk.NewEngine(model.TrainAll())
	store := NewStore(time.Hour)
	reports := &stubReports{}
	return NewService(registry, engine, store, reports, quietLogger()), store, reports
}

func diabetesSubmission() map[string]string {
	return map[string]string{
		"name":           "Jordan Lee",
		"age":            "45",
		"gender":         "Female",
		"glucose":        "180",
		"blood_pressure": "90",
		"bmi":            "32",
	}
}

func TestRunPrediction(t *testing.T) {
	svc, store, _ := newTestService(t)

	res, err := svc.RunPrediction("diabetes", diabetesSubmission(), "token-a")
	require.NoError(t, err)

	assert.Equal(t, disease.Diabetes, res.Disease)
	assert.Equal(t, "Jordan Lee", res.Patient.Name)
	assert.Equal(t, 45, res.Patient.Age)
	assert.GreaterOrEqual(t, res.Probability, 0.0)
	assert.LessOrEqual(t, res.Probability, 1.0)
	assert.Equal(t, risk.TierFor(res.Probability), res.Tier)
	assert.NotEmpty(t, res.Advice.Lifestyle)
	assert.NotEmpty(t, res.Advice.Diet)
	assert.NotEmpty(t, res.Advice.Medical)
	assert.NotEmpty(t, res.Advice.Prevention)

	cached, err := store.Get("token-a")
	require.NoError(t, err)
	assert.Same(t, res, cached)
}

func TestRunPredictionDefaultsPatientFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	fields := diabetesSubmission()
	delete(fields, "name")
	delete(fields, "gender")

	res, err := svc.RunPrediction("diabetes", fields, "")
	require.NoError(t, err)
	assert.Equal(t, "N/A", res.Patient.Name)
	assert.Equal(t, "N/A", res.Patient.Gender)
}

func TestRunPredictionUnknownDisease(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.RunPrediction("gout", diabetesSubmission(), "token-a")
	assert.True(t, errors.Is(err, disease.ErrUnknown))
}

func TestRunPredictionInvalidAge(t *testing.T) {
	svc, _, _ := newTestService(t)

	fields := diabetesSubmission()
	fields["age"] = "-3"

	_, err := svc.RunPrediction("diabetes", fields, "token-a")
	var invalid *disease.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "age", invalid.Field)
}

func TestRunPredictionFailureLeavesStoreEmpty(t *testing.T) {
	svc, store, _ := newTestService(t)

	fields := map[string]string{
		"name": "Sam", "age": "52", "gender": "Male",
		"cp": "1", "trestbps": "banana", "chol": "212",
		"thalach": "168", "oldpeak": "1.0", "ca": "2",
	}

	_, err := svc.RunPrediction("heart", fields, "token-a")
	var invalid *disease.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "trestbps", invalid.Field)

	_, err = store.Get("token-a")
	assert.True(t, errors.Is(err, ErrNoResult))
}

func TestDownloadWithoutResult(t *testing.T) {
	svc, _, reports := newTestService(t)

	_, _, err := svc.DownloadPDF("token-a")
	assert.True(t, errors.Is(err, ErrNoResult))
	_, _, err = svc.DownloadCSV("token-a")
	assert.True(t, errors.Is(err, ErrNoResult))
	assert.Zero(t, reports.pdfCalls)
	assert.Zero(t, reports.csvCalls)
}

func TestDownloadNames(t *testing.T) {
	svc, _, reports := newTestService(t)

	_, err := svc.RunPrediction("diabetes", diabetesSubmission(), "token-a")
	require.NoError(t, err)

	_, name, err := svc.DownloadPDF("token-a")
	require.NoError(t, err)
	assert.Equal(t, "diabetes_prediction_report.pdf", name)
	assert.Equal(t, 1, reports.pdfCalls)

	_, name, err = svc.DownloadCSV("token-a")
	require.NoError(t, err)
	assert.Equal(t, "diabetes_prediction_data.csv", name)
	assert.Equal(t, 1, reports.csvCalls)
}
