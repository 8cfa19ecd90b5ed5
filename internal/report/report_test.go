package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskscreen/internal/assessment"
	"riskscreen/internal/disease"
	"riskscreen/internal/risk"
)

func sampleResult() *assessment.Result {
	return &assessment.Result{
		Disease: disease.Diabetes,
		Patient: assessment.PatientInfo{Name: "Jordan Lee", Age: 50, Gender: "Female"},
		Inputs: map[string]string{
			"name": "Jordan Lee", "age": "50", "gender": "Female",
			"pregnancies": "2", "glucose": "148", "blood_pressure": "72",
			"skin_thickness": "35", "insulin": "94", "bmi": "33.6",
			"dpf": "0.627", "extra_note": "fasting",
		},
		Prediction:  1,
		Probability: 0.8234,
		Tier:        risk.TierHigh,
		Advice:      risk.Recommendations(disease.Diabetes, risk.TierHigh),
		CreatedAt:   time.Now(),
	}
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g := NewGenerator(t.TempDir(), disease.NewRegistry())
	g.now = func() time.Time {
		return time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)
	}
	return g
}

func TestBuildPDF(t *testing.T) {
	g := newTestGenerator(t)

	path, err := g.BuildPDF(sampleResult())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Regexp(t, regexp.MustCompile(`^diabetes_report_\d{8}_\d{6}\.pdf$`), filepath.Base(path))
}

func TestBuildCSV(t *testing.T) {
	g := newTestGenerator(t)

	path, err := g.BuildCSV(sampleResult())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^diabetes_data_\d{8}_\d{6}\.csv$`), filepath.Base(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header, row := rows[0], rows[1]
	cols := make(map[string]string, len(header))
	for i, name := range header {
		cols[name] = row[i]
	}

	assert.Equal(t, "Jordan Lee", cols["Name"])
	assert.Equal(t, "50", cols["Age"])
	assert.Equal(t, "Diabetes", cols["Disease"])
	assert.Equal(t, "Positive", cols["Prediction"])
	assert.Equal(t, "82.34", cols["Risk_Probability_%"])
	assert.Equal(t, "HIGH", cols["Risk_Level"])
	assert.Equal(t, "2026-08-28 14:30:05", cols["Timestamp"])
	assert.Equal(t, "148", cols["glucose"])

	// Patient fields are not duplicated as raw input columns.
	assert.NotContains(t, header, "name")
	assert.NotContains(t, header, "gender")

	// Form fields first in declaration order, leftovers last.
	assert.Equal(t, "pregnancies", header[8])
	assert.Equal(t, "glucose", header[9])
	assert.Equal(t, "extra_note", header[len(header)-1])
}

func TestBuildCSVNegativeResult(t *testing.T) {
	g := newTestGenerator(t)

	res := sampleResult()
	res.Prediction = 0
	res.Probability = 0.12
	res.Tier = risk.TierLow

	path, err := g.BuildCSV(res)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	header, row := rows[0], rows[1]
	cols := make(map[string]string, len(header))
	for i, name := range header {
		cols[name] = row[i]
	}
	assert.Equal(t, "Negative", cols["Prediction"])
	assert.Equal(t, "LOW", cols["Risk_Level"])
}
