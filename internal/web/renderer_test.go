package web

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskscreen/internal/disease"
)

func TestNewRenderer(t *testing.T) {
	_, err := NewRenderer()
	require.NoError(t, err)
}

func TestFormRendersFields(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	reg := disease.NewRegistry()
	spec, _ := reg.Lookup("diabetes")

	var buf bytes.Buffer
	err = r.Form(&buf, FormView{
		DiseaseID: string(spec.ID),
		Heading:   spec.Heading,
		Fields:    spec.FormFields(),
	})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, `action="/predict/diabetes"`)
	assert.Contains(t, body, `name="glucose"`)
	assert.Contains(t, body, "Diabetes Pedigree Function")
}

func TestResultRendersVerdictAndGauge(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Result(&buf, ResultView{
		DiseaseID:    "heart",
		DiseaseLabel: "Heart",
		Name:         "Sam",
		Age:          61,
		Gender:       "Male",
		Positive:     true,
		Probability:  0.87,
		Tier:         "high",
		GaugeURI:     template.URL("data:image/png;base64,AAAA"),
		Lifestyle:    []string{"walk daily"},
		Diet:         []string{"less salt"},
		Medical:      []string{"see a cardiologist"},
		Prevention:   []string{"know the warning signs"},
	})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, "POSITIVE - At Risk")
	assert.Contains(t, body, "87.0%")
	assert.Contains(t, body, "tier-high")
	assert.Contains(t, body, "data:image/png;base64,AAAA")
}
