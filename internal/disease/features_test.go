package disease

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diabetesFields() map[string]string {
	return map[string]string{
		"pregnancies":    "2",
		"glucose":        "148",
		"blood_pressure": "72",
		"skin_thickness": "35",
		"insulin":        "94",
		"bmi":            "33.6",
		"dpf":            "0.627",
		"age":            "50",
	}
}

func TestBuildFeaturesDiabetesOrder(t *testing.T) {
	reg := NewRegistry()
	spec, err := reg.Lookup("diabetes")
	require.NoError(t, err)

	vec, err := BuildFeatures(spec, diabetesFields())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 148, 72, 35, 94, 33.6, 0.627, 50}, vec)
}

func TestBuildFeaturesAgeMirror(t *testing.T) {
	reg := NewRegistry()
	spec, _ := reg.Lookup("diabetes")

	fields := diabetesFields()
	delete(fields, "age_model")
	fields["age"] = "61"

	vec, err := BuildFeatures(spec, fields)
	require.NoError(t, err)
	assert.Equal(t, 61.0, vec[7])

	// An explicit model age wins over the mirrored patient age.
	fields["age_model"] = "45"
	vec, err = BuildFeatures(spec, fields)
	require.NoError(t, err)
	assert.Equal(t, 45.0, vec[7])
}

func TestBuildFeaturesMissingRequired(t *testing.T) {
	reg := NewRegistry()
	spec, _ := reg.Lookup("diabetes")

	fields := diabetesFields()
	delete(fields, "glucose")

	_, err := BuildFeatures(spec, fields)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "glucose", invalid.Field)
}

func TestBuildFeaturesOptionalDefaults(t *testing.T) {
	reg := NewRegistry()
	spec, _ := reg.Lookup("diabetes")

	fields := diabetesFields()
	delete(fields, "pregnancies")
	delete(fields, "insulin")

	vec, err := BuildFeatures(spec, fields)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vec[0])
	assert.Equal(t, 0.0, vec[4])
}

func TestBuildFeaturesNonNumeric(t *testing.T) {
	reg := NewRegistry()
	spec, _ := reg.Lookup("heart")

	fields := map[string]string{
		"age": "52", "cp": "1", "trestbps": "not-a-number", "chol": "212",
		"fbs": "0", "restecg": "1", "thalach": "168", "exang": "0",
		"oldpeak": "1.0", "slope": "2", "ca": "2", "thal": "2",
	}

	_, err := BuildFeatures(spec, fields)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "trestbps", invalid.Field)
	assert.Contains(t, invalid.Error(), "not-a-number")
}

func TestBuildFeaturesLiverGenderEncoding(t *testing.T) {
	reg := NewRegistry()
	spec, _ := reg.Lookup("liver")

	fields := map[string]string{
		"age": "45", "gender": "Male",
		"total_bilirubin": "0.9", "direct_bilirubin": "0.2",
		"alkaline_phosphotase": "187", "alamine_aminotransferase": "16",
		"aspartate_aminotransferase": "18", "total_proteins": "6.8",
		"albumin": "3.3", "ag_ratio": "0.9",
	}

	vec, err := BuildFeatures(spec, fields)
	require.NoError(t, err)
	require.Len(t, vec, 10)
	assert.Equal(t, 1.0, vec[1])

	fields["gender"] = "Female"
	vec, err = BuildFeatures(spec, fields)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vec[1])
}

func TestBuildFeaturesStrokeReservedSlot(t *testing.T) {
	reg := NewRegistry()
	spec, _ := reg.Lookup("stroke")

	fields := map[string]string{
		"age": "67", "hypertension": "1", "heart_disease": "0",
		"ever_married": "1", "work_type": "3", "residence_type": "1",
		"avg_glucose_level": "228.69", "bmi": "36.6", "smoking_status": "1",
	}

	vec, err := BuildFeatures(spec, fields)
	require.NoError(t, err)
	require.Len(t, vec, 10)
	assert.Equal(t, 0.0, vec[9])
}

func TestLookupUnknownDisease(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("gout")
	assert.True(t, errors.Is(err, ErrUnknown))
}
