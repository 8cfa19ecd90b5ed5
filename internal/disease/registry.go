package disease

// Option is one choice of a categorical form field. The value is fed to the
// model as-is after numeric coercion.
type Option struct {
	Value string
	Label string
}

// FieldSpec describes one input field and how it maps into the feature
// vector. Fields appear in the vector in declaration order; that order is a
// contract with the fitted classifier and must not be changed.
type FieldSpec struct {
	Name     string
	Label    string
	Hint     string
	Step     string
	Required bool
	Default  float64
	// Mirror names a field to read when this one is absent or blank,
	// e.g. the diabetes model age falls back to the patient age.
	Mirror string
	// Options, when set, renders the field as a select.
	Options []Option
	// Encode overrides numeric coercion entirely (liver gender encoding,
	// the stroke reserved dimension). Encode funcs are total.
	Encode func(raw string) float64
}

// Spec is the static configuration of one disease: page copy plus the
// ordered feature fields.
type Spec struct {
	ID      ID
	Label   string
	Heading string
	Summary string
	Fields  []FieldSpec
	// Extras are collected on the form and exported in reports but never
	// fed to the classifier (kidney hemoglobin).
	Extras []FieldSpec
}

// FormFields returns the fields the form should render, skipping hidden
// feature slots such as the stroke padding dimension.
func (s *Spec) FormFields() []FieldSpec {
	out := make([]FieldSpec, 0, len(s.Fields)+len(s.Extras))
	for _, f := range s.Fields {
		if f.Label == "" {
			continue
		}
		out = append(out, f)
	}
	return append(out, s.Extras...)
}

// FieldNames returns every input field name the disease collects, in form
// order. Used for deterministic report column ordering.
func (s *Spec) FieldNames() []string {
	names := make([]string, 0, len(s.Fields)+len(s.Extras))
	for _, f := range s.Fields {
		if f.Name != "" {
			names = append(names, f.Name)
		}
	}
	for _, f := range s.Extras {
		names = append(names, f.Name)
	}
	return names
}

// Registry holds the static per-disease configuration.
type Registry struct {
	specs map[ID]*Spec
}

// Lookup resolves a raw disease id, returning ErrUnknown for anything
// outside the fixed set.
func (r *Registry) Lookup(id string) (*Spec, error) {
	spec, ok := r.specs[ID(id)]
	if !ok {
		return nil, ErrUnknown
	}
	return spec, nil
}

// All returns every spec in home-page order.
func (r *Registry) All() []*Spec {
	out := make([]*Spec, 0, len(r.specs))
	for _, id := range IDs() {
		out = append(out, r.specs[id])
	}
	return out
}

func maleBinary(raw string) float64 {
	if raw == "Male" {
		return 1
	}
	return 0
}

// constantZero fills a reserved feature slot the fitted model expects but
// never reads from input.
func constantZero(string) float64 { return 0 }

var yesNo = []Option{{Value: "0", Label: "No"}, {Value: "1", Label: "Yes"}}

var normalAbnormal = []Option{{Value: "0", Label: "Normal"}, {Value: "1", Label: "Abnormal"}}

// NewRegistry builds the five disease specs. Field order and width per
// disease (8/12/10/11/10) match the fitted classifiers exactly.
func NewRegistry() *Registry {
	specs := map[ID]*Spec{
		Diabetes: {
			ID:      Diabetes,
			Label:   "Diabetes",
			Heading: "Diabetes Risk Assessment",
			Summary: "Predict Type 2 Diabetes risk based on glucose levels, BMI, insulin, and other factors.",
			Fields: []FieldSpec{
				{Name: "pregnancies", Label: "Number of Pregnancies", Hint: "For females only"},
				{Name: "glucose", Label: "Glucose Level (mg/dL)", Hint: "Fasting: 70-100 mg/dL (normal)", Step: "0.01", Required: true},
				{Name: "blood_pressure", Label: "Blood Pressure (mmHg)", Hint: "Normal: 80-120 mmHg", Step: "0.01", Required: true},
				{Name: "skin_thickness", Label: "Skin Thickness (mm)", Hint: "Triceps skinfold", Step: "0.01"},
				{Name: "insulin", Label: "Insulin Level (uU/mL)", Hint: "Normal: 16-166 uU/mL", Step: "0.01"},
				{Name: "bmi", Label: "BMI (Body Mass Index)", Hint: "Normal: 18.5-24.9", Step: "0.01", Required: true},
				{Name: "dpf", Label: "Diabetes Pedigree Function", Hint: "Family history factor", Step: "0.001"},
				{Name: "age_model", Label: "Age (again for model)", Mirror: "age"},
			},
		},
		Heart: {
			ID:      Heart,
			Label:   "Heart",
			Heading: "Heart Disease Prediction",
			Summary: "Evaluate cardiovascular risk using chest pain, cholesterol, blood pressure, and ECG data.",
			Fields: []FieldSpec{
				{Name: "age", Label: "Age", Required: true},
				{Name: "cp", Label: "Chest Pain Type", Options: []Option{
					{Value: "0", Label: "Typical Angina"},
					{Value: "1", Label: "Atypical Angina"},
					{Value: "2", Label: "Non-anginal Pain"},
					{Value: "3", Label: "Asymptomatic"},
				}},
				{Name: "trestbps", Label: "Resting BP (mmHg)", Hint: "Normal: 90-120", Required: true},
				{Name: "chol", Label: "Cholesterol (mg/dL)", Hint: "Normal: <200", Required: true},
				{Name: "fbs", Label: "Fasting Blood Sugar", Options: []Option{
					{Value: "0", Label: "< 120 mg/dL"},
					{Value: "1", Label: "> 120 mg/dL"},
				}},
				{Name: "restecg", Label: "Resting ECG", Options: []Option{
					{Value: "0", Label: "Normal"},
					{Value: "1", Label: "ST-T Abnormality"},
					{Value: "2", Label: "LV Hypertrophy"},
				}},
				{Name: "thalach", Label: "Max Heart Rate", Hint: "Achieved during exercise", Required: true},
				{Name: "exang", Label: "Exercise Induced Angina", Options: yesNo},
				{Name: "oldpeak", Label: "ST Depression", Hint: "Induced by exercise", Step: "0.1", Required: true},
				{Name: "slope", Label: "Slope of ST", Options: []Option{
					{Value: "0", Label: "Upsloping"},
					{Value: "1", Label: "Flat"},
					{Value: "2", Label: "Downsloping"},
				}},
				{Name: "ca", Label: "Major Vessels", Hint: "Colored by fluoroscopy (0-4)", Required: true},
				{Name: "thal", Label: "Thalassemia", Options: []Option{
					{Value: "0", Label: "Normal"},
					{Value: "1", Label: "Fixed Defect"},
					{Value: "2", Label: "Reversible Defect"},
				}},
			},
		},
		Liver: {
			ID:      Liver,
			Label:   "Liver",
			Heading: "Liver Disease Detection",
			Summary: "Assess liver health through enzyme levels, bilirubin, albumin, and protein ratios.",
			Fields: []FieldSpec{
				{Name: "age", Label: "Age", Required: true},
				// Binary encoding, not one-hot: Male is 1, anything else 0.
				{Name: "gender", Encode: maleBinary},
				{Name: "total_bilirubin", Label: "Total Bilirubin (mg/dL)", Hint: "Normal: 0.1-1.2 mg/dL", Step: "0.01", Required: true},
				{Name: "direct_bilirubin", Label: "Direct Bilirubin (mg/dL)", Hint: "Normal: 0.0-0.3 mg/dL", Step: "0.01", Required: true},
				{Name: "alkaline_phosphotase", Label: "Alkaline Phosphatase (IU/L)", Hint: "Normal: 44-147 IU/L", Required: true},
				{Name: "alamine_aminotransferase", Label: "Alamine Aminotransferase (IU/L)", Hint: "Normal: 7-56 IU/L", Required: true},
				{Name: "aspartate_aminotransferase", Label: "Aspartate Aminotransferase (IU/L)", Hint: "Normal: 10-40 IU/L", Required: true},
				{Name: "total_proteins", Label: "Total Proteins (g/dL)", Hint: "Normal: 6.0-8.3 g/dL", Step: "0.01", Required: true},
				{Name: "albumin", Label: "Albumin (g/dL)", Hint: "Normal: 3.5-5.5 g/dL", Step: "0.01", Required: true},
				{Name: "ag_ratio", Label: "Albumin/Globulin Ratio", Hint: "Normal: 1.0-2.5", Step: "0.01", Required: true},
			},
		},
		Kidney: {
			ID:      Kidney,
			Label:   "Kidney",
			Heading: "Kidney Disease Screening",
			Summary: "Evaluate kidney function using creatinine, urea, electrolytes, and other biomarkers.",
			Fields: []FieldSpec{
				{Name: "age", Label: "Age", Required: true},
				{Name: "blood_pressure", Label: "Blood Pressure (mmHg)", Hint: "Diastolic BP", Required: true},
				{Name: "specific_gravity", Label: "Specific Gravity", Hint: "Urine specific gravity (1.003-1.030)", Step: "0.001", Required: true},
				{Name: "albumin", Label: "Albumin Level", Hint: "0=normal, 5=high", Required: true},
				{Name: "sugar", Label: "Sugar Level", Hint: "0=normal, 5=high", Required: true},
				{Name: "red_blood_cells", Label: "Red Blood Cells", Options: normalAbnormal},
				{Name: "pus_cell", Label: "Pus Cells", Options: normalAbnormal},
				{Name: "blood_urea", Label: "Blood Urea (mg/dL)", Hint: "Normal: 7-20 mg/dL", Step: "0.1", Required: true},
				{Name: "serum_creatinine", Label: "Serum Creatinine (mg/dL)", Hint: "Normal: 0.6-1.2 mg/dL", Step: "0.1", Required: true},
				{Name: "sodium", Label: "Sodium (mEq/L)", Hint: "Normal: 135-145 mEq/L", Step: "0.1", Required: true},
				{Name: "potassium", Label: "Potassium (mEq/L)", Hint: "Normal: 3.5-5.0 mEq/L", Step: "0.1", Required: true},
			},
			Extras: []FieldSpec{
				{Name: "hemoglobin", Label: "Hemoglobin (g/dL)", Hint: "Normal: 12-18 g/dL", Step: "0.1"},
			},
		},
		Stroke: {
			ID:      Stroke,
			Label:   "Stroke",
			Heading: "Stroke Risk Prediction",
			Summary: "Assess stroke risk based on age, hypertension, heart disease, glucose levels, and lifestyle factors.",
			Fields: []FieldSpec{
				{Name: "age", Label: "Age", Required: true},
				{Name: "hypertension", Label: "Hypertension", Options: yesNo},
				{Name: "heart_disease", Label: "Heart Disease", Options: yesNo},
				{Name: "ever_married", Label: "Ever Married", Options: yesNo},
				{Name: "work_type", Label: "Work Type", Options: []Option{
					{Value: "0", Label: "Never Worked"},
					{Value: "1", Label: "Children"},
					{Value: "2", Label: "Government Job"},
					{Value: "3", Label: "Private Job"},
					{Value: "4", Label: "Self-employed"},
				}},
				{Name: "residence_type", Label: "Residence Type", Options: []Option{
					{Value: "0", Label: "Rural"},
					{Value: "1", Label: "Urban"},
				}},
				{Name: "avg_glucose_level", Label: "Average Glucose Level (mg/dL)", Hint: "Normal: 70-100 mg/dL", Step: "0.01", Required: true},
				{Name: "bmi", Label: "BMI", Hint: "Normal: 18.5-24.9", Step: "0.1", Required: true},
				{Name: "smoking_status", Label: "Smoking Status", Options: []Option{
					{Value: "0", Label: "Never Smoked"},
					{Value: "1", Label: "Formerly Smoked"},
					{Value: "2", Label: "Smokes"},
					{Value: "3", Label: "Unknown"},
				}},
				// Reserved dimension the fitted model expects; always zero.
				{Name: "", Encode: constantZero},
			},
		},
	}

	return &Registry{specs: specs}
}
