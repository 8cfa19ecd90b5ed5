package disease

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildFeatures converts a submitted field map into the ordered feature
// vector the disease's classifier expects. Missing optional fields take
// their declared default; a missing or non-numeric required field aborts
// with an InvalidInputError naming the field.
func BuildFeatures(spec *Spec, fields map[string]string) ([]float64, error) {
	vec := make([]float64, 0, len(spec.Fields))
	for i := range spec.Fields {
		f := &spec.Fields[i]
		raw, ok := fieldValue(fields, f)

		if f.Encode != nil {
			vec = append(vec, f.Encode(raw))
			continue
		}
		if !ok {
			if f.Required {
				return nil, &InvalidInputError{Field: f.Name, Reason: "is required"}
			}
			vec = append(vec, f.Default)
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &InvalidInputError{Field: f.Name, Reason: fmt.Sprintf("must be numeric, got %q", raw)}
		}
		vec = append(vec, v)
	}
	return vec, nil
}

func fieldValue(fields map[string]string, f *FieldSpec) (string, bool) {
	if v := strings.TrimSpace(fields[f.Name]); v != "" {
		return v, true
	}
	if f.Mirror != "" {
		if v := strings.TrimSpace(fields[f.Mirror]); v != "" {
			return v, true
		}
	}
	return "", false
}
