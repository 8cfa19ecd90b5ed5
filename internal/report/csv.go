package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"riskscreen/internal/assessment"
)

// Leading columns of every data export, before the raw input fields.
var csvHeader = []string{
	"Name", "Age", "Gender", "Disease", "Prediction",
	"Risk_Probability_%", "Risk_Level", "Timestamp",
}

// BuildCSV writes the screening as a single-row data export and returns the
// file path. Input columns follow the disease's form field order so the
// layout is stable run to run; fields outside the form (if any) trail in
// sorted order.
func (g *Generator) BuildCSV(res *assessment.Result) (string, error) {
	prediction := "Negative"
	if res.Positive() {
		prediction = "Positive"
	}

	header := append([]string(nil), csvHeader...)
	row := []string{
		res.Patient.Name,
		fmt.Sprintf("%d", res.Patient.Age),
		res.Patient.Gender,
		title(string(res.Disease)),
		prediction,
		fmt.Sprintf("%.2f", res.Probability*100),
		upper(string(res.Tier)),
		g.now().Format("2006-01-02 15:04:05"),
	}
	for _, name := range g.inputColumns(res) {
		header = append(header, name)
		row = append(row, res.Inputs[name])
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	name := fmt.Sprintf("%s_data_%s.csv", res.Disease, g.now().Format(fileStamp))
	path := filepath.Join(g.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return "", fmt.Errorf("write csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv export: %w", err)
	}
	return path, nil
}

// inputColumns orders the raw inputs: registry form order first, then any
// leftovers alphabetically. Patient fields are already leading columns and
// are excluded here.
func (g *Generator) inputColumns(res *assessment.Result) []string {
	skip := map[string]bool{"name": true, "age": true, "gender": true}
	seen := make(map[string]bool, len(res.Inputs))
	var cols []string

	if spec, err := g.registry.Lookup(string(res.Disease)); err == nil {
		for _, f := range spec.FormFields() {
			if _, ok := res.Inputs[f.Name]; ok && !skip[f.Name] {
				cols = append(cols, f.Name)
				seen[f.Name] = true
			}
		}
	}

	var rest []string
	for name := range res.Inputs {
		if !seen[name] && !skip[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

func upper(s string) string { return strings.ToUpper(s) }

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
