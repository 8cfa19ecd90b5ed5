package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"riskscreen/internal/assessment"
	"riskscreen/internal/disease"
	"riskscreen/internal/risk"
)

// Generator writes screening reports to disk. Filenames are timestamped so
// repeated downloads never clobber each other; dir is created on demand.
type Generator struct {
	dir      string
	registry *disease.Registry
	now      func() time.Time
}

func NewGenerator(dir string, registry *disease.Registry) *Generator {
	return &Generator{dir: dir, registry: registry, now: time.Now}
}

const fileStamp = "20060102_150405"

// BuildPDF renders the full screening report and returns the file path.
func (g *Generator) BuildPDF(res *assessment.Result) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetMargins(15, 10, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 102, 204)
	pdf.CellFormat(0, 15, "Medical Prediction Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	generated := "Generated on: " + g.now().Format("January 2, 2006 at 3:04 PM")
	pdf.CellFormat(0, 5, generated, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetDrawColor(0, 102, 204)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(8)

	pdf.SetTextColor(0, 0, 0)
	g.sectionTitle(pdf, "Patient Information")
	g.kv(pdf, "Name:", res.Patient.Name, nil)
	g.kv(pdf, "Age:", fmt.Sprintf("%d", res.Patient.Age), nil)
	g.kv(pdf, "Gender:", res.Patient.Gender, nil)
	pdf.Ln(5)

	g.sectionTitle(pdf, "Prediction Results: "+upper(string(res.Disease)))
	if res.Positive() {
		g.kv(pdf, "Prediction:", "POSITIVE - At Risk", []int{220, 53, 69})
	} else {
		g.kv(pdf, "Prediction:", "NEGATIVE - Low Risk", []int{40, 167, 69})
	}
	g.kv(pdf, "Risk Probability:", fmt.Sprintf("%.1f%%", res.Probability*100), nil)
	g.kv(pdf, "Risk Level:", upper(string(res.Tier)), tierColor(res.Tier))
	pdf.Ln(5)

	pdf.SetTextColor(0, 0, 0)
	g.sectionTitle(pdf, "Personalized Recommendations")
	g.adviceBlock(pdf, "Lifestyle Modifications", res.Advice.Lifestyle, 230, 240, 255)
	g.adviceBlock(pdf, "Dietary Recommendations", res.Advice.Diet, 255, 240, 230)
	g.adviceBlock(pdf, "Medical Advice", res.Advice.Medical, 255, 230, 230)
	g.adviceBlock(pdf, "Prevention Strategies", res.Advice.Prevention, 230, 255, 230)

	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(150, 150, 150)
	pdf.MultiCell(0, 5, "Disclaimer: This report is generated by an AI-based prediction system and should not replace professional medical advice. Please consult with a qualified healthcare provider for proper diagnosis and treatment.", "", "L", false)

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	name := fmt.Sprintf("%s_report_%s.pdf", res.Disease, g.now().Format(fileStamp))
	path := filepath.Join(g.dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf report: %w", err)
	}
	return path, nil
}

func (g *Generator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// kv writes one label/value row; color, when set, applies to the value only.
func (g *Generator) kv(pdf *gofpdf.Fpdf, label, value string, color []int) {
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	if color != nil {
		pdf.SetTextColor(color[0], color[1], color[2])
	}
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (g *Generator) adviceBlock(pdf *gofpdf.Fpdf, heading string, items []string, r, gr, b int) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(r, gr, b)
	pdf.CellFormat(0, 7, heading, "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	for i, item := range items {
		pdf.MultiCell(0, 4, fmt.Sprintf("%d. %s", i+1, item), "", "L", false)
	}
	pdf.Ln(2)
}

func tierColor(t risk.Tier) []int {
	switch t {
	case risk.TierHigh:
		return []int{220, 53, 69}
	case risk.TierMedium:
		return []int{255, 193, 7}
	default:
		return []int{40, 167, 69}
	}
}
