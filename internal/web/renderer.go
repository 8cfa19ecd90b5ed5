package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"riskscreen/internal/disease"
)

//go:embed templates/*.html
var templateFS embed.FS

// DiseaseCard is one entry on the home page chooser.
type DiseaseCard struct {
	ID      string
	Label   string
	Heading string
	Summary string
}

// FormView drives the per-disease assessment form.
type FormView struct {
	DiseaseID string
	Heading   string
	Fields    []disease.FieldSpec
}

// ResultView is the rendered outcome of one screening.
type ResultView struct {
	DiseaseID    string
	DiseaseLabel string
	Name         string
	Age          int
	Gender       string
	Positive     bool
	Probability  float64
	Tier         string
	GaugeURI     template.URL
	Lifestyle    []string
	Diet         []string
	Medical      []string
	Prevention   []string
}

// Renderer holds the parsed page templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"percent": func(p float64) string { return fmt.Sprintf("%.1f%%", p*100) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Home(w io.Writer, cards []DiseaseCard) error {
	return r.tmpl.ExecuteTemplate(w, "home.html", cards)
}

func (r *Renderer) Form(w io.Writer, view FormView) error {
	return r.tmpl.ExecuteTemplate(w, "form.html", view)
}

func (r *Renderer) Result(w io.Writer, view ResultView) error {
	return r.tmpl.ExecuteTemplate(w, "result.html", view)
}
