package assessment

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"riskscreen/internal/chart"
	"riskscreen/internal/disease"
	"riskscreen/internal/web"
)

const sessionCookie = "riskscreen_session"

// Handler exposes the screening flow over HTTP.
type Handler struct {
	svc      *Service
	registry *disease.Registry
	pages    *web.Renderer
	log      *logrus.Logger
}

func NewHandler(svc *Service, registry *disease.Registry, pages *web.Renderer, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, registry: registry, pages: pages, log: log}
}

// RegisterRoutes mounts the screening routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/predict/{disease}", h.ShowForm)
	r.Post("/predict/{disease}", h.Predict)
	r.Get("/download/pdf", h.DownloadPDF)
	r.Get("/download/csv", h.DownloadCSV)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	cards := make([]web.DiseaseCard, 0, 5)
	for _, spec := range h.registry.All() {
		cards = append(cards, web.DiseaseCard{
			ID:      string(spec.ID),
			Label:   spec.Label,
			Heading: spec.Heading,
			Summary: spec.Summary,
		})
	}
	if err := h.pages.Home(w, cards); err != nil {
		h.log.WithError(err).Error("render home page")
	}
}

func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	spec, err := h.registry.Lookup(chi.URLParam(r, "disease"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	view := web.FormView{
		DiseaseID: string(spec.ID),
		Heading:   spec.Heading,
		Fields:    spec.FormFields(),
	}
	if err := h.pages.Form(w, view); err != nil {
		h.log.WithError(err).Error("render assessment form")
	}
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}
	fields := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		fields[key] = r.PostForm.Get(key)
	}

	token := h.sessionToken(w, r)
	res, err := h.svc.RunPrediction(chi.URLParam(r, "disease"), fields, token)
	if err != nil {
		h.writeError(w, err)
		return
	}

	spec, _ := h.registry.Lookup(string(res.Disease))
	view := web.ResultView{
		DiseaseID:    string(res.Disease),
		DiseaseLabel: spec.Label,
		Name:         res.Patient.Name,
		Age:          res.Patient.Age,
		Gender:       res.Patient.Gender,
		Positive:     res.Positive(),
		Probability:  res.Probability,
		Tier:         string(res.Tier),
		Lifestyle:    res.Advice.Lifestyle,
		Diet:         res.Advice.Diet,
		Medical:      res.Advice.Medical,
		Prevention:   res.Advice.Prevention,
	}

	// A gauge failure degrades the page, it does not fail the screening.
	if png, err := chart.Gauge(res.Probability, spec.Heading); err != nil {
		h.log.WithError(err).Warn("render risk gauge")
	} else {
		view.GaugeURI = template.URL(chart.DataURI(png))
	}

	if err := h.pages.Result(w, view); err != nil {
		h.log.WithError(err).Error("render result page")
	}
}

func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	path, name, err := h.svc.DownloadPDF(h.readToken(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.serveAttachment(w, r, path, name, "application/pdf")
}

func (h *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	path, name, err := h.svc.DownloadCSV(h.readToken(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.serveAttachment(w, r, path, name, "text/csv")
}

func (h *Handler) serveAttachment(w http.ResponseWriter, r *http.Request, path, name, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

// sessionToken returns the caller's session token, minting a cookie on
// first contact.
func (h *Handler) sessionToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

func (h *Handler) readToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var invalid *disease.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, disease.ErrUnknown):
		http.Error(w, "Disease not found", http.StatusNotFound)
	case errors.Is(err, ErrNoResult):
		http.Error(w, "No prediction data found. Please complete a disease assessment first.", http.StatusNotFound)
	default:
		h.log.WithError(err).Error("screening request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
