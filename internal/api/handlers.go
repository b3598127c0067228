package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/marketbrief/marketbrief/internal/generator"
	"github.com/marketbrief/marketbrief/internal/intake"
	"github.com/marketbrief/marketbrief/internal/metrics"
	"github.com/marketbrief/marketbrief/internal/models"
	"github.com/marketbrief/marketbrief/internal/render"
)

// Handler serves the brief generation endpoints.
type Handler struct {
	generator *generator.Generator
	metrics   *metrics.Collector
	logger    *slog.Logger
	startTime time.Time
}

// NewHandler wires the generator and metrics into the HTTP surface.
func NewHandler(g *generator.Generator, collector *metrics.Collector, logger *slog.Logger) *Handler {
	return &Handler{
		generator: g,
		metrics:   collector,
		logger:    logger,
		startTime: time.Now(),
	}
}

// briefRequest accepts either explicit fields or a free-text chat message;
// when both are present the message wins.
type briefRequest struct {
	Name           string   `json:"name"`
	ExpectedTiming string   `json:"expected_timing"`
	Description    string   `json:"description"`
	KeyDrivers     []string `json:"key_drivers"`
	Message        string   `json:"message"`
}

type briefResponse struct {
	Brief      models.Report        `json:"brief"`
	Provenance generator.Provenance `json:"provenance"`
}

func (r briefRequest) toInput() models.EventInput {
	if r.Message != "" {
		return intake.ParseMessage(r.Message)
	}
	return models.EventInput{
		Name:           r.Name,
		ExpectedTiming: r.ExpectedTiming,
		Description:    r.Description,
		KeyDrivers:     r.KeyDrivers,
	}
}

// produce runs the engine selected by the ?engine query parameter. Blank and
// "model" choose the model path, which degrades itself when unconfigured.
func (h *Handler) produce(r *http.Request, input models.EventInput) (models.Report, generator.Provenance, error) {
	var (
		report     models.Report
		provenance generator.Provenance
	)

	switch engine := r.URL.Query().Get("engine"); engine {
	case "", "model":
		report, provenance = h.generator.Generate(r.Context(), input)
	case "deterministic":
		report, provenance = h.generator.Deterministic(input)
	default:
		return models.Report{}, generator.Provenance{}, fmt.Errorf("unknown engine %q", engine)
	}

	h.metrics.ObserveBrief(string(provenance.Engine))
	h.logger.Info("brief generated",
		"request_id", RequestIDFromContext(r.Context()),
		"engine", provenance.Engine,
		"event_name", report.EventName,
		"opportunities", len(report.Opportunities))

	return report, provenance, nil
}

func (h *Handler) decodeAndProduce(w http.ResponseWriter, r *http.Request) (models.Report, generator.Provenance, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return models.Report{}, generator.Provenance{}, false
	}

	var request briefRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return models.Report{}, generator.Provenance{}, false
	}

	report, provenance, err := h.produce(r, request.toInput())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return models.Report{}, generator.Provenance{}, false
	}
	return report, provenance, true
}

// GenerateBrief handles POST /api/briefs.
func (h *Handler) GenerateBrief(w http.ResponseWriter, r *http.Request) {
	report, provenance, ok := h.decodeAndProduce(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(briefResponse{Brief: report, Provenance: provenance}); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// ExportMarkdown handles POST /api/briefs/markdown.
func (h *Handler) ExportMarkdown(w http.ResponseWriter, r *http.Request) {
	report, _, ok := h.decodeAndProduce(w, r)
	if !ok {
		return
	}

	fileName := fmt.Sprintf("global-event-driven-market-intelligence-analyst-%s.md", render.Slugify(report.EventName))
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, render.Markdown(report))
}

// ExportCSV handles POST /api/briefs/csv.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	report, _, ok := h.decodeAndProduce(w, r)
	if !ok {
		return
	}

	document, err := render.OpportunitiesCSV(report)
	if err != nil {
		h.logger.Error("failed to render csv", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("opportunities-%s.csv", render.Slugify(report.EventName))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, document)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.startTime).Seconds()),
	})
}
