package api

import (
	"net/http"

	"github.com/marketbrief/marketbrief/internal/metrics"
)

// SetupRoutes registers the API surface on the provided mux.
func SetupRoutes(mux *http.ServeMux, handler *Handler, collector *metrics.Collector) {
	mux.HandleFunc("/api/briefs", handler.GenerateBrief)
	mux.HandleFunc("/api/briefs/markdown", handler.ExportMarkdown)
	mux.HandleFunc("/api/briefs/csv", handler.ExportCSV)
	mux.HandleFunc("/healthz", handler.Health)
	mux.Handle("/metrics", collector.Handler())
}
