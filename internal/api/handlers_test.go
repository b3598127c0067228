package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/marketbrief/marketbrief/internal/catalog"
	"github.com/marketbrief/marketbrief/internal/config"
	"github.com/marketbrief/marketbrief/internal/generator"
	"github.com/marketbrief/marketbrief/internal/metrics"
	"github.com/marketbrief/marketbrief/internal/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	collector, err := metrics.NewCollector()
	if err != nil {
		t.Fatalf("NewCollector returned error: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := generator.New(config.DeepSeekConfig{}, logger)

	return NewHandler(gen, collector, logger)
}

func TestGenerateBrief(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"name":"Rate Decision","expected_timing":"March 2026","description":"Easing cycle begins.","key_drivers":["inflation prints"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/briefs", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.GenerateBrief(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var response struct {
		Brief      models.Report        `json:"brief"`
		Provenance generator.Provenance `json:"provenance"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Brief.EventName != "Rate Decision" {
		t.Errorf("unexpected event name %q", response.Brief.EventName)
	}
	if len(response.Brief.Opportunities) != catalog.Size() {
		t.Errorf("expected %d opportunities, got %d", catalog.Size(), len(response.Brief.Opportunities))
	}
	if response.Provenance.Engine != generator.EngineDeterministic {
		t.Errorf("expected deterministic provenance without API key, got %q", response.Provenance.Engine)
	}
}

func TestGenerateBriefFromChatMessage(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"name":"ignored","message":"Event: OPEC Cut\nTiming: June\nDrivers: quota; inventories"}`
	req := httptest.NewRequest(http.MethodPost, "/api/briefs?engine=deterministic", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.GenerateBrief(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var response struct {
		Brief models.Report `json:"brief"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Brief.EventName != "OPEC Cut" {
		t.Errorf("expected chat message to win, got event name %q", response.Brief.EventName)
	}
	if response.Brief.EventContext.Timing != "June" {
		t.Errorf("unexpected timing %q", response.Brief.EventContext.Timing)
	}
}

func TestGenerateBriefRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expected int
	}{
		{name: "wrong method", method: http.MethodGet, target: "/api/briefs", expected: http.StatusMethodNotAllowed},
		{name: "invalid json", method: http.MethodPost, target: "/api/briefs", body: "{not json", expected: http.StatusBadRequest},
		{name: "unknown engine", method: http.MethodPost, target: "/api/briefs?engine=quantum", body: "{}", expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t)
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.GenerateBrief(rr, req)

			if rr.Code != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, rr.Code)
			}
		})
	}
}

func TestExportMarkdown(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/briefs/markdown", strings.NewReader(`{"name":"EU Carbon Border Tax"}`))
	rr := httptest.NewRecorder()

	handler.ExportMarkdown(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/markdown; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	disposition := rr.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "global-event-driven-market-intelligence-analyst-eu-carbon-border-tax.md") {
		t.Errorf("unexpected disposition %q", disposition)
	}
	if !strings.Contains(rr.Body.String(), "# Headline Summary") {
		t.Errorf("expected markdown document, got %q", rr.Body.String()[:80])
	}
}

func TestExportCSV(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/briefs/csv", strings.NewReader(`{"name":"Rate Decision"}`))
	rr := httptest.NewRecorder()

	handler.ExportCSV(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rr.Header().Get("Content-Disposition"), "opportunities-rate-decision.csv") {
		t.Errorf("unexpected disposition %q", rr.Header().Get("Content-Disposition"))
	}

	firstLine := strings.SplitN(rr.Body.String(), "\n", 2)[0]
	if !strings.HasPrefix(firstLine, "Ticker,Company,Sector,Country") {
		t.Errorf("unexpected csv header %q", firstLine)
	}
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode health payload: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("unexpected status %v", payload["status"])
	}
}
