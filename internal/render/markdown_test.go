package render

import (
	"strings"
	"testing"
	"time"

	"github.com/marketbrief/marketbrief/internal/assembler"
	"github.com/marketbrief/marketbrief/internal/models"
)

func sampleReport() models.Report {
	report := assembler.Build(models.EventInput{
		Name:           "Carbon Border Tax",
		ExpectedTiming: "January 2027",
		Description:    "Phased levy with growth implications.",
		KeyDrivers:     []string{"steel imports", "certificate pricing"},
	})
	report.GeneratedAt = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	return report
}

func TestMarkdownSectionLayout(t *testing.T) {
	doc := Markdown(sampleReport())

	sections := []string{
		"# Headline Summary",
		"## Event Context",
		"## Market Impact Analysis",
		"## Investment Opportunity Table",
		"## Summary Insights",
		"## Risk Note",
		"## Citations",
	}
	last := -1
	for _, section := range sections {
		index := strings.Index(doc, section)
		if index == -1 {
			t.Fatalf("missing section %q", section)
		}
		if index < last {
			t.Errorf("section %q out of order", section)
		}
		last = index
	}

	if !strings.Contains(doc, "| Ticker | Company | Sector | Country |") {
		t.Error("missing opportunity table header")
	}
	if !strings.HasSuffix(doc, "_Generated 2026-08-29 10:30:00 UTC_") {
		t.Errorf("missing generation footer, got tail %q", doc[len(doc)-60:])
	}
}

func TestMarkdownEscapesTableCells(t *testing.T) {
	report := sampleReport()
	report.Opportunities = report.Opportunities[:1]
	report.Opportunities[0].Mechanism = "pipe | inside\nand newline"

	doc := Markdown(report)

	if !strings.Contains(doc, `pipe \| inside and newline`) {
		t.Errorf("cell not escaped:\n%s", doc)
	}
}

func TestMarkdownOmitsFooterForZeroTimestamp(t *testing.T) {
	report := sampleReport()
	report.GeneratedAt = time.Time{}

	doc := Markdown(report)

	if strings.Contains(doc, "_Generated") {
		t.Error("expected no generation footer for zero timestamp")
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{score: 8, expected: "8"},
		{score: 7.5, expected: "7.5"},
	}

	for _, tt := range tests {
		if got := formatScore(tt.score); got != tt.expected {
			t.Errorf("formatScore(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}
