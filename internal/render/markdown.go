// Package render serializes canonical reports for export. It is pure and
// stateless: a report in, a document out.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marketbrief/marketbrief/internal/models"
)

var opportunityColumns = []string{
	"Ticker", "Company", "Sector", "Country", "Expected Direction",
	"Time Horizon", "Mechanism of Impact", "Investability Score",
	"Rationale", "Source(s)",
}

// escapeCell keeps cell values from breaking pipe-table syntax.
func escapeCell(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return value
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func opportunityCells(row models.Opportunity) []string {
	return []string{
		row.Ticker,
		row.Company,
		row.Sector,
		row.Country,
		string(row.ExpectedDirection),
		string(row.TimeHorizon),
		row.Mechanism,
		formatScore(row.InvestabilityScore),
		row.Rationale,
		strings.Join(row.Sources, "; "),
	}
}

func formatOpportunityRow(row models.Opportunity) string {
	cells := opportunityCells(row)
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = escapeCell(cell)
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

// Markdown renders a report as a Markdown document with the fixed section
// layout expected by the export workflow.
func Markdown(report models.Report) string {
	var lines []string

	lines = append(lines, "# Headline Summary")
	lines = append(lines, strings.TrimSpace(report.HeadlineSummary))
	lines = append(lines, "")

	lines = append(lines, "## Event Context")
	lines = append(lines, strings.TrimSpace(report.EventContext.Overview))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("- **Timing:** %s", report.EventContext.Timing))
	lines = append(lines, fmt.Sprintf("- **Significance:** %s", report.EventContext.Significance))
	if len(report.EventContext.ContextPoints) > 0 {
		lines = append(lines, "- **Key Drivers:**")
		for _, point := range report.EventContext.ContextPoints {
			lines = append(lines, fmt.Sprintf("  - %s", point))
		}
	}
	lines = append(lines, "")

	impact := report.MarketImpact
	lines = append(lines, "## Market Impact Analysis")
	lines = append(lines, fmt.Sprintf("- **Sentiment:** %s", impact.Sentiment))
	lines = append(lines, fmt.Sprintf("- **Macro Themes:** %s", strings.Join(impact.MacroThemes, "; ")))
	lines = append(lines, fmt.Sprintf("- **Sector Exposure:** %s", strings.Join(impact.SectorOutlook, "; ")))
	lines = append(lines, "- **Time Horizons:**")
	for _, item := range impact.HorizonImpacts {
		lines = append(lines, fmt.Sprintf("  - %s: %s", item.Horizon, item.Outlook))
	}
	lines = append(lines, "")

	lines = append(lines, "## Investment Opportunity Table")
	lines = append(lines, "| "+strings.Join(opportunityColumns, " | ")+" |")
	lines = append(lines, "| "+strings.TrimSuffix(strings.Repeat("--- | ", len(opportunityColumns)), " ")+"")
	for _, row := range report.Opportunities {
		lines = append(lines, formatOpportunityRow(row))
	}
	lines = append(lines, "")

	lines = append(lines, "## Summary Insights")
	for _, insight := range report.SummaryInsights {
		lines = append(lines, fmt.Sprintf("- %s", insight))
	}
	lines = append(lines, "")

	lines = append(lines, "## Risk Note")
	lines = append(lines, strings.TrimSpace(report.RiskNote))
	lines = append(lines, "")

	lines = append(lines, "## Citations")
	for _, citation := range report.Citations {
		lines = append(lines, fmt.Sprintf("- %s", citation))
	}
	lines = append(lines, "")

	if !report.GeneratedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("_Generated %s_", report.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")))
	}

	return strings.Join(lines, "\n")
}
