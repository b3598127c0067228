// Package assembler implements the deterministic brief engine: a pure
// function from an EventInput to the canonical Report, built from keyword
// heuristics and the static opportunity catalog. It cannot fail on any
// well-typed input.
package assembler

import (
	"fmt"
	"strings"
	"time"

	"github.com/marketbrief/marketbrief/internal/catalog"
	"github.com/marketbrief/marketbrief/internal/models"
)

// BuildOpportunities renders every catalog entry through the template filler
// with the per-request replacement map.
func BuildOpportunities(eventName, driversText, timeline string, sentiment models.Sentiment) []models.Opportunity {
	replacements := map[string]string{
		"event":     eventName,
		"drivers":   driversText,
		"timing":    timeline,
		"sentiment": string(sentiment),
	}

	entries := catalog.Entries()
	opportunities := make([]models.Opportunity, 0, len(entries))
	for _, entry := range entries {
		opportunities = append(opportunities, models.Opportunity{
			Ticker:             entry.Ticker,
			Company:            entry.Company,
			Sector:             entry.Sector,
			Country:            entry.Country,
			ExpectedDirection:  entry.ExpectedDirection,
			TimeHorizon:        entry.TimeHorizon,
			Mechanism:          FillTemplate(entry.MechanismTemplate, replacements),
			InvestabilityScore: entry.InvestabilityScore,
			Rationale:          FillTemplate(entry.RationaleTemplate, replacements),
			Sources:            entry.Sources,
		})
	}
	return opportunities
}

// Build assembles the full deterministic report. Aside from the generation
// timestamp the output is a pure function of the input: no randomness, no
// external calls.
func Build(input models.EventInput) models.Report {
	eventName := strings.TrimSpace(input.Name)
	if eventName == "" {
		eventName = "Strategic Market Catalyst"
	}

	drivers := make([]string, 0, len(input.KeyDrivers))
	for _, driver := range input.KeyDrivers {
		if trimmed := strings.TrimSpace(driver); trimmed != "" {
			drivers = append(drivers, trimmed)
		}
	}
	driversText := "the stated catalysts"
	if len(drivers) > 0 {
		driversText = strings.Join(drivers, "; ")
	}
	timeline := strings.TrimSpace(input.ExpectedTiming)
	if timeline == "" {
		timeline = "the specified timeline"
	}
	descriptionText := strings.TrimSpace(input.Description)
	if descriptionText == "" {
		descriptionText = "No narrative provided yet—supply qualitative colour for accuracy."
	}

	sentiment := DetermineSentiment(descriptionText + " " + driversText)
	macroThemes := DeriveMacroThemes(drivers, sentiment)
	sectorOutlook := DeriveSectorOutlook(sentiment, drivers, eventName)
	horizonImpacts := BuildHorizonImpacts(sentiment, driversText, timeline)
	eventContext := BuildEventContext(input)
	opportunities := BuildOpportunities(eventName, driversText, timeline, sentiment)

	anchorTheme := "macro reassessment"
	if len(macroThemes) > 0 {
		anchorTheme = macroThemes[0]
	}
	headlineSummary := fmt.Sprintf("%s: Preliminary %s stance anchored on %s.",
		eventName, strings.ToLower(string(sentiment)), anchorTheme)

	topTickers := make([]string, 0, 3)
	for _, opportunity := range opportunities {
		if len(topTickers) == 3 {
			break
		}
		topTickers = append(topTickers, opportunity.Ticker)
	}

	summaryInsights := []string{
		fmt.Sprintf("%s screens as %s with emphasis on %s.",
			eventName, strings.ToLower(string(sentiment)), strings.Join(firstN(macroThemes, 3), ", ")),
		fmt.Sprintf("Sector leadership likely features %s", strings.Join(firstN(sectorOutlook, 3), " ")),
		fmt.Sprintf("Initial focus tickers: %s; recalibrate sizing as milestones on %s emerge.",
			strings.Join(topTickers, ", "), timeline),
	}

	riskNote := fmt.Sprintf("Scenario sensitivity remains elevated—validate assumptions on %s with real-time data, "+
		"monitor policy communications, and size exposures within risk budget.", driversText)

	citations := []string{
		"IMF World Economic Outlook (latest edition)",
		"Bloomberg Terminal – Thematic Intelligence (placeholder)",
		"Reuters – Market Newswire (placeholder)",
	}

	return models.Report{
		GeneratedAt:     time.Now().UTC(),
		EventName:       eventName,
		HeadlineSummary: headlineSummary,
		EventContext:    eventContext,
		MarketImpact: models.MarketImpact{
			Sentiment:      sentiment,
			MacroThemes:    macroThemes,
			SectorOutlook:  sectorOutlook,
			HorizonImpacts: horizonImpacts,
		},
		Opportunities:   opportunities,
		SummaryInsights: summaryInsights,
		RiskNote:        riskNote,
		Citations:       citations,
	}
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
