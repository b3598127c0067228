package generator

import (
	"strings"
	"time"

	"github.com/marketbrief/marketbrief/internal/models"
)

// NormalizeReport converts the loosely-typed document decoded from model
// output into the canonical Report. Missing or mistyped fields get defaults,
// tickers are uppercased, horizons are remapped to the canonical labels, and
// horizon_impacts is re-keyed into canonical order. The loose shape never
// leaks past this step.
func NormalizeReport(doc map[string]any, input models.EventInput, now time.Time) models.Report {
	eventContext := mapField(doc, "event_context")
	marketImpact := mapField(doc, "market_impact")

	eventName := strings.TrimSpace(input.Name)
	if eventName == "" {
		eventName = strings.TrimSpace(stringField(eventContext, "overview"))
	}
	if eventName == "" {
		eventName = "Strategic Market Catalyst"
	}

	timing := stringField(eventContext, "timing")
	if timing == "" {
		timing = input.ExpectedTiming
	}

	return models.Report{
		GeneratedAt:     now,
		EventName:       eventName,
		HeadlineSummary: stringField(doc, "headline_summary"),
		EventContext: models.EventContext{
			Overview:      stringField(eventContext, "overview"),
			Timing:        timing,
			Significance:  stringField(eventContext, "significance"),
			ContextPoints: capList(stringList(eventContext, "context_points"), 4),
		},
		MarketImpact: models.MarketImpact{
			Sentiment:      models.ParseSentiment(stringField(marketImpact, "sentiment")),
			MacroThemes:    capList(dedupeTrim(stringList(marketImpact, "macro_themes")), 6),
			SectorOutlook:  capList(stringList(marketImpact, "sector_outlook"), 5),
			HorizonImpacts: rekeyHorizons(listField(marketImpact, "horizon_impacts")),
		},
		Opportunities:   normalizeOpportunities(listField(doc, "opportunities")),
		SummaryInsights: capList(stringList(doc, "summary_insights"), 5),
		RiskNote:        stringField(doc, "risk_note"),
		Citations:       stringList(doc, "citations"),
	}
}

// normalizeOpportunities applies the per-entry defaults: uppercased ticker,
// Neutral direction, medium-term horizon, score 5, empty strings and an empty
// source list for anything the model omitted.
func normalizeOpportunities(items []any) []models.Opportunity {
	results := make([]models.Opportunity, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		horizon := models.HorizonMediumTerm
		if raw := stringField(entry, "time_horizon"); raw != "" {
			horizon = models.NormalizeHorizon(raw)
		}

		score := 5.0
		if number, ok := entry["investability_score"].(float64); ok {
			score = number
		}

		direction := models.SentimentNeutral
		if raw := stringField(entry, "expected_direction"); raw != "" {
			direction = models.ParseSentiment(raw)
		}

		results = append(results, models.Opportunity{
			Ticker:             strings.ToUpper(stringField(entry, "ticker")),
			Company:            stringField(entry, "company"),
			Sector:             stringField(entry, "sector"),
			Country:            stringField(entry, "country"),
			ExpectedDirection:  direction,
			TimeHorizon:        horizon,
			Mechanism:          stringField(entry, "mechanism"),
			InvestabilityScore: score,
			Rationale:          stringField(entry, "rationale"),
			Sources:            stringSlice(entry["sources"]),
		})
	}
	return results
}

// rekeyHorizons rebuilds horizon_impacts with exactly the three canonical
// labels in canonical order, preserving outlooks whose horizon matched and
// defaulting the rest to an empty string.
func rekeyHorizons(items []any) []models.HorizonImpact {
	existing := make(map[string]string, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		existing[stringField(entry, "horizon")] = stringField(entry, "outlook")
	}

	order := models.HorizonOrder()
	impacts := make([]models.HorizonImpact, 0, len(order))
	for _, horizon := range order {
		impacts = append(impacts, models.HorizonImpact{
			Horizon: horizon,
			Outlook: existing[string(horizon)],
		})
	}
	return impacts
}

func mapField(doc map[string]any, key string) map[string]any {
	if value, ok := doc[key].(map[string]any); ok {
		return value
	}
	return map[string]any{}
}

func listField(doc map[string]any, key string) []any {
	if value, ok := doc[key].([]any); ok {
		return value
	}
	return nil
}

func stringField(doc map[string]any, key string) string {
	if value, ok := doc[key].(string); ok {
		return value
	}
	return ""
}

func stringList(doc map[string]any, key string) []string {
	return stringSlice(doc[key])
}

func stringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	results := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := item.(string); ok {
			results = append(results, text)
		}
	}
	return results
}

func dedupeTrim(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	results := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		results = append(results, trimmed)
	}
	return results
}

func capList(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
