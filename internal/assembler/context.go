package assembler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/marketbrief/marketbrief/internal/models"
)

const (
	maxMacroThemes   = 6
	maxSectorOutlook = 5
	maxContextPoints = 4
)

var themeCleaner = regexp.MustCompile(`[^\w\s-]`)

// dedupe trims every value, drops empties, and removes duplicates while
// preserving first occurrence order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// DeriveMacroThemes builds the macro theme list: a sentiment-derived theme
// first, then a cleaned three-word fragment per driver in input order, then
// the fixed base themes, deduplicated and capped.
func DeriveMacroThemes(drivers []string, sentiment models.Sentiment) []string {
	sentimentTheme := "Selective Allocation"
	switch sentiment {
	case models.SentimentBullish:
		sentimentTheme = "Risk-On Rotation"
	case models.SentimentBearish:
		sentimentTheme = "Defensive Positioning"
	}

	themes := []string{sentimentTheme}
	for _, driver := range drivers {
		if strings.TrimSpace(driver) == "" {
			continue
		}
		words := strings.Fields(driver)
		if len(words) > 3 {
			words = words[:3]
		}
		fragment := themeCleaner.ReplaceAllString(strings.Join(words, " "), "")
		themes = append(themes, strings.TrimSpace(fragment))
	}
	themes = append(themes, "Policy Trajectory", "Cross-Border Capital Flows", "Supply Chain Resilience")

	deduped := dedupe(themes)
	if len(deduped) > maxMacroThemes {
		deduped = deduped[:maxMacroThemes]
	}
	return deduped
}

// DeriveSectorOutlook builds up to five sector positioning statements, with a
// sentiment-specific opening line ahead of the fixed base narratives.
func DeriveSectorOutlook(sentiment models.Sentiment, drivers []string, eventName string) []string {
	focus := "stated catalysts"
	if len(drivers) > 0 {
		top := drivers
		if len(top) > 2 {
			top = top[:2]
		}
		focus = strings.Join(top, " & ")
	}

	opener := "Market likely stays range-bound with rotation within sectors."
	switch sentiment {
	case models.SentimentBullish:
		opener = "Growth equities favored as liquidity expectations improve."
	case models.SentimentBearish:
		opener = "Quality balance sheets and cash generative assets prioritized."
	}

	outlook := []string{
		opener,
		fmt.Sprintf("Technology platforms positioned to monetize %s.", focus),
		fmt.Sprintf("Energy and materials tracking commodity volatility around %s.", eventName),
		"Financials adjusting capital deployment as policy visibility shifts.",
		"Defensive sectors providing ballast amid execution risk.",
	}
	if len(outlook) > maxSectorOutlook {
		outlook = outlook[:maxSectorOutlook]
	}
	return outlook
}

// BuildHorizonImpacts always yields exactly three entries, one per canonical
// horizon in canonical order.
func BuildHorizonImpacts(sentiment models.Sentiment, driversText, timeline string) []models.HorizonImpact {
	return []models.HorizonImpact{
		{
			Horizon: models.HorizonShortTerm,
			Outlook: fmt.Sprintf("%s bias as headlines around %s drive volatility; monitor liquidity and spreads.", sentiment, driversText),
		},
		{
			Horizon: models.HorizonMediumTerm,
			Outlook: fmt.Sprintf("Execution against %s milestones will clarify earnings visibility and capital allocation.", timeline),
		},
		{
			Horizon: models.HorizonLongTerm,
			Outlook: "Structural implications for market share, supply chains, and policy regimes anchor strategic positioning.",
		},
	}
}

// BuildEventContext frames the event narrative, substituting placeholder
// literals for any blank input field.
func BuildEventContext(input models.EventInput) models.EventContext {
	eventName := strings.TrimSpace(input.Name)
	if eventName == "" {
		eventName = "Submitted strategic catalyst"
	}
	overview := strings.TrimSpace(input.Description)
	if overview == "" {
		overview = "Description pending—add narrative for richer context."
	}
	timing := strings.TrimSpace(input.ExpectedTiming)
	if timing == "" {
		timing = "Timing TBD—confirm expected announcement or implementation window."
	}

	contextPoints := make([]string, 0, len(input.KeyDrivers))
	for _, driver := range input.KeyDrivers {
		if trimmed := strings.TrimSpace(driver); trimmed != "" {
			contextPoints = append(contextPoints, trimmed)
		}
	}

	significance := "Detail the scale of capital flows, policy changes, or technology adoption expected from this catalyst."
	if len(contextPoints) > 0 {
		significance = contextPoints[0]
	} else {
		contextPoints = append(contextPoints, "Add key drivers such as policy levers, stakeholders, or technology triggers.")
	}
	if len(contextPoints) > maxContextPoints {
		contextPoints = contextPoints[:maxContextPoints]
	}

	return models.EventContext{
		Overview:      fmt.Sprintf("%s: %s", eventName, overview),
		Timing:        timing,
		Significance:  significance,
		ContextPoints: contextPoints,
	}
}
