package models

import (
	"strings"
	"time"
)

// Sentiment is the coarse directional bias assigned to an event.
type Sentiment string

const (
	SentimentBullish Sentiment = "Bullish"
	SentimentBearish Sentiment = "Bearish"
	SentimentNeutral Sentiment = "Neutral"
)

// ParseSentiment converts a free-form string into a Sentiment, defaulting to
// Neutral for anything unrecognized.
func ParseSentiment(raw string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bullish":
		return SentimentBullish
	case "bearish":
		return SentimentBearish
	default:
		return SentimentNeutral
	}
}

// TimeHorizon is one of the three fixed forward-looking buckets every report
// is organized around.
type TimeHorizon string

const (
	HorizonShortTerm  TimeHorizon = "Short-term (0–3 months)"
	HorizonMediumTerm TimeHorizon = "Medium-term (3–12 months)"
	HorizonLongTerm   TimeHorizon = "Long-term (1–5 years)"
)

// HorizonOrder returns the canonical horizon labels in display order.
func HorizonOrder() []TimeHorizon {
	return []TimeHorizon{HorizonShortTerm, HorizonMediumTerm, HorizonLongTerm}
}

// NormalizeHorizon maps an arbitrary horizon string onto a canonical label.
// Matching is by substring ("short", "medium", "long", case-insensitive);
// strings with no recognized substring fall back to the medium-term label.
func NormalizeHorizon(raw string) TimeHorizon {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "short"):
		return HorizonShortTerm
	case strings.Contains(lower, "medium"):
		return HorizonMediumTerm
	case strings.Contains(lower, "long"):
		return HorizonLongTerm
	default:
		return HorizonMediumTerm
	}
}

// EventInput is the caller-supplied description of a forward-looking catalyst.
// Every field may be blank; the engine substitutes placeholder literals.
type EventInput struct {
	Name           string   `json:"name"`
	ExpectedTiming string   `json:"expected_timing"`
	Description    string   `json:"description"`
	KeyDrivers     []string `json:"key_drivers"`
}

// EventContext frames the catalyst narrative inside a report.
type EventContext struct {
	Overview      string   `json:"overview"`
	Timing        string   `json:"timing"`
	Significance  string   `json:"significance"`
	ContextPoints []string `json:"context_points"`
}

// HorizonImpact pairs one canonical time horizon with its outlook statement.
type HorizonImpact struct {
	Horizon TimeHorizon `json:"horizon"`
	Outlook string      `json:"outlook"`
}

// MarketImpact aggregates the directional read on the event.
type MarketImpact struct {
	Sentiment      Sentiment       `json:"sentiment"`
	MacroThemes    []string        `json:"macro_themes"`
	SectorOutlook  []string        `json:"sector_outlook"`
	HorizonImpacts []HorizonImpact `json:"horizon_impacts"`
}

// Opportunity is a single row of the investment opportunity table.
type Opportunity struct {
	Ticker             string      `json:"ticker"`
	Company            string      `json:"company"`
	Sector             string      `json:"sector"`
	Country            string      `json:"country"`
	ExpectedDirection  Sentiment   `json:"expected_direction"`
	TimeHorizon        TimeHorizon `json:"time_horizon"`
	Mechanism          string      `json:"mechanism"`
	InvestabilityScore float64     `json:"investability_score"`
	Rationale          string      `json:"rationale"`
	Sources            []string    `json:"sources"`
}

// Report is the canonical market intelligence brief. It is built atomically
// per request and never mutated afterwards, except that the fallback path may
// append one disclosure line to SummaryInsights.
type Report struct {
	GeneratedAt     time.Time     `json:"generated_at"`
	EventName       string        `json:"event_name"`
	HeadlineSummary string        `json:"headline_summary"`
	EventContext    EventContext  `json:"event_context"`
	MarketImpact    MarketImpact  `json:"market_impact"`
	Opportunities   []Opportunity `json:"opportunities"`
	SummaryInsights []string      `json:"summary_insights"`
	RiskNote        string        `json:"risk_note"`
	Citations       []string      `json:"citations"`
}
