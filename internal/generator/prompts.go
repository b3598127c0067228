package generator

import (
	"strings"

	"github.com/marketbrief/marketbrief/internal/assembler"
	"github.com/marketbrief/marketbrief/internal/models"
)

// systemPrompt pins the exact JSON schema the model must return, including
// enum value sets, array length bounds, and the 20-entry opportunity minimum.
const systemPrompt = `You are an institutional research analyst.
Return ONLY valid JSON that matches this schema:
{
  "headline_summary": string,
  "event_context": {
    "overview": string,
    "timing": string,
    "significance": string,
    "context_points": string[1..4]
  },
  "market_impact": {
    "sentiment": "Bullish"|"Bearish"|"Neutral",
    "macro_themes": string[1..6],
    "sector_outlook": string[1..5],
    "horizon_impacts": [
      {"horizon": "Short-term (0–3 months)", "outlook": string},
      {"horizon": "Medium-term (3–12 months)", "outlook": string},
      {"horizon": "Long-term (1–5 years)", "outlook": string}
    ]
  },
  "opportunities": [
    {
      "ticker": string,
      "company": string,
      "sector": string,
      "country": string,
      "expected_direction": "Bullish"|"Bearish"|"Neutral",
      "time_horizon": "Short-term (0–3 months)"|"Medium-term (3–12 months)"|"Long-term (1–5 years)",
      "mechanism": string,
      "investability_score": number (1-10),
      "rationale": string,
      "sources": string[]
    }
  ],
  "summary_insights": string[1..5],
  "risk_note": string,
  "citations": string[3]
}
Ensure there are at least 20 opportunities covering multiple sectors (global equities, ETFs, commodities, fixed income, crypto, etc.).
`

const userTemplate = `Event Headline: {{name}}
Expected Timing: {{timing}}
Narrative Summary: {{description}}
Key Drivers:
{{drivers}}

Produce concise, evidence-based language. Cite reputable public sources only.`

// BuildUserMessage renders the per-request user prompt, substituting
// placeholder lines for any blank input field.
func BuildUserMessage(input models.EventInput) string {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Unnamed Event"
	}
	timing := strings.TrimSpace(input.ExpectedTiming)
	if timing == "" {
		timing = "Timing TBD"
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = "No narrative provided."
	}

	drivers := input.KeyDrivers
	if len(drivers) == 0 {
		drivers = []string{"Driver details not specified"}
	}
	bullets := make([]string, 0, len(drivers))
	for _, driver := range drivers {
		bullets = append(bullets, "- "+driver)
	}

	return assembler.FillTemplate(userTemplate, map[string]string{
		"name":        name,
		"timing":      timing,
		"description": description,
		"drivers":     strings.Join(bullets, "\n"),
	})
}
