package catalog

import (
	"regexp"
	"testing"

	"github.com/marketbrief/marketbrief/internal/models"
)

var placeholderNames = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

func TestEntriesAreWellFormed(t *testing.T) {
	entries := Entries()
	if len(entries) < 20 {
		t.Fatalf("expected at least 20 catalog entries, got %d", len(entries))
	}
	if Size() != len(entries) {
		t.Errorf("Size() = %d, want %d", Size(), len(entries))
	}

	validDirections := map[models.Sentiment]bool{
		models.SentimentBullish: true,
		models.SentimentBearish: true,
		models.SentimentNeutral: true,
	}
	validHorizons := map[models.TimeHorizon]bool{
		models.HorizonShortTerm:  true,
		models.HorizonMediumTerm: true,
		models.HorizonLongTerm:   true,
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.Ticker == "" || entry.Company == "" || entry.Sector == "" || entry.Country == "" {
			t.Errorf("entry %q has blank identity fields", entry.Ticker)
		}
		if seen[entry.Ticker] {
			t.Errorf("duplicate ticker %q", entry.Ticker)
		}
		seen[entry.Ticker] = true

		if !validDirections[entry.ExpectedDirection] {
			t.Errorf("entry %q has invalid direction %q", entry.Ticker, entry.ExpectedDirection)
		}
		if !validHorizons[entry.TimeHorizon] {
			t.Errorf("entry %q has invalid horizon %q", entry.Ticker, entry.TimeHorizon)
		}
		if entry.InvestabilityScore < 1 || entry.InvestabilityScore > 10 {
			t.Errorf("entry %q has out-of-range score %v", entry.Ticker, entry.InvestabilityScore)
		}
		if entry.MechanismTemplate == "" || entry.RationaleTemplate == "" {
			t.Errorf("entry %q has blank templates", entry.Ticker)
		}
		if len(entry.Sources) == 0 {
			t.Errorf("entry %q has no sources", entry.Ticker)
		}
	}
}

func TestTemplatesUseKnownPlaceholders(t *testing.T) {
	known := map[string]bool{
		"event":     true,
		"drivers":   true,
		"timing":    true,
		"sentiment": true,
	}

	for _, entry := range Entries() {
		for _, template := range []string{entry.MechanismTemplate, entry.RationaleTemplate} {
			for _, match := range placeholderNames.FindAllStringSubmatch(template, -1) {
				if !known[match[1]] {
					t.Errorf("entry %q references unknown placeholder %q", entry.Ticker, match[1])
				}
			}
		}
	}
}
