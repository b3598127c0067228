package assembler

import (
	"testing"

	"github.com/marketbrief/marketbrief/internal/models"
)

func TestDetermineSentiment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.Sentiment
	}{
		{
			name:     "bearish keyword",
			text:     "This signals a recession and tightening",
			expected: models.SentimentBearish,
		},
		{
			name:     "bullish keywords",
			text:     "Stimulus-driven growth and AI investment",
			expected: models.SentimentBullish,
		},
		{
			name:     "neutral text",
			text:     "A routine quarterly filing update.",
			expected: models.SentimentNeutral,
		},
		{
			name:     "bearish outranks bullish",
			text:     "Growth outlook clouded by sanctions and export bans",
			expected: models.SentimentBearish,
		},
		{
			name:     "substring match inside longer word",
			text:     "Preparing for a wartime economy",
			expected: models.SentimentBearish,
		},
		{
			name:     "case insensitive",
			text:     "MONETARY EASING EXPECTED",
			expected: models.SentimentBullish,
		},
		{
			name:     "empty text",
			text:     "",
			expected: models.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineSentiment(tt.text); got != tt.expected {
				t.Errorf("DetermineSentiment(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}
