package assembler

import (
	"strings"

	"github.com/marketbrief/marketbrief/internal/models"
)

// Keyword matching is deliberately substring containment rather than
// tokenized word matching ("war" matches inside longer words too); the loose
// behavior is part of the classifier contract.
var (
	bullishKeywords = []string{"stimulus", "investment", "recovery", "growth", "innovation", "ai", "alliances", "easing", "support"}
	bearishKeywords = []string{"sanction", "recession", "war", "conflict", "crackdown", "ban", "shortage", "tightening", "slowdown"}
)

// DetermineSentiment classifies free text as Bullish, Bearish or Neutral.
// Bearish keywords take precedence when both families match.
func DetermineSentiment(text string) models.Sentiment {
	normalized := strings.ToLower(text)
	for _, keyword := range bearishKeywords {
		if strings.Contains(normalized, keyword) {
			return models.SentimentBearish
		}
	}
	for _, keyword := range bullishKeywords {
		if strings.Contains(normalized, keyword) {
			return models.SentimentBullish
		}
	}
	return models.SentimentNeutral
}
