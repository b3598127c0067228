package render

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases text, collapses non-alphanumeric runs into hyphens, and
// falls back to "report" when nothing survives. Used for export file names.
func Slugify(text string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(text), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "report"
	}
	return slug
}
