package generator

import (
	"regexp"
	"strings"
)

// jsonObjectPattern matches from the first opening brace greedily to the last
// closing brace.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject pulls the first top-level brace-delimited span out of raw
// model text, stripping an optional markdown code fence first. The match is
// deliberately permissive and can mis-extract when prose after the object
// contains braces; callers accepting stricter input should substitute a real
// parser here.
func ExtractJSONObject(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.Trim(text, "`")
	}

	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}
