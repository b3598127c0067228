package assembler

import (
	"regexp"
	"strings"
)

// placeholderPattern matches a {{ name }} span; whitespace around the name is
// insignificant. Literal braces that do not form a span pass through.
var placeholderPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// FillTemplate replaces every placeholder span in template with the value
// registered under its name. Unknown names resolve to the empty string; this
// never fails.
func FillTemplate(template string, replacements map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(span string) string {
		name := strings.TrimSpace(placeholderPattern.FindStringSubmatch(span)[1])
		return replacements[name]
	})
}
