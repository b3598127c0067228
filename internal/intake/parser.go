// Package intake turns free-text chat messages into structured EventInput
// values using a line-oriented convention: "Event:", "Timing:" and "Drivers:"
// prefixes set the corresponding fields, everything else accumulates into the
// description.
package intake

import (
	"strings"

	"github.com/marketbrief/marketbrief/internal/models"
)

const maxInferredDrivers = 4

// ParseMessage parses a chat message into an EventInput. Prefix matching is
// case-insensitive. A "Drivers:" line accepts a semicolon/comma/bullet
// separated list and keeps consuming bullet-prefixed lines until a blank
// line. When no "Event:" line is present the first non-empty line becomes the
// name; when no drivers were found up to four are inferred from the
// description.
func ParseMessage(message string) models.EventInput {
	var (
		name, timing      string
		drivers           []string
		descriptionLines  []string
		sawEventLine      bool
		collectingDrivers bool
	)

	for _, raw := range strings.Split(message, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			collectingDrivers = false
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "event:"):
			name = strings.TrimSpace(line[len("event:"):])
			sawEventLine = true
			collectingDrivers = false
		case strings.HasPrefix(lower, "timing:"):
			timing = strings.TrimSpace(line[len("timing:"):])
			collectingDrivers = false
		case strings.HasPrefix(lower, "drivers:"):
			drivers = append(drivers, splitList(line[len("drivers:"):])...)
			collectingDrivers = true
		case collectingDrivers && isBullet(line):
			drivers = append(drivers, trimBullet(line))
		default:
			collectingDrivers = false
			descriptionLines = append(descriptionLines, line)
		}
	}

	if !sawEventLine && len(descriptionLines) > 0 {
		name = descriptionLines[0]
		descriptionLines = descriptionLines[1:]
	}
	description := strings.Join(descriptionLines, "\n")

	if len(drivers) == 0 {
		drivers = inferDrivers(description)
	}

	return models.EventInput{
		Name:           name,
		ExpectedTiming: timing,
		Description:    description,
		KeyDrivers:     drivers,
	}
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•")
}

func trimBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
}

// splitList breaks a same-line driver list on semicolons, commas and bullet
// characters.
func splitList(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ',' || r == '•'
	})
	results := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if trimmed := trimBullet(fragment); trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

// inferDrivers extracts up to four driver candidates by splitting the
// description on the same separator set.
func inferDrivers(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	candidates := splitList(description)
	if len(candidates) > maxInferredDrivers {
		candidates = candidates[:maxInferredDrivers]
	}
	return candidates
}
