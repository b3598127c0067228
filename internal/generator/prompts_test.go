package generator

import (
	"strings"
	"testing"

	"github.com/marketbrief/marketbrief/internal/models"
)

func TestBuildUserMessage(t *testing.T) {
	message := BuildUserMessage(models.EventInput{
		Name:           "EU Carbon Border Tax",
		ExpectedTiming: "January 2027",
		Description:    "Phased import levy on embedded emissions.",
		KeyDrivers:     []string{"steel imports", "certificate pricing"},
	})

	for _, expected := range []string{
		"Event Headline: EU Carbon Border Tax",
		"Expected Timing: January 2027",
		"Narrative Summary: Phased import levy on embedded emissions.",
		"- steel imports",
		"- certificate pricing",
	} {
		if !strings.Contains(message, expected) {
			t.Errorf("user message missing %q:\n%s", expected, message)
		}
	}
	if strings.Contains(message, "{{") {
		t.Errorf("unresolved placeholder in user message:\n%s", message)
	}
}

func TestBuildUserMessageDefaults(t *testing.T) {
	message := BuildUserMessage(models.EventInput{})

	for _, expected := range []string{
		"Event Headline: Unnamed Event",
		"Expected Timing: Timing TBD",
		"Narrative Summary: No narrative provided.",
		"- Driver details not specified",
	} {
		if !strings.Contains(message, expected) {
			t.Errorf("user message missing %q:\n%s", expected, message)
		}
	}
}

func TestSystemPromptPinsSchema(t *testing.T) {
	for _, expected := range []string{
		`"headline_summary"`,
		`"opportunities"`,
		`"investability_score"`,
		"at least 20 opportunities",
	} {
		if !strings.Contains(systemPrompt, expected) {
			t.Errorf("system prompt missing %q", expected)
		}
	}
}
