package render

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "EU Carbon Border Tax", expected: "eu-carbon-border-tax"},
		{input: "  Rate Decision (March)  ", expected: "rate-decision-march"},
		{input: "a--b__c", expected: "a-b-c"},
		{input: "!!!", expected: "report"},
		{input: "", expected: "report"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
