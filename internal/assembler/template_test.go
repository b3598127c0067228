package assembler

import "testing"

func TestFillTemplate(t *testing.T) {
	tests := []struct {
		name         string
		template     string
		replacements map[string]string
		expected     string
	}{
		{
			name:         "no placeholders",
			template:     "plain text",
			replacements: map[string]string{"event": "CPI print"},
			expected:     "plain text",
		},
		{
			name:         "single placeholder",
			template:     "Impact of {{event}} on markets",
			replacements: map[string]string{"event": "rate decision"},
			expected:     "Impact of rate decision on markets",
		},
		{
			name:         "repeated placeholder",
			template:     "{{event}} and {{event}} again",
			replacements: map[string]string{"event": "X"},
			expected:     "X and X again",
		},
		{
			name:         "whitespace around name",
			template:     "around {{ timing }} window",
			replacements: map[string]string{"timing": "Q3"},
			expected:     "around Q3 window",
		},
		{
			name:         "unknown name resolves empty",
			template:     "value: {{missing}}",
			replacements: map[string]string{"event": "x"},
			expected:     "value: ",
		},
		{
			name:         "nil replacements",
			template:     "{{event}} gone",
			replacements: nil,
			expected:     " gone",
		},
		{
			name:         "stray braces pass through",
			template:     "keep {single} and {{unclosed",
			replacements: map[string]string{"single": "no", "unclosed": "no"},
			expected:     "keep {single} and {{unclosed",
		},
		{
			name:         "multiple names",
			template:     "{{event}} driven by {{drivers}} over {{timing}}",
			replacements: map[string]string{"event": "merger", "drivers": "synergies", "timing": "2026"},
			expected:     "merger driven by synergies over 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillTemplate(tt.template, tt.replacements); got != tt.expected {
				t.Errorf("FillTemplate(%q) = %q, want %q", tt.template, got, tt.expected)
			}
		})
	}
}
