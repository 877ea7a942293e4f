package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"title\": \"Launch\"}\n```",
			expected: `{"title": "Launch"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"title\": \"Launch\"}\n```",
			expected: `{"title": "Launch"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"title\": \"Launch\"}\n```",
			expected: `{"title": "Launch"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"title": "Launch"}`,
			expected: `{"title": "Launch"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"title\": \"Launch\"}\n  ",
			expected: `{"title": "Launch"}`,
		},
		{
			name:     "non-JSON text untouched",
			input:    "Great post about automation",
			expected: "Great post about automation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
