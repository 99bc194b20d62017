package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "array payload",
			input:    "```json\n[{\"a\": 1}, {\"b\": 2}]\n```",
			expected: `[{"a": 1}, {"b": 2}]`,
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

func TestCleanJSONBlock_SurroundingChatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "As requested, here is the JSON:\n{\"company\": \"Acme\"}",
			expected: `{"company": "Acme"}`,
		},
		{
			name:     "trailing chatter after JSON object",
			input:    "{\"company\": \"Acme\"}\nLet me know if you need anything else!",
			expected: `{"company": "Acme"}`,
		},
		{
			name:     "preamble and trailing chatter",
			input:    "Here you go:\n\n{\"title\": \"Engineer\"}\n\nHope this helps.",
			expected: `{"title": "Engineer"}`,
		},
		{
			name:     "braces inside string literals",
			input:    "Output:\n{\"note\": \"uses { and } internally\", \"done\": true} trailing",
			expected: `{"note": "uses { and } internally", "done": true}`,
		},
		{
			name:     "escaped quotes inside strings",
			input:    `{"quote": "she said \"hi\" {"}`,
			expected: `{"quote": "she said \"hi\" {"}`,
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

func TestCleanJSONBlock_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"key\": \"value\"}\n```",
		"Preamble text\n{\"nested\": {\"deep\": [1, 2, 3]}}",
		`{"already": "clean"}`,
	}

	for _, input := range inputs {
		once := CleanJSONBlock(input)
		twice := CleanJSONBlock(once)
		if once != twice {
			t.Errorf("CleanJSONBlock not idempotent: first %q, second %q", once, twice)
		}
	}
}

func TestCleanJSONBlock_NoJSONPresent(t *testing.T) {
	input := "The model refused to answer."
	if got := CleanJSONBlock(input); got != input {
		t.Errorf("CleanJSONBlock() = %q, want input unchanged", got)
	}
}
