package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Software Engineer",
			expected: "Software Engineer",
		},
		{
			name:     "percent ampersand underscore",
			input:    "100% & fast_track",
			expected: `100\% \& fast\_track`,
		},
		{
			name:     "backslash",
			input:    `C:\temp`,
			expected: `C:\textbackslash{}temp`,
		},
		{
			name:     "braces",
			input:    "struct{}",
			expected: `struct\{\}`,
		},
		{
			name:     "dollar and hash",
			input:    "$100 #1",
			expected: `\$100 \#1`,
		},
		{
			name:     "tilde and caret",
			input:    "~5^2",
			expected: `\textasciitilde{}5\^{}2`,
		},
		{
			name:     "hyphen",
			input:    "2020-2023",
			expected: `2020{-}2023`,
		},
		{
			name:     "brackets",
			input:    "[redacted]",
			expected: `{[}redacted{]}`,
		},
		{
			name:     "newline",
			input:    "line one\nline two",
			expected: "line one\\newline%\nline two",
		},
		{
			name:     "non-breaking space",
			input:    "a\u00a0b",
			expected: "a~b",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLaTeX(tt.input))
		})
	}
}

func TestEscapeLaTeX_SinglePass(t *testing.T) {
	// Replacement text is never rescanned: the backslash introduced for
	// the ampersand does not itself get escaped.
	assert.Equal(t, `\textbackslash{}\&`, EscapeLaTeX(`\&`))
}

func TestEscapeValue(t *testing.T) {
	input := map[string]any{
		"name":  "R&D Lead",
		"score": 4.5,
		"tags":  []any{"50%_growth", "plain"},
		"nested": map[string]any{
			"note": "a_b",
		},
	}

	out, ok := EscapeValue(input).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, `R\&D Lead`, out["name"])
	assert.Equal(t, 4.5, out["score"])

	tags, ok := out["tags"].([]any)
	assert.True(t, ok)
	assert.Equal(t, `50\%\_growth`, tags[0])
	assert.Equal(t, "plain", tags[1])

	nested, ok := out["nested"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, `a\_b`, nested["note"])
}

func TestEscapeValue_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{"name": "R&D"}
	_ = EscapeValue(input)
	assert.Equal(t, "R&D", input["name"])
}
