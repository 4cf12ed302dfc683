package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "crlf normalized",
			input:    "John Smith\r\nSoftware Engineer\r\n",
			expected: "John Smith\nSoftware Engineer",
		},
		{
			name:     "bare cr normalized",
			input:    "line one\rline two",
			expected: "line one\nline two",
		},
		{
			name:     "inner whitespace collapsed per line",
			input:    "John    Smith\tJr",
			expected: "John Smith Jr",
		},
		{
			name:     "excess blank lines collapsed",
			input:    "Summary\n\n\n\n\nSkills",
			expected: "Summary\n\nSkills",
		},
		{
			name:     "unicode bullet preserved",
			input:    "•   Built data pipelines",
			expected: "• Built data pipelines",
		},
		{
			name:     "dash bullet preserved",
			input:    "-   5 years   of experience",
			expected: "- 5 years of experience",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n  Jane Doe  \n",
			expected: "Jane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestNormalizeForMatching(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and joins lines",
			input:    "Python Developer\nSQL and Docker",
			expected: "python developer sql and docker",
		},
		{
			name:     "punctuation survives",
			input:    "C++ / Node.js, CI/CD",
			expected: "c++ / node.js, ci/cd",
		},
		{
			name:     "whitespace runs collapse",
			input:    "  lots\t\tof   space  ",
			expected: "lots of space",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeForMatching(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abc", 10))
	})

	t.Run("long text bounded", func(t *testing.T) {
		long := strings.Repeat("x", 100)
		assert.Len(t, Truncate(long, 40), 40)
	})

	t.Run("rune safe", func(t *testing.T) {
		text := "héllo wörld"
		got := Truncate(text, 5)
		assert.Equal(t, "héllo", got)
	})

	t.Run("non-positive max disables the bound", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abc", 0))
	})
}
