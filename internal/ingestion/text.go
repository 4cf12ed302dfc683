// Package ingestion decodes resume documents into clean UTF-8 text and
// normalizes that text for pattern matching. Binary format handling is
// delegated to commodity parsers; everything downstream works on plain text.
package ingestion

import (
	"regexp"
	"strings"
)

var innerSpaceRe = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes raw decoded text while preserving line structure:
// CRLF to LF, per-line whitespace collapse, bullets kept, at most one blank
// line between sections. Extraction heuristics depend on lines surviving.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses runs of spaces and tabs,
// keeping a leading bullet marker when present.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	if marker, rest, ok := splitBullet(trimmed); ok {
		return marker + " " + innerSpaceRe.ReplaceAllString(rest, " ")
	}
	return innerSpaceRe.ReplaceAllString(trimmed, " ")
}

// splitBullet detects a leading list marker and returns it apart from the
// line body. PDF extractors emit a mix of -, *, and unicode bullets.
func splitBullet(line string) (marker, rest string, ok bool) {
	for _, m := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(m), strings.TrimSpace(strings.TrimPrefix(line, m)), true
		}
	}
	return "", "", false
}

// collapseBlankLines reduces three or more consecutive newlines to two.
func collapseBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// NormalizeForMatching lowercases text and collapses all whitespace runs to
// single spaces, producing the uniform form the skill matcher and keyword
// rules run against. Punctuation is preserved: vocabulary terms like
// "c++", "node.js", and "ci/cd" depend on it.
func NormalizeForMatching(text string) string {
	lowered := strings.ToLower(text)
	fields := strings.Fields(lowered)
	return strings.Join(fields, " ")
}

// Truncate bounds text to at most max runes. Pattern matching cost grows
// with input length, so extraction callers bound their input first.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
