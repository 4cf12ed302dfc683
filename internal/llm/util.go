// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from an LLM response. It removes
// markdown code block wrappers and discards any conversational preamble or
// trailing text around the first complete JSON object or array.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		return isolateJSON(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		return isolateJSON(text)
	}

	return isolateJSON(text)
}

// isolateJSON returns the first complete JSON object or array found in text.
// If no balanced JSON value is present the input is returned unchanged, so
// non-JSON responses still surface in unmarshal errors rather than vanishing.
func isolateJSON(text string) string {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			if obj := extractJSONObject(text[i:]); obj != "" {
				return obj
			}
		case '[':
			if arr := extractJSONArray(text[i:]); arr != "" {
				return arr
			}
		}
	}
	return text
}

// extractJSONObject returns the balanced JSON object at the start of text,
// or "" if text does not begin with one. Braces inside string literals are
// ignored, including escaped quotes.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of text,
// or "" if text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, opening, closing byte) string {
	if len(text) == 0 || text[0] != opening {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Delimiters inside string literals do not affect depth.
		case c == opening:
			depth++
		case c == closing:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
