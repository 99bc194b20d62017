// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from an LLM response. It strips
// a Markdown code-fence wrapper when present and discards conversational
// preamble or trailing chatter around the first JSON value. Applying it to
// an already-clean JSON string returns the input unchanged.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Drop a language identifier on the fence line ("json", "javascript", ...).
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if firstLine == "" || (len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[")) {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		if span, ok := balancedJSONSpan(text, 0); ok {
			return span
		}
		return text
	}

	// Preamble before the JSON value: scan for the first brace or bracket
	// and return the balanced span starting there.
	for i := 0; i < len(text); i++ {
		if text[i] == '{' || text[i] == '[' {
			if span, ok := balancedJSONSpan(text, i); ok {
				return span
			}
			break
		}
	}
	return text
}

// balancedJSONSpan returns the substring of text starting at start that
// forms a balanced JSON object or array, honoring string literals and
// escape sequences.
func balancedJSONSpan(text string, start int) (string, bool) {
	open := text[start]
	var close byte
	switch open {
	case '{':
		close = '}'
	case '[':
		close = ']'
	default:
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
