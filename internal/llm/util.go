package llm

import "strings"

// CleanJSONBlock strips markdown code fences from a model response. Models
// wrap JSON in ```json fences even when the prompt forbids it.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body, tagged := strings.CutPrefix(text, "```json")
	if !tagged {
		body = strings.TrimPrefix(text, "```")
		// A bare fence may still carry a language tag on its first line.
		if nl := strings.Index(body, "\n"); nl >= 0 {
			tag := body[:nl]
			if len(tag) < 20 && !strings.Contains(tag, " ") && !strings.Contains(tag, "{") {
				body = body[nl+1:]
			}
		}
	}

	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
