package gateway

import "strings"

// extractJSON finds the first complete JSON object in a model response,
// tolerating prose or markdown around it.
func extractJSON(response string) string {
	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}

	// Find matching closing brace
	depth := 0
	for i := start; i < len(response); i++ {
		switch response[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return response[start : i+1]
			}
		}
	}

	return ""
}

// repairJSON returns the best JSON candidate from a raw response: the
// first balanced object if one exists, otherwise the response with any
// markdown code fences stripped.
func repairJSON(response string) string {
	if s := extractJSON(response); s != "" {
		return s
	}
	s := strings.ReplaceAll(response, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
