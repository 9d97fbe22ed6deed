package skills

import "strings"

// Normalize maps a skill name to its canonical form for comparison:
// lowercase, trimmed, with informal aliases resolved ("js" -> "javascript",
// "k8s" -> "kubernetes"). Unknown skills pass through unchanged.
func Normalize(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := aliases[normalized]; ok {
		return canonical
	}
	return normalized
}
