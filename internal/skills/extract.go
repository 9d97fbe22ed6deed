package skills

import (
	"regexp"
	"sort"
	"strings"
)

// acronymPattern matches capitalized skill mentions such as AWS, GCP, or C++
// in original-case text. The word boundaries keep capitalized runs inside
// identifiers like "myAWS" from matching.
var acronymPattern = regexp.MustCompile(`\b[A-Z][A-Za-z+#]+\b`)

// Extract returns the known technical skills mentioned in text, deduplicated
// and sorted ascending. Matching is case-insensitive with word-boundary
// checks, so "react" matches inside "React.js" but "java" does not match
// inside "javascript".
func Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]bool)

	for _, skill := range vocabularyEntries {
		if containsWholeWord(lower, skill) {
			found[skill] = true
		}
	}

	// Second pass over the original-case text catches skills written only in
	// title or acronym case. Overlap with the first pass collapses in the set.
	for _, word := range acronymPattern.FindAllString(text, -1) {
		lowered := strings.ToLower(word)
		if vocabulary[lowered] {
			found[lowered] = true
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// containsWholeWord reports whether needle occurs in haystack delimited by
// word boundaries. Boundaries are checked on the alphanumeric portions only,
// so entries like "c++" and "c#" match as literal substrings.
func containsWholeWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)

		boundaryBefore := idx == 0 || !isAlphanumeric(haystack[idx-1])
		boundaryAfter := end == len(haystack) || !isAlphanumeric(haystack[end])
		if boundaryBefore && boundaryAfter {
			return true
		}
		start = idx + 1
	}
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
