package skills

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		contains []string
		excludes []string
	}{
		{
			name:     "plain vocabulary match",
			text:     "I know Python and React.js",
			contains: []string{"python", "react"},
		},
		{
			name:     "acronym case",
			text:     "Experience with AWS, GCP and SQL required",
			contains: []string{"aws", "gcp", "sql"},
		},
		{
			name:     "multi-word entries",
			text:     "Background in machine learning and computer vision",
			contains: []string{"machine learning", "computer vision"},
		},
		{
			name:     "punctuation-containing entries",
			text:     "strong C++ and C# fundamentals",
			contains: []string{"c++", "c#"},
		},
		{
			name:     "word boundaries respected",
			text:     "we use javascript heavily",
			contains: []string{"javascript"},
			excludes: []string{"java"},
		},
		{
			name:     "boundary inside larger word",
			text:     "django templates",
			contains: []string{"django"},
			excludes: []string{"go"},
		},
		{
			name:     "acronym embedded in identifier",
			text:     "our myAWS wrapper module",
			excludes: []string{"aws"},
		},
		{
			name:     "no skills",
			text:     "We are a friendly team that values communication",
			excludes: []string{"python", "go"},
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, got, notWant)
			}
		})
	}
}

func TestExtractOutputSortedAndUnique(t *testing.T) {
	got := Extract("Python python PYTHON docker Docker AWS aws")

	assert.True(t, sort.StringsAreSorted(got))
	seen := make(map[string]bool)
	for _, s := range got {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
	assert.Contains(t, got, "python")
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "aws")
}

func TestContainsWholeWord(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		expected bool
	}{
		{"react.js rocks", "react", true},
		{"javascript", "java", false},
		{"plain java here", "java", true},
		{"c++ developer", "c++", true},
		{"scala and go", "go", true},
		{"django", "go", false},
		{"", "go", false},
		{"go", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.haystack+"/"+tt.needle, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsWholeWord(tt.haystack, tt.needle))
		})
	}
}
