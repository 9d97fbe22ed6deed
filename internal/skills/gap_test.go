package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeGap(t *testing.T) {
	report := AnalyzeGap("I need AWS and Docker experience", []string{"aws"}, "DevOps")

	assert.Equal(t, "DevOps", report.JobRole)
	assert.Contains(t, report.RequiredSkills, "aws")
	assert.Contains(t, report.RequiredSkills, "docker")
	assert.Equal(t, []string{"aws"}, report.MatchingSkills)
	assert.Equal(t, []string{"docker"}, report.MissingSkills)
	assert.Equal(t, 50.0, report.MatchPercentage)
}

func TestAnalyzeGapAliasNormalization(t *testing.T) {
	// User writes "JS" and "Postgres"; the job description mentions the
	// canonical names.
	report := AnalyzeGap("Looking for javascript and postgresql developers", []string{"JS", "Postgres"}, "")

	assert.Equal(t, "General", report.JobRole)
	assert.ElementsMatch(t, []string{"javascript", "postgresql"}, report.MatchingSkills)
	assert.Empty(t, report.MissingSkills)
	assert.Equal(t, 100.0, report.MatchPercentage)
}

func TestAnalyzeGapEmptyInputs(t *testing.T) {
	t.Run("no job description and no skills", func(t *testing.T) {
		report := AnalyzeGap("", nil, "")

		assert.Empty(t, report.RequiredSkills)
		assert.Equal(t, 0.0, report.MatchPercentage)
		assert.Contains(t, report.Recommendations,
			"No specific technical skills were detected in the job description. Try providing a more detailed job description.")
	})

	t.Run("no extractable skills but user has skills", func(t *testing.T) {
		report := AnalyzeGap("We want a motivated self-starter", []string{"go", "docker"}, "")

		assert.Empty(t, report.RequiredSkills)
		assert.Equal(t, 100.0, report.MatchPercentage)
	})
}

func TestAnalyzeGapRecommendationOrder(t *testing.T) {
	jd := "Requires python, docker, kubernetes, terraform, ansible, jenkins and graphql"
	report := AnalyzeGap(jd, nil, "Platform Engineer")

	require.GreaterOrEqual(t, len(report.Recommendations), 5)

	// First a prioritized learning line covering at most five skills.
	assert.Contains(t, report.Recommendations[0], "Focus on learning:")
	// Then resource lines for the first three missing skills.
	for i := 1; i <= 3; i++ {
		assert.Contains(t, report.Recommendations[i], "Learn ")
	}
	// Then exactly one tier message; 0% match means a significant gap.
	assert.Contains(t, report.Recommendations[4], "Significant skill gap")
}

func TestAnalyzeGapTierMessages(t *testing.T) {
	tests := []struct {
		name       string
		userSkills []string
		wantTier   string
	}{
		{"strong match", []string{"aws", "docker", "kubernetes", "terraform", "python"}, "Strong skill match"},
		{"good foundation", []string{"aws", "docker", "kubernetes"}, "Good foundation"},
		{"significant gap", []string{"aws"}, "Significant skill gap"},
	}

	jd := "Need AWS, Docker, Kubernetes, Terraform and Python"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AnalyzeGap(jd, tt.userSkills, "")
			found := false
			for _, rec := range report.Recommendations {
				if strings.Contains(rec, tt.wantTier) {
					found = true
				}
			}
			assert.True(t, found, "expected a %q recommendation", tt.wantTier)
		})
	}
}
