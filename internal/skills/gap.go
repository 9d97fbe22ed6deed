package skills

import (
	"fmt"
	"math"
	"strings"
)

const (
	maxPrioritySkills  = 5
	maxResourceLines   = 3
	strongMatchPercent = 80
	goodMatchPercent   = 50
)

// GapReport is the result of a skill gap analysis between a job description
// and a user's skill list.
type GapReport struct {
	JobRole         string   `json:"job_role"`
	RequiredSkills  []string `json:"required_skills"`
	UserSkills      []string `json:"user_skills"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage float64  `json:"match_percentage"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeGap extracts required skills from a job description, compares them
// against the user's skills after alias normalization, and reports the match
// percentage with prioritized recommendations. Pure function of its inputs;
// every edge case yields a defined report rather than an error.
func AnalyzeGap(jobDescription string, userSkills []string, jobRole string) *GapReport {
	required := Extract(jobDescription)

	userSet := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		userSet[Normalize(s)] = true
	}

	matching := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if userSet[Normalize(skill)] {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	var matchPercentage float64
	switch {
	case len(required) > 0:
		matchPercentage = math.Round(float64(len(matching))/float64(len(required))*1000) / 10
	case len(userSkills) > 0:
		matchPercentage = 100.0
	default:
		matchPercentage = 0.0
	}

	if jobRole == "" {
		jobRole = "General"
	}

	return &GapReport{
		JobRole:         jobRole,
		RequiredSkills:  required,
		UserSkills:      userSkills,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		MatchPercentage: matchPercentage,
		Recommendations: buildRecommendations(required, missing, matchPercentage),
	}
}

// buildRecommendations assembles advice in fixed order: priority skills to
// learn, resource pointers for the top few, a tier message keyed by match
// percentage, and a note when no skills were detected at all.
func buildRecommendations(required, missing []string, matchPercentage float64) []string {
	var recs []string

	if len(missing) > 0 {
		priority := missing
		if len(priority) > maxPrioritySkills {
			priority = priority[:maxPrioritySkills]
		}
		recs = append(recs, fmt.Sprintf("Focus on learning: %s", strings.Join(priority, ", ")))

		resources := priority
		if len(resources) > maxResourceLines {
			resources = resources[:maxResourceLines]
		}
		for _, skill := range resources {
			recs = append(recs, fmt.Sprintf("Learn %s: try online courses on Coursera, Udemy, or the official documentation", skill))
		}
	}

	switch {
	case matchPercentage >= strongMatchPercent:
		recs = append(recs, "Strong skill match! Focus on showcasing these skills with concrete projects.")
	case matchPercentage >= goodMatchPercent:
		recs = append(recs, "Good foundation! Bridge the gap by working on projects using the missing skills.")
	default:
		recs = append(recs, "Significant skill gap detected. Consider building projects with the required technologies.")
	}

	if len(required) == 0 {
		recs = append(recs, "No specific technical skills were detected in the job description. Try providing a more detailed job description.")
	}

	return recs
}
