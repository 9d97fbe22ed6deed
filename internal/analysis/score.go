package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Weights for the composite score.
const (
	keywordWeight = 0.50
	formatWeight  = 0.25
	contentWeight = 0.25
)

const (
	topKeywordCandidates = 30
	maxMissingKeywords   = 15
)

// ScoreReport is the result of scoring a resume against a job description.
// All scores are percentages in [0, 100], rounded to one decimal.
type ScoreReport struct {
	OverallScore      float64  `json:"overall_score"`
	KeywordMatchScore float64  `json:"keyword_match_score"`
	FormatScore       float64  `json:"format_score"`
	ContentScore      float64  `json:"content_score"`
	MissingKeywords   []string `json:"missing_keywords"`
	Suggestions       []string `json:"suggestions"`
	DetailedAnalysis  string   `json:"detailed_analysis"`
}

// AnalyzeResumeScore compares a resume's structured data against a job
// description using TF-IDF cosine similarity and returns a composite score
// with missing keywords and improvement suggestions. It never fails:
// malformed fields are treated as absent, and empty input yields the
// documented zero-score report.
func AnalyzeResumeScore(resumeData map[string]any, jobDescription string) *ScoreReport {
	resumeTokens := Tokenize(FlattenResume(resumeData))
	jdTokens := Tokenize(jobDescription)

	if len(resumeTokens) == 0 || len(jdTokens) == 0 {
		return &ScoreReport{
			OverallScore:      0,
			KeywordMatchScore: 0,
			FormatScore:       50,
			ContentScore:      0,
			MissingKeywords:   []string{},
			Suggestions:       []string{"Please provide more details in your resume."},
			DetailedAnalysis:  "Insufficient data to analyze.",
		}
	}

	idf := inverseDocumentFrequency(resumeTokens, jdTokens)
	resumeVec := weightVector(termFrequency(resumeTokens), idf)
	jdVec := weightVector(termFrequency(jdTokens), idf)

	similarity := cosineSimilarity(resumeVec, jdVec)
	keywordScore := round1(similarity * 100)

	missing := missingKeywords(resumeTokens, jdTokens)

	present := 0
	for _, section := range resumeSections {
		if sectionPresent(resumeData, section) {
			present++
		}
	}
	formatScore := round1(float64(present) / float64(len(resumeSections)) * 100)

	contentScore := round1(float64(len(resumeTokens)) / 2)
	if contentScore > 100 {
		contentScore = 100
	}

	overall := round1(keywordScore*keywordWeight + formatScore*formatWeight + contentScore*contentWeight)
	if overall > 100 {
		overall = 100
	}

	suggestions := buildSuggestions(resumeData, keywordScore, formatScore, contentScore, missing)

	return &ScoreReport{
		OverallScore:      overall,
		KeywordMatchScore: keywordScore,
		FormatScore:       formatScore,
		ContentScore:      contentScore,
		MissingKeywords:   missing,
		Suggestions:       suggestions,
		DetailedAnalysis:  detailedAnalysis(overall, keywordScore, formatScore, contentScore, missing, suggestions),
	}
}

// weightVector multiplies term frequencies by IDF weights.
func weightVector(tf, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	for t, f := range tf {
		w, ok := idf[t]
		if !ok {
			w = 1
		}
		vec[t] = f * w
	}
	return vec
}

// missingKeywords picks the most frequent job-description tokens absent from
// the resume. The frequency sort is stable: ties keep first-encountered order.
func missingKeywords(resumeTokens, jdTokens []string) []string {
	type termCount struct {
		term  string
		count int
		first int
	}

	counts := make(map[string]*termCount, len(jdTokens))
	ordered := make([]*termCount, 0, len(jdTokens))
	for i, t := range jdTokens {
		if tc, ok := counts[t]; ok {
			tc.count++
			continue
		}
		tc := &termCount{term: t, count: 1, first: i}
		counts[t] = tc
		ordered = append(ordered, tc)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].first < ordered[j].first
	})
	if len(ordered) > topKeywordCandidates {
		ordered = ordered[:topKeywordCandidates]
	}

	resumeSet := toSet(resumeTokens)
	missing := make([]string, 0, maxMissingKeywords)
	for _, tc := range ordered {
		if resumeSet[tc.term] {
			continue
		}
		missing = append(missing, tc.term)
		if len(missing) == maxMissingKeywords {
			break
		}
	}
	return missing
}

// buildSuggestions evaluates fixed threshold rules independently; every
// applicable rule fires. The positive fallback only applies when none did.
func buildSuggestions(resumeData map[string]any, keywordScore, formatScore, contentScore float64, missing []string) []string {
	var suggestions []string

	if keywordScore < 50 {
		suggestions = append(suggestions, "Add more relevant keywords from the job description to your resume.")
	}
	if len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Consider adding these keywords: %s", strings.Join(firstN(missing, 5), ", ")))
	}
	if formatScore < 70 {
		suggestions = append(suggestions, "Add more sections to your resume (projects, certifications, achievements).")
	}
	if contentScore < 50 {
		suggestions = append(suggestions, "Add more detail and bullet points to your experience and projects.")
	}
	if !sectionPresent(resumeData, "experience") && !sectionPresent(resumeData, "internships") {
		suggestions = append(suggestions, "Add work experience or internships to strengthen your resume.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Great resume! Consider tailoring it further for each specific job application.")
	}
	return suggestions
}

func detailedAnalysis(overall, keyword, format, content float64, missing, suggestions []string) string {
	coverage := "None - good coverage!"
	if len(missing) > 0 {
		coverage = strings.Join(firstN(missing, 10), ", ")
	}

	var sb strings.Builder
	sb.WriteString("Resume Score Analysis\n")
	sb.WriteString(strings.Repeat("=", 40))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Overall Score: %.1f%%\n", overall)
	fmt.Fprintf(&sb, "Keyword Match: %.1f%%\n", keyword)
	fmt.Fprintf(&sb, "Format Score: %.1f%%\n", format)
	fmt.Fprintf(&sb, "Content Depth: %.1f%%\n", content)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Missing Keywords: %s\n", coverage)
	sb.WriteString("\nSuggestions:\n")
	for _, s := range suggestions {
		fmt.Fprintf(&sb, "  - %s\n", s)
	}
	return sb.String()
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
