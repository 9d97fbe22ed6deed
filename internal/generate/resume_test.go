package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/daniyar/resume-studio/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient satisfies llm.Client for generation tests.
type stubClient struct {
	content string
	err     error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.content, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.content, s.err
}

func (s *stubClient) GetModel(_ llm.ModelTier) string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func sampleResumeData() map[string]any {
	return map[string]any{
		"personal_info": map[string]any{
			"name":  "Jane Smith",
			"email": "jane@example.com",
			"phone": "555-0100",
		},
		"target_job_role": "Backend Engineer",
		"skills": []any{
			map[string]any{"category": "Languages", "items": []any{"Go", "Python", "SQL"}},
			map[string]any{"category": "Infrastructure", "items": []any{"Docker", "Kubernetes", "AWS"}},
		},
		"education": []any{
			map[string]any{"degree": "B.S. Computer Science", "institution": "State University", "year": "2023", "gpa": "3.8"},
		},
		"experience": []any{
			map[string]any{
				"role": "Software Engineer", "company": "Acme Corp", "duration": "2023-2025",
				"bullets": []any{"Built the billing service", "Won the internal hackathon"},
			},
		},
		"projects": []any{
			map[string]any{
				"name": "Job Tracker", "description": "Built a job application tracker",
				"technologies": []any{"Go", "PostgreSQL"},
			},
		},
		"certifications": []any{
			map[string]any{"name": "CKA", "issuer": "CNCF", "date": "2024"},
		},
		"achievements": []any{
			map[string]any{"title": "Hackathon Winner", "description": "First place out of 40 teams"},
		},
	}
}

func TestGenerateResume_RuleBased(t *testing.T) {
	g := NewGenerator(nil)
	result := g.GenerateResume(context.Background(), sampleResumeData(), "")

	require.NotNil(t, result)
	assert.Equal(t, MethodRuleBased, result.Method)
	assert.False(t, result.KeywordsOptimized)

	assert.Contains(t, result.Content, "JANE SMITH")
	assert.Contains(t, result.Content, "jane@example.com | 555-0100")
	assert.Contains(t, result.Content, "PROFESSIONAL SUMMARY")
	assert.Contains(t, result.Content, "Results-driven Backend Engineer with expertise in Go, Python, SQL, Docker, Kubernetes.")
	assert.Contains(t, result.Content, "B.S. Computer Science — State University (2023)")
	assert.Contains(t, result.Content, "GPA: 3.8")
	assert.Contains(t, result.Content, "Languages: Go, Python, SQL")
	assert.Contains(t, result.Content, "Software Engineer — Acme Corp (2023-2025)")
	// Bullets are rewritten to open with action verbs.
	assert.Contains(t, result.Content, "• Built the billing service")
	assert.Contains(t, result.Content, "• Achieved won the internal hackathon")
	assert.Contains(t, result.Content, "Technologies: Go, PostgreSQL")
	assert.Contains(t, result.Content, "CKA — CNCF (2024)")
	assert.Contains(t, result.Content, "Hackathon Winner — First place out of 40 teams")
}

func TestGenerateResume_RuleBasedWithJobDescription(t *testing.T) {
	g := NewGenerator(nil)
	result := g.GenerateResume(context.Background(), sampleResumeData(), "Go developer with Kubernetes experience")

	assert.Equal(t, MethodRuleBased, result.Method)
	assert.True(t, result.KeywordsOptimized)
}

func TestGenerateResume_EmptyData(t *testing.T) {
	g := NewGenerator(nil)
	result := g.GenerateResume(context.Background(), map[string]any{}, "")

	require.NotNil(t, result)
	assert.Contains(t, result.Content, "YOUR NAME")
	assert.Contains(t, result.Content, "various technologies")
	assert.NotContains(t, result.Content, "EDUCATION")
	assert.NotContains(t, result.Content, "PROFESSIONAL EXPERIENCE")
}

func TestGenerateResume_SkipsMalformedEntries(t *testing.T) {
	g := NewGenerator(nil)
	data := map[string]any{
		"education": []any{"not a record", map[string]any{"degree": "B.S.", "institution": "U", "year": "2020"}},
	}
	result := g.GenerateResume(context.Background(), data, "")

	assert.Contains(t, result.Content, "B.S. — U (2020)")
}

func TestGenerateResume_LLMPath(t *testing.T) {
	g := NewGenerator(&stubClient{content: "TAILORED RESUME CONTENT"})
	result := g.GenerateResume(context.Background(), sampleResumeData(), "Go developer")

	assert.Equal(t, MethodLLM, result.Method)
	assert.Equal(t, "TAILORED RESUME CONTENT", result.Content)
	assert.True(t, result.KeywordsOptimized)
}

func TestGenerateResume_LLMFailureFallsBack(t *testing.T) {
	g := NewGenerator(&stubClient{err: errors.New("quota exceeded")})
	result := g.GenerateResume(context.Background(), sampleResumeData(), "")

	assert.Equal(t, MethodRuleBased, result.Method)
	assert.Contains(t, result.Content, "JANE SMITH")
}

func TestResumePrompt_IncludesJobDescription(t *testing.T) {
	prompt := resumePrompt(sampleResumeData(), "Looking for Go engineers")

	assert.Contains(t, prompt, "Generate a professional, ATS-friendly resume for Jane Smith.")
	assert.Contains(t, prompt, "Optimize for this job description:\nLooking for Go engineers")
	assert.Contains(t, prompt, "- Target Role: Backend Engineer")
}
