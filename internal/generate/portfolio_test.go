package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePortfolio_Modern(t *testing.T) {
	g := NewGenerator(nil)
	html, err := g.GeneratePortfolio(sampleResumeData(), "modern")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Jane Smith - Portfolio</title>")
	assert.Contains(t, html, `<div class="logo">Jane</div>`)
	assert.Contains(t, html, "Backend Engineer passionate about building innovative solutions")
	assert.Contains(t, html, "linear-gradient(135deg,#667eea,#764ba2)")
	assert.Contains(t, html, `<span class="tag">Go</span>`)
	assert.Contains(t, html, "<h3>Job Tracker</h3>")
	assert.Contains(t, html, `<span class="tech">Go, PostgreSQL</span>`)
	assert.Contains(t, html, "<h3>Software Engineer</h3>")
	assert.Contains(t, html, "<h3>B.S. Computer Science</h3>")
	assert.Contains(t, html, "<p>GPA: 3.8</p>")
	assert.Contains(t, html, `<a href="mailto:jane@example.com">Email</a>`)
	assert.Contains(t, html, `<a href="tel:555-0100">Phone</a>`)
}

func TestGeneratePortfolio_TemplatePalettes(t *testing.T) {
	tests := []struct {
		name     string
		template string
		marker   string
	}{
		{name: "minimal uses dark hero", template: "minimal", marker: "background:#111"},
		{name: "creative uses dark background", template: "creative", marker: "background:#0f172a"},
		{name: "unknown falls back to modern", template: "retro", marker: "linear-gradient(135deg,#667eea,#764ba2)"},
	}

	g := NewGenerator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := g.GeneratePortfolio(sampleResumeData(), tt.template)
			require.NoError(t, err)
			assert.Contains(t, html, tt.marker)
		})
	}
}

func TestGeneratePortfolio_EmptySectionsShowPlaceholders(t *testing.T) {
	g := NewGenerator(nil)
	html, err := g.GeneratePortfolio(map[string]any{}, "modern")
	require.NoError(t, err)

	assert.Contains(t, html, "Add skills to display here")
	assert.Contains(t, html, "Add projects to display here")
	assert.Contains(t, html, "Add experience to display here")
	assert.Contains(t, html, "Add education to display here")
	assert.Contains(t, html, "<h1>Your Name</h1>")
	assert.NotContains(t, html, "mailto:")
}

func TestGeneratePortfolio_EscapesUserContent(t *testing.T) {
	data := map[string]any{
		"personal_info": map[string]any{"name": "<script>alert(1)</script>"},
	}

	g := NewGenerator(nil)
	html, err := g.GeneratePortfolio(data, "modern")
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestGeneratePortfolio_InternshipsJoinTimeline(t *testing.T) {
	data := map[string]any{
		"personal_info": map[string]any{"name": "Sam Lee"},
		"internships": []any{
			map[string]any{"role": "Research Intern", "company": "LabCo", "duration": "Summer 2024"},
		},
	}

	g := NewGenerator(nil)
	html, err := g.GeneratePortfolio(data, "modern")
	require.NoError(t, err)

	assert.Contains(t, html, "<h3>Research Intern</h3>")
	assert.Contains(t, html, `<div class="co">LabCo</div>`)
}
