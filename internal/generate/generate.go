// Package generate produces resume content, cover letters, and portfolio
// sites from stored resume data. When an LLM client is configured it is
// tried first; on failure or when no client is available, generation falls
// back to deterministic rule-based output.
package generate

import (
	"github.com/daniyar/resume-studio/internal/llm"
)

// Generation methods reported in Result.Method.
const (
	MethodLLM       = "llm"
	MethodRuleBased = "rule_based"
)

// Result holds generated content and how it was produced.
type Result struct {
	Content           string `json:"generated_content"`
	Method            string `json:"method"`
	KeywordsOptimized bool   `json:"keywords_optimized"`
}

// Generator generates content from resume data.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator. A nil client disables the LLM path and
// all generation is rule-based.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}
