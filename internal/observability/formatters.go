// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniyar/resume-studio/internal/analysis"
	"github.com/daniyar/resume-studio/internal/skills"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable summary of a resume score.
func (p *Printer) PrintScoreReport(report *analysis.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:        %5.1f%%\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Keyword match:  %5.1f%%\n", report.KeywordMatchScore))
	sb.WriteString(fmt.Sprintf("Format:         %5.1f%%\n", report.FormatScore))
	sb.WriteString(fmt.Sprintf("Content:        %5.1f%%\n", report.ContentScore))

	if len(report.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(report.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingKeywords[i]))
		}
		if len(report.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(report.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			suggestion := report.Suggestions[i]
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if len(report.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("RESUME SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs a human-readable summary of a skill gap analysis.
func (p *Printer) PrintGapReport(report *skills.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:   %s\n", report.JobRole))
	sb.WriteString(fmt.Sprintf("Match:  %.1f%% (%d of %d required skills)\n",
		report.MatchPercentage, len(report.MatchingSkills), len(report.RequiredSkills)))

	if len(report.MatchingSkills) > 0 {
		matching := strings.Join(report.MatchingSkills, ", ")
		if len(matching) > 45 {
			matching = matching[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nHave:    %s\n", matching))
	}

	if len(report.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingSkills[i]))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(report.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := report.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(report.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-3))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtractedSkills outputs the skills detected in a job description.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExtractedSkills(extracted []string) {
	if len(extracted) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO KNOWN SKILLS DETECTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d skills:\n\n", len(extracted)))

	for i, skill := range extracted {
		if i >= maxItemsToShow*2 {
			sb.WriteString(fmt.Sprintf("\n... and %d more", len(extracted)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", skill))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
