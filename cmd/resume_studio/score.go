package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daniyar/resume-studio/internal/analysis"
	"github.com/daniyar/resume-studio/internal/ingest"
	"github.com/daniyar/resume-studio/internal/observability"
	"github.com/daniyar/resume-studio/internal/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long:  "Score a resume JSON file against a job posting supplied as a text file or URL, reporting keyword match, format, and content scores with improvement suggestions.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreJobURL     string
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job-file", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output the full report as JSON")

	scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

// loadResumeData reads and validates a resume JSON file.
func loadResumeData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	if err := schemas.ValidateResumeData(data); err != nil {
		return nil, fmt.Errorf("resume data is invalid: %w", err)
	}
	return data, nil
}

// loadJobText resolves the job posting text from a file or a URL.
// Exactly one source must be provided.
func loadJobText(ctx context.Context, jobFile, jobURL string) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job-file or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		raw, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		text := strings.TrimSpace(string(raw))
		if text == "" {
			return "", fmt.Errorf("job description file is empty")
		}
		return text, nil
	}

	text, err := ingest.FetchJobText(ctx, jobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

func runScore(cmd *cobra.Command, _ []string) error {
	resumeData, err := loadResumeData(scoreResumeFile)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(cmd.Context(), scoreJobFile, scoreJobURL)
	if err != nil {
		return err
	}

	report := analysis.AnalyzeResumeScore(resumeData, jobText)

	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreReport(report)
	return nil
}
