package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daniyar/resume-studio/internal/observability"
	"github.com/daniyar/resume-studio/internal/skills"
)

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap",
	Short: "Analyze the skill gap between a job posting and your skills",
	Long:  "Extract required skills from a job posting supplied as a text file or URL, compare them against your skill list, and report matching skills, missing skills, and learning recommendations.",
	RunE:  runSkillGap,
}

var (
	gapJobFile string
	gapJobURL  string
	gapSkills  string
	gapRole    string
	gapJSON    bool
)

func init() {
	skillGapCmd.Flags().StringVarP(&gapJobFile, "job-file", "j", "", "Path to job description text file")
	skillGapCmd.Flags().StringVarP(&gapJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	skillGapCmd.Flags().StringVarP(&gapSkills, "skills", "s", "", "Comma-separated list of your skills")
	skillGapCmd.Flags().StringVar(&gapRole, "role", "", "Target job role for the report")
	skillGapCmd.Flags().BoolVar(&gapJSON, "json", false, "Output the full report as JSON")

	rootCmd.AddCommand(skillGapCmd)
}

// splitSkills parses a comma-separated skill list, dropping empty entries.
func splitSkills(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func runSkillGap(cmd *cobra.Command, _ []string) error {
	jobText, err := loadJobText(cmd.Context(), gapJobFile, gapJobURL)
	if err != nil {
		return err
	}

	report := skills.AnalyzeGap(jobText, splitSkills(gapSkills), gapRole)

	if gapJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGapReport(report)
	return nil
}
