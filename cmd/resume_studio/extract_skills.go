package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniyar/resume-studio/internal/observability"
	"github.com/daniyar/resume-studio/internal/skills"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "List the technical skills mentioned in a job posting",
	Long:  "Extract the known technical skills from a job posting supplied as a text file or URL. Useful for checking what the skill-gap analysis will compare against.",
	RunE:  runExtractSkills,
}

var (
	extractJobFile string
	extractJobURL  string
	extractJSON    bool
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractJobFile, "job-file", "j", "", "Path to job description text file")
	extractSkillsCmd.Flags().StringVarP(&extractJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	extractSkillsCmd.Flags().BoolVar(&extractJSON, "json", false, "Output the skill list as JSON")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	jobText, err := loadJobText(cmd.Context(), extractJobFile, extractJobURL)
	if err != nil {
		return err
	}

	extracted := skills.Extract(jobText)

	if extractJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(extracted)
	}

	observability.NewPrinter(os.Stdout).PrintExtractedSkills(extracted)
	return nil
}
