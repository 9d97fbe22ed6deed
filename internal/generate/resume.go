package generate

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/daniyar/resume-studio/internal/llm"
	"github.com/daniyar/resume-studio/internal/prompts"
)

// GenerateResume produces ATS-friendly resume content. With a job
// description the content is optimized toward its keywords.
func (g *Generator) GenerateResume(ctx context.Context, resumeData map[string]any, jobDescription string) *Result {
	if g.client != nil {
		content, err := g.client.GenerateContent(ctx, resumePrompt(resumeData, jobDescription), llm.TierAdvanced)
		if err == nil && strings.TrimSpace(content) != "" {
			return &Result{
				Content:           strings.TrimSpace(content),
				Method:            MethodLLM,
				KeywordsOptimized: true,
			}
		}
		if err != nil {
			log.Printf("resume generation via LLM failed, falling back to rule-based: %v", err)
		}
	}
	return ruleBasedResume(resumeData, jobDescription)
}

func resumePrompt(resumeData map[string]any, jobDescription string) string {
	personal := mapField(resumeData, "personal_info")
	name := stringFieldOr(personal, "name", "Candidate")

	var data strings.Builder
	fmt.Fprintf(&data, "- Education: %v\n", resumeData["education"])
	fmt.Fprintf(&data, "- Skills: %v\n", resumeData["skills"])
	fmt.Fprintf(&data, "- Projects: %v\n", resumeData["projects"])
	fmt.Fprintf(&data, "- Experience: %v\n", resumeData["experience"])
	fmt.Fprintf(&data, "- Internships: %v\n", resumeData["internships"])
	fmt.Fprintf(&data, "- Certifications: %v\n", resumeData["certifications"])
	fmt.Fprintf(&data, "- Achievements: %v\n", resumeData["achievements"])
	fmt.Fprintf(&data, "- Target Role: %s\n", stringFieldOr(resumeData, "target_job_role", "Software Engineer"))

	jobSection := ""
	if jobDescription != "" {
		jobSection = fmt.Sprintf("\nOptimize for this job description:\n%s\n", jobDescription)
	}

	template := prompts.MustTemplate("resume")
	return prompts.Format(template, map[string]string{
		"Name":       name,
		"Data":       data.String(),
		"JobSection": jobSection,
	})
}

const (
	headerRule  = "============================================================"
	sectionRule = "----------------------------------------"
)

func ruleBasedResume(resumeData map[string]any, jobDescription string) *Result {
	personal := mapField(resumeData, "personal_info")
	name := stringFieldOr(personal, "name", "Your Name")

	var lines []string
	lines = append(lines, headerRule)
	lines = append(lines, strings.ToUpper(name))

	var contactParts []string
	for _, key := range []string{"email", "phone", "location", "linkedin", "github"} {
		if v := stringField(personal, key); v != "" {
			contactParts = append(contactParts, v)
		}
	}
	lines = append(lines, strings.Join(contactParts, " | "))
	lines = append(lines, headerRule)

	targetRole := stringFieldOr(resumeData, "target_job_role", "Software Professional")
	topSkills := "various technologies"
	if skills := flatSkills(resumeData); len(skills) > 0 {
		if len(skills) > 5 {
			skills = skills[:5]
		}
		topSkills = strings.Join(skills, ", ")
	}

	lines = append(lines, "\nPROFESSIONAL SUMMARY", sectionRule)
	lines = append(lines, fmt.Sprintf("Results-driven %s with expertise in %s. "+
		"Proven track record of delivering high-quality solutions and contributing to team success. "+
		"Seeking opportunities to leverage technical skills and drive innovation.",
		targetRole, topSkills))

	if education := recordsOf(resumeData, "education"); len(education) > 0 {
		lines = append(lines, "\nEDUCATION", sectionRule)
		for _, edu := range education {
			lines = append(lines, fmt.Sprintf("  %s — %s (%s)",
				stringField(edu, "degree"), stringField(edu, "institution"), stringField(edu, "year")))
			if gpa := stringField(edu, "gpa"); gpa != "" {
				lines = append(lines, fmt.Sprintf("  GPA: %s", gpa))
			}
		}
	}

	if skillGroups := recordsOf(resumeData, "skills"); len(skillGroups) > 0 {
		lines = append(lines, "\nTECHNICAL SKILLS", sectionRule)
		for _, sg := range skillGroups {
			category := stringFieldOr(sg, "category", "General")
			lines = append(lines, fmt.Sprintf("  %s: %s", category, strings.Join(stringSlice(sg["items"]), ", ")))
		}
	}

	if experience := recordsOf(resumeData, "experience"); len(experience) > 0 {
		lines = append(lines, "\nPROFESSIONAL EXPERIENCE", sectionRule)
		for _, exp := range experience {
			lines = append(lines, fmt.Sprintf("  %s — %s (%s)",
				stringField(exp, "role"), stringField(exp, "company"), stringField(exp, "duration")))
			for _, bullet := range stringSlice(exp["bullets"]) {
				lines = append(lines, fmt.Sprintf("    • %s", EnhanceBullet(bullet)))
			}
		}
	}

	if internships := recordsOf(resumeData, "internships"); len(internships) > 0 {
		lines = append(lines, "\nINTERNSHIPS", sectionRule)
		for _, intern := range internships {
			lines = append(lines, fmt.Sprintf("  %s — %s (%s)",
				stringField(intern, "role"), stringField(intern, "company"), stringField(intern, "duration")))
			if desc := stringField(intern, "description"); desc != "" {
				lines = append(lines, fmt.Sprintf("    • %s", EnhanceBullet(desc)))
			}
		}
	}

	if projects := recordsOf(resumeData, "projects"); len(projects) > 0 {
		lines = append(lines, "\nPROJECTS", sectionRule)
		for _, proj := range projects {
			lines = append(lines, fmt.Sprintf("  %s", stringField(proj, "name")))
			if desc := stringField(proj, "description"); desc != "" {
				lines = append(lines, fmt.Sprintf("    • %s", EnhanceBullet(desc)))
			}
			if techs := stringSlice(proj["technologies"]); len(techs) > 0 {
				lines = append(lines, fmt.Sprintf("    Technologies: %s", strings.Join(techs, ", ")))
			}
		}
	}

	if certs := recordsOf(resumeData, "certifications"); len(certs) > 0 {
		lines = append(lines, "\nCERTIFICATIONS", sectionRule)
		for _, cert := range certs {
			lines = append(lines, fmt.Sprintf("  • %s — %s (%s)",
				stringField(cert, "name"), stringField(cert, "issuer"), stringField(cert, "date")))
		}
	}

	if achievements := recordsOf(resumeData, "achievements"); len(achievements) > 0 {
		lines = append(lines, "\nACHIEVEMENTS", sectionRule)
		for _, ach := range achievements {
			lines = append(lines, fmt.Sprintf("  • %s — %s",
				stringField(ach, "title"), stringField(ach, "description")))
		}
	}

	return &Result{
		Content:           strings.Join(lines, "\n"),
		Method:            MethodRuleBased,
		KeywordsOptimized: jobDescription != "",
	}
}

// recordsOf returns the map-shaped entries of a section, skipping anything
// that is not a record.
func recordsOf(data map[string]any, key string) []map[string]any {
	var records []map[string]any
	for _, entry := range sliceField(data, key) {
		if m, ok := entry.(map[string]any); ok {
			records = append(records, m)
		}
	}
	return records
}
