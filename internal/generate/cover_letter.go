package generate

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/daniyar/resume-studio/internal/llm"
	"github.com/daniyar/resume-studio/internal/prompts"
)

// DefaultTone is used when a cover letter request does not name a tone.
const DefaultTone = "professional"

// toneInstructions maps a tone name to the writing guidance passed to the LLM.
var toneInstructions = map[string]string{
	"formal":       "Use a very formal and respectful tone. Be traditional and courteous.",
	"confident":    "Use a confident and assertive tone. Highlight strengths boldly.",
	"professional": "Use a balanced professional tone. Be polished yet approachable.",
}

// GenerateCoverLetter produces a cover letter personalized for a company and
// role. Unknown tones fall back to the professional tone.
func (g *Generator) GenerateCoverLetter(ctx context.Context, resumeData map[string]any, companyName, jobTitle, jobDescription, tone string) *Result {
	if _, ok := toneInstructions[tone]; !ok {
		tone = DefaultTone
	}

	if g.client != nil {
		prompt := coverLetterPrompt(resumeData, companyName, jobTitle, jobDescription, tone)
		content, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
		if err == nil && strings.TrimSpace(content) != "" {
			return &Result{Content: strings.TrimSpace(content), Method: MethodLLM}
		}
		if err != nil {
			log.Printf("cover letter generation via LLM failed, falling back to rule-based: %v", err)
		}
	}

	return ruleBasedCoverLetter(resumeData, companyName, jobTitle, tone)
}

func coverLetterPrompt(resumeData map[string]any, companyName, jobTitle, jobDescription, tone string) string {
	personal := mapField(resumeData, "personal_info")
	name := stringFieldOr(personal, "name", "Candidate")

	var details strings.Builder
	fmt.Fprintf(&details, "- Skills: %v\n", resumeData["skills"])
	fmt.Fprintf(&details, "- Experience: %v\n", resumeData["experience"])
	fmt.Fprintf(&details, "- Projects: %v\n", resumeData["projects"])
	fmt.Fprintf(&details, "- Education: %v\n", resumeData["education"])

	jobSection := ""
	if jobDescription != "" {
		jobSection = fmt.Sprintf("\nJob Description: %s\n", jobDescription)
	}

	template := prompts.MustTemplate("cover-letter")
	return prompts.Format(template, map[string]string{
		"Name":       name,
		"Company":    companyName,
		"Title":      jobTitle,
		"Details":    details.String(),
		"JobSection": jobSection,
		"Tone":       toneInstructions[tone],
	})
}

func ruleBasedCoverLetter(resumeData map[string]any, companyName, jobTitle, tone string) *Result {
	personal := mapField(resumeData, "personal_info")
	name := stringFieldOr(personal, "name", "Your Name")
	email := stringFieldOr(personal, "email", "your.email@example.com")
	phone := stringField(personal, "phone")

	topSkills := "relevant technical skills"
	if skills := flatSkills(resumeData); len(skills) > 0 {
		if len(skills) > 5 {
			skills = skills[:5]
		}
		topSkills = strings.Join(skills, ", ")
	}

	recentExp := "my academic projects and technical training"
	experience := recordsOf(resumeData, "experience")
	if len(experience) == 0 {
		experience = recordsOf(resumeData, "internships")
	}
	if len(experience) > 0 {
		recentExp = fmt.Sprintf("my experience as %s at %s",
			stringFieldOr(experience[0], "role", "a professional"),
			stringFieldOr(experience[0], "company", "a leading company"))
	}

	eduText := ""
	if education := recordsOf(resumeData, "education"); len(education) > 0 {
		eduText = fmt.Sprintf("%s from %s",
			stringField(education[0], "degree"), stringField(education[0], "institution"))
	}

	var greeting, opening, closing, signOff string
	switch tone {
	case "formal":
		greeting = "Dear Hiring Manager,"
		opening = fmt.Sprintf("I respectfully submit my application for the position of %s at %s.", jobTitle, companyName)
		closing = "I would be deeply grateful for the opportunity to contribute to your esteemed organization."
		signOff = "Yours sincerely,"
	case "confident":
		greeting = "Dear Hiring Team,"
		opening = fmt.Sprintf("I'm excited to apply for the %s role at %s, and I'm confident I'm the right fit.", jobTitle, companyName)
		closing = "I'm eager to bring my skills and passion to your team and make an immediate impact."
		signOff = "Best regards,"
	default:
		greeting = "Dear Hiring Manager,"
		opening = fmt.Sprintf("I am writing to express my interest in the %s position at %s.", jobTitle, companyName)
		closing = "I look forward to the opportunity to discuss how I can contribute to your team's success."
		signOff = "Sincerely,"
	}

	eduOpener := "I have"
	if eduText != "" {
		eduOpener = fmt.Sprintf("Having completed my %s, I have", eduText)
	}

	var sb strings.Builder
	sb.WriteString(name + "\n" + email + "\n")
	if phone != "" {
		sb.WriteString(phone + "\n")
	}
	sb.WriteString("\n" + greeting + "\n\n")
	fmt.Fprintf(&sb, "%s With %s and proficiency in %s, I am well-positioned to contribute meaningfully to your team.\n\n",
		opening, recentExp, topSkills)
	fmt.Fprintf(&sb, "%s developed a strong foundation in the skills required for this role. "+
		"My technical projects have given me hands-on experience in building real-world solutions, "+
		"and I am eager to apply this knowledge in a professional setting at %s.\n\n", eduOpener, companyName)
	fmt.Fprintf(&sb, "Throughout my academic and professional journey, I have demonstrated strong problem-solving abilities, "+
		"attention to detail, and a commitment to delivering high-quality work. "+
		"I am particularly drawn to %s's innovative approach and would welcome the chance to be part of your team.\n\n", companyName)
	sb.WriteString(closing + "\n\n" + signOff + "\n" + name)

	return &Result{Content: sb.String(), Method: MethodRuleBased}
}
