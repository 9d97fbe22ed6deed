package generate

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// DefaultTemplate is used when a portfolio request does not name a template.
const DefaultTemplate = "modern"

// palette holds the color scheme of a portfolio template. Values land inside
// the generated stylesheet, so they are typed as trusted CSS.
type palette struct {
	Background template.CSS
	Text       template.CSS
	Primary    template.CSS
	Card       template.CSS
	Tag        template.CSS
	Nav        template.CSS
	Hero       template.CSS
	HeroText   template.CSS
}

var palettes = map[string]palette{
	"modern": {
		Background: "#f8fafc", Text: "#1e293b", Primary: "#6366f1", Card: "#fff",
		Tag: "#eef2ff", Nav: "rgba(255,255,255,0.9)",
		Hero: "linear-gradient(135deg,#667eea,#764ba2)", HeroText: "#fff",
	},
	"minimal": {
		Background: "#fff", Text: "#333", Primary: "#111", Card: "#fafafa",
		Tag: "#f0f0f0", Nav: "rgba(255,255,255,0.95)",
		Hero: "#111", HeroText: "#fff",
	},
	"creative": {
		Background: "#0f172a", Text: "#e2e8f0", Primary: "#38bdf8", Card: "#1e293b",
		Tag: "#0c4a6e", Nav: "rgba(15,23,42,0.9)",
		Hero: "linear-gradient(135deg,#0ea5e9,#8b5cf6,#ec4899)", HeroText: "#fff",
	},
}

type portfolioSkillGroup struct {
	Category string
	Items    []string
}

type portfolioProject struct {
	Name         string
	Description  string
	Technologies string
}

type portfolioEntry struct {
	Role        string
	Company     string
	Duration    string
	Description string
	Bullets     []string
}

type portfolioEducation struct {
	Degree      string
	Institution string
	Year        string
	GPA         string
}

type portfolioData struct {
	Name        string
	FirstName   string
	Role        string
	Email       string
	Phone       string
	LinkedIn    string
	GitHub      string
	Palette     palette
	SkillGroups []portfolioSkillGroup
	Projects    []portfolioProject
	Experience  []portfolioEntry
	Education   []portfolioEducation
	Year        int
}

var portfolioTemplate = template.Must(template.New("portfolio").Parse(portfolioHTML))

// GeneratePortfolio renders a standalone HTML portfolio site from resume
// data. Unknown template names fall back to the modern template.
func (g *Generator) GeneratePortfolio(resumeData map[string]any, templateName string) (string, error) {
	colors, ok := palettes[templateName]
	if !ok {
		templateName = DefaultTemplate
		colors = palettes[DefaultTemplate]
	}

	data := buildPortfolioData(resumeData, colors)

	var sb strings.Builder
	if err := portfolioTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render portfolio template %q: %w", templateName, err)
	}
	return sb.String(), nil
}

func buildPortfolioData(resumeData map[string]any, colors palette) *portfolioData {
	personal := mapField(resumeData, "personal_info")
	name := stringFieldOr(personal, "name", "Your Name")

	firstName := name
	if fields := strings.Fields(name); len(fields) > 0 {
		firstName = fields[0]
	}

	data := &portfolioData{
		Name:      name,
		FirstName: firstName,
		Role:      stringFieldOr(resumeData, "target_job_role", "Software Developer"),
		Email:     stringField(personal, "email"),
		Phone:     stringField(personal, "phone"),
		LinkedIn:  stringField(personal, "linkedin"),
		GitHub:    stringField(personal, "github"),
		Palette:   colors,
		Year:      time.Now().Year(),
	}

	for _, sg := range recordsOf(resumeData, "skills") {
		data.SkillGroups = append(data.SkillGroups, portfolioSkillGroup{
			Category: stringField(sg, "category"),
			Items:    stringSlice(sg["items"]),
		})
	}

	for _, proj := range recordsOf(resumeData, "projects") {
		data.Projects = append(data.Projects, portfolioProject{
			Name:         stringField(proj, "name"),
			Description:  stringField(proj, "description"),
			Technologies: strings.Join(stringSlice(proj["technologies"]), ", "),
		})
	}

	// Experience and internships share the timeline.
	for _, section := range []string{"experience", "internships"} {
		for _, exp := range recordsOf(resumeData, section) {
			data.Experience = append(data.Experience, portfolioEntry{
				Role:        stringField(exp, "role"),
				Company:     stringField(exp, "company"),
				Duration:    stringField(exp, "duration"),
				Description: stringField(exp, "description"),
				Bullets:     stringSlice(exp["bullets"]),
			})
		}
	}

	for _, edu := range recordsOf(resumeData, "education") {
		data.Education = append(data.Education, portfolioEducation{
			Degree:      stringField(edu, "degree"),
			Institution: stringField(edu, "institution"),
			Year:        stringField(edu, "year"),
			GPA:         stringField(edu, "gpa"),
		})
	}

	return data
}

const portfolioHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8"><meta name="viewport" content="width=device-width,initial-scale=1.0">
<title>{{.Name}} - Portfolio</title>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet">
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:'Inter',sans-serif;background:{{.Palette.Background}};color:{{.Palette.Text}};line-height:1.7}
nav{position:fixed;top:0;width:100%;z-index:100;background:{{.Palette.Nav}};backdrop-filter:blur(10px);padding:1rem 2rem;display:flex;justify-content:space-between;align-items:center;box-shadow:0 2px 20px rgba(0,0,0,.1)}
nav .logo{font-size:1.5rem;font-weight:700;color:{{.Palette.Primary}}}
nav ul{list-style:none;display:flex;gap:2rem}
nav a{text-decoration:none;color:{{.Palette.Text}};font-weight:500;transition:color .3s}
nav a:hover{color:{{.Palette.Primary}}}
.hero{min-height:100vh;display:flex;align-items:center;justify-content:center;text-align:center;background:{{.Palette.Hero}};padding:6rem 2rem}
.hero h1{font-size:3.5rem;font-weight:700;color:{{.Palette.HeroText}};margin-bottom:1rem}
.hero p{font-size:1.3rem;color:{{.Palette.HeroText}};opacity:.85;max-width:600px;margin:0 auto}
.hero .cta{display:inline-block;margin-top:2rem;padding:.8rem 2rem;background:{{.Palette.Primary}};color:#fff;border-radius:8px;text-decoration:none;font-weight:600;transition:transform .3s}
.hero .cta:hover{transform:translateY(-2px)}
section{padding:5rem 2rem;max-width:1100px;margin:0 auto}
section h2{font-size:2.2rem;font-weight:700;margin-bottom:2rem;color:{{.Palette.Primary}};text-align:center}
.skills-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(250px,1fr));gap:1.5rem}
.skill-card{background:{{.Palette.Card}};border-radius:12px;padding:1.5rem;box-shadow:0 4px 15px rgba(0,0,0,.08);transition:transform .3s}
.skill-card:hover{transform:translateY(-5px)}
.skill-card h3{color:{{.Palette.Primary}};margin-bottom:.8rem}
.tags{display:flex;flex-wrap:wrap;gap:.5rem}
.tag{background:{{.Palette.Tag}};color:{{.Palette.Primary}};padding:.3rem .8rem;border-radius:20px;font-size:.85rem;font-weight:500}
.projects-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(320px,1fr));gap:2rem}
.project-card{background:{{.Palette.Card}};border-radius:12px;padding:2rem;box-shadow:0 4px 15px rgba(0,0,0,.08);transition:transform .3s;border-left:4px solid {{.Palette.Primary}}}
.project-card:hover{transform:translateY(-5px)}
.project-card h3{margin-bottom:.5rem}
.project-card p{opacity:.8;margin-bottom:1rem}
.tech{font-size:.85rem;color:{{.Palette.Primary}};font-weight:500}
.tl-item{padding:1.5rem 2rem;margin-bottom:1.5rem;background:{{.Palette.Card}};border-radius:12px;box-shadow:0 4px 15px rgba(0,0,0,.08);border-left:4px solid {{.Palette.Primary}}}
.tl-item h3{color:{{.Palette.Primary}}}
.co{font-weight:600;opacity:.9}
.dur{font-size:.85rem;opacity:.6}
.empty{text-align:center;opacity:.6}
.contact{text-align:center;padding:4rem 2rem;background:{{.Palette.Hero}};color:{{.Palette.HeroText}}}
.contact-links{display:flex;justify-content:center;gap:2rem;margin-top:2rem;flex-wrap:wrap}
.contact-links a{color:{{.Palette.HeroText}};text-decoration:none;padding:.6rem 1.5rem;border:2px solid {{.Palette.HeroText}};border-radius:8px;transition:all .3s}
.contact-links a:hover{background:{{.Palette.HeroText}};color:#333}
footer{text-align:center;padding:2rem;opacity:.6;font-size:.85rem}
@media(max-width:768px){.hero h1{font-size:2.2rem}nav ul{gap:1rem}section{padding:3rem 1rem}}
</style>
</head>
<body>
<nav><div class="logo">{{.FirstName}}</div><ul><li><a href="#about">About</a></li><li><a href="#skills">Skills</a></li><li><a href="#projects">Projects</a></li><li><a href="#experience">Experience</a></li><li><a href="#contact">Contact</a></li></ul></nav>
<section class="hero" id="about"><div><h1>{{.Name}}</h1><p>{{.Role}} passionate about building innovative solutions</p><a href="#contact" class="cta">Get In Touch</a></div></section>
<section id="skills"><h2>Skills</h2><div class="skills-grid">
{{- range .SkillGroups}}
<div class="skill-card"><h3>{{.Category}}</h3><div class="tags">{{range .Items}}<span class="tag">{{.}}</span>{{end}}</div></div>
{{- else}}
<p class="empty">Add skills to display here</p>
{{- end}}
</div></section>
<section id="projects"><h2>Projects</h2><div class="projects-grid">
{{- range .Projects}}
<div class="project-card"><h3>{{.Name}}</h3><p>{{.Description}}</p><span class="tech">{{.Technologies}}</span></div>
{{- else}}
<p class="empty">Add projects to display here</p>
{{- end}}
</div></section>
<section id="experience"><h2>Experience</h2><div class="timeline">
{{- range .Experience}}
<div class="tl-item"><h3>{{.Role}}</h3><div class="co">{{.Company}}</div><div class="dur">{{.Duration}}</div><p>{{.Description}}</p>{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}</div>
{{- else}}
<p class="empty">Add experience to display here</p>
{{- end}}
</div></section>
<section id="education"><h2>Education</h2><div class="timeline">
{{- range .Education}}
<div class="tl-item"><h3>{{.Degree}}</h3><div class="co">{{.Institution}}</div><div class="dur">{{.Year}}</div>{{if .GPA}}<p>GPA: {{.GPA}}</p>{{end}}</div>
{{- else}}
<p class="empty">Add education to display here</p>
{{- end}}
</div></section>
<section class="contact" id="contact"><h2 style="color:inherit">Let's Connect</h2><p>Feel free to reach out!</p><div class="contact-links">
{{- if .Email}}<a href="mailto:{{.Email}}">Email</a>{{end}}
{{- if .LinkedIn}}<a href="{{.LinkedIn}}" target="_blank">LinkedIn</a>{{end}}
{{- if .GitHub}}<a href="{{.GitHub}}" target="_blank">GitHub</a>{{end}}
{{- if .Phone}}<a href="tel:{{.Phone}}">Phone</a>{{end}}
</div></section>
<footer><p>&copy; {{.Year}} {{.Name}}. Built with Resume Studio.</p></footer>
<script>
document.querySelectorAll('a[href^="#"]').forEach(a=>{a.addEventListener('click',function(e){e.preventDefault();document.querySelector(this.getAttribute('href')).scrollIntoView({behavior:'smooth'})});});
</script>
</body></html>`
