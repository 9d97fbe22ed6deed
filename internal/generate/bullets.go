package generate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// actionVerbs groups the verbs considered strong openers for resume bullet
// points, by the kind of work they describe.
var actionVerbs = map[string][]string{
	"technical": {"Developed", "Engineered", "Implemented", "Architected", "Designed",
		"Built", "Deployed", "Automated", "Optimized", "Integrated",
		"Programmed", "Configured", "Debugged", "Refactored", "Maintained"},
	"leadership": {"Led", "Directed", "Managed", "Coordinated", "Supervised",
		"Mentored", "Guided", "Spearheaded", "Orchestrated", "Oversaw"},
	"analytical": {"Analyzed", "Evaluated", "Assessed", "Researched", "Investigated",
		"Identified", "Diagnosed", "Measured", "Quantified", "Forecasted"},
	"communication": {"Presented", "Communicated", "Collaborated", "Documented",
		"Published", "Authored", "Facilitated", "Negotiated", "Persuaded"},
	"achievement": {"Achieved", "Delivered", "Exceeded", "Improved", "Increased",
		"Reduced", "Streamlined", "Accelerated", "Transformed", "Pioneered"},
}

var actionVerbSet = map[string]bool{}

func init() {
	for _, verbs := range actionVerbs {
		for _, v := range verbs {
			actionVerbSet[v] = true
		}
	}
}

// EnhanceBullet prefixes a bullet point with an action verb when it does not
// already start with one. The verb is chosen from the bullet's subject
// matter: building software gets "Developed", team work gets "Led", research
// gets "Analyzed", and anything else gets "Achieved".
func EnhanceBullet(bullet string) string {
	bullet = strings.TrimSpace(bullet)
	if bullet == "" {
		return bullet
	}

	fields := strings.Fields(bullet)
	if actionVerbSet[fields[0]] {
		return bullet
	}

	verb := "Achieved"
	lower := strings.ToLower(bullet)
	switch {
	case containsAny(lower, "code", "program", "develop", "build", "software", "app"):
		verb = "Developed"
	case containsAny(lower, "team", "lead", "manage", "group"):
		verb = "Led"
	case containsAny(lower, "research", "study", "analyze", "data"):
		verb = "Analyzed"
	}

	return verb + " " + lowerFirst(bullet)
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
