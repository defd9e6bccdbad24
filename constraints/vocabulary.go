package constraints

import (
	"regexp"

	"github.com/poiesic/talentsift/core"
)

// durationPattern matches the recognized duration phrasings. Alternatives
// are tried left to right; the first capture group that matches wins, so a
// query yields at most one duration constraint.
var durationPattern = regexp.MustCompile(
	`(\d+)\s*min|\b(\d+)\s*minutes|\bunder\s*(\d+)|less\s*than\s*(\d+)|` +
		`maximum\s*of\s*(\d+)|maximum\s*(\d+)|max\s*(\d+)|(\d+)\s*mins`)

// adaptiveTerms trigger the adaptive-support requirement.
var adaptiveTerms = []string{"adaptive", "irt", "adaptive testing"}

// techSkills is the fixed technology vocabulary, matched as whole words in
// listed order. Symbols like '#' and '+' count as word characters here so
// "c#" and "c++" match as units.
var techSkills = []string{
	"java", "python", "javascript", "js", "c#", "c++", "typescript",
	"sql", "r", "ruby", "php", "golang", "scala", "swift", "selenium",
	"html", "css", "html5", "css3", "react", "angular", "vue", "qa",
	"testing", "front-end", "database", "agile",
}

var techSkillPatterns = compileSkillPatterns(techSkills)

func compileSkillPatterns(skills []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skills))
	for i, skill := range skills {
		patterns[i] = regexp.MustCompile(
			`(?:^|[^a-z0-9+#])` + regexp.QuoteMeta(skill) + `(?:[^a-z0-9+#]|$)`)
	}
	return patterns
}

// phraseSkills are competency skills detected by substring, normalized to a
// canonical label. Checked in listed order after the technology vocabulary.
var phraseSkills = []struct {
	terms []string
	skill string
}{
	{[]string{"problem solving", "problem-solving"}, "problem-solving"},
	{[]string{"verbal"}, "verbal reasoning"},
	{[]string{"numerical"}, "numerical reasoning"},
	{[]string{"analytical"}, "analytical"},
}

// categoryGroups map keyword groups to assessment categories.
// A query may trigger several groups; all matches are retained in check order.
var categoryGroups = []struct {
	terms    []string
	category core.Category
}{
	{[]string{"programming", "coding", "developer", "engineer", "software"}, core.CategoryTechnical},
	{[]string{"cognitive", "reasoning", "thinking", "problem solving"}, core.CategoryCognitive},
	{[]string{"personality", "behavior", "trait", "character"}, core.CategoryPersonality},
	{[]string{"leadership", "management", "executive"}, core.CategoryLeadership},
	{[]string{"sales", "customer service", "support"}, core.CategoryRoleSpecific},
}

// roleGroups map keyword groups to role labels used for soft re-ranking.
var roleGroups = []struct {
	terms []string
	role  string
}{
	{[]string{"sales"}, "sales"},
	{[]string{"administrative", "admin"}, "administrative"},
	{[]string{"bank", "financial"}, "financial"},
	{[]string{"entry", "entry-level"}, "entry level"},
}
