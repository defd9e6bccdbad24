package ai

// WarmTerms is the default warm list for the embedding cache: vocabulary
// that shows up in typical hiring queries against the assessment catalog.
var WarmTerms = []string{
	"java developer", "python developer", "javascript developer",
	"software engineer", "data scientist", "leadership",
	"cognitive assessment", "personality assessment",
	"technical", "remote", "adaptive", "problem solving",
	"communication skills", "collaboration", "teamwork",
	"sales", "customer service", "SQL", "database", "QA engineer",
	"testing", "selenium", "automation", "front-end", "CSS", "HTML",
	"administrative", "financial", "bank", "entry level",
}
