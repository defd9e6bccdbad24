package index

import (
	"fmt"
	"strings"

	"github.com/poiesic/talentsift/core"
)

// skillTags is the fixed list of technology names probed when synthesizing
// a technical assessment's document text.
var skillTags = []string{"Java", "Python", "JavaScript", "SQL", "HTML", "CSS", "Selenium"}

// detectSkillTags extracts likely skills for a technical assessment by
// probing its name and description for known technology names.
// Non-technical categories carry no skill tags.
func detectSkillTags(record *core.AssessmentRecord) []string {
	if record.Category != core.CategoryTechnical {
		return nil
	}

	name := strings.ToLower(record.Name)
	description := strings.ToLower(record.Description)

	var tags []string
	for _, skill := range skillTags {
		lower := strings.ToLower(skill)
		if strings.Contains(name, lower) || strings.Contains(description, lower) {
			tags = append(tags, skill)
		}
	}
	return tags
}

// BuildDocument synthesizes the indexed document for one catalog record.
// The text blob enriches the raw name and description with the category,
// detected skill tags, and the remote/adaptive/duration annotations so
// queries mentioning those attributes land near the right documents.
func BuildDocument(position int, record core.AssessmentRecord) *core.AssessmentDocument {
	var skills strings.Builder
	for _, tag := range detectSkillTags(&record) {
		skills.WriteString(" ")
		skills.WriteString(tag)
	}

	text := fmt.Sprintf("%s. %s Type: %s. Skills:%s Remote: %s Adaptive: %s Duration: %s.",
		record.Name, record.Description, record.Category, skills.String(),
		record.RemoteSupport, record.AdaptiveSupport, record.Duration)

	return &core.AssessmentDocument{
		Position: position,
		Text:     text,
		Record:   record,
	}
}
