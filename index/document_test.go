package index

import (
	"testing"

	"github.com/poiesic/talentsift/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocument(t *testing.T) {
	t.Run("synthesizes the full text blob", func(t *testing.T) {
		record := core.AssessmentRecord{
			Name:            "Java Programming Assessment",
			URL:             "https://assessments.example.com/java",
			Description:     "Evaluates core Java knowledge.",
			Duration:        "40 minutes",
			RemoteSupport:   core.SupportYes,
			AdaptiveSupport: core.SupportNo,
			Category:        core.CategoryTechnical,
		}

		doc := BuildDocument(3, record)
		require.NotNil(t, doc)
		assert.Equal(t, 3, doc.Position)
		assert.Equal(t, record, doc.Record)
		assert.Equal(t,
			"Java Programming Assessment. Evaluates core Java knowledge. "+
				"Type: Technical. Skills: Java Remote: Yes Adaptive: No Duration: 40 minutes.",
			doc.Text)
	})

	t.Run("no skills detected leaves the section empty", func(t *testing.T) {
		record := core.AssessmentRecord{
			Name:            "Numerical Reasoning Test",
			URL:             "https://assessments.example.com/numerical",
			Description:     "Cognitive numerical reasoning.",
			Duration:        "25 minutes",
			RemoteSupport:   core.SupportYes,
			AdaptiveSupport: core.SupportYes,
			Category:        core.CategoryCognitive,
		}

		doc := BuildDocument(0, record)
		assert.Contains(t, doc.Text, "Skills: Remote: Yes")
	})
}

func TestDetectSkillTags(t *testing.T) {
	t.Run("probes name and description", func(t *testing.T) {
		record := core.AssessmentRecord{
			Name:        "Full Stack Screen",
			Description: "Covers JavaScript, HTML, CSS and SQL basics.",
			Category:    core.CategoryTechnical,
		}
		// Substring probing means "JavaScript" also lights up "Java".
		tags := detectSkillTags(&record)
		assert.Equal(t, []string{"Java", "JavaScript", "SQL", "HTML", "CSS"}, tags)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		record := core.AssessmentRecord{
			Name:     "PYTHON challenge",
			Category: core.CategoryTechnical,
		}
		assert.Equal(t, []string{"Python"}, detectSkillTags(&record))
	})

	t.Run("non-technical categories carry no tags", func(t *testing.T) {
		record := core.AssessmentRecord{
			Name:        "Java Aptitude",
			Description: "Mentions Python and SQL.",
			Category:    core.CategoryCognitive,
		}
		assert.Nil(t, detectSkillTags(&record))
	})
}
