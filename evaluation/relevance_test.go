package evaluation

import (
	"testing"

	"github.com/poiesic/talentsift/core"
	"github.com/stretchr/testify/assert"
)

func TestIsRelevant(t *testing.T) {
	record := core.AssessmentRecord{
		Name:            "Numerical Reasoning Test",
		URL:             "https://assessments.example.com/numerical",
		Duration:        "25 minutes",
		RemoteSupport:   core.SupportYes,
		AdaptiveSupport: core.SupportNo,
		Category:        core.CategoryCognitive,
	}

	t.Run("no constraints means relevant", func(t *testing.T) {
		assert.True(t, IsRelevant(record, core.QueryConstraints{}))
	})

	t.Run("duration ceiling", func(t *testing.T) {
		assert.True(t, IsRelevant(record, core.QueryConstraints{
			MaxDuration: 25, HasMaxDuration: true,
		}))
		assert.False(t, IsRelevant(record, core.QueryConstraints{
			MaxDuration: 20, HasMaxDuration: true,
		}))
	})

	t.Run("unparseable duration passes the ceiling", func(t *testing.T) {
		unspecified := record
		unspecified.Duration = core.DurationNotSpecified
		assert.True(t, IsRelevant(unspecified, core.QueryConstraints{
			MaxDuration: 5, HasMaxDuration: true,
		}))
	})

	t.Run("support requirements", func(t *testing.T) {
		assert.True(t, IsRelevant(record, core.QueryConstraints{
			RemoteSupport: core.SupportYes,
		}))
		assert.False(t, IsRelevant(record, core.QueryConstraints{
			AdaptiveSupport: core.SupportYes,
		}))
	})

	t.Run("category membership", func(t *testing.T) {
		assert.True(t, IsRelevant(record, core.QueryConstraints{
			TestTypes: []core.Category{core.CategoryCognitive, core.CategoryTechnical},
		}))
		assert.False(t, IsRelevant(record, core.QueryConstraints{
			TestTypes: []core.Category{core.CategoryTechnical},
		}))
	})

	t.Run("soft signals are ignored", func(t *testing.T) {
		assert.True(t, IsRelevant(record, core.QueryConstraints{
			Skills: []string{"java"},
			Roles:  []string{"sales"},
		}))
	})
}
