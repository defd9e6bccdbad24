package evaluation

import "github.com/poiesic/talentsift/core"

// IsRelevant reports whether a record satisfies the hard constraints of a
// labeled query. Soft signals (roles, skills) influence ranking only, so
// they do not affect relevance judgments.
func IsRelevant(record core.AssessmentRecord, c core.QueryConstraints) bool {
	if c.HasMaxDuration {
		minutes, ok := core.ParseDurationMinutes(record.Duration)
		if ok && minutes > c.MaxDuration {
			return false
		}
	}
	if c.RemoteSupport == core.SupportYes && record.RemoteSupport != core.SupportYes {
		return false
	}
	if c.AdaptiveSupport == core.SupportYes && record.AdaptiveSupport != core.SupportYes {
		return false
	}
	if len(c.TestTypes) > 0 {
		found := false
		for _, t := range c.TestTypes {
			if record.Category == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
