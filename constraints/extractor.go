package constraints

import (
	"strconv"
	"strings"

	"github.com/poiesic/talentsift/core"
)

// Extract parses a free-text query into structured constraints using
// deterministic, case-insensitive pattern matching. No learned model is
// involved: for a fixed query string the result is always identical.
// Fields without a match stay zero-valued; nothing is ever set to an
// explicit-absence value.
func Extract(query string) core.QueryConstraints {
	lower := strings.ToLower(query)
	var c core.QueryConstraints

	// Duration ceiling: first matching alternative wins, one constraint max.
	if groups := durationPattern.FindStringSubmatch(lower); groups != nil {
		for _, group := range groups[1:] {
			if group == "" {
				continue
			}
			if minutes, err := strconv.Atoi(group); err == nil {
				c.MaxDuration = minutes
				c.HasMaxDuration = true
			}
			break
		}
	}

	// Remote and adaptive requirements are one-directional: text can demand
	// support but has no phrasing to demand its absence.
	if strings.Contains(lower, "remote") {
		c.RemoteSupport = core.SupportYes
	}
	for _, term := range adaptiveTerms {
		if strings.Contains(lower, term) {
			c.AdaptiveSupport = core.SupportYes
			break
		}
	}

	for i, pattern := range techSkillPatterns {
		if pattern.MatchString(lower) {
			c.Skills = appendUnique(c.Skills, techSkills[i])
		}
	}
	for _, phrase := range phraseSkills {
		for _, term := range phrase.terms {
			if strings.Contains(lower, term) {
				c.Skills = appendUnique(c.Skills, phrase.skill)
				break
			}
		}
	}

	for _, group := range categoryGroups {
		for _, term := range group.terms {
			if strings.Contains(lower, term) {
				c.TestTypes = appendUniqueCategory(c.TestTypes, group.category)
				break
			}
		}
	}

	for _, group := range roleGroups {
		for _, term := range group.terms {
			if strings.Contains(lower, term) {
				c.Roles = appendUnique(c.Roles, group.role)
				break
			}
		}
	}

	return c
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}

func appendUniqueCategory(values []core.Category, value core.Category) []core.Category {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
