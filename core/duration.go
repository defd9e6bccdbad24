package core

import (
	"regexp"
	"strconv"
)

var firstIntegerPattern = regexp.MustCompile(`\d+`)

// ParseDurationMinutes extracts the duration in minutes from a free-text
// duration string ("30 minutes", "approx. 45 min"). The first integer token
// wins. Returns ok=false for empty, "Not specified", or unparseable input;
// such records are treated as unconstrained by the duration filter.
func ParseDurationMinutes(duration string) (int, bool) {
	if duration == "" || duration == DurationNotSpecified {
		return 0, false
	}
	match := firstIntegerPattern.FindString(duration)
	if match == "" {
		return 0, false
	}
	minutes, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return minutes, true
}
