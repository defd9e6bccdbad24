package filtering

import (
	"sort"
	"strings"

	"github.com/poiesic/talentsift/core"
)

// StageReport records what one pipeline stage did to the candidate list.
type StageReport struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

// Trace is the per-stage account of a full pipeline run, for logging and
// diagnostics. Soft stages always report zero dropped.
type Trace struct {
	Stages []StageReport
}

// FilterByConstraints prunes and reorders candidates against the extracted
// constraints. Hard filters (duration, remote, adaptive, category) are a
// strict conjunction: every survivor satisfies all present hard constraints.
// Soft stages (roles, then skills) only reorder, never drop; with all-zero
// relevance scores the incoming order is preserved. Candidates arrive in
// semantic-similarity order, which remains the tie-break baseline.
func FilterByConstraints(candidates []core.AssessmentRecord, c core.QueryConstraints) []core.AssessmentRecord {
	filtered, _ := FilterByConstraintsWithTrace(candidates, c)
	return filtered
}

// FilterByConstraintsWithTrace is FilterByConstraints plus the per-stage trace.
func FilterByConstraintsWithTrace(candidates []core.AssessmentRecord, c core.QueryConstraints) ([]core.AssessmentRecord, Trace) {
	filtered := make([]core.AssessmentRecord, len(candidates))
	copy(filtered, candidates)

	var trace Trace
	record := func(name string, initial int, left int) {
		trace.Stages = append(trace.Stages, StageReport{
			Name:    name,
			Initial: initial,
			Dropped: initial - left,
			Left:    left,
		})
	}

	if c.HasMaxDuration {
		initial := len(filtered)
		filtered = filterDuration(filtered, c.MaxDuration)
		record("duration", initial, len(filtered))
	}
	if c.RemoteSupport != "" {
		initial := len(filtered)
		filtered = filterSupport(filtered, c.RemoteSupport, remoteField)
		record("remote", initial, len(filtered))
	}
	if c.AdaptiveSupport != "" {
		initial := len(filtered)
		filtered = filterSupport(filtered, c.AdaptiveSupport, adaptiveField)
		record("adaptive", initial, len(filtered))
	}
	if len(c.TestTypes) > 0 {
		initial := len(filtered)
		filtered = filterCategory(filtered, c.TestTypes)
		record("category", initial, len(filtered))
	}

	if len(c.Roles) > 0 {
		filtered = rerankByKeywords(filtered, c.Roles)
		record("roles", len(filtered), len(filtered))
	}
	if len(c.Skills) > 0 {
		filtered = rerankByKeywords(filtered, c.Skills)
		record("skills", len(filtered), len(filtered))
	}

	return filtered, trace
}

// filterDuration drops candidates whose parsed duration exceeds the ceiling.
// Records with no parseable duration are unconstrained and always kept.
func filterDuration(records []core.AssessmentRecord, maxDuration int) []core.AssessmentRecord {
	kept := records[:0]
	for _, record := range records {
		minutes, ok := core.ParseDurationMinutes(record.Duration)
		if ok && minutes > maxDuration {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

type supportField int

const (
	remoteField supportField = iota
	adaptiveField
)

func filterSupport(records []core.AssessmentRecord, want core.SupportFlag, field supportField) []core.AssessmentRecord {
	kept := records[:0]
	for _, record := range records {
		value := record.RemoteSupport
		if field == adaptiveField {
			value = record.AdaptiveSupport
		}
		if value == want {
			kept = append(kept, record)
		}
	}
	return kept
}

func filterCategory(records []core.AssessmentRecord, wanted []core.Category) []core.AssessmentRecord {
	kept := records[:0]
	for _, record := range records {
		for _, category := range wanted {
			if record.Category == category {
				kept = append(kept, record)
				break
			}
		}
	}
	return kept
}

// rerankByKeywords stable-sorts records by descending keyword relevance.
// Each keyword contributes +1 per field (name, description) it appears in
// as a case-insensitive substring. Ties keep their prior relative order.
func rerankByKeywords(records []core.AssessmentRecord, keywords []string) []core.AssessmentRecord {
	scores := make([]int, len(records))
	for i, record := range records {
		scores[i] = keywordRelevance(&record, keywords)
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	reranked := make([]core.AssessmentRecord, len(records))
	for i, idx := range order {
		reranked[i] = records[idx]
	}
	return reranked
}

func keywordRelevance(record *core.AssessmentRecord, keywords []string) int {
	name := strings.ToLower(record.Name)
	description := strings.ToLower(record.Description)

	relevance := 0
	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		if strings.Contains(name, lower) {
			relevance++
		}
		if strings.Contains(description, lower) {
			relevance++
		}
	}
	return relevance
}
