package recommend

import (
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/filtering"
)

// Monitor receives callbacks at each stage of a recommendation run.
// Implementations are used by tests and the offline evaluation harness to
// observe intermediate state without changing the pipeline's behavior.
type Monitor interface {
	// Start is called once with the raw query.
	Start(query string)

	// AfterConstraintExtraction is called with the extracted constraints.
	AfterConstraintExtraction(c core.QueryConstraints)

	// AfterIndexQuery is called with the over-fetched candidate matches,
	// most similar first.
	AfterIndexQuery(matches []*core.DocumentMatch)

	// AfterFiltering is called with the filtered and re-ranked candidates
	// and the per-stage trace.
	AfterFiltering(records []core.AssessmentRecord, trace filtering.Trace)

	// Finish is called once with the final, truncated result.
	Finish(results []core.AssessmentRecord)
}

// noopMonitor is used when no monitor is provided.
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (*noopMonitor) Start(string)                                            {}
func (*noopMonitor) AfterConstraintExtraction(core.QueryConstraints)         {}
func (*noopMonitor) AfterIndexQuery([]*core.DocumentMatch)                   {}
func (*noopMonitor) AfterFiltering([]core.AssessmentRecord, filtering.Trace) {}
func (*noopMonitor) Finish([]core.AssessmentRecord)                          {}
