// Package validate checks the loaded corpus for broken, missing, or
// orphaned cross-references and reports categorized diagnostics.
//
// The engine never halts on the first problem: the primary use case is a
// session-start check that needs one complete picture, so every category
// runs and all findings are aggregated into a single report.
package validate

// Severity classifies a finding. Errors block automated acceptance;
// warnings are surfaced but non-blocking.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Check categories, in the order they run and render.
const (
	CategoryConstitutionDocs   = "constitution document references"
	CategoryConstitutionAgents = "constitution agent references"
	CategoryDocCrossRefs       = "document cross-references"
	CategoryDocSourceRefs      = "document source references"
	CategoryOrphans            = "orphaned documents"
	CategoryFreshness          = "freshness markers"
)

// Categories lists all check categories in run order.
var Categories = []string{
	CategoryConstitutionDocs,
	CategoryConstitutionAgents,
	CategoryDocCrossRefs,
	CategoryDocSourceRefs,
	CategoryOrphans,
	CategoryFreshness,
}

// Issue is one diagnostic finding. Issues are produced fresh each run and
// never persisted.
type Issue struct {
	Severity Severity
	Category string
	// Source locates the finding, e.g. "CONSTITUTION.md:12" or a
	// document path.
	Source  string
	Message string
}

// Report aggregates the findings of one validation run.
type Report struct {
	Issues []Issue
}

func (r *Report) add(sev Severity, category, source, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Category: category,
		Source:   source,
		Message:  message,
	})
}

// Errors counts error-severity issues.
func (r *Report) Errors() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings counts warning-severity issues.
func (r *Report) Warnings() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// ByCategory returns the issues of one category, in insertion order.
func (r *Report) ByCategory(category string) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Category == category {
			out = append(out, i)
		}
	}
	return out
}

// ExitCode implements the automation contract: 1 if any error-severity
// issue was found, 0 otherwise. Warnings alone do not fail the run.
func (r *Report) ExitCode() int {
	if r.Errors() > 0 {
		return 1
	}
	return 0
}
