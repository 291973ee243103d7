package verify

import (
	"cmp"
	"slices"
	"time"

	"git.home.luguber.info/inful/feguide/internal/metrics"
)

// Severity indicates whether an issue fails the run.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

func (s Severity) rank() int {
	if s == SeverityError {
		return 0
	}
	return 1
}

// Rule identifiers.
const (
	RuleNavLinkExists        = "nav-link-exists"
	RuleSidebarLinkExists    = "sidebar-link-exists"
	RuleDictionaryPrefix     = "dictionary-prefix"
	RuleDictionaryCollision  = "dictionary-collision"
	RuleSidebarPartition     = "sidebar-partition"
	RuleSearchTranslation    = "search-translation"
	RulePageLinkExists       = "page-link-exists"
	RuleBuiltLinkExists      = "built-link-exists"
	RuleDuplicateSidebarLink = "duplicate-sidebar-link"
)

// Issue is a single finding.
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Route    string   `json:"route,omitempty"`  // Page, section or locale the issue belongs to
	Target   string   `json:"target,omitempty"` // Offending link or key
	Message  string   `json:"message"`
}

// Report is the outcome of one verification run.
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Pages     int           `json:"pages"`
	Issues    []Issue       `json:"issues"`
}

// HasErrors returns true if any error-level issues exist.
func (r *Report) HasErrors() bool { return r.ErrorCount() > 0 }

// HasWarnings returns true if any warning-level issues exist.
func (r *Report) HasWarnings() bool { return r.WarningCount() > 0 }

func (r *Report) ErrorCount() int   { return r.count(SeverityError) }
func (r *Report) WarningCount() int { return r.count(SeverityWarning) }

func (r *Report) count(s Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == s {
			n++
		}
	}
	return n
}

// Counts returns the number of issues per rule.
func (r *Report) Counts() map[string]int {
	out := map[string]int{}
	for _, is := range r.Issues {
		out[is.Rule]++
	}
	return out
}

// Outcome classifies the run for metrics and history.
func (r *Report) Outcome() metrics.OutcomeLabel {
	switch {
	case r.HasErrors():
		return metrics.OutcomeFailed
	case r.HasWarnings():
		return metrics.OutcomeWarnings
	default:
		return metrics.OutcomePassed
	}
}

// Summary is the compact form of a report published to subscribers.
type Summary struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	DurationMS int64          `json:"duration_ms"`
	Pages      int            `json:"pages"`
	Outcome    string         `json:"outcome"`
	Errors     int            `json:"errors"`
	Warnings   int            `json:"warnings"`
	Rules      map[string]int `json:"rules,omitempty"`
}

func (r *Report) Summary() Summary {
	return Summary{
		RunID:      r.RunID,
		StartedAt:  r.StartedAt,
		DurationMS: r.Duration.Milliseconds(),
		Pages:      r.Pages,
		Outcome:    string(r.Outcome()),
		Errors:     r.ErrorCount(),
		Warnings:   r.WarningCount(),
		Rules:      r.Counts(),
	}
}

func sortIssues(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.Severity.rank(), b.Severity.rank()),
			cmp.Compare(a.Rule, b.Rule),
			cmp.Compare(a.Route, b.Route),
			cmp.Compare(a.Target, b.Target),
		)
	})
}
