package metrics

import "time"

// OutcomeLabel enumerates verification outcomes for counters.
type OutcomeLabel string

const (
	OutcomePassed   OutcomeLabel = "passed"
	OutcomeWarnings OutcomeLabel = "warnings"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeAborted  OutcomeLabel = "aborted"
)

// Recorder defines observability hooks for verification and rendering.
type Recorder interface {
	IncVerifyRun(outcome OutcomeLabel)
	AddVerifyIssues(rule, severity string, n int)
	ObserveVerifyDuration(d time.Duration)
	ObserveRenderDuration(format string, d time.Duration)
	SetContentPages(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncVerifyRun(OutcomeLabel) {}
func (NoopRecorder) AddVerifyIssues(string, string, int) {}
func (NoopRecorder) ObserveVerifyDuration(time.Duration) {}
func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) SetContentPages(int) {}
