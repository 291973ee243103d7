// Package verify checks a site configuration against its content tree: every
// link has a page, dictionary expansion is consistent, sidebar sections
// partition the pages and search translations are complete.
package verify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/feguide/internal/content"
	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
	"git.home.luguber.info/inful/feguide/internal/metrics"
	"git.home.luguber.info/inful/feguide/internal/site"
)

// Input is everything a run looks at.
type Input struct {
	Site               *site.Config
	Content            *content.Index
	RequiredSearchKeys []string
	PartitionExempt    []string // Routes allowed outside every sidebar section
	BuiltSiteDir       string   // Optional built HTML tree
}

// Check inspects the input and reports issues. An error aborts the run.
type Check interface {
	Name() string
	Check(ctx context.Context, in *Input) ([]Issue, error)
}

// DefaultChecks returns every built-in check in run order.
func DefaultChecks() []Check {
	return []Check{
		navLinks{},
		sidebarLinks{},
		duplicateSidebarLinks{},
		dictionary{},
		partition{},
		searchTranslations{},
		pageLinks{},
		builtLinks{},
	}
}

// Verifier runs checks and records their outcome.
type Verifier struct {
	checks   []Check
	recorder metrics.Recorder
	now      func() time.Time
}

type Option func(*Verifier)

// WithRecorder reports run metrics to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(v *Verifier) {
		if r != nil {
			v.recorder = r
		}
	}
}

// WithChecks replaces the default check list.
func WithChecks(checks ...Check) Option {
	return func(v *Verifier) { v.checks = checks }
}

func New(opts ...Option) *Verifier {
	v := &Verifier{checks: DefaultChecks(), recorder: metrics.NoopRecorder{}, now: time.Now}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Run executes all checks against in.
func (v *Verifier) Run(ctx context.Context, in Input) (*Report, error) {
	if in.Site == nil || in.Content == nil {
		return nil, errors.InternalError("verify needs a site configuration and a content index").Build()
	}
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: v.now(),
		Pages:     in.Content.Len(),
		Issues:    []Issue{},
	}
	log := slog.With(logfields.RunID(report.RunID))
	v.recorder.SetContentPages(report.Pages)

	for _, c := range v.checks {
		if err := ctx.Err(); err != nil {
			v.recorder.IncVerifyRun(metrics.OutcomeAborted)
			return nil, err
		}
		issues, err := c.Check(ctx, &in)
		if err != nil {
			v.recorder.IncVerifyRun(metrics.OutcomeAborted)
			if errors.IsClassified(err) || ctx.Err() != nil {
				return nil, err
			}
			return nil, errors.WrapError(err, errors.CategoryRuntime, "verification check failed").
				WithContext("check", c.Name()).
				Build()
		}
		log.Debug("Check finished", logfields.Rule(c.Name()), logfields.Issues(len(issues)))
		report.Issues = append(report.Issues, issues...)
	}
	sortIssues(report.Issues)
	report.Duration = v.now().Sub(report.StartedAt)

	v.recorder.ObserveVerifyDuration(report.Duration)
	v.recorder.IncVerifyRun(report.Outcome())
	type key struct{ rule, severity string }
	perRule := map[key]int{}
	for _, is := range report.Issues {
		perRule[key{is.Rule, string(is.Severity)}]++
	}
	for k, n := range perRule {
		v.recorder.AddVerifyIssues(k.rule, k.severity, n)
	}

	log.Info("Verification finished",
		logfields.Pages(report.Pages),
		logfields.Issues(len(report.Issues)),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}
