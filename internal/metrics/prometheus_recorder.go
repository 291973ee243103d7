package metrics

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	verifyRuns     *prom.CounterVec
	verifyIssues   *prom.CounterVec
	verifyDuration prom.Histogram
	renderDuration *prom.HistogramVec
	contentPages   prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them with reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		verifyRuns: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "feguide",
			Name:      "verify_runs_total",
			Help:      "Verification runs by outcome",
		}, []string{"outcome"}),
		verifyIssues: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "feguide",
			Name:      "verify_issues_total",
			Help:      "Verification issues by rule and severity",
		}, []string{"rule", "severity"}),
		verifyDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "feguide",
			Name:      "verify_duration_seconds",
			Help:      "Duration of verification runs",
			Buckets:   prom.DefBuckets,
		}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "feguide",
			Name:      "render_duration_seconds",
			Help:      "Duration of site configuration rendering",
			Buckets:   prom.DefBuckets,
		}, []string{"format"}),
		contentPages: prom.NewGauge(prom.GaugeOpts{
			Namespace: "feguide",
			Name:      "content_pages",
			Help:      "Pages found by the last content discovery",
		}),
	}
	reg.MustRegister(pr.verifyRuns, pr.verifyIssues, pr.verifyDuration, pr.renderDuration, pr.contentPages)
	return pr
}

func (p *PrometheusRecorder) IncVerifyRun(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.verifyRuns.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddVerifyIssues(rule, severity string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.verifyIssues.WithLabelValues(rule, severity).Add(float64(n))
}

func (p *PrometheusRecorder) ObserveVerifyDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.verifyDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRenderDuration(format string, d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetContentPages(n int) {
	if p == nil {
		return
	}
	p.contentPages.Set(float64(n))
}

// HTTPHandler serves the metrics registered in reg in the OpenMetrics
// format. A nil registry means metrics are disabled and every request gets
// 404; the process-global registry is never exposed.
func HTTPHandler(reg *prom.Registry) http.Handler {
	if reg == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "metrics disabled (preview.metrics: false)", http.StatusNotFound)
		})
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorLog:          slogErrorLog{},
	})
}

// slogErrorLog routes promhttp gathering errors to slog.
type slogErrorLog struct{}

func (slogErrorLog) Println(v ...any) {
	slog.Warn("Metrics gathering error", slog.String("error", fmt.Sprint(v...)))
}
