package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncVerifyRun(OutcomePassed)
	pr.IncVerifyRun(OutcomeFailed)
	pr.IncVerifyRun(OutcomeFailed)
	pr.AddVerifyIssues("sidebar-link-exists", "error", 2)
	pr.AddVerifyIssues("page-link-exists", "warning", 0)
	pr.ObserveVerifyDuration(120 * time.Millisecond)
	pr.ObserveRenderDuration("vitepress", 5*time.Millisecond)
	pr.SetContentPages(71)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.verifyRuns.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.verifyRuns.WithLabelValues("passed")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.verifyIssues.WithLabelValues("sidebar-link-exists", "error")), 0)
	assert.InDelta(t, 71, testutil.ToFloat64(pr.contentPages), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"feguide_verify_runs_total",
		"feguide_verify_issues_total",
		"feguide_verify_duration_seconds",
		"feguide_render_duration_seconds",
		"feguide_content_pages",
	} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).SetContentPages(3)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "feguide_content_pages 3")
}

func TestHTTPHandler_DisabledRegistry(t *testing.T) {
	rec := httptest.NewRecorder()
	HTTPHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "metrics disabled")
}
