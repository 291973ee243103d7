// Package metrics provides the observability hooks for verification and
// rendering runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so callers never nil-check:
//
//	v := verify.New(verify.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The preview server is the only place that activates the Prometheus
// implementation and exposes it through HTTPHandler.
package metrics
