package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "/tmp/docs", Path("/tmp/docs")},
		{"File", KeyFile, "base/es6/variables-and-scope.md", File("base/es6/variables-and-scope.md")},
		{"Route", KeyRoute, "/base/", Route("/base/")},
		{"Section", KeySection, "/browser/", Section("/browser/")},
		{"Format", KeyFormat, "vitepress", Format("vitepress")},
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"Rule", KeyRule, "sidebar-partition", Rule("sidebar-partition")},
		{"Method", KeyMethod, "GET", Method("GET")},
		{"Subject", KeySubject, "feguide.verify", Subject("feguide.verify")},
		{"Schedule", KeySchedule, "*/5 * * * *", Schedule("*/5 * * * *")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if v := Issues(3); v.Key != KeyIssues || v.Value.Int64() != 3 {
		t.Fatalf("Issues attr mismatch: %v", v)
	}
	if v := Pages(12); v.Key != KeyPages {
		t.Fatalf("Pages key mismatch: %s", v.Key)
	}
	if v := Port(4173); v.Key != KeyPort {
		t.Fatalf("Port key mismatch: %s", v.Key)
	}
	if v := Status(404); v.Key != KeyStatus {
		t.Fatalf("Status key mismatch: %s", v.Key)
	}
	if v := DurationMS(1.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
}

func TestErrorHelper(t *testing.T) {
	if attr := Error(nil); attr.Value.String() != "" {
		t.Fatalf("expected empty error string, got %s", attr.Value.String())
	}
	if attr := Error(errors.New("boom")); attr.Value.String() != "boom" {
		t.Fatalf("expected boom, got %s", attr.Value.String())
	}
}
