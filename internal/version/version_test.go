package version

import (
	"strings"
	"testing"
)

func TestBuildInfoInitialized(t *testing.T) {
	if Version == "" || BuildTime == "" || GitCommit == "" {
		t.Fatal("build info variables must never be empty")
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "feguide ") {
		t.Fatalf("unexpected version line %q", s)
	}
	if !strings.Contains(s, Version) {
		t.Fatalf("version line %q does not contain %q", s, Version)
	}
}
