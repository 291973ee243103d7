package verify

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Formatter writes a report for humans or machines.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// TextFormatter formats reports as human-readable text. Quiet hides warnings.
type TextFormatter struct {
	Quiet bool
}

func (f *TextFormatter) Format(w io.Writer, report *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Verification %s\n", report.RunID)
	b.WriteString(strings.Repeat("━", 60) + "\n")

	shown := 0
	for _, is := range report.Issues {
		if f.Quiet && is.Severity != SeverityError {
			continue
		}
		shown++
		icon := "⚠"
		if is.Severity == SeverityError {
			icon = "✗"
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", icon, is.Rule, is.Message)
		if is.Route != "" {
			fmt.Fprintf(&b, "    at:     %s\n", is.Route)
		}
		if is.Target != "" {
			fmt.Fprintf(&b, "    target: %s\n", is.Target)
		}
	}
	if shown > 0 {
		b.WriteString(strings.Repeat("━", 60) + "\n")
	}

	fmt.Fprintf(&b, "%d pages checked in %s\n", report.Pages, report.Duration.Round(time.Millisecond))
	if n := report.ErrorCount(); n > 0 {
		fmt.Fprintf(&b, "  %d error%s\n", n, pluralize(n))
	}
	if n := report.WarningCount(); n > 0 && !f.Quiet {
		fmt.Fprintf(&b, "  %d warning%s\n", n, pluralize(n))
	}
	switch {
	case report.HasErrors():
		b.WriteString("❌ Site configuration has errors.\n")
	case report.HasWarnings() && !f.Quiet:
		b.WriteString("⚠️  Site configuration has warnings.\n")
	default:
		b.WriteString("✨ Site configuration is consistent.\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// JSONFormatter formats reports as indented JSON.
type JSONFormatter struct{}

type jsonReport struct {
	*Report
	DurationMS int64 `json:"duration_ms"`
	Errors     int   `json:"errors"`
	Warnings   int   `json:"warnings"`
}

func (JSONFormatter) Format(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Report:     report,
		DurationMS: report.Duration.Milliseconds(),
		Errors:     report.ErrorCount(),
		Warnings:   report.WarningCount(),
	})
}

// NewFormatter returns the formatter for format ("text" or "json").
func NewFormatter(format string, quiet bool) Formatter {
	if format == "json" {
		return JSONFormatter{}
	}
	return &TextFormatter{Quiet: quiet}
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
