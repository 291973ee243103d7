package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyRoute      = "route"
	KeySection    = "section"
	KeyFormat     = "format"
	KeyRunID      = "run_id"
	KeyRule       = "rule"
	KeyIssues     = "issues"
	KeyPages      = "pages"
	KeyDurationMS = "duration_ms"
	KeyPort       = "port"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeySubject    = "subject"
	KeySchedule   = "schedule"
	KeyError      = "error"
)

func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func File(f string) slog.Attr { return slog.String(KeyFile, f) }
func Route(r string) slog.Attr { return slog.String(KeyRoute, r) }
func Section(s string) slog.Attr { return slog.String(KeySection, s) }
func Format(f string) slog.Attr { return slog.String(KeyFormat, f) }
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Rule(r string) slog.Attr { return slog.String(KeyRule, r) }
func Issues(n int) slog.Attr { return slog.Int(KeyIssues, n) }
func Pages(n int) slog.Attr { return slog.Int(KeyPages, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Port(p int) slog.Attr { return slog.Int(KeyPort, p) }
func Method(m string) slog.Attr { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr { return slog.Int(KeyStatus, code) }
func Subject(s string) slog.Attr { return slog.String(KeySubject, s) }
func Schedule(expr string) slog.Attr { return slog.String(KeySchedule, expr) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
