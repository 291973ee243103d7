package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/feguide/internal/logfields"
	"git.home.luguber.info/inful/feguide/internal/metrics"
	"git.home.luguber.info/inful/feguide/internal/pipeline"
	"git.home.luguber.info/inful/feguide/internal/render"
	"git.home.luguber.info/inful/feguide/internal/site"
	"git.home.luguber.info/inful/feguide/internal/version"
)

// Handler returns the HTTP routes of the preview server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("GET /api/sidebar", s.handleSidebar)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.Handle("GET /metrics", metrics.HTTPHandler(s.registry))
	return logRequests(mux)
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	RunID   string `json:"run_id,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snap, err := s.Snapshot()
	resp := healthResponse{Status: "ok", Version: version.Version}
	if snap != nil {
		resp.RunID = snap.Report.RunID
		resp.Outcome = string(snap.Report.Outcome())
	}
	if err != nil {
		resp.Status = "degraded"
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.requireSnapshot(w)
	if !ok {
		return
	}
	data, err := render.VitePress(snap.Site)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(data)
}

type activeView struct {
	Group string `json:"group"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

type sidebarResponse struct {
	Path    string              `json:"path"`
	Section string              `json:"section"`
	Heading string              `json:"heading,omitempty"`
	Groups  []site.SidebarGroup `json:"groups"`
	Active  *activeView         `json:"active,omitempty"`
	Nav     *site.NavItem       `json:"nav,omitempty"`
	Page    *pageView           `json:"page,omitempty"`
}

type pageView struct {
	Title       string     `json:"title"`
	File        string     `json:"file"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query().Get("path")
	if p == "" {
		writeError(w, http.StatusBadRequest, "missing path query parameter")
		return
	}
	snap, ok := s.requireSnapshot(w)
	if !ok {
		return
	}
	sec, found := snap.Site.SectionFor(p)
	if !found {
		writeError(w, http.StatusNotFound, "no sidebar section covers "+p)
		return
	}

	resp := sidebarResponse{
		Path:    site.NormalizePath(p),
		Section: sec.Prefix,
		Heading: sec.Heading,
		Groups:  sec.Groups,
	}
	if entry, ok := snap.Site.ActiveLink(p); ok {
		resp.Active = &activeView{Group: entry.Group, Text: entry.Link.Text, Link: entry.Link.Link}
	}
	if nav, ok := snap.Site.ActiveNav(p); ok {
		resp.Nav = &nav
	}
	if page, ok := snap.Content.Page(p); ok {
		pv := &pageView{Title: page.Title, File: page.File}
		if !page.LastUpdated.IsZero() {
			t := page.LastUpdated
			pv.LastUpdated = &t
		}
		resp.Page = pv
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.requireSnapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Report)
}

func (s *Server) requireSnapshot(w http.ResponseWriter) (*pipeline.Snapshot, bool) {
	snap, err := s.Snapshot()
	if snap == nil {
		msg := "no verification has completed yet"
		if err != nil {
			msg = err.Error()
		}
		writeError(w, http.StatusServiceUnavailable, msg)
		return nil, false
	}
	return snap, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Warn("Failed to encode response", logfields.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		slog.Debug("HTTP request",
			logfields.Method(r.Method),
			logfields.Path(r.URL.Path),
			logfields.Status(rec.status),
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	})
}
