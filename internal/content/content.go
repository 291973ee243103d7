// Package content discovers the Markdown pages of the site and derives the
// routes the site framework will serve them under.
package content

import (
	"slices"
	"strings"
	"time"

	"git.home.luguber.info/inful/feguide/internal/site"
)

// Page is one discovered Markdown document.
type Page struct {
	Route       string    // Clean URL, e.g. "/base/es6/promise" or "/network/"
	File        string    // Path relative to the content dir, slash separated
	Title       string    // Front matter title, first H1, or file name
	Layout      string    // Front matter layout ("home", "doc", ...)
	Links       []string  // Internal link targets, resolved to routes
	Fingerprint string    // Content fingerprint (front matter + body)
	LastUpdated time.Time // Last commit touching the file; zero when unknown
}

// Index is the set of pages of one content tree, keyed by route.
type Index struct {
	Dir   string
	pages map[string]*Page
}

// NewIndex builds an Index from pages; later duplicates of a route win.
func NewIndex(dir string, pages ...*Page) *Index {
	ix := &Index{Dir: dir, pages: make(map[string]*Page, len(pages))}
	for _, p := range pages {
		ix.pages[p.Route] = p
	}
	return ix
}

// Has reports whether a page is served at route. A route without trailing
// slash also matches a directory index ("/network" finds "/network/").
func (ix *Index) Has(route string) bool {
	_, ok := ix.Page(route)
	return ok
}

// Page looks up the page for route.
func (ix *Index) Page(route string) (*Page, bool) {
	route = site.NormalizePath(route)
	if p, ok := ix.pages[route]; ok {
		return p, true
	}
	if !strings.HasSuffix(route, "/") {
		p, ok := ix.pages[route+"/"]
		return p, ok
	}
	return nil, false
}

// Routes returns all routes sorted.
func (ix *Index) Routes() []string {
	routes := make([]string, 0, len(ix.pages))
	for r := range ix.pages {
		routes = append(routes, r)
	}
	slices.Sort(routes)
	return routes
}

// Pages returns all pages sorted by route.
func (ix *Index) Pages() []*Page {
	routes := ix.Routes()
	out := make([]*Page, 0, len(routes))
	for _, r := range routes {
		out = append(out, ix.pages[r])
	}
	return out
}

func (ix *Index) Len() int { return len(ix.pages) }
