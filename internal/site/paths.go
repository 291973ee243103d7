package site

import "strings"

// NormalizePath canonicalizes a route so links, file-derived routes and
// request paths compare equal: query and fragment dropped, leading slash
// added, ".md"/".html" extensions removed and a trailing "index" collapsed
// to its directory. A trailing slash is kept: only directory indexes end in
// "/", and lookups that accept both forms say so.
func NormalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for _, ext := range []string{".md", ".html"} {
		p = strings.TrimSuffix(p, ext)
	}
	if p == "/index" {
		return "/"
	}
	if strings.HasSuffix(p, "/index") {
		p = strings.TrimSuffix(p, "index")
	}
	return p
}

// NormalizePrefix canonicalizes a sidebar key or active-match prefix so it
// always starts and ends with a slash.
func NormalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// IsExternal reports whether link leaves the site.
func IsExternal(link string) bool {
	l := strings.ToLower(link)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") ||
		strings.HasPrefix(l, "mailto:") || strings.HasPrefix(l, "//")
}

// hasPrefix reports whether route lies under prefix.
func hasPrefix(route, prefix string) bool {
	return strings.HasPrefix(route, NormalizePrefix(prefix))
}
