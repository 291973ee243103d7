package content

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/feguide/internal/site"
)

// RouteFor maps a content-relative file path to its clean URL:
// "a/b.md" -> "/a/b", "a/index.md" -> "/a/", "index.md" -> "/".
func RouteFor(rel string) string {
	rel = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(rel, "\\", "/")), "/")
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	return site.NormalizePath(rel)
}

// ResolveLink resolves a Markdown link destination found on the page at
// route. It returns false for external links, same-page anchors and
// non-page schemes.
func ResolveLink(route, dest string) (string, bool) {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "#") || site.IsExternal(dest) {
		return "", false
	}
	if i := strings.Index(dest, ":"); i > 0 && !strings.ContainsAny(dest[:i], "/?#") {
		return "", false // tel:, javascript:, ...
	}
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	if dest == "" {
		return "", false
	}
	if !strings.HasPrefix(dest, "/") {
		dir := route
		if !strings.HasSuffix(dir, "/") {
			dir = path.Dir(dir) + "/"
		}
		trailing := strings.HasSuffix(dest, "/")
		dest = path.Join(dir, dest)
		if trailing && dest != "/" {
			dest += "/"
		}
	}
	return site.NormalizePath(dest), true
}
