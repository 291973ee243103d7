package verify

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

// HTMLLink is a URL reference found in a built page.
type HTMLLink struct {
	URL       string // Raw attribute value
	Tag       string // a, link, img, script, ...
	Attribute string // href or src
}

var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
	"video":  "src",
	"audio":  "src",
}

// ExtractHTMLLinks returns every href/src reference in an HTML document.
func ExtractHTMLLinks(r io.Reader) ([]HTMLLink, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryContent, "failed to parse HTML").Build()
	}
	var links []HTMLLink
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttrs[n.Data]; ok {
				if v := getAttr(n, attr); v != "" {
					links = append(links, HTMLLink{URL: v, Tag: n.Data, Attribute: attr})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// builtLinks scans the built site for internal references to files that
// were not generated.
type builtLinks struct{}

func (builtLinks) Name() string { return RuleBuiltLinkExists }

func (builtLinks) Check(ctx context.Context, in *Input) ([]Issue, error) {
	root := in.BuiltSiteDir
	if root == "" {
		return nil, nil
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.FileSystemError("built site directory not found").
			WithContext("dir", root).
			Build()
	}
	base := "/"
	if in.Site.Base != "" {
		base = in.Site.Base
	}

	var issues []Issue
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".html" {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		pageURL := "/" + filepath.ToSlash(rel)

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		links, err := ExtractHTMLLinks(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		for _, l := range links {
			target, ok := builtTarget(pageURL, base, l.URL)
			if !ok || builtFileExists(root, target) {
				continue
			}
			issues = append(issues, Issue{
				Rule:     RuleBuiltLinkExists,
				Severity: SeverityError,
				Route:    pageURL,
				Target:   l.URL,
				Message:  fmt.Sprintf("<%s %s> points to a file missing from the built site", l.Tag, l.Attribute),
			})
		}
		return nil
	})
	if err != nil {
		if errors.IsClassified(err) || ctx.Err() != nil {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "scan built site").
			WithContext("dir", root).
			Build()
	}
	return issues, nil
}

// builtTarget maps an href on pageURL to a path inside the built site with
// the site base removed. It returns false for links that leave the site.
func builtTarget(pageURL, base, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	p := u.Path
	if strings.HasPrefix(p, "/") {
		b := strings.TrimSuffix(base, "/")
		if b != "" {
			if p != b && !strings.HasPrefix(p, b+"/") {
				return "", false
			}
			p = strings.TrimPrefix(p, b)
		}
	} else {
		p = path.Join(path.Dir(pageURL), p)
	}
	if p == "" {
		p = "/"
	}
	return p, true
}

// builtFileExists resolves clean URLs the way a static server does: the
// exact file, then "<path>.html", then "<path>/index.html".
func builtFileExists(root, p string) bool {
	candidates := []string{p}
	if strings.HasSuffix(p, "/") {
		candidates = []string{p + "index.html"}
	} else if path.Ext(p) == "" {
		candidates = append(candidates, p+".html", p+"/index.html")
	}
	for _, c := range candidates {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(c, "/"))))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
