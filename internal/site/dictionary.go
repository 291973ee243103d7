package site

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

// LocaleDictionary maps a short key such as "es6i" to the path prefix
// shared by a family of pages, e.g. "/base/es6/".
type LocaleDictionary map[string]string

// Expand joins the prefix registered under key with slug.
func (d LocaleDictionary) Expand(key, slug string) (string, error) {
	prefix, ok := d[key]
	if !ok {
		return "", errors.NotFoundError("unknown dictionary key").
			WithContext("key", key).
			WithContext("slug", slug).
			Build()
	}
	return joinPrefix(prefix, slug), nil
}

// MustExpand is Expand for literal site definitions; an unknown key is a
// programming error.
func (d LocaleDictionary) MustExpand(key, slug string) string {
	link, err := d.Expand(key, slug)
	if err != nil {
		panic(err)
	}
	return link
}

// Keys returns the dictionary keys sorted.
func (d LocaleDictionary) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Group builds a sidebar group whose item links are expanded through key.
// items alternates label and slug.
func (d LocaleDictionary) Group(text, key string, items ...string) SidebarGroup {
	if len(items)%2 != 0 {
		panic("site: Group needs label/slug pairs")
	}
	g := SidebarGroup{Text: text, Items: make([]SidebarLink, 0, len(items)/2)}
	for i := 0; i < len(items); i += 2 {
		g.Items = append(g.Items, SidebarLink{
			Text: items[i],
			Link: d.MustExpand(key, items[i+1]),
			Base: key,
		})
	}
	return g
}

func joinPrefix(prefix, slug string) string {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + strings.TrimPrefix(slug, "/")
}
