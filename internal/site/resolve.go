package site

import "strings"

// ActiveEntry identifies the sidebar link highlighted for a page.
type ActiveEntry struct {
	Section    string
	Group      string
	GroupIndex int
	LinkIndex  int
	Link       SidebarLink
}

// LinkKind tells where a LinkRef came from.
type LinkKind string

const (
	LinkKindNav     LinkKind = "nav"
	LinkKindSidebar LinkKind = "sidebar"
)

// LinkRef is one link target declared anywhere in the configuration.
type LinkRef struct {
	Kind    LinkKind
	Section string
	Group   string
	Text    string
	Link    string
	Base    string
}

// SectionFor selects the sidebar section shown for path. When several keys
// match, the longest (most specific) prefix wins.
func (c *Config) SectionFor(path string) (SidebarSection, bool) {
	route := NormalizePath(path)
	var best SidebarSection
	found := false
	for _, sec := range c.Sidebar {
		if !hasPrefix(route, sec.Prefix) {
			continue
		}
		if !found || len(NormalizePrefix(sec.Prefix)) > len(NormalizePrefix(best.Prefix)) {
			best = sec
			found = true
		}
	}
	return best, found
}

// MatchingSections returns every section key whose prefix contains path.
func (c *Config) MatchingSections(path string) []string {
	route := NormalizePath(path)
	var out []string
	for _, sec := range c.Sidebar {
		if hasPrefix(route, sec.Prefix) {
			out = append(out, sec.Prefix)
		}
	}
	return out
}

// ActiveLink finds the sidebar entry whose target is path, searching only
// the section SectionFor selects.
func (c *Config) ActiveLink(path string) (ActiveEntry, bool) {
	sec, ok := c.SectionFor(path)
	if !ok {
		return ActiveEntry{}, false
	}
	route := NormalizePath(path)
	// "/a/page/" also finds a page link "/a/page".
	alt := route
	if route != "/" && strings.HasSuffix(route, "/") {
		alt = strings.TrimSuffix(route, "/")
	}
	for gi, g := range sec.Groups {
		for li, l := range g.Items {
			if target := NormalizePath(l.Link); target == route || target == alt {
				return ActiveEntry{
					Section:    sec.Prefix,
					Group:      g.Text,
					GroupIndex: gi,
					LinkIndex:  li,
					Link:       l,
				}, true
			}
		}
	}
	return ActiveEntry{}, false
}

// ActiveNav returns the first navigation item highlighted for path.
func (c *Config) ActiveNav(path string) (NavItem, bool) {
	route := NormalizePath(path)
	for _, item := range c.Nav {
		if item.ActiveMatch != "" {
			if hasPrefix(route, item.ActiveMatch) {
				return item, true
			}
			continue
		}
		if NormalizePath(item.Link) == route {
			return item, true
		}
	}
	return NavItem{}, false
}

// Links lists every nav and sidebar target in declaration order.
func (c *Config) Links() []LinkRef {
	var refs []LinkRef
	for _, item := range c.Nav {
		refs = append(refs, LinkRef{Kind: LinkKindNav, Text: item.Text, Link: item.Link})
	}
	for _, sec := range c.Sidebar {
		for _, g := range sec.Groups {
			for _, l := range g.Items {
				refs = append(refs, LinkRef{
					Kind:    LinkKindSidebar,
					Section: sec.Prefix,
					Group:   g.Text,
					Text:    l.Text,
					Link:    l.Link,
					Base:    l.Base,
				})
			}
		}
	}
	return refs
}
