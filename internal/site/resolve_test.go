package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedConfig() *Config {
	d := LocaleDictionary{"fw": "/framework/", "vue": "/framework/vue/"}
	return &Config{
		Dictionary: d,
		Nav: []NavItem{
			{Text: "Home", Link: "/"},
			{Text: "Vue", Link: "/framework/vue/reactivity", ActiveMatch: "/framework/vue/"},
			{Text: "Framework", Link: "/framework/overview", ActiveMatch: "/framework/"},
		},
		Sidebar: Sidebar{
			{Prefix: "/framework/", Groups: []SidebarGroup{d.Group("General", "fw", "Overview", "overview")}},
			{Prefix: "/framework/vue/", Groups: []SidebarGroup{d.Group("Vue", "vue", "Reactivity", "reactivity", "Lifecycle", "lifecycle")}},
		},
	}
}

func TestSectionFor_LongestPrefixWins(t *testing.T) {
	cfg := nestedConfig()

	sec, ok := cfg.SectionFor("/framework/vue/lifecycle.md")
	require.True(t, ok)
	assert.Equal(t, "/framework/vue/", sec.Prefix)

	sec, ok = cfg.SectionFor("/framework/overview")
	require.True(t, ok)
	assert.Equal(t, "/framework/", sec.Prefix)

	_, ok = cfg.SectionFor("/")
	assert.False(t, ok)

	assert.Equal(t, []string{"/framework/", "/framework/vue/"}, cfg.MatchingSections("/framework/vue/lifecycle"))
}

func TestActiveLink(t *testing.T) {
	cfg := nestedConfig()

	entry, ok := cfg.ActiveLink("framework/vue/lifecycle.html")
	require.True(t, ok)
	assert.Equal(t, ActiveEntry{
		Section:    "/framework/vue/",
		Group:      "Vue",
		GroupIndex: 0,
		LinkIndex:  1,
		Link:       SidebarLink{Text: "Lifecycle", Link: "/framework/vue/lifecycle", Base: "vue"},
	}, entry)

	_, ok = cfg.ActiveLink("/framework/vue/unknown")
	assert.False(t, ok)
}

func TestActiveLink_TrailingSlash(t *testing.T) {
	entry, ok := Guide().ActiveLink("/base/es6/variables-and-scope/")
	require.True(t, ok)
	assert.Equal(t, "变量声明与作用域", entry.Link.Text)
	assert.Equal(t, "/base/", entry.Section)

	_, ok = Guide().ActiveLink("/base/")
	assert.False(t, ok)
}

func TestActiveNav(t *testing.T) {
	cfg := nestedConfig()

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/", "Home", true},
		{"/framework/vue/router", "Vue", true},
		{"/framework/react/hooks", "Framework", true},
		{"/network/dns", "", false},
	}
	for _, tt := range tests {
		item, ok := cfg.ActiveNav(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, item.Text, tt.path)
	}
}

func TestLinks(t *testing.T) {
	refs := nestedConfig().Links()
	require.Len(t, refs, 6)
	assert.Equal(t, LinkRef{Kind: LinkKindNav, Text: "Home", Link: "/"}, refs[0])
	assert.Equal(t, LinkRef{
		Kind: LinkKindSidebar, Section: "/framework/vue/", Group: "Vue",
		Text: "Lifecycle", Link: "/framework/vue/lifecycle", Base: "vue",
	}, refs[5])
}

func TestSidebarLookup(t *testing.T) {
	sb := nestedConfig().Sidebar
	_, ok := sb.Section("/framework/vue/")
	assert.True(t, ok)
	_, ok = sb.Section("/nope/")
	assert.False(t, ok)
	assert.Equal(t, []string{"/framework/", "/framework/vue/"}, sb.Prefixes())
}
