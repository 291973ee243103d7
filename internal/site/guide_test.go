package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide_VariablesAndScopePage(t *testing.T) {
	cfg := Guide()

	sec, ok := cfg.SectionFor("/base/es6/variables-and-scope")
	require.True(t, ok)
	assert.Equal(t, "/base/", sec.Prefix)

	entry, ok := cfg.ActiveLink("/base/es6/variables-and-scope")
	require.True(t, ok)
	assert.Equal(t, "变量声明与作用域", entry.Link.Text)
	assert.Equal(t, "ES6+", entry.Group)
	assert.Equal(t, "es6i", entry.Link.Base)

	nav, ok := cfg.ActiveNav("/base/es6/variables-and-scope")
	require.True(t, ok)
	assert.Equal(t, "基础", nav.Text)
}

func TestGuide_FreshValues(t *testing.T) {
	a, b := Guide(), Guide()
	require.Equal(t, a, b)

	a.Sidebar[0].Groups[0].Items[0].Text = "changed"
	a.Dictionary["es6i"] = "/elsewhere/"
	assert.Equal(t, "语义化标签", b.Sidebar[0].Groups[0].Items[0].Text)
	assert.Equal(t, "/base/es6/", b.Dictionary["es6i"])
}

func TestGuide_SidebarLinksUseTheirDictionaryPrefix(t *testing.T) {
	cfg := Guide()
	for _, ref := range cfg.Links() {
		if ref.Kind != LinkKindSidebar {
			continue
		}
		require.NotEmpty(t, ref.Base, "sidebar link %s has no dictionary key", ref.Link)
		assert.Truef(t, hasPrefix(ref.Link, cfg.Dictionary[ref.Base]),
			"%s does not start with %s", ref.Link, cfg.Dictionary[ref.Base])
	}
}

func TestGuide_SectionKeysDoNotOverlap(t *testing.T) {
	cfg := Guide()
	for _, ref := range cfg.Links() {
		if ref.Kind == LinkKindSidebar {
			assert.Len(t, cfg.MatchingSections(ref.Link), 1, ref.Link)
		}
	}
}

func TestGuide_RequiredSearchStrings(t *testing.T) {
	cfg := Guide()
	for _, key := range []string{
		"button.buttonText",
		"button.buttonAriaLabel",
		"modal.noResultsText",
		"modal.resetButtonTitle",
		"modal.footer.selectText",
		"modal.footer.navigateText",
		"modal.footer.closeText",
	} {
		v, ok := cfg.Search.Lookup("root", key)
		assert.True(t, ok, key)
		assert.NotEmpty(t, v, key)
	}
}

func TestGuide_EveryNavItemHasASection(t *testing.T) {
	cfg := Guide()
	for _, item := range cfg.Nav {
		if item.ActiveMatch == "" {
			continue
		}
		sec, ok := cfg.SectionFor(item.Link)
		require.True(t, ok, item.Link)
		assert.Equal(t, item.ActiveMatch, sec.Prefix)
	}
}
