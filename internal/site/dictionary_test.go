package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

func TestDictionary_Expand(t *testing.T) {
	d := LocaleDictionary{"es6i": "/base/es6/", "bare": "/bare"}

	tests := []struct {
		key, slug, want string
	}{
		{"es6i", "variables-and-scope", "/base/es6/variables-and-scope"},
		{"es6i", "/promise", "/base/es6/promise"},
		{"bare", "page", "/bare/page"},
	}
	for _, tt := range tests {
		got, err := d.Expand(tt.key, tt.slug)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDictionary_UnknownKey(t *testing.T) {
	d := LocaleDictionary{"es6i": "/base/es6/"}

	_, err := d.Expand("es7i", "x")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	assert.Panics(t, func() { d.MustExpand("es7i", "x") })
}

func TestDictionary_Group(t *testing.T) {
	d := LocaleDictionary{"hw": "/handwrite/"}
	g := d.Group("手写代码", "hw", "防抖与节流", "debounce-throttle", "深拷贝", "deep-clone")

	assert.Equal(t, "手写代码", g.Text)
	assert.Equal(t, []SidebarLink{
		{Text: "防抖与节流", Link: "/handwrite/debounce-throttle", Base: "hw"},
		{Text: "深拷贝", Link: "/handwrite/deep-clone", Base: "hw"},
	}, g.Items)

	assert.Panics(t, func() { d.Group("odd", "hw", "only-label") })
}

func TestDictionary_Keys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, LocaleDictionary{"c": "/c/", "a": "/a/", "b": "/b/"}.Keys())
}
