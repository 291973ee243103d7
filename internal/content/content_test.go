package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	ix := NewIndex("docs",
		&Page{Route: "/network/", Title: "网络"},
		&Page{Route: "/base/es6/promise", Title: "Promise"},
		&Page{Route: "/", Title: "首页"},
	)

	assert.Equal(t, 3, ix.Len())
	assert.True(t, ix.Has("/base/es6/promise"))
	assert.True(t, ix.Has("base/es6/promise.md"))
	assert.True(t, ix.Has("/network"), "directory index without trailing slash")
	assert.True(t, ix.Has("/index.html"))
	assert.False(t, ix.Has("/base/es6/"))
	assert.False(t, ix.Has("/base/es6/proxy-reflect"))

	assert.Equal(t, []string{"/", "/base/es6/promise", "/network/"}, ix.Routes())
	pages := ix.Pages()
	assert.Equal(t, "首页", pages[0].Title)
	assert.Equal(t, "网络", pages[2].Title)
}
