package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inful/mdfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.md", "---\nlayout: home\ntitle: 首页\n---\n\n# Ignored heading\n")
	writeFile(t, dir, "base/es6/variables-and-scope.md", "# 变量声明与作用域\n\n参见 [闭包](../js/closure.md)。\n")
	writeFile(t, dir, "base/js/closure.md", "no heading here\n")
	writeFile(t, dir, "network/index.md", "# 网络\n")
	writeFile(t, dir, "public/robots.md", "# skipped\n")
	writeFile(t, dir, ".vitepress/theme/README.md", "# hidden\n")
	writeFile(t, dir, "base/css/notes.txt", "not a page")

	ix, err := Discover(context.Background(), Options{Dir: dir, Exclude: []string{"public"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/", "/base/es6/variables-and-scope", "/base/js/closure", "/network/"}, ix.Routes())

	home, ok := ix.Page("/")
	require.True(t, ok)
	assert.Equal(t, "首页", home.Title)
	assert.Equal(t, "home", home.Layout)
	assert.NotEmpty(t, home.Fingerprint)
	assert.True(t, home.LastUpdated.IsZero())

	scope, _ := ix.Page("/base/es6/variables-and-scope")
	assert.Equal(t, "变量声明与作用域", scope.Title)
	assert.Equal(t, "base/es6/variables-and-scope.md", scope.File)
	assert.Equal(t, []string{"/base/js/closure"}, scope.Links)

	closure, _ := ix.Page("/base/js/closure")
	assert.Equal(t, "closure", closure.Title, "falls back to the file name")
}

func TestDiscover_FingerprintIgnoresStoredFingerprint(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writeFile(t, a, "page.md", "---\ntitle: x\n"+mdfp.FingerprintField+": old\n---\nbody\n")
	writeFile(t, b, "page.md", "---\ntitle: x\n---\nbody\n")

	ixA, err := Discover(context.Background(), Options{Dir: a})
	require.NoError(t, err)
	ixB, err := Discover(context.Background(), Options{Dir: b})
	require.NoError(t, err)

	pa, _ := ixA.Page("/page")
	pb, _ := ixB.Page("/page")
	assert.Equal(t, pb.Fingerprint, pa.Fingerprint)
}

func TestDiscover_Errors(t *testing.T) {
	_, err := Discover(context.Background(), Options{Dir: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))

	dir := t.TempDir()
	writeFile(t, dir, "broken.md", "---\ntitle: [unclosed\n---\n")
	_, err = Discover(context.Background(), Options{Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryContent))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Discover(ctx, Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_RepositoryDocs(t *testing.T) {
	ix, err := Discover(context.Background(), Options{Dir: filepath.Join("..", "..", "docs")})
	require.NoError(t, err)

	page, ok := ix.Page("/base/es6/variables-and-scope")
	require.True(t, ok)
	assert.Equal(t, "变量声明与作用域", page.Title)
	assert.Contains(t, page.Links, "/base/js/closure")
}
