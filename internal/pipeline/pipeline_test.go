package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/site"
	"git.home.luguber.info/inful/feguide/internal/verify"
)

type recordingPublisher struct {
	reports []*verify.Report
}

func (r *recordingPublisher) Publish(_ context.Context, rep *verify.Report) error {
	r.reports = append(r.reports, rep)
	return nil
}
func (r *recordingPublisher) Close() {}

func repoConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Content.Dir = filepath.Join("..", "..", "docs")
	cfg.Output.Directory = filepath.Join(t.TempDir(), ".vitepress")
	cfg.Verify.HistoryDB = filepath.Join(t.TempDir(), "history.db")
	return cfg
}

func TestPipeline_VerifyRepositoryGuide(t *testing.T) {
	cfg := repoConfig(t)
	pub := &recordingPublisher{}

	p, closeFn, err := Open(cfg, WithPublisher(pub))
	require.NoError(t, err)
	defer closeFn()

	snap, err := p.Verify(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Report.Issues)
	assert.True(t, snap.Content.Has("/base/es6/variables-and-scope"))

	sec, ok := snap.Site.SectionFor("/base/es6/variables-and-scope")
	require.True(t, ok)
	assert.Equal(t, "/base/", sec.Prefix)

	require.Len(t, pub.reports, 1)
	assert.Equal(t, snap.Report.RunID, pub.reports[0].RunID)

	runs, err := p.History().Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, snap.Report.RunID, runs[0].ID)
}

func TestPipeline_SiteFile(t *testing.T) {
	cfg := repoConfig(t)
	cfg.Verify.HistoryDB = ""
	cfg.SiteFile = filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, config.WriteSite(cfg.SiteFile, site.Guide(), false))

	p := New(cfg)
	s, err := p.Site()
	require.NoError(t, err)
	assert.Equal(t, site.Guide().Sidebar, s.Sidebar)
	assert.Nil(t, p.History())
}

func TestPipeline_Render(t *testing.T) {
	cfg := repoConfig(t)
	res, err := New(cfg).Render()
	require.NoError(t, err)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"provider": "local"`)
}

func TestPipeline_MissingContentDir(t *testing.T) {
	cfg := repoConfig(t)
	cfg.Content.Dir = filepath.Join(t.TempDir(), "missing")
	_, err := New(cfg).Verify(context.Background())
	assert.Error(t, err)
}
