package preview

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/pipeline"
	"git.home.luguber.info/inful/feguide/internal/verify"
)

func TestShouldIgnoreEvent(t *testing.T) {
	cases := map[string]bool{
		"docs/base/closure.md": false,
		"docs/.hidden.md":      true,
		"docs/closure.md~":     true,
		"docs/.closure.md.swp": true,
		"docs/closure.md.swx":  true,
		"docs/#closure.md#":    true,
		"docs/Thumbs.db":       true,
		"feguide.site.yaml":    false,
	}
	for path, want := range cases {
		assert.Equal(t, want, shouldIgnoreEvent(path), path)
	}
}

func TestWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	siteFile := filepath.Join(dir, "site.yaml")
	w, err := newWatcher(dir, siteFile, func() {})
	require.NoError(t, err)
	defer w.close()

	assert.True(t, w.relevant(filepath.Join(dir, "a", "page.md")))
	assert.True(t, w.relevant(filepath.Join(dir, "PAGE.MD")))
	assert.True(t, w.relevant(siteFile))
	assert.False(t, w.relevant(filepath.Join(dir, "logo.png")))
}

func TestWatcher_HandleTriggers(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	w, err := newWatcher(dir, "", func() { calls.Add(1) })
	require.NoError(t, err)
	defer w.close()

	w.handle(fsnotify.Event{Name: filepath.Join(dir, "page.md"), Op: fsnotify.Write})
	w.handle(fsnotify.Event{Name: filepath.Join(dir, ".page.md.swp"), Op: fsnotify.Write})
	w.handle(fsnotify.Event{Name: filepath.Join(dir, "image.png"), Op: fsnotify.Create})

	sub := filepath.Join(dir, "network")
	require.NoError(t, os.Mkdir(sub, 0o755))
	w.handle(fsnotify.Event{Name: sub, Op: fsnotify.Create})

	assert.Equal(t, int32(2), calls.Load())
	assert.Contains(t, w.fs.WatchList(), sub)
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := newWatcher(filepath.Join(t.TempDir(), "missing"), "", func() {})
	require.Error(t, err)
}

func TestDebouncedRefresh_Coalesces(t *testing.T) {
	s := newTestServer(t, false)
	trigger, stop := s.debouncedRefresh(t.Context(), 20*time.Millisecond)
	defer stop()

	for range 5 {
		trigger()
	}
	require.Eventually(t, func() bool {
		snap, _ := s.Snapshot()
		return snap != nil
	}, 5*time.Second, 10*time.Millisecond)
}

// blockingPublisher holds Publish open until release is closed.
type blockingPublisher struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingPublisher) Publish(context.Context, *verify.Report) error {
	close(b.started)
	<-b.release
	return nil
}

func (b *blockingPublisher) Close() {}

func TestDebouncedRefresh_StopWaitsForRunningRefresh(t *testing.T) {
	cfg := config.Default()
	cfg.Content.Dir = filepath.Join("..", "..", "docs")
	pub := &blockingPublisher{started: make(chan struct{}), release: make(chan struct{})}
	s := New(pipeline.New(cfg, pipeline.WithPublisher(pub)), nil)

	trigger, stop := s.debouncedRefresh(t.Context(), time.Millisecond)
	trigger()
	select {
	case <-pub.started:
	case <-time.After(5 * time.Second):
		t.Fatal("refresh never started")
	}

	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()
	select {
	case <-stopped:
		t.Fatal("stop returned while a refresh was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(pub.release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not return after the refresh finished")
	}
	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.NotNil(t, snap)

	trigger()
	time.Sleep(20 * time.Millisecond)
	after, _ := s.Snapshot()
	assert.Same(t, snap, after, "trigger after stop is ignored")
}
