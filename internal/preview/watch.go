package preview

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
)

// watcher forwards relevant changes below the content dir, and to the
// site file, to trigger.
type watcher struct {
	fs       *fsnotify.Watcher
	siteFile string
	trigger  func()
}

func newWatcher(contentDir, siteFile string, trigger func()) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create file watcher").Build()
	}
	w := &watcher{fs: fw, trigger: trigger}
	if err := addDirsRecursive(fw, contentDir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	if siteFile != "" {
		// Editors replace files on save, so the parent dir is watched.
		if abs, err := filepath.Abs(siteFile); err == nil {
			w.siteFile = abs
			if err := fw.Add(filepath.Dir(abs)); err != nil {
				slog.Warn("Failed to watch site file", logfields.File(siteFile), logfields.Error(err))
			}
		}
	}
	return w, nil
}

func (w *watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *watcher) handle(ev fsnotify.Event) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if !w.relevant(ev.Name) {
		if ev.Has(fsnotify.Create) {
			if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
				_ = addDirsRecursive(w.fs, ev.Name)
				w.trigger()
			}
		}
		return
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	w.trigger()
}

// relevant reports whether a change to name can affect verification.
// Directory creations are handled by the caller.
func (w *watcher) relevant(name string) bool {
	if w.siteFile != "" {
		if abs, err := filepath.Abs(name); err == nil && abs == w.siteFile {
			return true
		}
	}
	return strings.EqualFold(filepath.Ext(name), ".md")
}

func (w *watcher) close() {
	_ = w.fs.Close()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "content directory not accessible").
			WithContext("dir", root).
			Build()
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnoreEvent filters hidden files and editor leftovers.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "."):
		return true
	case strings.HasSuffix(base, "~"), strings.HasSuffix(base, ".swp"), strings.HasSuffix(base, ".swx"):
		return true
	case strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"):
		return true
	case base == "Thumbs.db":
		return true
	}
	return false
}
