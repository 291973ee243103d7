// Package render turns a site configuration into the file a static-site
// generator reads.
package render

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
	"git.home.luguber.info/inful/feguide/internal/metrics"
	"git.home.luguber.info/inful/feguide/internal/site"
)

// Filename returns the file written for format.
func Filename(format config.OutputFormat) string {
	if format == config.FormatHugo {
		return "hugo.yaml"
	}
	return "config.json"
}

// Bytes renders cfg in format without touching the filesystem.
func Bytes(cfg *site.Config, format config.OutputFormat) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatHugo:
		data, err = Hugo(cfg)
	case config.FormatVitePress, "":
		data, err = VitePress(cfg)
	default:
		return nil, errors.RenderError("unsupported output format").WithContext("format", string(format)).Build()
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to encode site configuration").
			WithContext("format", string(format)).
			Fatal().
			Build()
	}
	return data, nil
}

// Result describes a written file.
type Result struct {
	Path     string
	Format   config.OutputFormat
	Bytes    int
	Duration time.Duration
}

// Writer renders site configurations to disk.
type Writer struct {
	recorder metrics.Recorder
}

func NewWriter(recorder metrics.Recorder) *Writer {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Writer{recorder: recorder}
}

// Write renders cfg into out.Directory. With out.Clean set, files left by a
// previous render in any format are removed first.
func (w *Writer) Write(cfg *site.Config, out config.OutputConfig) (*Result, error) {
	start := time.Now()
	data, err := Bytes(cfg, out.Format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(out.Directory, 0o755); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("dir", out.Directory).
			Build()
	}
	if out.Clean {
		for _, f := range []config.OutputFormat{config.FormatVitePress, config.FormatHugo} {
			stale := filepath.Join(out.Directory, Filename(f))
			if err := os.Remove(stale); err != nil && !os.IsNotExist(err) {
				return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to clean previous output").
					WithContext("path", stale).
					Build()
			}
		}
	}

	path := filepath.Join(out.Directory, Filename(out.Format))
	if err := writeFileAtomic(path, data); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to write site configuration").
			WithContext("path", path).
			Build()
	}

	res := &Result{Path: path, Format: out.Format, Bytes: len(data), Duration: time.Since(start)}
	w.recorder.ObserveRenderDuration(string(out.Format), res.Duration)
	slog.Info("Site configuration rendered",
		logfields.Path(path),
		logfields.Format(string(out.Format)),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}

// writeFileAtomic writes through a temp file in the same directory and
// renames it over path so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".feguide-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	defer func() { _ = os.Remove(name) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		return err
	}
	return os.Rename(name, path)
}
