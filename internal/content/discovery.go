package content

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/frontmatter"
	"git.home.luguber.info/inful/feguide/internal/logfields"
)

// Options controls which files Discover turns into pages.
type Options struct {
	Dir            string
	Extensions     []string // defaults to [".md"]
	Exclude        []string // directory or file names skipped anywhere in the tree
	GitLastUpdated bool
}

// Discover walks opts.Dir and indexes every page below it.
func Discover(ctx context.Context, opts Options) (*Index, error) {
	info, err := os.Stat(opts.Dir)
	if err != nil || !info.IsDir() {
		return nil, errors.FileSystemError("content directory not found").
			WithContext("dir", opts.Dir).
			Build()
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".md"}
	}

	var dates *GitDates
	if opts.GitLastUpdated {
		if dates, err = OpenGitDates(opts.Dir); err != nil {
			slog.Warn("Git history unavailable, pages will have no last-updated time",
				logfields.Path(opts.Dir), logfields.Error(err))
			dates = nil
		}
	}

	var pages []*Page
	err = filepath.WalkDir(opts.Dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := d.Name()
		if path != opts.Dir && (strings.HasPrefix(name, ".") || slices.Contains(opts.Exclude, name)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !slices.Contains(exts, strings.ToLower(filepath.Ext(name))) {
			return nil
		}

		rel, err := filepath.Rel(opts.Dir, path)
		if err != nil {
			return err
		}
		page, err := loadPage(path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if dates != nil {
			if page.LastUpdated, err = dates.LastUpdated(path); err != nil {
				slog.Debug("No git date for page", logfields.File(page.File), logfields.Error(err))
			}
		}
		slog.Debug("Discovered page", logfields.File(page.File), logfields.Route(page.Route))
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		if errors.IsClassified(err) || ctx.Err() != nil {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "walk content directory").
			WithContext("dir", opts.Dir).
			Build()
	}

	ix := NewIndex(opts.Dir, pages...)
	slog.Info("Content discovered", logfields.Path(opts.Dir), logfields.Pages(ix.Len()))
	return ix, nil
}

func loadPage(path, rel string) (*Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read page").
			WithContext("file", rel).
			Build()
	}
	doc, err := frontmatter.Parse(raw)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryContent, "invalid front matter").
			WithContext("file", rel).
			Build()
	}
	fm, err := frontmatter.Canonical(doc.Fields, mdfp.FingerprintField)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryContent, "serialize front matter").
			WithContext("file", rel).
			Build()
	}

	page := &Page{
		Route:       RouteFor(rel),
		File:        rel,
		Layout:      doc.String("layout"),
		Fingerprint: mdfp.CalculateFingerprintFromParts(fm, string(doc.Body)),
	}

	md := analyze(doc.Body)
	switch {
	case doc.String("title") != "":
		page.Title = doc.String("title")
	case md.Heading != "":
		page.Title = md.Heading
	default:
		page.Title = strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	}
	for _, dest := range md.Links {
		if target, ok := ResolveLink(page.Route, dest); ok {
			page.Links = append(page.Links, target)
		}
	}
	return page, nil
}
