package content

import (
	"errors"
	"io"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitDates answers "when was this file last committed" from the repository
// enclosing the content directory.
type GitDates struct {
	repo *git.Repository
	root string
}

// OpenGitDates opens the git repository containing dir.
func OpenGitDates(dir string) (*GitDates, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	return &GitDates{repo: repo, root: wt.Filesystem.Root()}, nil
}

// LastUpdated returns the committer time of the newest commit touching
// path. Uncommitted files yield the zero time.
func (g *GitDates) LastUpdated(path string) (time.Time, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return time.Time{}, err
	}
	rel, err := filepath.Rel(g.root, abs)
	if err != nil {
		return time.Time{}, err
	}
	rel = filepath.ToSlash(rel)

	iter, err := g.repo.Log(&git.LogOptions{FileName: &rel, Order: git.LogOrderCommitterTime})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	defer iter.Close()

	c, err := iter.Next()
	if errors.Is(err, io.EOF) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return c.Committer.When, nil
}
