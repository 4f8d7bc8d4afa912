// Package git provides the read-only repository queries behind the dashboard.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/henri123lemoine/rngit/internal/debug"
)

// ErrNoWorktree is returned by status queries on a bare repository.
var ErrNoWorktree = errors.New("repository has no working tree")

// Source is everything a snapshot needs from a repository.
type Source interface {
	Head() (HeadInfo, error)
	Branches() ([]string, error)
	Status() ([]StatusEntry, error)
}

// Repo is an opened repository. It is held for the whole session.
type Repo struct {
	// Path is the absolute path the repository was opened from.
	Path string

	// Root is the working tree root. Empty for bare repositories.
	Root string

	repo *gogit.Repository
}

// Open opens the repository containing path. An empty path means the
// current directory.
func Open(path string) (*Repo, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	// Bare repositories have no .git entry for detection to find, so the
	// path itself is tried first. Linked worktrees keep their refs in the
	// common dir of the main repository.
	r, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{EnableDotGitCommonDir: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		r, err = gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
			DetectDotGit:          true,
			EnableDotGitCommonDir: true,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %s: %w", abs, err)
	}

	repo := &Repo{Path: abs, repo: r}
	wt, err := r.Worktree()
	switch {
	case err == nil:
		repo.Root = wt.Filesystem.Root()
	case errors.Is(err, gogit.ErrIsBareRepository):
		debug.Log("opened bare repository at %s", abs)
	default:
		return nil, fmt.Errorf("open worktree of %s: %w", abs, err)
	}

	debug.Log("opened repository %s (root %q)", abs, repo.Root)
	return repo, nil
}

// runGitInDir executes a git command in a specific directory.
func runGitInDir(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
