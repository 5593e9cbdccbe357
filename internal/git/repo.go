package git

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/modeldocs/internal/logfields"
)

// Revision describes the checked-out state of a repository.
type Revision struct {
	Branch string // empty on a detached HEAD
	Commit string // full hash
}

// Short returns the abbreviated commit hash.
func (r Revision) Short() string {
	if len(r.Commit) > 7 {
		return r.Commit[:7]
	}
	return r.Commit
}

// FindRoot returns the worktree root of the git repository enclosing start.
// When start is not inside a repository, start itself (made absolute) is
// returned and found is false.
func FindRoot(start string) (root string, found bool, err error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", start, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		slog.Debug("No git repository found, using directory as root", logfields.Root(abs))
		return abs, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("open repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to document.
		return abs, false, nil
	}
	root = wt.Filesystem.Root()
	slog.Debug("Detected repository root", logfields.Root(root))
	return root, true, nil
}

// ReadRevision returns the HEAD revision of the repository at root.
func ReadRevision(root string) (Revision, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return Revision{}, fmt.Errorf("open repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return Revision{}, fmt.Errorf("read HEAD: %w", err)
	}
	rev := Revision{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		rev.Branch = head.Name().Short()
	}
	return rev, nil
}

var githubRemote = regexp.MustCompile(`^(?:https://github\.com/|git@github\.com:|ssh://git@github\.com/)([^/]+)/([^/]+?)(?:\.git)?/?$`)

// SuggestRawBase derives a raw.githubusercontent.com base URL from the
// origin remote and the checked-out branch. ok is false for other hosts,
// missing remotes and detached heads.
func SuggestRawBase(root string) (string, bool) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", false
	}
	remote, err := repo.Remote("origin")
	if err != nil || len(remote.Config().URLs) == 0 {
		return "", false
	}
	rev, err := ReadRevision(root)
	if err != nil || rev.Branch == "" {
		return "", false
	}
	return RawBaseFromRemote(remote.Config().URLs[0], rev.Branch)
}

// RawBaseFromRemote maps a GitHub remote URL and branch to the raw-content base.
func RawBaseFromRemote(remoteURL, branch string) (string, bool) {
	m := githubRemote.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if m == nil || branch == "" {
		return "", false
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s", m[1], m[2], branch), true
}
