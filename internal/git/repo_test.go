package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	helpers "git.home.luguber.info/inful/modeldocs/internal/testutil/testutils"
)

func TestFindRoot_FromNestedDirectory(t *testing.T) {
	_, _, dir := helpers.SetupTestGitRepo(t)
	nested := filepath.Join(dir, "models", "samples")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	root, found, err := FindRoot(nested)
	require.NoError(t, err)
	require.True(t, found)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFindRoot_OutsideRepository(t *testing.T) {
	dir := t.TempDir()
	root, found, err := FindRoot(dir)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, dir, root)
}

func TestReadRevisionAndSuggestRawBase(t *testing.T) {
	repo, wt, dir := helpers.SetupTestGitRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# x\n"), 0o600))
	_, err := wt.Add("README.md")
	require.NoError(t, err)
	hash, err := wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	rev, err := ReadRevision(dir)
	require.NoError(t, err)
	require.Equal(t, hash.String(), rev.Commit)
	require.Equal(t, "master", rev.Branch)
	require.Len(t, rev.Short(), 7)

	_, ok := SuggestRawBase(dir)
	require.False(t, ok)

	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:national-gallery/models.git"},
	})
	require.NoError(t, err)

	base, ok := SuggestRawBase(dir)
	require.True(t, ok)
	require.Equal(t, "https://raw.githubusercontent.com/national-gallery/models/master", base)
}

func TestRawBaseFromRemote(t *testing.T) {
	tests := []struct {
		remote string
		want   string
		ok     bool
	}{
		{"https://github.com/org/repo.git", "https://raw.githubusercontent.com/org/repo/main", true},
		{"https://github.com/org/repo", "https://raw.githubusercontent.com/org/repo/main", true},
		{"git@github.com:org/repo.git", "https://raw.githubusercontent.com/org/repo/main", true},
		{"ssh://git@github.com/org/repo.git", "https://raw.githubusercontent.com/org/repo/main", true},
		{"https://gitlab.com/org/repo.git", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			got, ok := RawBaseFromRemote(tt.remote, "main")
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
