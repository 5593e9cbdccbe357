// Package discovery scans a directory snapshot for model folders and their
// versioned model-definition files.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"git.home.luguber.info/inful/modeldocs/internal/logfields"
	"git.home.luguber.info/inful/modeldocs/internal/versioning"
)

// ErrModelsDirUnreadable indicates the models directory exists but could not be listed.
var ErrModelsDirUnreadable = errors.New("models directory unreadable")

// VersionedFile pairs a parsed version with the file it came from.
type VersionedFile struct {
	Version versioning.Tuple
	Path    string // POSIX path relative to the repository root
}

// ModelGroup is one model folder and its versioned files, sorted by path.
type ModelGroup struct {
	Name  string
	Files []VersionedFile
}

// GlobalSet holds the umbrella versioned files living directly in the models directory.
type GlobalSet struct {
	Prefix  string
	Files   []VersionedFile // sorted by path
	Skipped []string        // names carrying the prefix whose version did not parse
}

// Matched reports whether any file carried the global prefix at all.
func (g GlobalSet) Matched() bool { return len(g.Files)+len(g.Skipped) > 0 }

// Scanner discovers versioned files in a directory snapshot.
type Scanner struct {
	fsys    fs.FS
	ext     string
	matcher *versioning.Matcher
}

// NewScanner creates a scanner over fsys, which must be rooted at the repository root.
func NewScanner(fsys fs.FS, ext string) *Scanner {
	if ext == "" {
		ext = versioning.DefaultExtension
	}
	return &Scanner{fsys: fsys, ext: ext, matcher: versioning.NewMatcher(ext)}
}

// DiscoverModels returns every direct child folder of modelsDir holding at
// least one versioned file. A missing models directory yields an empty map.
func (s *Scanner) DiscoverModels(modelsDir string) (map[string]ModelGroup, error) {
	groups := make(map[string]ModelGroup)

	entries, err := s.readDir(modelsDir)
	if err != nil || entries == nil {
		return groups, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := path.Join(modelsDir, entry.Name())
		files, err := s.versionedFiles(dir)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			slog.Debug("Skipping folder without versioned files", logfields.Path(dir))
			continue
		}
		groups[entry.Name()] = ModelGroup{Name: entry.Name(), Files: files}
	}
	return groups, nil
}

// DiscoverGlobal returns the files directly under modelsDir named
// "<prefix>_v<version><ext>".
func (s *Scanner) DiscoverGlobal(modelsDir, prefix string) (GlobalSet, error) {
	set := GlobalSet{Prefix: prefix}

	entries, err := s.readDir(modelsDir)
	if err != nil || entries == nil {
		return set, err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix+"_v") || !strings.HasSuffix(name, s.ext) {
			continue
		}
		v, ok := s.matcher.Parse(name)
		if !ok {
			slog.Debug("Skipping unparseable global file", logfields.Path(name))
			set.Skipped = append(set.Skipped, name)
			continue
		}
		set.Files = append(set.Files, VersionedFile{Version: v, Path: path.Join(modelsDir, name)})
	}
	return set, nil
}

func (s *Scanner) versionedFiles(dir string) ([]VersionedFile, error) {
	entries, err := s.readDir(dir)
	if err != nil {
		return nil, err
	}
	var files []VersionedFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		v, ok := s.matcher.Parse(entry.Name())
		if !ok {
			continue
		}
		files = append(files, VersionedFile{Version: v, Path: path.Join(dir, entry.Name())})
	}
	return files, nil
}

// readDir lists dir sorted by name. A missing directory returns nil, nil.
func (s *Scanner) readDir(dir string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Models directory not found", logfields.Path(dir))
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrModelsDirUnreadable, dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// LatestInGroup returns the file with the greatest version. Equal versions
// resolve to the lexicographically first path. ok is false for an empty group.
func LatestInGroup(group ModelGroup) (VersionedFile, bool) {
	if len(group.Files) == 0 {
		return VersionedFile{}, false
	}
	return SortDescending(group.Files)[0], true
}

// SortDescending returns a copy of files ordered by version, newest first.
// Files with equal versions keep their input order.
func SortDescending(files []VersionedFile) []VersionedFile {
	out := make([]VersionedFile, len(files))
	copy(out, files)
	sort.SliceStable(out, func(i, j int) bool {
		return versioning.Compare(out[i].Version, out[j].Version) > 0
	})
	return out
}

// SortedNames returns the group names in alphabetical order.
func SortedNames(groups map[string]ModelGroup) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
