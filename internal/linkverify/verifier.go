// Package linkverify checks that relative links in generated markdown point
// at files or folders that exist in the repository snapshot. External URLs
// and pure fragments are not checked.
package linkverify

import (
	"io/fs"
	"log/slog"
	"net/url"
	"path"
	"sort"
	"strings"

	"git.home.luguber.info/inful/modeldocs/internal/logfields"
	"git.home.luguber.info/inful/modeldocs/internal/markdown"
)

// Reasons reported for a broken link.
const (
	ReasonMissing = "target does not exist"
	ReasonEscapes = "target escapes the repository root"
)

// BrokenLink is a relative link whose target could not be resolved.
type BrokenLink struct {
	Document    string // repository-relative path of the linking document
	Destination string // link destination as written
	Target      string // resolved repository-relative path, empty when it escapes
	Reason      string
}

// Verifier resolves links against a repository snapshot. Paths registered
// as pending count as existing so documents can be checked before they are
// written.
type Verifier struct {
	fsys    fs.FS
	pending map[string]struct{}
}

// NewVerifier creates a verifier over fsys. pending lists repository-relative
// paths that will exist once the current run is written.
func NewVerifier(fsys fs.FS, pending ...string) *Verifier {
	v := &Verifier{fsys: fsys, pending: make(map[string]struct{}, len(pending))}
	for _, p := range pending {
		v.pending[path.Clean(p)] = struct{}{}
	}
	return v
}

// VerifyDocument returns the broken relative links of one markdown document,
// ordered by destination.
func (v *Verifier) VerifyDocument(docPath string, content []byte) []BrokenLink {
	var broken []BrokenLink
	seen := make(map[string]struct{})
	for _, l := range markdown.ExtractLinks(content, markdown.Options{Tables: true}) {
		if IsExternal(l.Destination) {
			continue
		}
		if _, dup := seen[l.Destination]; dup {
			continue
		}
		seen[l.Destination] = struct{}{}

		target, ok := Resolve(docPath, l.Destination)
		if !ok {
			broken = append(broken, BrokenLink{Document: docPath, Destination: l.Destination, Reason: ReasonEscapes})
			continue
		}
		if !v.exists(target) {
			broken = append(broken, BrokenLink{Document: docPath, Destination: l.Destination, Target: target, Reason: ReasonMissing})
		}
	}
	sort.Slice(broken, func(i, j int) bool { return broken[i].Destination < broken[j].Destination })
	if len(broken) > 0 {
		slog.Debug("Broken relative links", logfields.Path(docPath), logfields.Count(len(broken)))
	}
	return broken
}

func (v *Verifier) exists(target string) bool {
	if _, ok := v.pending[target]; ok {
		return true
	}
	// A folder that will receive a pending README exists once written.
	for p := range v.pending {
		if strings.HasPrefix(p, target+"/") {
			return true
		}
	}
	_, err := fs.Stat(v.fsys, target)
	return err == nil
}

// IsExternal reports whether a destination is not a repository-relative path:
// anything with a URL scheme, protocol-relative URLs, fragments and empty
// destinations.
func IsExternal(dest string) bool {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "//") {
		return true
	}
	u, err := url.Parse(dest)
	if err != nil {
		// Unparseable destinations are still treated as local paths.
		return false
	}
	return u.Scheme != ""
}

// Resolve turns a destination relative to docPath into a clean
// repository-relative path. Query and fragment are dropped. Leading "/"
// anchors at the repository root. ok is false when the result leaves the root.
func Resolve(docPath, dest string) (string, bool) {
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	if unescaped, err := url.PathUnescape(dest); err == nil {
		dest = unescaped
	}

	var joined string
	if strings.HasPrefix(dest, "/") {
		joined = path.Clean(strings.TrimLeft(dest, "/"))
	} else {
		joined = path.Join(path.Dir(docPath), dest)
	}
	if joined == "" {
		joined = "."
	}
	if joined == ".." || strings.HasPrefix(joined, "../") {
		return "", false
	}
	return joined, true
}
