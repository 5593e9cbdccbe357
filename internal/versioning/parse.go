// Package versioning parses the "_v<major>.<minor>..." version embedded in
// model-definition filenames and defines the ordering used to pick the latest
// file of a model.
package versioning

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultExtension is the suffix of model-definition files.
const DefaultExtension = ".tsv"

// Matcher recognizes versioned filenames for one extension.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles the filename pattern for ext; an empty ext means
// DefaultExtension.
func NewMatcher(ext string) *Matcher {
	if ext == "" {
		ext = DefaultExtension
	}
	return &Matcher{re: regexp.MustCompile(`_v(\d+(?:\.\d+)*)` + regexp.QuoteMeta(ext) + `$`)}
}

// Parse extracts the version tuple from filename. The name must end with
// "_v" followed by one or more dot separated integers and then the
// extension, with nothing in between. ok is false when no such version is
// present or a component does not fit in an int; malformed names are
// skipped, not fatal.
func (m *Matcher) Parse(filename string) (Tuple, bool) {
	sub := m.re.FindStringSubmatch(filename)
	if sub == nil {
		return nil, false
	}
	parts := strings.Split(sub[1], ".")
	t := make(Tuple, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, false
		}
		t = append(t, n)
	}
	return t, true
}

// Parse is a one-off NewMatcher(ext).Parse(filename).
func Parse(filename, ext string) (Tuple, bool) {
	return NewMatcher(ext).Parse(filename)
}
