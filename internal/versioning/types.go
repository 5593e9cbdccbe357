package versioning

import (
	"strconv"
	"strings"
)

// Tuple is a dotted numeric version parsed from a filename, e.g. "_v1.2" -> {1, 2}.
// A Tuple is never mutated after Parse returns it.
type Tuple []int

// String renders the tuple in dotted form ("1.10").
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare orders two tuples component by component.
//
// Tuples of unequal length are not zero padded: when one is a prefix of the
// other, the shorter one sorts first, so (1,2) < (1,2,0).
func Compare(a, b Tuple) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b Tuple) bool { return Compare(a, b) < 0 }
