// Package templates substitutes generated content into the named marker
// regions of hand-authored markdown templates.
//
// A region is delimited by a pair of HTML comments carrying the same name:
//
//	<!-- BEGIN AUTO: MODEL-LIST -->
//	...generated...
//	<!-- END AUTO: MODEL-LIST -->
//
// Everything outside a region is preserved byte for byte.
package templates

import (
	"strings"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"

	beginDirective = "BEGIN AUTO:"
	endDirective   = "END AUTO:"
)

// marker is one BEGIN or END comment located in a document.
type marker struct {
	begin bool
	name  string
	start int // offset of "<!--"
	end   int // offset just past "-->"
}

// scanMarkers returns every marker comment in doc, in document order.
// Comments that are not region directives are ignored.
func scanMarkers(doc string) []marker {
	var out []marker
	offset := 0
	for {
		i := strings.Index(doc[offset:], commentOpen)
		if i < 0 {
			return out
		}
		start := offset + i
		bodyStart := start + len(commentOpen)
		j := strings.Index(doc[bodyStart:], commentClose)
		if j < 0 {
			return out
		}
		// A stray "<!--" in prose is not a comment; the real one starts at
		// the last opener before the closer.
		if k := strings.LastIndex(doc[bodyStart:bodyStart+j], commentOpen); k >= 0 {
			start = bodyStart + k
			bodyStart = start + len(commentOpen)
			j -= k + len(commentOpen)
		}
		end := bodyStart + j + len(commentClose)
		if m, ok := parseDirective(doc[bodyStart : bodyStart+j]); ok {
			m.start, m.end = start, end
			out = append(out, m)
		}
		offset = end
	}
}

func parseDirective(body string) (marker, bool) {
	body = strings.TrimSpace(body)
	switch {
	case strings.HasPrefix(body, beginDirective):
		name := strings.TrimSpace(strings.TrimPrefix(body, beginDirective))
		return marker{begin: true, name: name}, name != ""
	case strings.HasPrefix(body, endDirective):
		name := strings.TrimSpace(strings.TrimPrefix(body, endDirective))
		return marker{name: name}, name != ""
	}
	return marker{}, false
}

// findRegion locates the first BEGIN marker named name and the first END
// marker with the same name after it.
func findRegion(markers []marker, name string) (begin, end marker, ok bool) {
	opened := false
	for _, m := range markers {
		if m.name != name {
			continue
		}
		if !opened {
			if m.begin {
				begin, opened = m, true
			}
			continue
		}
		if !m.begin {
			return begin, m, true
		}
	}
	return marker{}, marker{}, false
}

// SubstituteRegion replaces the interior of the first region called name with
// replacement, framed by exactly one newline on each side. Surrounding
// whitespace in replacement is trimmed so repeated runs are idempotent.
// Marker comments for name inside replacement are escaped so they cannot
// close the region early. A document without the region is returned unchanged.
func SubstituteRegion(doc, name, replacement string) string {
	begin, end, ok := findRegion(scanMarkers(doc), name)
	if !ok {
		return doc
	}
	body := escapeMarkers(strings.TrimSpace(NormalizeNewlines(replacement)), name)
	var b strings.Builder
	b.Grow(len(doc) + len(body))
	b.WriteString(doc[:begin.end])
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(doc[end.start:])
	return b.String()
}

// escapeMarkers rewrites the opener of every BEGIN or END comment named name
// in text as "&lt;!--", which renders the same but is no longer a comment.
func escapeMarkers(text, name string) string {
	var b strings.Builder
	last := 0
	for _, m := range scanMarkers(text) {
		if m.name != name {
			continue
		}
		b.WriteString(text[last:m.start])
		b.WriteString("&lt;!--")
		last = m.start + len(commentOpen)
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// HasRegion reports whether doc contains a complete region called name.
func HasRegion(doc, name string) bool {
	_, _, ok := findRegion(scanMarkers(doc), name)
	return ok
}

// Regions lists the names of complete regions in document order.
func Regions(doc string) []string {
	markers := scanMarkers(doc)
	var names []string
	seen := make(map[string]bool)
	for _, m := range markers {
		if !m.begin || seen[m.name] {
			continue
		}
		if _, _, ok := findRegion(markers, m.name); ok {
			names = append(names, m.name)
			seen[m.name] = true
		}
	}
	return names
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
