// Package links builds the raw-content and viewer URLs that generated
// documents point at. URLs are only constructed, never fetched.
package links

import (
	"strings"
)

const (
	// DefaultViewerURL is the external modeller that renders a TSV given its raw URL.
	DefaultViewerURL = "https://research.nationalgallery.org.uk/lab/modelling/"
	// DefaultViewerParam is the query parameter carrying the raw URL.
	DefaultViewerParam = "url"
)

// Builder binds a raw-content base URL and a viewer endpoint.
type Builder struct {
	RawBase     string
	ViewerURL   string
	ViewerParam string
}

// NewBuilder creates a Builder, falling back to the default viewer when empty.
func NewBuilder(rawBase, viewerURL, viewerParam string) Builder {
	if viewerURL == "" {
		viewerURL = DefaultViewerURL
	}
	if viewerParam == "" {
		viewerParam = DefaultViewerParam
	}
	return Builder{RawBase: rawBase, ViewerURL: viewerURL, ViewerParam: viewerParam}
}

// Raw returns the raw-content URL of rel.
func (b Builder) Raw(rel string) string { return RawLink(b.RawBase, rel) }

// Viewer returns the viewer URL of rel.
func (b Builder) Viewer(rel string) string {
	return ViewerLink(b.ViewerURL, b.ViewerParam, b.RawBase, rel)
}

// RawLink joins base and a repository-relative path with exactly one slash.
// Backslashes in rel are treated as separators so the result does not depend
// on the host platform.
func RawLink(base, rel string) string {
	rel = strings.ReplaceAll(rel, `\`, "/")
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(rel, "/")
}

// ViewerLink embeds RawLink(base, rel) as the param query parameter of viewer.
//
// The raw URL is appended verbatim, without query escaping; existing
// consumers of the generated documents match on that literal form.
func ViewerLink(viewer, param, base, rel string) string {
	sep := "?"
	if strings.Contains(viewer, "?") {
		sep = "&"
	}
	return viewer + sep + param + "=" + RawLink(base, rel)
}
