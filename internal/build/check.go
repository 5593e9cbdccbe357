package build

import (
	"bytes"
	"errors"
	"io/fs"

	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
	"git.home.luguber.info/inful/modeldocs/internal/linkverify"
	"git.home.luguber.info/inful/modeldocs/internal/output"
)

// StaleDocument is a planned document whose on-disk copy differs.
type StaleDocument struct {
	Path     string
	Kind     DocumentKind
	Missing  bool   // no file on disk
	Expected string // fingerprint of the planned content
	Actual   string // fingerprint of the file on disk, empty when missing
}

// CheckReport is the outcome of comparing a plan with the repository.
type CheckReport struct {
	Stale  []StaleDocument
	Broken []linkverify.BrokenLink
}

// OK reports whether the repository is up to date and every relative link resolves.
func (r *CheckReport) OK() bool {
	return len(r.Stale) == 0 && len(r.Broken) == 0
}

// Preview reports, without writing, which documents a run would change.
func Preview(docs []Document, fsys fs.FS) []DocumentResult {
	results := make([]DocumentResult, 0, len(docs))
	for _, d := range docs {
		current, err := fs.ReadFile(fsys, d.Path)
		results = append(results, DocumentResult{
			Kind:        d.Kind,
			Path:        d.Path,
			Fingerprint: output.Fingerprint(d.Content),
			Changed:     err != nil || !bytes.Equal(current, []byte(d.Content)),
		})
	}
	return results
}

// CheckOptions tunes Check.
type CheckOptions struct {
	SkipLinks bool // compare documents only
}

// Check compares planned documents with fsys and, unless opts.SkipLinks is
// set, verifies the relative links of every planned document. It never writes.
func Check(docs []Document, fsys fs.FS, opts CheckOptions) (*CheckReport, error) {
	report := &CheckReport{}

	var verifier *linkverify.Verifier
	if !opts.SkipLinks {
		pending := make([]string, 0, len(docs))
		for _, d := range docs {
			pending = append(pending, d.Path)
		}
		verifier = linkverify.NewVerifier(fsys, pending...)
	}

	for _, d := range docs {
		current, err := fs.ReadFile(fsys, d.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			report.Stale = append(report.Stale, StaleDocument{
				Path: d.Path, Kind: d.Kind, Missing: true,
				Expected: output.Fingerprint(d.Content),
			})
		case err != nil:
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot read generated document").
				WithContext("path", d.Path).
				Build()
		case !bytes.Equal(current, []byte(d.Content)):
			report.Stale = append(report.Stale, StaleDocument{
				Path: d.Path, Kind: d.Kind,
				Expected: output.Fingerprint(d.Content),
				Actual:   output.Fingerprint(string(current)),
			})
		}
		if verifier != nil {
			report.Broken = append(report.Broken, verifier.VerifyDocument(d.Path, []byte(d.Content))...)
		}
	}
	return report, nil
}
