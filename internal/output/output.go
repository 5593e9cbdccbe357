// Package output writes generated documents. Writes are atomic, and a
// document whose bytes already match the file on disk is left alone.
package output

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/inful/mdfp"
	"github.com/natefinch/atomic"

	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
	"git.home.luguber.info/inful/modeldocs/internal/logfields"
)

// Result describes one write.
type Result struct {
	Path        string // relative to the writer root
	Fingerprint string
	Changed     bool
}

// Writer persists a document under a repository-relative POSIX path.
type Writer interface {
	WriteFile(rel string, content string) (Result, error)
}

// Fingerprint returns the canonical content fingerprint of a generated document.
func Fingerprint(content string) string {
	return mdfp.CalculateFingerprintFromParts("", content)
}

// DiskWriter writes below a repository root.
type DiskWriter struct {
	root string
}

// NewDiskWriter creates a writer rooted at root.
func NewDiskWriter(root string) *DiskWriter {
	return &DiskWriter{root: root}
}

// WriteFile replaces rel atomically unless it already holds content.
func (w *DiskWriter) WriteFile(rel string, content string) (Result, error) {
	if !fs.ValidPath(rel) {
		return Result{}, ferrors.InternalError("output path escapes repository root").
			WithContext("path", rel).
			Build()
	}
	full := filepath.Join(w.root, filepath.FromSlash(rel))
	res := Result{Path: rel, Fingerprint: Fingerprint(content)}

	// #nosec G304 -- full is validated to stay under root.
	existing, err := os.ReadFile(full)
	switch {
	case err == nil:
		if string(existing) == content {
			slog.Debug("Document unchanged", logfields.Path(rel))
			return res, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return res, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot read existing document").
			WithContext("path", rel).
			Build()
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return res, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot create document directory").
			Fatal().
			WithContext("path", rel).
			Build()
	}
	if err := atomic.WriteFile(full, strings.NewReader(content)); err != nil {
		return res, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot write document").
			Fatal().
			WithContext("path", rel).
			Build()
	}
	res.Changed = true
	slog.Info("Wrote document", logfields.Path(rel))
	return res, nil
}

// MemoryWriter keeps documents in memory.
type MemoryWriter struct {
	Files map[string]string
}

// NewMemoryWriter creates an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{Files: make(map[string]string)}
}

// WriteFile stores content under rel.
func (w *MemoryWriter) WriteFile(rel string, content string) (Result, error) {
	res := Result{Path: rel, Fingerprint: Fingerprint(content)}
	if old, ok := w.Files[rel]; !ok || old != content {
		res.Changed = true
	}
	w.Files[rel] = content
	return res, nil
}
