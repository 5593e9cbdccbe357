package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyModel    = "model"
	KeyPath     = "path"
	KeyVersion  = "version"
	KeyRegion   = "region"
	KeyDocument = "document"
	KeyCount    = "count"
	KeyRoot     = "root"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Model(name string) slog.Attr    { return slog.String(KeyModel, name) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Version(v string) slog.Attr     { return slog.String(KeyVersion, v) }
func Region(name string) slog.Attr   { return slog.String(KeyRegion, name) }
func Document(kind string) slog.Attr { return slog.String(KeyDocument, kind) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func Root(dir string) slog.Attr      { return slog.String(KeyRoot, dir) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
