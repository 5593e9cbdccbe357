package errors

import (
	"maps"
	"sort"
)

// ErrorCategory classifies a failure by the input or stage it concerns. The
// CLI maps it to an exit code.
type ErrorCategory string

const (
	// CategoryConfig covers flags, environment and the configuration file.
	CategoryConfig ErrorCategory = "config"
	// CategoryValidation covers checks whose outcome the user has to act on,
	// such as stale documents found by check.
	CategoryValidation ErrorCategory = "validation"
	// CategoryTemplate covers a required template that is missing or unreadable.
	CategoryTemplate   ErrorCategory = "template"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryGit        ErrorCategory = "git"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // the run stops, nothing more is written
	SeverityError   ErrorSeverity = "error"   // the current operation failed
	SeverityWarning ErrorSeverity = "warning" // output is degraded
)

// ErrorContext names the inputs involved in a failure (path, field, value, hint).
type ErrorContext map[string]any

// With returns a copy of c with key set to value. c itself is not modified.
func (c ErrorContext) With(key string, value any) ErrorContext {
	out := make(ErrorContext, len(c)+1)
	maps.Copy(out, c)
	out[key] = value
	return out
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// Keys returns the context keys in sorted order.
func (c ErrorContext) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
