package build

import (
	"context"
	"io/fs"
	"time"

	"git.home.luguber.info/inful/modeldocs/internal/config"
	"git.home.luguber.info/inful/modeldocs/internal/output"
)

// GenerateService is the canonical interface for executing a generation run.
// The CLI commands are thin wrappers over it.
type GenerateService interface {
	// Run discovers, plans and writes every document.
	Run(ctx context.Context, req Request) (*Result, error)
}

// Request contains all inputs of a generation run.
type Request struct {
	// Config is the validated configuration.
	Config *config.Config

	// FS is the directory snapshot rooted at Config.Root.
	FS fs.FS

	// Writer persists documents; nil with DryRun.
	Writer output.Writer

	// Options provides optional behaviour modifiers.
	Options Options
}

// Options modifies a run.
type Options struct {
	// DryRun plans every document without writing.
	DryRun bool
}

// Status is the overall outcome of a run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// DocumentResult is the outcome for one document.
type DocumentResult struct {
	Kind        DocumentKind
	Path        string
	Fingerprint string
	Changed     bool
}

// Result contains the outcome of a run.
type Result struct {
	Status    Status
	Snapshot  *Snapshot
	Documents []DocumentResult
	Duration  time.Duration
}

// Changed counts documents whose content was (or would be) rewritten.
func (r *Result) Changed() int {
	n := 0
	for _, d := range r.Documents {
		if d.Changed {
			n++
		}
	}
	return n
}
