package build

import (
	"context"
	"time"

	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
	"git.home.luguber.info/inful/modeldocs/internal/logfields"
	"git.home.luguber.info/inful/modeldocs/internal/observability"
	"git.home.luguber.info/inful/modeldocs/internal/output"
)

// DefaultGenerateService is the standard implementation of GenerateService:
// discover, plan, then write.
type DefaultGenerateService struct {
	now func() time.Time
}

// NewGenerateService creates a DefaultGenerateService.
func NewGenerateService() *DefaultGenerateService {
	return &DefaultGenerateService{now: time.Now}
}

// Run executes the complete generation pipeline.
func (s *DefaultGenerateService) Run(ctx context.Context, req Request) (*Result, error) {
	startTime := s.now()
	result := &Result{Status: StatusFailed}
	defer func() { result.Duration = s.now().Sub(startTime) }()

	ctx = observability.WithRunID(ctx, startTime.Format("20060102-150405"))

	if req.Config == nil {
		return result, ferrors.ConfigError("config required").Build()
	}
	if req.FS == nil {
		return result, ferrors.InternalError("directory snapshot required").Build()
	}
	if req.Writer == nil && !req.Options.DryRun {
		return result, ferrors.InternalError("writer required unless dry run").Build()
	}

	ctx = observability.WithStage(ctx, "discover")
	snap, err := Discover(req.Config, req.FS)
	if err != nil {
		return result, err
	}
	result.Snapshot = snap
	observability.InfoContext(ctx, "Discovered models",
		logfields.Count(len(snap.Models)),
		logfields.Path(req.Config.Models.Dir))
	if len(snap.Models) == 0 {
		observability.InfoContext(ctx, "No model folders found, using placeholders")
	}

	ctx = observability.WithStage(ctx, "plan")
	docs, err := NewPlanner(req.Config, req.FS).Plan(ctx, snap)
	if err != nil {
		return result, err
	}

	if req.Options.DryRun {
		result.Documents = Preview(docs, req.FS)
		result.Status = StatusSuccess
		return result, nil
	}

	ctx = observability.WithStage(ctx, "write")
	written, err := Apply(ctx, docs, req.Writer)
	result.Documents = written
	if err != nil {
		return result, err
	}

	result.Status = StatusSuccess
	observability.InfoContext(ctx, "Generation complete",
		logfields.Count(result.Changed()))
	return result, nil
}

// Apply writes documents in plan order and stops at the first failure.
func Apply(ctx context.Context, docs []Document, w output.Writer) ([]DocumentResult, error) {
	results := make([]DocumentResult, 0, len(docs))
	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return results, ferrors.WrapError(err, ferrors.CategoryInternal, "generation cancelled").Build()
		}
		res, err := w.WriteFile(d.Path, d.Content)
		if err != nil {
			return results, err
		}
		results = append(results, DocumentResult{
			Kind:        d.Kind,
			Path:        d.Path,
			Fingerprint: res.Fingerprint,
			Changed:     res.Changed,
		})
	}
	return results, nil
}
