package build

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"git.home.luguber.info/inful/modeldocs/internal/config"
	"git.home.luguber.info/inful/modeldocs/internal/discovery"
	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
	"git.home.luguber.info/inful/modeldocs/internal/links"
	"git.home.luguber.info/inful/modeldocs/internal/logfields"
	"git.home.luguber.info/inful/modeldocs/internal/observability"
	"git.home.luguber.info/inful/modeldocs/internal/render"
	"git.home.luguber.info/inful/modeldocs/internal/templates"
)

// Region names expected in the templates.
const (
	RegionDiagram      = "NG-MODEL-VISUAL"
	RegionModelList    = "MODEL-LIST"
	RegionModelFolders = "MODEL-FOLDERS"
)

// DocumentKind classifies a generated document.
type DocumentKind string

const (
	KindTopLevel    DocumentKind = "top-level"
	KindModelsIndex DocumentKind = "models-index"
	KindModel       DocumentKind = "model"
)

// Document is one fully rendered output file.
type Document struct {
	Kind    DocumentKind
	Path    string // relative to the repository root
	Model   string // model folder, KindModel only
	Content string
}

// Snapshot is the immutable discovery result shared by every document of a run.
type Snapshot struct {
	Global discovery.GlobalSet
	Models map[string]discovery.ModelGroup
}

// Discover takes the run's directory snapshot.
func Discover(cfg *config.Config, fsys fs.FS) (*Snapshot, error) {
	scanner := discovery.NewScanner(fsys, cfg.Models.Extension)

	global, err := scanner.DiscoverGlobal(cfg.Models.Dir, cfg.Models.GlobalPrefix)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot scan models directory").
			Fatal().
			WithContext("path", cfg.Models.Dir).
			Build()
	}
	models, err := scanner.DiscoverModels(cfg.Models.Dir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot scan model folders").
			Fatal().
			WithContext("path", cfg.Models.Dir).
			Build()
	}
	return &Snapshot{Global: global, Models: models}, nil
}

// Planner renders documents from a snapshot.
type Planner struct {
	cfg  *config.Config
	fsys fs.FS
	opts render.Options
}

// NewPlanner creates a planner reading templates from fsys.
func NewPlanner(cfg *config.Config, fsys fs.FS) *Planner {
	return &Planner{
		cfg:  cfg,
		fsys: fsys,
		opts: render.Options{
			Links:       links.NewBuilder(cfg.RawBase, cfg.Viewer.URL, cfg.Viewer.Param),
			ModelsDir:   cfg.Models.Dir,
			Extension:   cfg.Models.Extension,
			TitleSuffix: cfg.Models.TitleSuffix,
		},
	}
}

// Plan renders the top-level document, the models index and one page per
// model, in that order. A missing top-level template is fatal.
func (p *Planner) Plan(ctx context.Context, snap *Snapshot) ([]Document, error) {
	top, err := p.topLevel(observability.WithDocument(ctx, string(KindTopLevel)), snap)
	if err != nil {
		return nil, err
	}
	docs := []Document{top}

	index, err := p.modelsIndex(observability.WithDocument(ctx, string(KindModelsIndex)), snap)
	if err != nil {
		return nil, err
	}
	docs = append(docs, index)

	for _, name := range discovery.SortedNames(snap.Models) {
		docs = append(docs, p.modelPage(snap.Models[name]))
	}
	return docs, nil
}

func (p *Planner) topLevel(ctx context.Context, snap *Snapshot) (Document, error) {
	path := p.cfg.Templates.TopLevel
	tmpl, err := fs.ReadFile(p.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, ferrors.TemplateError("missing required top-level template").
				WithContext("path", path).
				Build()
		}
		return Document{}, ferrors.WrapError(err, ferrors.CategoryTemplate, "cannot read top-level template").
			Fatal().
			WithContext("path", path).
			Build()
	}
	doc := string(tmpl)
	p.warnMissingRegions(ctx, path, doc, RegionDiagram, RegionModelList)

	// The diagram describes the global model, so it is only shown once a
	// global versioned file exists.
	diagram, ok := "", false
	if len(snap.Global.Files) > 0 {
		diagram, ok = p.readOptional(ctx, p.cfg.DiagramPath())
	}

	doc = templates.SubstituteRegion(doc, RegionDiagram, render.DiagramBlock(diagram, ok))
	doc = templates.SubstituteRegion(doc, RegionModelList, render.SummaryTable(snap.Models, p.opts))
	return Document{Kind: KindTopLevel, Path: p.cfg.Output.TopLevel, Content: doc}, nil
}

func (p *Planner) modelsIndex(ctx context.Context, snap *Snapshot) (Document, error) {
	out := Document{Kind: KindModelsIndex, Path: p.cfg.ModelsOutputPath()}

	path := p.cfg.ModelsTemplatePath()
	tmpl, ok := p.readOptional(ctx, path)
	if !ok {
		observability.InfoContext(ctx, "Models template not found, generating models index", logfields.Path(path))
		out.Content = render.ModelsIndexFallback(snap.Global, snap.Models, p.opts)
		return out, nil
	}

	p.warnMissingRegions(ctx, path, tmpl, RegionModelFolders)
	out.Content = templates.SubstituteRegion(tmpl, RegionModelFolders,
		render.ModelsFolderBlock(snap.Global, snap.Models, p.opts))
	return out, nil
}

func (p *Planner) modelPage(group discovery.ModelGroup) Document {
	title := render.ModelTitle(group.Name, p.opts.TitleSuffix)
	if latest, ok := discovery.LatestInGroup(group); ok {
		slog.Debug("Rendering model page", logfields.Model(group.Name), logfields.Version(latest.Version.String()))
	}
	return Document{
		Kind:    KindModel,
		Path:    p.cfg.ModelOutputPath(group.Name),
		Model:   group.Name,
		Content: render.ModelPage(title, render.DetailBlock(title, group, p.opts)),
	}
}

// readOptional reads an optional input. Absence or an unreadable file
// degrades to ok=false.
func (p *Planner) readOptional(ctx context.Context, path string) (string, bool) {
	data, err := fs.ReadFile(p.fsys, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			observability.WarnContext(ctx, "Optional input unreadable, using placeholder",
				logfields.Path(path), logfields.Error(err))
		}
		return "", false
	}
	return string(data), true
}

func (p *Planner) warnMissingRegions(ctx context.Context, path, doc string, names ...string) {
	for _, name := range names {
		if !templates.HasRegion(doc, name) {
			observability.WarnContext(ctx, "Template has no marker region, leaving it untouched",
				logfields.Path(path), logfields.Region(name))
		}
	}
}
