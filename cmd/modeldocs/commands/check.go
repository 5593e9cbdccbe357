package commands

import (
	"os"

	"git.home.luguber.info/inful/modeldocs/internal/build"
	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
)

// CheckCmd implements the 'check' command for CI.
type CheckCmd struct {
	SkipLinks bool `name:"skip-links" help:"Only compare documents, do not verify relative links"`
}

func (c *CheckCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	fsys := os.DirFS(cfg.Root)
	snap, err := build.Discover(cfg, fsys)
	if err != nil {
		return err
	}
	docs, err := build.NewPlanner(cfg, fsys).Plan(ctx, snap)
	if err != nil {
		return err
	}
	report, err := build.Check(docs, fsys, build.CheckOptions{SkipLinks: c.SkipLinks})
	if err != nil {
		return err
	}

	renderCheck(global.Out, report)
	if !report.OK() {
		return ferrors.ValidationError("generated documents are out of date").
			WithContext("stale", len(report.Stale)).
			WithContext("broken_links", len(report.Broken)).
			Build()
	}
	return nil
}
