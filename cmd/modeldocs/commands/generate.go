package commands

import (
	"os"

	"git.home.luguber.info/inful/modeldocs/internal/build"
	"git.home.luguber.info/inful/modeldocs/internal/output"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	DryRun bool `name:"dry-run" short:"n" help:"Plan every document and report what would change without writing"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	req := build.Request{
		Config:  cfg,
		FS:      os.DirFS(cfg.Root),
		Options: build.Options{DryRun: g.DryRun},
	}
	if !g.DryRun {
		req.Writer = output.NewDiskWriter(cfg.Root)
	}

	result, err := build.NewGenerateService().Run(ctx, req)
	if err != nil {
		return err
	}
	renderGenerate(global.Out, result, g.DryRun)
	return nil
}
