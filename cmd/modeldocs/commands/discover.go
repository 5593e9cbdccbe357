package commands

import (
	"os"

	"git.home.luguber.info/inful/modeldocs/internal/build"
	"git.home.luguber.info/inful/modeldocs/internal/git"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct{}

func (d *DiscoverCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	snap, err := build.Discover(cfg, os.DirFS(cfg.Root))
	if err != nil {
		return err
	}

	var rev *git.Revision
	if r, err := git.ReadRevision(cfg.Root); err == nil {
		rev = &r
	}
	renderDiscover(global.Out, cfg, snap, rev)
	return nil
}
