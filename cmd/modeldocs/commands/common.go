package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/modeldocs/internal/config"
	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
	"git.home.luguber.info/inful/modeldocs/internal/git"
	"git.home.luguber.info/inful/modeldocs/internal/logfields"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer // report output; logs go to stderr
}

// CLI definition & global flags.
type CLI struct {
	Root    string           `short:"r" help:"Repository root (default: enclosing git worktree, else the working directory)" type:"path"`
	Config  string           `short:"c" help:"Configuration file (default: modeldocs.yaml at the repository root)" type:"path"`
	RawBase string           `name:"raw-base" env:"RAW_BASE" help:"Base URL for raw file content, e.g. https://raw.githubusercontent.com/org/repo/main"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Regenerate every README document (default)"`
	Discover DiscoverCmd `cmd:"" help:"Show discovered models, latest versions and global files"`
	Check    CheckCmd    `cmd:"" help:"Report stale documents and broken relative links without writing"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig resolves the repository root, loads .env files found there and
// the optional configuration file, and validates the result.
func (c *CLI) LoadConfig() (*config.Config, error) {
	root := c.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot determine working directory").Build()
		}
		detected, found, err := git.FindRoot(wd)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryGit, "cannot inspect enclosing repository").
				WithContext("path", wd).
				Build()
		}
		if !found {
			slog.Debug("Not inside a git worktree, using working directory", logfields.Root(detected))
		}
		root = detected
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, ferrors.ConfigError("repository root is not a directory").
			WithContext("path", root).
			Build()
	}

	if _, err := config.LoadEnvFiles(root); err != nil {
		slog.Warn("Failed to load .env file", logfields.Root(root), logfields.Error(err))
	}
	rawBase := c.RawBase
	if rawBase == "" {
		// Picked up from a .env file at the repository root.
		rawBase = os.Getenv(config.RawBaseEnv)
	}

	cfg, err := config.Load(root, c.Config, rawBase)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		if cfg.RawBase == "" {
			if hint, ok := git.SuggestRawBase(root); ok {
				if classified, isClassified := ferrors.AsClassified(err); isClassified {
					return nil, classified.WithContext("hint", config.RawBaseEnv+"="+hint)
				}
			}
		}
		return nil, err
	}
	slog.Debug("Configuration loaded", logfields.Root(cfg.Root), slog.String("raw_base", cfg.RawBase))
	return cfg, nil
}

// signalContext is cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
