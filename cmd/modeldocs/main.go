package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/modeldocs/cmd/modeldocs/commands"
	"git.home.luguber.info/inful/modeldocs/internal/config"
	"git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
	"git.home.luguber.info/inful/modeldocs/internal/version"
)

func main() {
	// .env files in the working directory feed RAW_BASE before flags are parsed.
	if _, err := config.LoadEnvFiles("."); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("modeldocs"),
		kong.Description("Regenerate the README documents of a versioned TSV model repository."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	global := &commands.Global{Logger: slog.Default(), Out: os.Stdout}
	if err := ctx.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
