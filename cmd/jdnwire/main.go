package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jdn-utils/jdnutils/pkg/config"
	"github.com/lmittmann/tint"
)

// CLI is the root command.
type CLI struct {
	Verbose  int    `help:"log verbosity (-v info, -vv debug)" short:"v" type:"counter"`
	Profiles string `help:"Field profile file (YAML, JSON or CUE)" env:"JDNWIRE_PROFILES" type:"path"`

	Verify  VerifyCLI  `cmd:"" help:"Check values against a field profile"`
	Encode  EncodeCLI  `cmd:"" help:"Encode values as a length-prefixed sequence"`
	Decode  DecodeCLI  `cmd:"" help:"Decode a length-prefixed sequence"`
	Inspect InspectCLI `cmd:"" help:"List the finalized messages in a file"`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("jdnwire"),
		kong.Description("Validate, encode and decode length-prefixed string records."),
		kong.UsageOnError(),
		kong.Configuration(cueLoader, "/etc/jdnwire/config.yaml", "~/.config/jdnwire/config.yaml"),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	logger := newLogger(os.Stderr, cli.Verbose)
	slog.SetDefault(logger)

	profiles, err := cli.loadProfiles(logger)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(logger, profiles)
	ctx.FatalIfErrorf(err)
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func (c *CLI) loadProfiles(logger *slog.Logger) (*config.Profiles, error) {
	if c.Profiles == "" {
		logger.Debug("no profile file, using default constraints")
		return &config.Profiles{}, nil
	}

	profiles, err := config.LoadProfiles(c.Profiles)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded profiles", "path", c.Profiles, "fields", len(profiles.Fields))
	return profiles, nil
}
