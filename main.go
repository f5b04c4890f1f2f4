package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/themecfg/internal/commands"
	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/cll"
	"github.com/hay-kot/themecfg/pkgs/printer"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "v0.1.0-develop"
	commit  = "HEAD"
	date    = time.Now().Format(time.DateTime)
)

var envvars = cll.EnvWithPrefix(core.EnvPrefix)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	flags := &core.Flags{}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		ctx    = context.Background()
		writer = printer.NewDeferredWriter(os.Stdout)
	)

	ctx = printer.WithWriter(ctx, writer)
	printer.ConsolePrinter = printer.Ctx(ctx)

	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "themecfg",
		Usage:                 `Inspect, validate and export the theme configuration handed to the CSS class generator.`,
		Version:               build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Aliases:     []string{"l"},
				Usage:       "set the logging verbosity level",
				Value:       "info",
				Sources:     envvars("LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to a configuration record file (default: the embedded record)",
				Sources:     envvars("CONFIG_PATH"),
				Destination: &flags.ConfigFilePath,
			},
			&cli.StringFlag{
				Name:        "identity",
				Aliases:     []string{"i"},
				Usage:       "age identity file, or an inline AGE-SECRET-KEY-... value, used to read .age configuration files",
				Sources:     envvars("IDENTITY_FILE"),
				Destination: &flags.IdentityFile,
			},
			&cli.BoolFlag{
				Name:        "lenient",
				Usage:       "keep the last value of duplicate keys instead of failing",
				Sources:     envvars("LENIENT"),
				Destination: &flags.Lenient,
			},
			&cli.BoolFlag{
				Name:        "opaque",
				Usage:       "pass color and length values through without checking them",
				Sources:     envvars("OPAQUE"),
				Destination: &flags.Opaque,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(flags.LogLevel)
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			log.Debug().
				Str("log-level", flags.LogLevel).
				Str("config", flags.ConfigFilePath).
				Bool("lenient", flags.Lenient).
				Bool("opaque", flags.Opaque).
				Msg("global flags")

			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return err
		},
	}

	app = cll.Register(app,
		commands.NewShowCmd(flags),
		commands.NewGetCmd(flags),
		commands.NewQueryCmd(flags),
		commands.NewValidateCmd(flags),
		commands.NewExportCmd(flags),
		commands.NewInitCmd(flags),
		commands.NewEncryptCmd(flags),
	)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		commands.ReportError(printer.Ctx(ctx), err)
		exitCode = 1
	}

	err := writer.Flush()
	if err != nil {
		panic(err)
	}
	os.Exit(exitCode)
}
