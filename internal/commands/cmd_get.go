package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/printer"
)

// ErrNotFound is returned by get when the path is absent from the record.
var ErrNotFound = errors.New("not found")

type GetCmd struct {
	coreFlags *core.Flags
}

func NewGetCmd(coreFlags *core.Flags) *GetCmd {
	return &GetCmd{coreFlags: coreFlags}
}

func (gc *GetCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "get",
		Usage:     "print the value at a dotted path",
		ArgsUsage: "<path>",
		Description: `Looks up a single value in the configuration record.

Examples:
  themecfg get colors.primary.DEFAULT     # #10b981
  themecfg get borderRadius.lg            # 1rem
  themecfg get contentGlobs               # one glob per line
  themecfg get content.0                  # first glob
  themecfg get pluginList                 # [] when empty

Root keys: contentGlobs (content), pluginList (plugins), themeExtensions,
and the shortcuts colors and borderRadius.

Exits with an error when the path is not present.`,
		Action: gc.get,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (gc *GetCmd) get(ctx context.Context, c *cli.Command) error {
	raw := strings.Join(c.Args().Slice(), ".")
	if raw == "" {
		return fmt.Errorf("a path is required, for example colors.primary.DEFAULT")
	}

	rec, err := loadRecord(gc.coreFlags)
	if err != nil {
		return err
	}

	out, err := lookup(rec, raw)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Text(out)
	return nil
}

func lookup(rec *core.Record, raw string) (string, error) {
	path := core.ParsePath(raw)

	v, ok := rec.Get(path)
	log.Debug().Strs("path", path).Bool("found", ok).Msg("get")
	if !ok {
		return "", fmt.Errorf("%s: %w", raw, ErrNotFound)
	}

	return formatValue(v)
}
