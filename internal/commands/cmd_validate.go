package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/printer"
)

// ErrInvalidFiles is returned by validate when at least one file failed.
var ErrInvalidFiles = errors.New("one or more configuration files are invalid")

type ValidateCmd struct {
	coreFlags *core.Flags
}

func NewValidateCmd(coreFlags *core.Flags) *ValidateCmd {
	return &ValidateCmd{coreFlags: coreFlags}
}

func (vc *ValidateCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "validate",
		Usage:     "check configuration files for malformed values",
		ArgsUsage: "[files...]",
		Description: `Loads each file and reports whether it is a valid configuration record.

Checks duplicate keys, unknown fields, shade names (light, DEFAULT, dark),
hex colors (# followed by 3, 4, 6 or 8 hex digits), CSS color expressions
and border radius lengths. Pass --opaque to only check the shape and
--lenient to accept duplicate keys.

Without arguments the file given by --config is validated, or the embedded
record when no config is set. Files are checked in parallel and reported in
the order given.`,
		Action: vc.validate,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

type validationResult struct {
	Path string
	Err  error
}

func (vc *ValidateCmd) validate(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths = []string{vc.coreFlags.ConfigFilePath}
	}

	opts, err := loadOptions(vc.coreFlags)
	if err != nil {
		return err
	}

	results := validateFiles(paths, opts)
	return reportValidation(printer.Ctx(ctx), results)
}

// validateFiles loads every path concurrently. An empty path validates the
// embedded record. Results keep the order of paths.
func validateFiles(paths []string, opts []core.Option) []validationResult {
	resolver := core.NewPathResolver("")

	return iter.Map(paths, func(p *string) validationResult {
		res := validationResult{Path: *p}

		path, err := resolver.Resolve(*p)
		if err != nil {
			res.Err = err
			return res
		}

		if path == "" {
			res.Path = "(embedded)"
			_, res.Err = core.Load(opts...)
		} else {
			_, res.Err = core.LoadFile(path, opts...)
		}

		log.Debug().Str("path", res.Path).Err(res.Err).Msg("validated")
		return res
	})
}

func reportValidation(p *printer.Printer, results []validationResult) error {
	items := make([]printer.StatusListItem, len(results))
	failed := 0

	for i, res := range results {
		items[i] = printer.StatusListItem{Ok: res.Err == nil, Label: res.Path}
		if res.Err == nil {
			continue
		}

		failed++
		var me *core.MalformedError
		if errors.As(res.Err, &me) {
			items[i].Detail = fmt.Sprintf("%d problem(s)", len(me.Problems))
		} else {
			items[i].Detail = res.Err.Error()
		}
	}

	p.StatusList("Validation", items)

	for _, res := range results {
		var me *core.MalformedError
		if errors.As(res.Err, &me) {
			p.LineBreak()
			p.KeyValueValidationError(res.Path, problemsToKeyValues(me.Problems))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidFiles, failed, len(results))
	}

	return nil
}
