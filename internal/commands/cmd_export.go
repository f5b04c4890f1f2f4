package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/printer"
)

const (
	FormatJS   = "js"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type ExportCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Format   string
		Resolved bool
		Output   string
	}
}

func NewExportCmd(coreFlags *core.Flags) *ExportCmd {
	return &ExportCmd{coreFlags: coreFlags}
}

func (ec *ExportCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:  "export",
		Usage: "write the record in a format the class generator reads",
		Description: `Writes the configuration record for the external class generator.

Formats:
  js    a CommonJS module (module.exports = {...}), the generator's native config
  json  the same object as plain JSON
  yaml  a record literal that themecfg itself can load again

The exported object has the generator's shape: content, theme.extend and
plugins. With --resolved the theme holds the base theme merged with the
extensions instead of an extend block.

Output goes to stdout unless --output is set. Files are replaced atomically.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format: js, json or yaml",
				Value:       FormatJS,
				Destination: &ec.flags.Format,
			},
			&cli.BoolFlag{
				Name:        "resolved",
				Aliases:     []string{"r"},
				Usage:       "export the base theme merged with the extensions",
				Destination: &ec.flags.Resolved,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to this file instead of stdout",
				Destination: &ec.flags.Output,
			},
		},
		Action: ec.export,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (ec *ExportCmd) export(ctx context.Context, c *cli.Command) error {
	rec, err := loadRecord(ec.coreFlags)
	if err != nil {
		return err
	}

	data, err := renderExport(rec, ec.flags.Format, ec.flags.Resolved)
	if err != nil {
		return err
	}

	if ec.flags.Output == "" {
		printer.Ctx(ctx).Text(strings.TrimRight(string(data), "\n"))
		return nil
	}

	path, err := core.NewPathResolver("").Resolve(ec.flags.Output)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Info().Str("path", path).Str("format", ec.flags.Format).Msg("exported")
	return nil
}

// exportDoc mirrors the class generator's config object.
type exportDoc struct {
	Content []string       `json:"content"`
	Theme   map[string]any `json:"theme"`
	Plugins []string       `json:"plugins"`
}

func newExportDoc(rec *core.Record, resolved bool) exportDoc {
	doc := exportDoc{
		Content: rec.ContentGlobs(),
		Plugins: rec.Plugins(),
	}

	if resolved {
		doc.Theme = core.ThemeTree(rec.Resolve())
	} else {
		doc.Theme = map[string]any{"extend": core.ThemeTree(rec.Theme())}
	}

	return doc
}

func renderExport(rec *core.Record, format string, resolved bool) ([]byte, error) {
	switch format {
	case FormatYAML:
		if resolved {
			return nil, fmt.Errorf("--resolved is not supported for %s, the literal only holds extensions", FormatYAML)
		}
		return rec.Encode()
	case FormatJSON, FormatJS:
		data, err := json.MarshalIndent(newExportDoc(rec, resolved), "", "  ")
		if err != nil {
			return nil, err
		}

		if format == FormatJSON {
			return append(data, '\n'), nil
		}

		out := []byte("/** @type {import('tailwindcss').Config} */\nmodule.exports = ")
		out = append(out, data...)
		return append(out, ";\n"...), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected %s, %s or %s)", format, FormatJS, FormatJSON, FormatYAML)
	}
}
