package commands

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/printer"
	"github.com/hay-kot/themecfg/pkgs/styles"
)

type ShowCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Resolved bool
	}
}

func NewShowCmd(coreFlags *core.Flags) *ShowCmd {
	return &ShowCmd{coreFlags: coreFlags}
}

func (sc *ShowCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:  "show",
		Usage: "print the content globs, theme extensions and plugins",
		Description: `Prints the configuration record in a readable form. Colors are shown
with a swatch when the terminal supports it.

With --resolved the theme section shows the built-in base theme with the
record's extensions merged on top, which is what the class generator
ends up using.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "resolved",
				Aliases:     []string{"r"},
				Usage:       "show the base theme merged with the extensions",
				Destination: &sc.flags.Resolved,
			},
		},
		Action: sc.show,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (sc *ShowCmd) show(ctx context.Context, c *cli.Command) error {
	rec, err := loadRecord(sc.coreFlags)
	if err != nil {
		return err
	}

	theme := rec.Theme()
	if sc.flags.Resolved {
		theme = rec.Resolve()
	}

	log.Debug().Bool("resolved", sc.flags.Resolved).Str("source", rec.Source()).Msg("show")

	writeRecord(printer.Ctx(ctx), rec, theme)
	return nil
}

func writeRecord(p *printer.Printer, rec *core.Record, theme core.Theme) {
	p.Title(rec.Source())
	p.LineBreak()

	p.List("Content", rec.ContentGlobs())
	p.LineBreak()

	p.ListTree("Colors", paletteTrees(theme))
	p.LineBreak()

	p.List("Border Radius", radiusLines(theme))
	p.LineBreak()

	p.List("Plugins", rec.Plugins())
}

func paletteTrees(theme core.Theme) []printer.Tree {
	names := slices.Sorted(maps.Keys(theme.Colors))
	trees := make([]printer.Tree, 0, len(names))

	for _, name := range names {
		palette := theme.Colors[name]
		node := printer.Tree{Label: name}

		for _, shade := range core.Shades {
			value, ok := palette[shade]
			if !ok {
				continue
			}
			node.Children = append(node.Children, printer.Tree{
				Label: fmt.Sprintf("%s %-7s %s", styles.Swatch(value), shade, value),
			})
		}

		trees = append(trees, node)
	}

	return trees
}

func radiusLines(theme core.Theme) []string {
	tokens := slices.Sorted(maps.Keys(theme.BorderRadius))
	lines := make([]string, len(tokens))

	for i, token := range tokens {
		lines[i] = fmt.Sprintf("%-8s %s", token, theme.BorderRadius[token])
	}

	return lines
}
