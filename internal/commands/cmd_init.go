package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/themecfg/internal/core"
)

type InitCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Output string
		Force  bool
		Yes    bool
	}
}

func NewInitCmd(coreFlags *core.Flags) *InitCmd {
	return &InitCmd{coreFlags: coreFlags}
}

func (ic *InitCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:  "init",
		Usage: "scaffold a configuration file",
		Description: `Writes a new configuration record file.

When stdin is a terminal a short form asks for the content globs, the
primary color and the large border radius. Otherwise, or with --yes, the
embedded default record is written as is.

Refuses to overwrite an existing file unless --force is set.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "file to create",
				Value:       "themecfg.yml",
				Destination: &ic.flags.Output,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing file",
				Destination: &ic.flags.Force,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the form and write the defaults",
				Destination: &ic.flags.Yes,
			},
		},
		Action: ic.init,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

type initAnswers struct {
	Globs        string // comma separated
	Primary      string
	RadiusLarge  string
	KeepPalettes bool
}

func defaultAnswers(base *core.Record) initAnswers {
	a := initAnswers{
		Globs:        strings.Join(base.ContentGlobs(), ", "),
		KeepPalettes: true,
	}

	if v, ok := base.Get(core.ParsePath("colors.primary.DEFAULT")); ok {
		a.Primary, _ = v.(string)
	}
	if v, ok := base.Get(core.ParsePath("borderRadius.lg")); ok {
		a.RadiusLarge, _ = v.(string)
	}

	return a
}

func (ic *InitCmd) init(ctx context.Context, c *cli.Command) error {
	path, err := core.NewPathResolver("").Resolve(ic.flags.Output)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !ic.flags.Force {
		return fmt.Errorf("%s already exists, pass --force to overwrite it", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	base, err := core.Load()
	if err != nil {
		return err
	}

	data := core.DefaultLiteral()

	interactive := !ic.flags.Yes && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		answers := defaultAnswers(base)
		if err := runInitForm(&answers); err != nil {
			return err
		}

		rec, err := scaffold(base, answers)
		if err != nil {
			return err
		}

		data, err = rec.Encode()
		if err != nil {
			return err
		}
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Info().Str("path", path).Bool("interactive", interactive).Msg("configuration written")
	return nil
}

func runInitForm(a *initAnswers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Content globs").
				Description("Comma separated patterns the generator scans for classes").
				Value(&a.Globs),
			huh.NewInput().
				Title("Primary color").
				Description("Hex value or CSS color expression").
				Value(&a.Primary).
				Validate(func(s string) error {
					if !core.IsColor(s) {
						return fmt.Errorf("%q is not a valid color", s)
					}
					return nil
				}),
			huh.NewInput().
				Title("Large border radius").
				Value(&a.RadiusLarge).
				Validate(func(s string) error {
					if !core.IsLength(s) {
						return fmt.Errorf("%q is not a valid length", s)
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Keep the secondary and neutral palettes?").
				Value(&a.KeepPalettes),
		),
	)

	return form.Run()
}

// scaffold applies the form answers to the default record.
func scaffold(base *core.Record, a initAnswers) (*core.Record, error) {
	var globs []string
	for _, g := range strings.Split(a.Globs, ",") {
		if g = strings.TrimSpace(g); g != "" {
			globs = append(globs, g)
		}
	}

	theme := base.Theme()
	if !a.KeepPalettes {
		for name := range theme.Colors {
			if name != "primary" {
				delete(theme.Colors, name)
			}
		}
	}

	primary, ok := theme.Colors["primary"]
	if !ok {
		primary = core.Palette{}
	}
	primary[core.ShadeDefault] = strings.TrimSpace(a.Primary)
	theme.Colors["primary"] = primary

	theme.BorderRadius["lg"] = strings.TrimSpace(a.RadiusLarge)

	return core.NewRecord(globs, theme, base.Plugins())
}
