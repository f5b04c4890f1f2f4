// Package commands contains the CLI commands for the application
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"filippo.io/age"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/fcrypt"
	"github.com/hay-kot/themecfg/pkgs/printer"
)

const ageSecretKeyPrefix = "AGE-SECRET-KEY-"

// loadOptions builds the record load options from the global flags, reading
// the age identity when one is configured.
func loadOptions(flags *core.Flags) ([]core.Option, error) {
	opts := flags.LoadOptions()

	if flags.IdentityFile == "" {
		return opts, nil
	}

	identity, err := readIdentity(flags.IdentityFile)
	if err != nil {
		return nil, err
	}

	return append(opts, core.WithIdentity(identity)), nil
}

// readIdentity accepts either an inline AGE-SECRET-KEY-... value or the path
// of an age key file.
func readIdentity(value string) (age.Identity, error) {
	if strings.HasPrefix(value, ageSecretKeyPrefix) {
		identity, err := fcrypt.LoadPrivateKey(value)
		if err != nil {
			return nil, err
		}
		return identity, nil
	}

	path, err := core.NewPathResolver("").Resolve(value)
	if err != nil {
		return nil, err
	}

	return fcrypt.ReadIdentityFile(path)
}

// loadRecord loads the record named by --config, or the embedded record when
// no path is set.
func loadRecord(flags *core.Flags) (*core.Record, error) {
	opts, err := loadOptions(flags)
	if err != nil {
		return nil, err
	}

	path, err := core.NewPathResolver("").Resolve(flags.ConfigFilePath)
	if err != nil {
		return nil, err
	}

	if path == "" {
		log.Debug().Msg("using embedded record")
		return core.Load(opts...)
	}

	log.Debug().Str("path", path).Msg("loading record")
	return core.LoadFile(path, opts...)
}

// ReportError prints err through p. Malformed records list every problem and
// include the offending source when the decoder provided one.
func ReportError(p *printer.Printer, err error) {
	var me *core.MalformedError
	if !errors.As(err, &me) {
		p.FatalError(err)
		return
	}

	title := "malformed configuration"
	if me.Source != "" {
		title += " in " + me.Source
	}

	p.KeyValueValidationError(title, problemsToKeyValues(me.Problems))

	if snippet := me.Snippet(colorOutput()); snippet != "" {
		p.LineBreak()
		p.Text(snippet)
	}
}

func problemsToKeyValues(problems []core.Problem) []printer.KeyValueError {
	out := make([]printer.KeyValueError, len(problems))
	for i, pr := range problems {
		msg := pr.Message
		if pr.Line > 0 {
			msg = fmt.Sprintf("%s (line %d, column %d)", msg, pr.Line, pr.Column)
		}
		out[i] = printer.KeyValueError{Key: pr.Path, Message: msg}
	}

	return out
}

func colorOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatValue renders a value returned by Record.Get or an expression for
// the terminal. Strings print bare, sequences one item per line and
// mappings as YAML.
func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []string:
		if len(val) == 0 {
			return "[]", nil
		}
		return strings.Join(val, "\n"), nil
	case map[string]any:
		data, err := yaml.Marshal(val)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return fmt.Sprint(val), nil
	}
}
