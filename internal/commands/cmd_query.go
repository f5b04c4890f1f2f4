package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/printer"
)

// ErrAssertion is returned when an --assert expression evaluates to false.
var ErrAssertion = errors.New("assertion failed")

type QueryCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Assert bool
	}
}

func NewQueryCmd(coreFlags *core.Flags) *QueryCmd {
	return &QueryCmd{coreFlags: coreFlags}
}

func (qc *QueryCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "query",
		Usage:     "evaluate an expression against the record",
		ArgsUsage: "<expression>",
		Description: `Evaluates an expr-lang expression with the record as its environment.

 Examples:
	 themecfg query 'colors.primary.DEFAULT'
	 themecfg query 'len(contentGlobs)'
	 themecfg query 'keys(colors)'
	 themecfg query --assert 'len(content) > 0'
	 themecfg query --assert 'borderRadius.lg == "1rem"'

 Expression variables:
	 - contentGlobs, content: array of glob patterns
	 - pluginList, plugins: array of plugin references
	 - colors: palettes keyed by name, each keyed by shade
	 - borderRadius: radius values keyed by token
	 - themeExtensions: map holding colors and borderRadius

 With --assert the expression must return a boolean and the command fails
 when it is false, which makes it usable as a CI check.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "assert",
				Aliases:     []string{"a"},
				Usage:       "fail unless the expression evaluates to true",
				Destination: &qc.flags.Assert,
			},
		},
		Action: qc.query,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (qc *QueryCmd) query(ctx context.Context, c *cli.Command) error {
	code := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("an expression is required")
	}

	rec, err := loadRecord(qc.coreFlags)
	if err != nil {
		return err
	}

	log.Debug().Str("expr", code).Bool("assert", qc.flags.Assert).Msg("query")

	if qc.flags.Assert {
		ok, err := evalAssert(rec, code)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrAssertion, code)
		}
		printer.Ctx(ctx).Text("true")
		return nil
	}

	v, err := evalQuery(rec, code)
	if err != nil {
		return err
	}

	out, err := formatValue(v)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Text(out)
	return nil
}

// queryEnv exposes the record tree plus the root aliases Record.Get accepts.
func queryEnv(rec *core.Record) map[string]any {
	env := rec.Tree()

	ext := env[core.KeyThemeExtensions].(map[string]any)
	env[core.KeyColors] = ext[core.KeyColors]
	env[core.KeyBorderRadius] = ext[core.KeyBorderRadius]
	env["content"] = env[core.KeyContentGlobs]
	env["plugins"] = env[core.KeyPluginList]

	return env
}

func compileQuery(code string, env map[string]any, opts ...expr.Option) (*vm.Program, error) {
	opts = append([]expr.Option{expr.Env(env)}, opts...)

	program, err := expr.Compile(code, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}

	return program, nil
}

func evalQuery(rec *core.Record, code string) (any, error) {
	env := queryEnv(rec)

	program, err := compileQuery(code, env)
	if err != nil {
		return nil, err
	}

	return expr.Run(program, env)
}

func evalAssert(rec *core.Record, code string) (bool, error) {
	env := queryEnv(rec)

	program, err := compileQuery(code, env, expr.AsBool())
	if err != nil {
		return false, err
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}

	// expr.AsBool() ensures output is always bool
	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("expression did not evaluate to boolean, got %T", output)
	}

	return result, nil
}
