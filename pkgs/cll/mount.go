// Package cll composes urfave/cli/v3 command trees.
package cll

import "github.com/urfave/cli/v3"

// Registerable is implemented by command groups that mount themselves onto a
// root command.
type Registerable interface {
	Register(*cli.Command) *cli.Command
}

// Register mounts each Registerable onto root, in order.
//
//	root := &cli.Command{Name: "themecfg"}
//	root = cll.Register(root, showCmd, getCmd, validateCmd)
func Register(root *cli.Command, subs ...Registerable) *cli.Command {
	for _, s := range subs {
		root = s.Register(root)
	}

	return root
}

// EnvWithPrefix returns a helper that builds env var sources under a shared
// prefix.
//
//	env := cll.EnvWithPrefix("THEMECFG_")
//	flag := &cli.StringFlag{
//		Name:    "config",
//		Sources: env("CONFIG_PATH"), // reads THEMECFG_CONFIG_PATH
//	}
func EnvWithPrefix(prefix string) func(strs ...string) cli.ValueSourceChain {
	return func(strs ...string) cli.ValueSourceChain {
		withPrefix := make([]string, len(strs))
		for i, str := range strs {
			withPrefix[i] = prefix + str
		}

		return cli.EnvVars(withPrefix...)
	}
}
