package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/themecfg/internal/core"
	"github.com/hay-kot/themecfg/pkgs/cll"
	"github.com/hay-kot/themecfg/pkgs/fcrypt"
)

type EncryptCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Recipient string
	}
}

func NewEncryptCmd(coreFlags *core.Flags) *EncryptCmd {
	return &EncryptCmd{coreFlags: coreFlags}
}

func (ec *EncryptCmd) Register(app *cli.Command) *cli.Command {
	envvars := cll.EnvWithPrefix(core.EnvPrefix)

	cmds := []*cli.Command{
		{
			Name:      "encrypt",
			Usage:     "encrypt a configuration file in-place",
			ArgsUsage: "[file]",
			Description: `Encrypts a configuration record with age so private palettes can be
committed. The file is replaced by <file>.age (ASCII armored) and the plain
file is removed.

The file defaults to --config. Every other command reads .age files
directly when --identity points at the matching age private key.`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "recipient",
					Aliases:     []string{"r"},
					Usage:       "age public key (age1...) to encrypt for",
					Sources:     envvars("AGE_RECIPIENT"),
					Required:    true,
					Destination: &ec.flags.Recipient,
				},
			},
			Action: ec.encrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "decrypt a .age configuration file in-place",
			ArgsUsage: "[file.age]",
			Description: `Decrypts <file>.age with the age identity given by --identity (a key file
or an inline AGE-SECRET-KEY-... value), writes
<file> and removes the encrypted copy.

The file defaults to --config.`,
			Action: ec.decrypt,
		},
	}

	app.Commands = append(app.Commands, cmds...)
	return app
}

func (ec *EncryptCmd) target(c *cli.Command) (string, error) {
	file := c.Args().First()
	if file == "" {
		file = ec.coreFlags.ConfigFilePath
	}
	if file == "" {
		return "", fmt.Errorf("no file given and --config is not set")
	}

	return core.NewPathResolver("").Resolve(file)
}

func (ec *EncryptCmd) encrypt(ctx context.Context, c *cli.Command) error {
	path, err := ec.target(c)
	if err != nil {
		return err
	}

	recipient, err := fcrypt.LoadPublicKey(ec.flags.Recipient)
	if err != nil {
		return err
	}

	// Refuse to encrypt something that would not load afterwards.
	opts := ec.coreFlags.LoadOptions()
	if _, err := core.LoadFile(path, opts...); err != nil {
		return err
	}

	out, err := fcrypt.EncryptInPlace(path, recipient)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", path, err)
	}

	log.Info().Str("source", path).Str("target", out).Msg("configuration encrypted")
	return nil
}

func (ec *EncryptCmd) decrypt(ctx context.Context, c *cli.Command) error {
	path, err := ec.target(c)
	if err != nil {
		return err
	}

	if ec.coreFlags.IdentityFile == "" {
		return fmt.Errorf("--identity is required to decrypt %s", path)
	}

	identity, err := readIdentity(ec.coreFlags.IdentityFile)
	if err != nil {
		return err
	}

	out, err := fcrypt.DecryptInPlace(path, identity)
	if err != nil {
		return fmt.Errorf("failed to decrypt %s: %w", path, err)
	}

	log.Info().Str("source", path).Str("target", out).Msg("configuration decrypted")
	return nil
}
