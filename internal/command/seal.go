// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/crypt"
	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/meta"
	"github.com/plssctl/plssctl/internal/source"
	"github.com/plssctl/plssctl/internal/util"
)

// sealCommandAction is the action handler for the "seal" subcommand. It
// fetches the input's raw bytes and writes them back out inside the
// encrypted envelope that the dataset loaders know how to open. The bytes
// are sealed as-is, so a .csv.gz input stays compressed inside the
// envelope and unwraps on the read side.
func sealCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "seal"

	if ShortCircuitTLDR(ctx, cmd, "seal") {
		return nil
	}

	input := cmd.Args().Get(0)
	target := cmd.Args().Get(1)
	if input == "" || target == "" {
		return fmt.Errorf("seal needs an input and an output argument (see plssctl seal --help)")
	}

	src, err := source.NewSource(ctx, cmd, source.ParseRef(input))
	if err != nil {
		return err
	}

	plaintext, err := src.Bytes()
	if err != nil {
		return err
	}
	log.Debugf("fetched %d bytes from %s", len(plaintext), input)

	passphrase, err := crypt.Passphrase(cmd)
	if err != nil {
		return err
	}
	if passphrase == "" {
		return fmt.Errorf("a passphrase is required to seal")
	}

	sealed, err := crypt.Seal(plaintext, passphrase)
	if err != nil {
		return err
	}

	target, err = util.ExpandPath(target)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(target, ".enc") {
		log.Warnf("output %s lacks the .enc suffix; the loaders key on it", target)
	}

	if err := os.WriteFile(target, sealed, 0o600); err != nil {
		return fmt.Errorf("failed to write sealed output: %w", err)
	}
	log.Debugf("sealed %d bytes to %s", len(sealed), target)

	return nil
}

// sealCommandBuilder constructs the cli.Command for "seal", wiring metadata,
// flags, and the action handler.
func sealCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "seal",
		Usage:     "encrypt a dataset file",
		UsageText: "plssctl seal <input> <output> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			&cli.StringFlag{
				Name:    "passphrase",
				Aliases: []string{"p"},
				Usage:   "passphrase for the envelope",
				Value:   "",
			},
		},
		Action: sealCommandAction,
	}
}
