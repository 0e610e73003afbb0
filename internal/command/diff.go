// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/framex"
	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/dataset"
	"github.com/plssctl/plssctl/internal/differ"
	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/meta"
)

// diffCommandAction is the action handler for the "diff" subcommand. Both
// datasets are parsed the way dq parses them and the exploded records are
// compared as JSON.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	if ShortCircuitTLDR(ctx, cmd, "diff") {
		return nil
	}

	if cmd.Args().Len() < 2 {
		return fmt.Errorf("diff needs two dataset arguments (see plssctl diff --help)")
	}

	left, err := diffSide(ctx, cmd, 0)
	if err != nil {
		return err
	}

	right, err := diffSide(ctx, cmd, 1)
	if err != nil {
		return err
	}

	return differ.Diff(cmd, left, right, os.Stdout)
}

// diffSide loads and explodes one positional dataset. The sides resolve
// their text column independently, so two differently-shaped exports can
// still be compared.
func diffSide(ctx context.Context, cmd *cli.Command, n int) (dataframe.DataFrame, error) {
	df, ref, err := dataset.Load(ctx, cmd, cmd.Args().Get(n))
	if err != nil {
		return df, err
	}
	log.Debugf("loaded %s: %d rows, %d cols", ref.Path, df.Nrow(), df.Ncol())

	col, err := ResolveTextColumn(df, cmd)
	if err != nil {
		return df, err
	}

	cfg, err := ParseOptions(cmd)
	if err != nil {
		return df, err
	}

	return framex.ParseDescs(df, col, framex.Options{Config: cfg})
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and the action handler.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "diff two parsed datasets",
		UsageText: "plssctl diff <a> <b> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
			NewColFlag("diff", meta.Config.Source),
			NewLayoutFlag("diff", meta.Config.Source),
			NameSpacedValueChainFlagFromConfigFile("diff", meta.Config.Source,
				&cli.StringFlag{
					Name:  "diff-filter",
					Usage: "comma-separated row keys to drop before comparing",
				}),
			NameSpacedValueChainFlagFromConfigFile("diff", meta.Config.Source,
				&cli.StringFlag{
					Name:  "config",
					Usage: "parse config tokens, e.g. 's,e,TRS_desc'",
				}),
			&cli.StringFlag{
				Name:  "ns",
				Usage: "direction assumed for bare township numbers (n or s, default n)",
				Validator: func(value string) error {
					return FlagValidators(value, NSValidator)
				},
			},
			&cli.StringFlag{
				Name:  "ew",
				Usage: "direction assumed for bare range numbers (e or w, default w)",
				Validator: func(value string) error {
					return FlagValidators(value, EWValidator)
				},
			},
		}, NewInputFlags("diff", meta.Config.Source)...),
		Action: diffCommandAction,
	}
}
