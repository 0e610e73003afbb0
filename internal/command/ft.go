// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/framex"
	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/meta"
)

// ftFrame loads the dataset and keeps (or, with --exclude, drops) the rows
// whose description mentions any of the sought TRS.
func ftFrame(ctx context.Context, cmd *cli.Command) (dataframe.DataFrame, error) {
	sought := splitCommaList(cmd.String("trs"))
	if len(sought) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("--trs requires at least one TRS, e.g. --trs 154n97w14")
	}

	df, _, err := LoadDatasetArg(ctx, cmd, 0)
	if err != nil {
		return df, err
	}

	col, err := ResolveTextColumn(df, cmd)
	if err != nil {
		return df, err
	}

	cfg, err := ParseOptions(cmd)
	if err != nil {
		return df, err
	}

	include := !cmd.Bool("exclude")
	log.Debugf("filtering %s on %v (include=%v)", col, sought, include)

	return framex.FilterByTRS(df, col, sought, include, cfg)
}

// ftCommandAction is the action handler for the "ft" subcommand. It filters
// dataset rows by TRS membership and emits the survivors per common flags.
// ft appends no columns, so there is no schema to dump.
func ftCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"ft",
		nil,
		ftFrame,
	).Run(ctx, cmd)
}

// ftCommandBuilder constructs the cli.Command for "ft", wiring metadata,
// flags, and action handlers.
func ftCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "ft",
		Usage:     "filter rows by TRS",
		UsageText: "plssctl ft <input> --trs <trs>[,<trs>...] [options]",
		Flags: []cli.Flag{
			NewColFlag("ft", meta.Config.Source),
			NameSpacedValueChainFlagFromConfigFile("ft", meta.Config.Source,
				&cli.StringFlag{
					Name:  "trs",
					Usage: "comma-separated TRS to match, e.g. 154n97w14,154n97w15",
				}),
			&cli.BoolFlag{
				Name:  "exclude",
				Usage: "drop matching rows instead of keeping them",
				Value: false,
			},
		},
		Action: ftCommandAction,
		Meta:   meta,
	}).Build()
}
