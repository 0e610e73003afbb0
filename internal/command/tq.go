// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/go-gota/gota/dataframe"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/framex"
	"github.com/plssctl/plssctl/internal/meta"
)

// tractColumns documents the columns tq appends to each input row. The cell
// values are ", "-joined lists.
type tractColumns struct {
	Lots         string `schema:"attr,lots"`
	QQs          string `schema:"attr,qqs"`
	WarningFlags string `schema:"attr,warning_flags"`
	ErrorFlags   string `schema:"attr,error_flags"`
}

// tqFrame loads the dataset, resolves the tract-text column, and appends the
// parsed lot/aliquot columns row by row.
func tqFrame(ctx context.Context, cmd *cli.Command) (dataframe.DataFrame, error) {
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

	return framex.ParseTracts(df, col, framex.Options{
		Suffix: cmd.String("suffix"),
		Config: cfg,
	})
}

// tqCommandAction is the action handler for the "tq" subcommand. It parses
// each row's tract text (lots and aliquot quarter-quarters) and emits the
// widened frame per common flags.
func tqCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"tq",
		reflect.TypeOf(tractColumns{}),
		tqFrame,
	).Run(ctx, cmd)
}

// tqCommandBuilder constructs the cli.Command for "tq", wiring metadata,
// flags, and action handlers.
func tqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "tq",
		Usage:     "tract query",
		UsageText: "plssctl tq <input> [options]",
		Flags: []cli.Flag{
			NewColFlag("tq", meta.Config.Source),
			NewSuffixFlag("tq", meta.Config.Source),
		},
		Action: tqCommandAction,
		Schema: reflect.TypeOf(tractColumns{}),
		Meta:   meta,
	}).Build()
}
