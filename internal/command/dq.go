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

// descColumns documents the columns dq appends. Each parsed tract becomes
// one output row carrying its source row's columns; ind is the 0-based source
// row index.
type descColumns struct {
	Ind          string `schema:"attr,ind"`
	TRS          string `schema:"attr,trs"`
	Twp          string `schema:"attr,twp"`
	Rge          string `schema:"attr,rge"`
	Sec          string `schema:"attr,sec"`
	Desc         string `schema:"attr,desc"`
	Lots         string `schema:"attr,lots"`
	QQs          string `schema:"attr,qqs"`
	WarningFlags string `schema:"attr,warning_flags"`
	ErrorFlags   string `schema:"attr,error_flags"`
}

// dqFrame loads the dataset, resolves the description column, and explodes
// each row into one row per parsed tract.
func dqFrame(ctx context.Context, cmd *cli.Command) (dataframe.DataFrame, error) {
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

	return framex.ParseDescs(df, col, framex.Options{
		Suffix: cmd.String("suffix"),
		Config: cfg,
	})
}

// dqCommandAction is the action handler for the "dq" subcommand. It parses
// each row's full land description and emits the exploded one-row-per-tract
// frame per common flags.
func dqCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner(
		"dq",
		reflect.TypeOf(descColumns{}),
		dqFrame,
	).Run(ctx, cmd)
}

// dqCommandBuilder constructs the cli.Command for "dq", wiring metadata,
// flags, and action handlers.
func dqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "dq",
		Usage:     "description query",
		UsageText: "plssctl dq <input> [options]",
		Flags: []cli.Flag{
			NewColFlag("dq", meta.Config.Source),
			NewSuffixFlag("dq", meta.Config.Source),
			NewLayoutFlag("dq", meta.Config.Source),
		},
		Action: dqCommandAction,
		Schema: reflect.TypeOf(descColumns{}),
		Meta:   meta,
	}).Build()
}
