// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the plssctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// allow short if-style local cfg; no actual outer cfg
	cfg2, _ := config.Load() //nolint
	cfg2.Namespace = ns
	config.Config.Namespace = ns

	meta := meta.Meta{
		Args:    args,
		Config:  cfg2,
		Context: ctx,
		Started: time.Now(),
	}

	app := &cli.Command{
		Name:  "plssctl",
		Usage: "PLSS Land Description Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "plssctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		tqCommandBuilder(meta),
		dqCommandBuilder(meta),
		ftCommandBuilder(meta),
		xtCommandBuilder(meta),
		diCommandBuilder(meta),
		diffCommandBuilder(meta),
		sealCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
