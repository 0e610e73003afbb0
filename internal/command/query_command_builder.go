// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/meta"
)

// QueryCommandBuilder is a helper that constructs a cli.Command for the
// dataset query subcommands (tq, dq, ft, xt) using a consistent pattern.
// It accepts the command name, usage text, optional UsageText, custom flags,
// the action handler, the appended-column schema type, and meta. The builder
// automatically wires metadata, adds the tldr/schema flags, applies the
// global and input flag sets, and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Schema    reflect.Type
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{tldrFlag}, qcb.Flags...)
	if qcb.Schema != nil {
		flags = append(flags, schemaFlag)
	}
	flags = append(flags, NewInputFlags(qcb.Name, qcb.Meta.Config.Source)...)
	flags = append(flags, NewGlobalFlags(qcb.Name, qcb.Meta.Config.Source)...)

	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}
