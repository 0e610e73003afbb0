// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/go-gota/gota/dataframe"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/config"
	"github.com/plssctl/plssctl/internal/log"
)

// QueryActionRunner encapsulates the common query action pattern for the
// dataset subcommands. It handles steps 1-3 and 5 (GetMeta, short-circuit
// checks, attribute building, and output emission), with step 4 (frame
// production) provided by FrameFn.
type QueryActionRunner struct {
	CommandName string
	SchemaType  reflect.Type
	FrameFn     func(context.Context, *cli.Command) (dataframe.DataFrame, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	// Step 1: GetMeta + debug.
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = qar.CommandName

	// Step 2: Short-circuit checks.
	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}
	if qar.SchemaType != nil && DumpSchemaIfRequested(cmd, qar.SchemaType) {
		return nil
	}

	// Step 3: Produce the result frame.
	df, err := qar.FrameFn(ctx, cmd)
	if err != nil {
		return err
	}

	// Step 4: BuildAttrs + debug. The frame's columns are the defaults, in
	// frame order; --attrs extras override them.
	attrs := BuildAttrs(cmd, df.Names()...)
	log.Debugf("attrs: %v", attrs)

	// Step 5: Emit + return.
	return EmitFrame(df, attrs, cmd)
}

// NewQueryActionRunner creates a QueryActionRunner with the provided
// configuration. It's a convenience factory that reduces boilerplate in
// individual command files.
func NewQueryActionRunner(
	commandName string,
	schemaType reflect.Type,
	frameFn func(context.Context, *cli.Command) (dataframe.DataFrame, error),
) *QueryActionRunner {
	return &QueryActionRunner{
		CommandName: commandName,
		SchemaType:  schemaType,
		FrameFn:     frameFn,
	}
}
