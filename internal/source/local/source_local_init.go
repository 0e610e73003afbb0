// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/util"
)

type SourceLocalOption = func(ctx context.Context, cmd *cli.Command, so *SourceLocal) error

// FromPath resolves path (tilde, env vars, relative segments) and verifies
// it names an existing file.
func FromPath(path string) SourceLocalOption {
	return func(ctx context.Context, cmd *cli.Command, so *SourceLocal) error {
		expanded, err := util.ExpandExistingFile(path)
		if err != nil {
			return fmt.Errorf("dataset file %s: %w", path, err)
		}

		log.Debugf("NewSourceLocal FromPath(): path = %s", expanded)

		so.Path = expanded
		return nil
	}
}

// NewSourceLocal returns a SourceLocal object that implements the Source
// interface.
func NewSourceLocal(ctx context.Context, cmd *cli.Command, options ...SourceLocalOption) (*SourceLocal, error) {
	so := &SourceLocal{Ctx: ctx, Cmd: cmd}

	for _, opt := range options {
		if err := opt(ctx, cmd, so); err != nil {
			return nil, err
		}
	}

	return so, nil
}
