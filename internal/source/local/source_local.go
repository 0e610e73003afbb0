// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// SourceLocal reads a dataset document from the local filesystem.
type SourceLocal struct {
	Ctx  context.Context
	Cmd  *cli.Command
	Path string
}

func (so *SourceLocal) Bytes() ([]byte, error) {
	data, err := os.ReadFile(so.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return data, nil
}

func (so *SourceLocal) String() string {
	return "local:" + so.Path
}

func (so *SourceLocal) Type() string {
	return "local"
}
