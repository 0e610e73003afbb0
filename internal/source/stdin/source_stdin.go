// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stdin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// SourceStdin reads a dataset document from standard input.
type SourceStdin struct {
	Ctx context.Context
	Cmd *cli.Command
	// Reader is read in place of os.Stdin when set.
	Reader io.Reader
}

func (so *SourceStdin) Bytes() ([]byte, error) {
	r := so.Reader
	if r == nil {
		r = os.Stdin
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func (so *SourceStdin) String() string {
	return "stdin"
}

func (so *SourceStdin) Type() string {
	return "stdin"
}

// NewSourceStdin returns a SourceStdin object that implements the Source
// interface.
func NewSourceStdin(ctx context.Context, cmd *cli.Command) (*SourceStdin, error) {
	return &SourceStdin{Ctx: ctx, Cmd: cmd}, nil
}
