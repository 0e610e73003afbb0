// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/source/local"
	"github.com/plssctl/plssctl/internal/source/s3"
	"github.com/plssctl/plssctl/internal/source/stdin"
)

// Source abstracts where a dataset document's raw bytes come from.
type Source interface {
	// Bytes returns the raw document, still wearing any compression or
	// encryption layers.
	Bytes() ([]byte, error)
	String() string
	Type() string
}

// NewSource returns the appropriate Source implementation for the ref.
func NewSource(ctx context.Context, cmd *cli.Command, ref Ref) (Source, error) {
	switch ref.Scheme {
	case "stdin":
		return stdin.NewSourceStdin(ctx, cmd)
	case "s3":
		return s3.NewSourceS3(ctx, cmd, s3.FromURI(ref.Path))
	case "local":
		return local.NewSourceLocal(ctx, cmd, local.FromPath(ref.Path))
	}

	return nil, fmt.Errorf("unknown source scheme %q", ref.Scheme)
}

// Load fetches ref's document and peels its wrap layers. The result is the
// bare payload in ref's format.
func Load(ctx context.Context, cmd *cli.Command, ref Ref) ([]byte, error) {
	src, err := NewSource(ctx, cmd, ref)
	if err != nil {
		return nil, err
	}
	log.Debugf("source: %s", src)

	data, err := src.Bytes()
	if err != nil {
		return nil, err
	}
	log.Debugf("fetched %d bytes", len(data))

	return Unwrap(cmd, ref, data)
}
