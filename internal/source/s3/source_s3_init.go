// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/config"
)

type SourceS3Option = func(ctx context.Context, cmd *cli.Command, so *SourceS3) error

// FromURI splits an s3://bucket/key URI into its parts.
func FromURI(uri string) SourceS3Option {
	return func(ctx context.Context, cmd *cli.Command, so *SourceS3) error {
		rest, ok := strings.CutPrefix(uri, "s3://")
		if !ok {
			return fmt.Errorf("not an s3 URI: %s", uri)
		}

		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return fmt.Errorf("s3 URI must be s3://bucket/key: %s", uri)
		}

		log.Debugf("NewSourceS3 FromURI(): bucket = %s, key = %s", bucket, key)

		so.URI = uri
		so.Bucket = bucket
		so.Key = key
		return nil
	}
}

// NewSourceS3 returns a SourceS3 object that implements the Source
// interface.
func NewSourceS3(ctx context.Context, cmd *cli.Command, options ...SourceS3Option) (*SourceS3, error) {
	options = append([]SourceS3Option{WithDefaults()}, options...)

	so := &SourceS3{Ctx: ctx, Cmd: cmd}

	for _, opt := range options {
		if err := opt(ctx, cmd, so); err != nil {
			return nil, err
		}
	}

	return so, nil
}

func WithDefaults() SourceS3Option {
	return func(ctx context.Context, cmd *cli.Command, so *SourceS3) error {
		region, _ := config.GetString("s3.region", "")
		so.Region = region
		return nil
	}
}

// WithRegion overrides the region from config.
func WithRegion(region string) SourceS3Option {
	return func(ctx context.Context, cmd *cli.Command, so *SourceS3) error {
		if region != "" {
			so.Region = region
		}
		return nil
	}
}
