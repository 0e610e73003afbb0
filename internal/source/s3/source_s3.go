// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/urfave/cli/v3"

	awsx "github.com/plssctl/plssctl/internal/aws"
)

// SourceS3 reads a dataset document from an S3 object, with a local cache
// keyed by the object URI.
type SourceS3 struct {
	Ctx    context.Context
	Cmd    *cli.Command
	URI    string // s3://bucket/key as given
	Bucket string
	Key    string
	Region string
}

func (so *SourceS3) Bytes() ([]byte, error) {
	if err := PurgeCache(); err != nil {
		log.WithError(err).Warn("failed to purge cache")
	}

	if entry, ok := CacheReader(so); ok {
		return entry.Data, nil
	}

	// Build AWS config (config file, then env; an explicit URI region wins)
	var cfgOpts []awsx.Option
	if so.Region != "" {
		cfgOpts = append(cfgOpts, awsx.WithRegion(so.Region))
	}
	cfg, err := awsx.LoadAppConfig(so.Ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	svc := awsx.NewS3(cfg)
	result, err := svc.GetObject(so.Ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(so.Bucket),
		Key:    awsv2.String(so.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	if err := CacheWriter(so, data); err != nil {
		log.WithError(err).Error("error writing to cache")
	}

	return data, nil
}

func (so *SourceS3) String() string {
	return so.URI
}

func (so *SourceS3) Type() string {
	return "s3"
}
