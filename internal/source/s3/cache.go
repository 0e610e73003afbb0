// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"github.com/plssctl/plssctl/internal/cacheutil"
	"github.com/plssctl/plssctl/internal/config"
)

// CacheEntryPath returns the path to the cache entry for the source, if it
// exists. The cache is organized by scheme and then bucket. The full URI is
// hashed and used as the filename.
func CacheEntryPath(so *SourceS3) (string, bool) {
	p, exists := cacheutil.EntryPath([]string{"s3", so.Bucket}, so.URI)
	if !exists {
		return "", false
	}
	return p, true
}

// CacheReader reads the cache entry for the source, if it exists. If the
// cache is disabled, or the entry does not exist, the second return value
// will be false.
func CacheReader(so *SourceS3) (*cacheutil.Entry, bool) {
	return cacheutil.Read([]string{"s3", so.Bucket}, so.URI)
}

func CacheWriter(so *SourceS3, data []byte) error {
	return cacheutil.Write([]string{"s3", so.Bucket}, so.URI, data)
}

func PurgeCache() error {
	cleanHours, _ := config.GetInt("cache.clean")
	return cacheutil.Purge(cleanHours)
}
