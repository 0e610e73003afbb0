// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source fetches dataset documents. ParseRef classifies a command's
// input argument (stdin, s3:// URI, or local path, plus compression and
// encryption wrap layers and the payload format), NewSource dispatches to
// the matching fetcher subpackage, and Load runs the whole chain down to
// the bare payload bytes.
package source
