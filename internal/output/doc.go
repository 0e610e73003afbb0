// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output is the tail of every query pipeline. SliceDiceSpit filters
// the parsed records, applies attribute selection and transforms, sorts, and
// renders the survivors as a text table, csv, json, or yaml, with an optional
// SQLite save of the emitted rows.
package output
