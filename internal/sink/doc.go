// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package sink persists rendered result sets. Save appends rows to a SQLite
// table named by the --save flag's path[:table] value, stamping each run
// with a shared run id.
package sink
