// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/plssctl/plssctl/internal/log"
	"github.com/plssctl/plssctl/internal/util"
)

// ParseSpec splits a --save value into a database path and a table name.
// The value is path[:table]. When there is no colon, or the table part is
// empty, fallback (usually the command name) is used.
func ParseSpec(spec, fallback string) (string, string) {
	if at := strings.LastIndex(spec, ":"); at >= 0 {
		path, table := spec[:at], spec[at+1:]
		if table == "" {
			table = fallback
		}
		return path, table
	}

	return spec, fallback
}

// Save appends the rendered result set to a SQLite database, creating the
// database file and table on first use. Dataset columns are all stored as
// TEXT. Each invocation stamps its rows with a shared run_id and created_at
// so runs can be told apart later.
func Save(spec, fallback string, cols []string, rows [][]string) error {
	if len(cols) == 0 {
		log.Debugf("save: no columns to persist, skipping")
		return nil
	}

	path, table := ParseSpec(spec, fallback)

	expanded, err := util.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("bad save path %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", expanded)
	if err != nil {
		return fmt.Errorf("failed to open save database %s: %w", expanded, err)
	}
	defer db.Close()

	quoted := make([]string, 0, len(cols))
	for _, col := range cols {
		quoted = append(quoted, quoteIdent(col))
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (run_id TEXT, created_at TEXT, %s TEXT)",
		quoteIdent(table), strings.Join(quoted, " TEXT, "))
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create save table %s: %w", table, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (?, ?%s)",
		quoteIdent(table), strings.Repeat(", ?", len(cols)))

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}

	runID := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	for _, row := range rows {
		args := make([]interface{}, 0, len(cols)+2)
		args = append(args, runID, createdAt)
		for _, v := range row {
			args = append(args, v)
		}

		if _, err := tx.Exec(insert, args...); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("failed to insert save row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save transaction: %w", err)
	}

	log.Debugf("saved %d rows to %s table %s (run %s)", len(rows), expanded, table, runID)

	return nil
}

// quoteIdent double-quotes a SQLite identifier. Dataset headers can carry
// arbitrary text, so embedded quotes are doubled.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
