package ioload

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
)

// SQLiteConnectionError is returned when the SQLite file cannot be
// opened.
func SQLiteConnectionError(path string, err error) error {
	msg := `Cannot open SQLite database <em>%s</em>

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Review sqlite.path in config.yaml (GNMUSIC_SQLITE_PATH)`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to open %s: %w", path, err),
	}
}

// LoadBeginError is returned when a transaction cannot start.
func LoadBeginError(err error) error {
	return &gn.Error{
		Code: errcode.LoadBeginError,
		Msg:  "Cannot start load transaction",
		Err:  fmt.Errorf("begin transaction: %w", err),
	}
}

// LoadWriteError is returned when rows of a table are rejected. The whole
// load is rolled back.
func LoadWriteError(table string, err error) error {
	msg := `Cannot write rows to <em>%s</em>, nothing was saved

<em>Possible causes:</em>
  - Constraint violation in the data
  - Tables were created by a different version of the schema`

	return &gn.Error{
		Code: errcode.LoadWriteError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("write %s: %w", table, err),
	}
}

// LoadCommitError is returned when the transaction cannot be committed.
func LoadCommitError(err error) error {
	return &gn.Error{
		Code: errcode.LoadCommitError,
		Msg:  "Cannot commit load transaction, nothing was saved",
		Err:  fmt.Errorf("commit: %w", err),
	}
}

// LoadRollbackError wraps a failed rollback.
func LoadRollbackError(err error) error {
	return &gn.Error{
		Code: errcode.LoadRollbackError,
		Msg:  "Cannot roll back load transaction",
		Err:  fmt.Errorf("rollback: %w", err),
	}
}

// DocumentPartialWriteError is returned when a document load fails after
// some documents were written. Document stores have no multi-document
// transaction here, so written documents stay.
func DocumentPartialWriteError(
	collection string,
	written int64,
	total int,
	err error,
) error {
	msg := `<warning>Only %d of %d documents were written to <em>%s</em></warning>

Loads are idempotent, it is safe to run the load again.`

	return &gn.Error{
		Code: errcode.DocumentPartialWriteError,
		Msg:  msg,
		Vars: []any{written, total, collection},
		Err: fmt.Errorf("partial write to %s (%d of %d): %w",
			collection, written, total, err),
	}
}
