package ioload

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gnames/gnmusic/internal/ioprogress"
	"github.com/gnames/gnmusic/internal/ioschema"
	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/gnames/gnmusic/pkg/schema"
	_ "modernc.org/sqlite"
)

// sqliteSink implements lifecycle.RelationalSink for a SQLite file.
type sqliteSink struct {
	path string
	db   *sql.DB
}

// NewSQLiteSink creates a relational sink for SQLite (without
// connecting). The file is created on Connect if it does not exist.
func NewSQLiteSink(cfg config.SQLiteConfig) lifecycle.RelationalSink {
	return &sqliteSink{path: cfg.Path}
}

// sqliteDSN enables foreign keys for every connection.
func sqliteDSN(path string) string {
	return "file:" + path +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (s *sqliteSink) Connect(ctx context.Context) error {
	db, err := sql.Open("sqlite", sqliteDSN(s.path))
	if err != nil {
		return SQLiteConnectionError(s.path, err)
	}
	// SQLite has a single writer.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return SQLiteConnectionError(s.path, err)
	}
	s.db = db
	return nil
}

func (s *sqliteSink) EnsureSchema(
	ctx context.Context,
) (lifecycle.SchemaReport, error) {
	return ioschema.NewSQLiteManager(s.db).Create(ctx)
}

func (s *sqliteSink) Begin(
	ctx context.Context,
) (lifecycle.RelationalTx, error) {
	if s.db == nil {
		return nil, ioschema.NotConnectedError()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *sqliteSink) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// sqliteTx upserts rows with a prepared INSERT ... ON CONFLICT
// statement inside one transaction.
type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Upsert(
	ctx context.Context,
	model schema.Model,
	rows [][]any,
) (int64, error) {
	table := model.TableName()
	cols := schema.Columns(model)
	q := upsertValuesSQL(table, cols, model.KeyColumn())

	stmt, err := t.tx.PrepareContext(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert into %s: %w", table, err)
	}
	defer stmt.Close()

	bar := ioprogress.New(len(rows), fmt.Sprintf("Writing %s: ", table))
	defer bar.Finish()

	var res int64
	args := make([]any, len(cols))
	for _, row := range rows {
		for i, v := range row {
			args[i] = sqliteValue(v)
		}
		r, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return res, fmt.Errorf("upsert into %s: %w", table, err)
		}
		n, _ := r.RowsAffected()
		res += n
		bar.Increment()
	}
	return res, nil
}

func (t *sqliteTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback(context.Context) error {
	return t.tx.Rollback()
}

func upsertValuesSQL(table string, cols []string, key string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table, strings.Join(cols, ", "), marks, key,
		updateSet(cols, key, "excluded"),
	)
}

// sqliteValue stores dates as text in the same layout as input files.
func sqliteValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(catalog.DateLayout)
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return v
	}
}
