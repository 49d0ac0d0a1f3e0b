package ioload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gnmusic/internal/iodb"
	"github.com/gnames/gnmusic/internal/ioprogress"
	"github.com/gnames/gnmusic/internal/ioschema"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/db"
	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/gnames/gnmusic/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// pgSink implements lifecycle.RelationalSink for PostgreSQL.
type pgSink struct {
	cfg      config.DatabaseConfig
	operator db.Operator
}

// NewPostgresSink creates a relational sink for PostgreSQL
// (without connecting).
func NewPostgresSink(cfg config.DatabaseConfig) lifecycle.RelationalSink {
	return &pgSink{cfg: cfg, operator: iodb.NewPgxOperator()}
}

func (s *pgSink) Connect(ctx context.Context) error {
	return s.operator.Connect(ctx, &s.cfg)
}

func (s *pgSink) EnsureSchema(
	ctx context.Context,
) (lifecycle.SchemaReport, error) {
	has, err := s.operator.HasTables(ctx)
	if err != nil {
		return lifecycle.SchemaReport{}, err
	}
	if !has {
		slog.Info("Database is empty", "database", s.cfg.Database)
	}
	return ioschema.NewManager(s.operator).Create(ctx)
}

func (s *pgSink) Begin(ctx context.Context) (lifecycle.RelationalTx, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return nil, iodb.NotConnectedError()
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgTx{tx: tx, batchSize: max(s.cfg.BatchSize, 1)}, nil
}

func (s *pgSink) Close() error {
	return s.operator.Close()
}

// pgTx upserts rows with COPY into a temporary staging table followed
// by INSERT ... ON CONFLICT DO UPDATE into the target table.
type pgTx struct {
	tx        pgx.Tx
	batchSize int
}

func (t *pgTx) Upsert(
	ctx context.Context,
	model schema.Model,
	rows [][]any,
) (int64, error) {
	table := model.TableName()
	cols := schema.Columns(model)
	tmp := "tmp_" + table

	q := fmt.Sprintf(
		`CREATE TEMP TABLE IF NOT EXISTS %s (LIKE %s INCLUDING DEFAULTS)
		ON COMMIT DROP`, tmp, table)
	if _, err := t.tx.Exec(ctx, q); err != nil {
		return 0, fmt.Errorf("create staging table %s: %w", tmp, err)
	}
	if _, err := t.tx.Exec(ctx, "TRUNCATE "+tmp); err != nil {
		return 0, fmt.Errorf("truncate staging table %s: %w", tmp, err)
	}

	bar := ioprogress.New(len(rows), fmt.Sprintf("Copying %s: ", table))
	defer bar.Finish()

	for i := 0; i < len(rows); i += t.batchSize {
		end := min(i+t.batchSize, len(rows))
		_, err := t.tx.CopyFrom(
			ctx,
			pgx.Identifier{tmp},
			cols,
			pgx.CopyFromRows(rows[i:end]),
		)
		if err != nil {
			return 0, fmt.Errorf("copy into %s: %w", tmp, err)
		}
		bar.Add(end - i)
	}

	tag, err := t.tx.Exec(ctx, upsertFromSQL(table, tmp, cols, model.KeyColumn()))
	if err != nil {
		return 0, fmt.Errorf("upsert into %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}

func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// upsertFromSQL moves rows from the staging table to the target table,
// replacing rows with the same key.
func upsertFromSQL(table, tmp string, cols []string, key string) string {
	list := strings.Join(cols, ", ")
	return fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT %s FROM %s ON CONFLICT (%s) DO UPDATE SET %s",
		table, list, list, tmp, key, updateSet(cols, key, "EXCLUDED"),
	)
}

// updateSet lists assignments of all non-key columns from the
// conflicting row.
func updateSet(cols []string, key, excluded string) string {
	var res []string
	for _, c := range cols {
		if c == key {
			continue
		}
		res = append(res, fmt.Sprintf("%s = %s.%s", c, excluded, c))
	}
	return strings.Join(res, ", ")
}
