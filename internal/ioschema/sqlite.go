package ioschema

import (
	"context"
	"database/sql"

	"github.com/gnames/gnmusic/pkg/lifecycle"
)

// sqliteManager implements lifecycle.SchemaManager for SQLite.
type sqliteManager struct {
	db *sql.DB
}

// NewSQLiteManager creates a SchemaManager for an open SQLite database.
func NewSQLiteManager(db *sql.DB) lifecycle.SchemaManager {
	return &sqliteManager{db: db}
}

// Create creates tables of the relational schema that do not
// exist yet.
func (m *sqliteManager) Create(
	ctx context.Context,
) (lifecycle.SchemaReport, error) {
	if m.db == nil {
		return lifecycle.SchemaReport{}, NotConnectedError()
	}
	return createTables(ctx, m)
}

func (m *sqliteManager) hasTable(
	ctx context.Context,
	table string,
) (bool, error) {
	q := `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	var n int
	if err := m.db.QueryRowContext(ctx, q, table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *sqliteManager) exec(ctx context.Context, ddl string) error {
	_, err := m.db.ExecContext(ctx, ddl)
	return err
}
