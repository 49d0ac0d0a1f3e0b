// Package ioschema implements SchemaManager interface for the
// PostgreSQL and SQLite relational sinks. This is an impure I/O
// package.
package ioschema

import (
	"context"

	"github.com/gnames/gnmusic/pkg/db"
	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// for PostgreSQL using GORM on top of the pgx pool.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager for PostgreSQL.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates tables of the relational schema that do not
// exist yet.
func (m *manager) Create(
	ctx context.Context,
) (lifecycle.SchemaReport, error) {
	var res lifecycle.SchemaReport
	pool := m.operator.Pool()
	if pool == nil {
		return res, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return res, GORMConnectionError(err)
	}

	return createTables(ctx, &gormExecutor{db: gormDB})
}

type gormExecutor struct {
	db *gorm.DB
}

func (g *gormExecutor) hasTable(
	ctx context.Context,
	table string,
) (bool, error) {
	return g.db.WithContext(ctx).Migrator().HasTable(table), nil
}

func (g *gormExecutor) exec(ctx context.Context, ddl string) error {
	return g.db.WithContext(ctx).Exec(ddl).Error
}
