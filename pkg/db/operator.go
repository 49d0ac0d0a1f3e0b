// Package db defines the contract for PostgreSQL connection management.
package db

import (
	"context"

	"github.com/gnames/gnmusic/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It manages the connection lifecycle and exposes pgxpool.Pool to the
// schema manager and the bulk sink, which need transactions and CopyFrom.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, or nil if not connected.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	HasTables(ctx context.Context) (bool, error)
}
