// Package lifecycle defines contracts between the pure core and the
// storage backends: schema management, bulk sinks and loaders.
package lifecycle

import "context"

// SchemaManager defines the interface for relational schema management.
// Tables are created only when absent, so it is safe to run it many times.
type SchemaManager interface {
	// Create creates missing tables and their indexes in foreign key
	// dependency order.
	Create(ctx context.Context) (SchemaReport, error)
}

// SchemaReport tells which tables were created and which existed before.
type SchemaReport struct {
	Created  []string
	Existing []string
}
