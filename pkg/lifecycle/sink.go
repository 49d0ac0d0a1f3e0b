package lifecycle

import (
	"context"

	"github.com/gnames/gnmusic/pkg/document"
	"github.com/gnames/gnmusic/pkg/schema"
)

// RelationalSink persists row-sets of the normalized schema.
type RelationalSink interface {
	// Connect opens the connection to the database.
	Connect(ctx context.Context) error

	// EnsureSchema creates tables that do not exist yet.
	EnsureSchema(ctx context.Context) (SchemaReport, error)

	// Begin starts a transaction. All upserts of a load happen inside
	// one transaction.
	Begin(ctx context.Context) (RelationalTx, error)

	// Close releases the connection.
	Close() error
}

// RelationalTx is a transaction of a RelationalSink.
type RelationalTx interface {
	// Upsert writes rows to the table of the model using the fastest bulk
	// path of the database. Rows with existing keys are replaced. Values
	// in rows follow the order of schema.Columns(model).
	Upsert(ctx context.Context, model schema.Model, rows [][]any) (int64, error)

	// Commit makes all upserts of the transaction durable.
	Commit(ctx context.Context) error

	// Rollback discards all upserts of the transaction.
	Rollback(ctx context.Context) error
}

// DocumentSink persists documents to one collection.
type DocumentSink interface {
	// Connect opens the connection to the document store.
	Connect(ctx context.Context) error

	// Upsert replaces documents with the same identity or inserts them
	// if absent. On failure the result holds counts of the documents that
	// were applied before the failure.
	Upsert(ctx context.Context, docs []document.Document) (UpsertResult, error)

	// Close releases the connection.
	Close(ctx context.Context) error
}

// UpsertResult contains counts reported by a document store.
type UpsertResult struct {
	// Matched is the number of documents that replaced existing ones.
	Matched int64

	// Modified is the number of replaced documents whose content changed.
	Modified int64

	// Upserted is the number of inserted documents.
	Upserted int64
}

// Add sums two results.
func (r UpsertResult) Add(other UpsertResult) UpsertResult {
	return UpsertResult{
		Matched:  r.Matched + other.Matched,
		Modified: r.Modified + other.Modified,
		Upserted: r.Upserted + other.Upserted,
	}
}

// Total is the number of documents written.
func (r UpsertResult) Total() int64 {
	return r.Matched + r.Upserted
}
