package lifecycle

import (
	"context"

	"github.com/gnames/gnmusic/pkg/document"
	"github.com/gnames/gnmusic/pkg/transform"
)

// RelationalLoader writes artists, albums and tracks row-sets, in this
// order, in one transaction.
type RelationalLoader interface {
	// Load writes row-sets. Either all of them are committed, or none.
	Load(ctx context.Context, rs transform.RowSets) (LoadReport, error)

	// State returns the current state of the loader.
	State() State
}

// DocumentLoader upserts documents by their identity.
type DocumentLoader interface {
	// Load upserts documents. Empty input is a no-op.
	Load(ctx context.Context, docs []document.Document) (UpsertResult, error)

	// State returns the current state of the loader.
	State() State
}

// TableCount is the number of rows written to a table.
type TableCount struct {
	Table string
	Rows  int64
}

// LoadReport describes a committed relational load.
type LoadReport struct {
	Tables []TableCount
}

// Total is the number of rows written to all tables.
func (r LoadReport) Total() int64 {
	var res int64
	for _, v := range r.Tables {
		res += v.Rows
	}
	return res
}
