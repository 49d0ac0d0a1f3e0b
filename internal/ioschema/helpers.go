package ioschema

import (
	"context"

	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/gnames/gnmusic/pkg/schema"
)

// executor runs DDL statements on a particular database engine.
type executor interface {
	hasTable(ctx context.Context, table string) (bool, error)
	exec(ctx context.Context, ddl string) error
}

// createTables creates missing tables and indexes in dependency order.
// Statements are of the IF NOT EXISTS kind, so they are applied to
// existing tables as well.
func createTables(
	ctx context.Context,
	ex executor,
) (lifecycle.SchemaReport, error) {
	var res lifecycle.SchemaReport

	for _, m := range schema.AllModels() {
		table := m.TableName()
		exists, err := ex.hasTable(ctx, table)
		if err != nil {
			return res, CreateSchemaError(table, err)
		}

		stmts := append([]string{m.TableDDL()}, m.IndexDDL()...)
		for _, ddl := range stmts {
			if err = ex.exec(ctx, ddl); err != nil {
				return res, CreateSchemaError(table, err)
			}
		}

		if exists {
			res.Existing = append(res.Existing, table)
		} else {
			res.Created = append(res.Created, table)
		}
	}

	return res, nil
}
