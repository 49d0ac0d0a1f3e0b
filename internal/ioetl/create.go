package ioetl

import (
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/lifecycle"
)

// Create creates missing tables of the relational schema and reports
// which tables already existed. It is safe to run many times.
func (e *ETL) Create(ctx context.Context) (lifecycle.SchemaReport, error) {
	var res lifecycle.SchemaReport
	if err := e.cfg.Validate(config.TargetRelational); err != nil {
		return res, err
	}

	sink := e.relationalSink()
	if err := sink.Connect(ctx); err != nil {
		return res, err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			slog.Warn("Cannot close relational sink", "error", err)
		}
	}()

	res, err := sink.EnsureSchema(ctx)
	if err != nil {
		return res, err
	}

	for _, v := range res.Created {
		gn.Message("<em>Created table %s</em>", v)
	}
	for _, v := range res.Existing {
		gn.Message("Table %s already exists", v)
	}
	slog.Info("Schema is ready",
		"engine", e.cfg.Load.RelationalEngine,
		"created", res.Created,
		"existing", res.Existing,
	)
	return res, nil
}
