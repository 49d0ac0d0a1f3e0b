package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
)

// analyzer is implemented by sinks that can refresh query planner
// statistics after a load.
type analyzer interface {
	Analyze(ctx context.Context, tables []string) error
}

// analyze runs ANALYZE for loaded tables. Failures are logged only,
// the data are already committed.
func analyze(ctx context.Context, sink any, tables []string) {
	a, ok := sink.(analyzer)
	if !ok || len(tables) == 0 {
		return
	}

	start := time.Now()
	if err := a.Analyze(ctx, tables); err != nil {
		slog.Warn("Failed to update table statistics", "error", err)
		return
	}
	slog.Info("Table statistics updated",
		"tables", tables,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
}

// ANALYZE cannot run inside the load transaction, it runs on the pool
// after commit.
func (s *pgSink) Analyze(ctx context.Context, tables []string) error {
	pool := s.operator.Pool()
	if pool == nil {
		return nil
	}
	for _, t := range tables {
		if _, err := pool.Exec(ctx, "ANALYZE "+t); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteSink) Analyze(ctx context.Context, tables []string) error {
	if s.db == nil {
		return nil
	}
	for _, t := range tables {
		if _, err := s.db.ExecContext(ctx, "ANALYZE "+t); err != nil {
			return err
		}
	}
	return nil
}
