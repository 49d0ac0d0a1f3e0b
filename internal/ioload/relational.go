// Package ioload writes transformed catalog data to relational and
// document sinks. This is an impure I/O package that implements
// loader contracts defined in pkg/lifecycle.
package ioload

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/gnames/gnmusic/pkg/schema"
	"github.com/gnames/gnmusic/pkg/transform"
)

// tracker keeps the state of a loader and the history of its
// transitions.
type tracker struct {
	mu     sync.Mutex
	states []lifecycle.State
}

func (t *tracker) set(s lifecycle.State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states = append(t.states, s)
}

// State returns the current state.
func (t *tracker) State() lifecycle.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.states) == 0 {
		return lifecycle.StateDisconnected
	}
	return t.states[len(t.states)-1]
}

func (t *tracker) history() []lifecycle.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]lifecycle.State(nil), t.states...)
}

// relationalLoader implements lifecycle.RelationalLoader.
type relationalLoader struct {
	tracker
	sink lifecycle.RelationalSink
}

// NewRelationalLoader creates a loader that writes row-sets to the sink.
func NewRelationalLoader(
	sink lifecycle.RelationalSink,
) lifecycle.RelationalLoader {
	return &relationalLoader{sink: sink}
}

// Load creates missing tables and writes artists, albums and tracks, in
// this order, in one transaction. Empty row-sets are skipped. On any
// failure the transaction is rolled back. The connection is closed
// regardless of the outcome.
func (l *relationalLoader) Load(
	ctx context.Context,
	rs transform.RowSets,
) (lifecycle.LoadReport, error) {
	var res lifecycle.LoadReport

	if err := l.sink.Connect(ctx); err != nil {
		return res, err
	}
	l.set(lifecycle.StateConnected)
	defer func() {
		if err := l.sink.Close(); err != nil {
			slog.Warn("Cannot close relational sink", "error", err)
		}
		l.set(lifecycle.StateClosed)
	}()

	rep, err := l.sink.EnsureSchema(ctx)
	if err != nil {
		l.set(lifecycle.StateFailed)
		return res, err
	}
	if len(rep.Created) > 0 {
		slog.Info("Created tables", "tables", rep.Created)
	}

	tx, err := l.sink.Begin(ctx)
	if err != nil {
		l.set(lifecycle.StateFailed)
		return res, LoadBeginError(err)
	}
	l.set(lifecycle.StateWriting)

	sets := []struct {
		model schema.Model
		rows  [][]any
	}{
		{schema.Artist{}, schema.Rows(rs.Artists)},
		{schema.Album{}, schema.Rows(rs.Albums)},
		{schema.Track{}, schema.Rows(rs.Tracks)},
	}

	for _, v := range sets {
		table := v.model.TableName()
		if len(v.rows) == 0 {
			slog.Info("Skipping empty row-set", "table", table)
			continue
		}

		n, err := tx.Upsert(ctx, v.model, v.rows)
		if err != nil {
			l.rollback(ctx, tx)
			return lifecycle.LoadReport{}, LoadWriteError(table, err)
		}
		slog.Info("Upserted rows", "table", table, "rows", n)
		res.Tables = append(res.Tables, lifecycle.TableCount{
			Table: table,
			Rows:  n,
		})
	}

	if err = tx.Commit(ctx); err != nil {
		l.rollback(ctx, tx)
		return lifecycle.LoadReport{}, LoadCommitError(err)
	}
	l.set(lifecycle.StateCommitted)

	tables := make([]string, len(res.Tables))
	for i, v := range res.Tables {
		tables[i] = v.Table
	}
	analyze(ctx, l.sink, tables)
	return res, nil
}

func (l *relationalLoader) rollback(
	ctx context.Context,
	tx lifecycle.RelationalTx,
) {
	l.set(lifecycle.StateFailed)
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil {
		slog.Error("Rollback failed", "error", LoadRollbackError(err))
	}
}
