// Package ioetl runs extract, normalize, transform and load phases over
// a catalog file, creates schemas and generates fake catalogs.
// This is an impure I/O package that wires readers, transformers and
// sinks together.
package ioetl

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnmusic/internal/iocsv"
	"github.com/gnames/gnmusic/internal/ioload"
	"github.com/gnames/gnmusic/internal/iomongo"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/document"
	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/gnames/gnmusic/pkg/transform"
)

// Summary describes a finished load.
type Summary struct {
	Target config.Target

	// Rows is the number of rows read from the input.
	Rows int

	// Relational is set for the relational target.
	Relational lifecycle.LoadReport

	// Documents is set for document targets.
	Documents lifecycle.UpsertResult

	Duration time.Duration
}

// ETL loads a catalog file into one of the targets.
type ETL struct {
	cfg *config.Config

	relationalSink func() lifecycle.RelationalSink
	documentSink   func(collection string) lifecycle.DocumentSink
}

// New creates ETL for the configuration. Sinks are chosen by
// load.relational_engine for the relational target and MongoDB for
// document targets.
func New(cfg *config.Config) *ETL {
	res := &ETL{cfg: cfg}
	res.relationalSink = func() lifecycle.RelationalSink {
		return RelationalSink(cfg)
	}
	res.documentSink = func(collection string) lifecycle.DocumentSink {
		return iomongo.NewSink(cfg.Mongo, collection)
	}
	return res
}

// RelationalSink returns a sink for the configured relational engine.
func RelationalSink(cfg *config.Config) lifecycle.RelationalSink {
	if cfg.Load.RelationalEngine == "sqlite" {
		return ioload.NewSQLiteSink(cfg.SQLite)
	}
	return ioload.NewPostgresSink(cfg.Database)
}

// SinglesIDFunc returns the generator of "Singles" album ids set by
// load.singles_ids.
func SinglesIDFunc(cfg *config.Config) transform.SinglesIDFunc {
	if cfg.Load.SinglesIDs == "stable" {
		return transform.StableSinglesID
	}
	return transform.RandomSinglesID
}

// Load validates settings for the target and runs all phases. Nothing
// is read or written if the configuration is incomplete.
func (e *ETL) Load(ctx context.Context, target config.Target) (Summary, error) {
	res := Summary{Target: target}
	if err := e.cfg.Validate(target); err != nil {
		return res, err
	}

	start := time.Now()
	slog.Info("Starting load", "target", target, "input", e.cfg.Input.Path)

	gn.Info("(1/4) Extracting rows from <em>%s</em>", e.cfg.Input.Path)
	rows, err := iocsv.NewReader(e.cfg.Input).ReadAll(ctx)
	if err != nil {
		return res, err
	}
	res.Rows = len(rows)
	gn.Message("<em>Read %s rows</em>", humanize.Comma(int64(len(rows))))

	gn.Info("(2/4) Normalizing singles...")
	norm := transform.NormalizeSingles(rows, SinglesIDFunc(e.cfg))
	gn.Message(
		"<em>Created %s \"Singles\" albums</em>",
		humanize.Comma(int64(len(norm.SinglesOrder))),
	)

	switch target {
	case config.TargetRelational:
		err = e.loadRelational(ctx, norm, &res)
	default:
		err = e.loadDocuments(ctx, target, norm, &res)
	}
	if err != nil {
		return res, err
	}

	res.Duration = time.Since(start)
	slog.Info("Load complete",
		"target", target,
		"rows", res.Rows,
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	return res, nil
}

func (e *ETL) loadRelational(
	ctx context.Context,
	norm transform.Normalized,
	res *Summary,
) error {
	gn.Info("(3/4) Building artists, albums and tracks...")
	rs := transform.Relational(norm)
	gn.Message(
		"<em>%s artists, %s albums, %s tracks</em>",
		humanize.Comma(int64(len(rs.Artists))),
		humanize.Comma(int64(len(rs.Albums))),
		humanize.Comma(int64(len(rs.Tracks))),
	)

	gn.Info(
		"(4/4) Loading into <em>%s</em> database...",
		e.cfg.Load.RelationalEngine,
	)
	rep, err := ioload.NewRelationalLoader(e.relationalSink()).Load(ctx, rs)
	if err != nil {
		return err
	}
	res.Relational = rep
	return nil
}

func (e *ETL) loadDocuments(
	ctx context.Context,
	target config.Target,
	norm transform.Normalized,
	res *Summary,
) error {
	var docs []document.Document
	gn.Info("(3/4) Building %s documents...", target)
	switch target {
	case config.TargetArtists:
		ads, err := transform.ArtistDocuments(ctx, norm, e.cfg.JobsNumber)
		if err != nil {
			return err
		}
		docs = ioload.Documents(ads)
	case config.TargetTracks:
		docs = ioload.Documents(transform.TrackDocuments(norm))
	}
	gn.Message("<em>Built %s documents</em>", humanize.Comma(int64(len(docs))))

	coll := e.cfg.Collection(target)
	gn.Info("(4/4) Loading into <em>%s</em> collection...", coll)
	ur, err := ioload.NewDocumentLoader(e.documentSink(coll), coll).
		Load(ctx, docs)
	res.Documents = ur
	return err
}

// Report prints the summary of a load to the terminal.
func Report(s Summary) {
	switch s.Target {
	case config.TargetRelational:
		for _, v := range s.Relational.Tables {
			gn.Message("  %s: %s rows", v.Table, humanize.Comma(v.Rows))
		}
	default:
		gn.Message(
			"  matched: %s, modified: %s, upserted: %s",
			humanize.Comma(s.Documents.Matched),
			humanize.Comma(s.Documents.Modified),
			humanize.Comma(s.Documents.Upserted),
		)
	}
	gn.Info(
		"Load of %s rows complete\n\tElapsed time: <em>%s</em>",
		humanize.Comma(int64(s.Rows)),
		gnfmt.TimeString(s.Duration.Seconds()),
	)
}
