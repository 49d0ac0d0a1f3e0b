package ioload

import (
	"context"
	"log/slog"

	"github.com/gnames/gnmusic/pkg/document"
	"github.com/gnames/gnmusic/pkg/lifecycle"
)

// documentLoader implements lifecycle.DocumentLoader.
type documentLoader struct {
	tracker
	sink       lifecycle.DocumentSink
	collection string
}

// NewDocumentLoader creates a loader that upserts documents to the sink.
// The collection name is used in messages only.
func NewDocumentLoader(
	sink lifecycle.DocumentSink,
	collection string,
) lifecycle.DocumentLoader {
	return &documentLoader{sink: sink, collection: collection}
}

// Load upserts documents by their identity. Empty input does nothing,
// not even a connection. A failure after some documents were written
// returns DocumentPartialWriteError with counts of written documents.
func (l *documentLoader) Load(
	ctx context.Context,
	docs []document.Document,
) (lifecycle.UpsertResult, error) {
	var res lifecycle.UpsertResult
	if len(docs) == 0 {
		slog.Info("No documents to load", "collection", l.collection)
		return res, nil
	}

	if err := l.sink.Connect(ctx); err != nil {
		return res, err
	}
	l.set(lifecycle.StateConnected)
	defer func() {
		if err := l.sink.Close(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Cannot close document sink", "error", err)
		}
		l.set(lifecycle.StateClosed)
	}()

	l.set(lifecycle.StateWriting)
	res, err := l.sink.Upsert(ctx, docs)
	if err != nil {
		l.set(lifecycle.StateFailed)
		if res.Total() > 0 {
			slog.Warn("Documents were written partially",
				"collection", l.collection,
				"written", res.Total(),
				"total", len(docs),
				"error", err,
			)
			return res, DocumentPartialWriteError(
				l.collection, res.Total(), len(docs), err,
			)
		}
		return res, err
	}

	l.set(lifecycle.StateCommitted)
	slog.Info("Upserted documents",
		"collection", l.collection,
		"matched", res.Matched,
		"modified", res.Modified,
		"upserted", res.Upserted,
	)
	return res, nil
}

// Documents converts a slice of concrete documents for Load.
func Documents[D document.Document](docs []D) []document.Document {
	res := make([]document.Document, len(docs))
	for i := range docs {
		res[i] = docs[i]
	}
	return res
}
