// Package iomongo implements the document sink on top of MongoDB.
package iomongo

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/document"
	"github.com/gnames/gnmusic/pkg/lifecycle"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// sink implements lifecycle.DocumentSink for one MongoDB collection.
type sink struct {
	cfg        config.MongoConfig
	collection string
	client     *mongo.Client
	coll       *mongo.Collection
}

// NewSink creates a DocumentSink writing to the named collection
// (without connecting).
func NewSink(
	cfg config.MongoConfig,
	collection string,
) lifecycle.DocumentSink {
	return &sink{cfg: cfg, collection: collection}
}

// Connect connects to MongoDB and verifies the connection.
func (s *sink) Connect(ctx context.Context) error {
	timeout := time.Duration(s.cfg.TimeoutSec) * time.Second
	opts := options.Client().
		ApplyURI(s.cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return ConnectionError(s.cfg.Database, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return ConnectionError(s.cfg.Database, err)
	}

	s.client = client
	s.coll = client.Database(s.cfg.Database).Collection(s.collection)
	return nil
}

// Upsert replaces documents by their _id, or inserts them if absent.
// Documents are sent in ordered bulk writes of BatchSize documents.
// MongoDB has no multi-document atomicity here: on failure documents
// from previous batches, and from the failed batch before the failing
// document, stay written. Their counts are returned with the error.
func (s *sink) Upsert(
	ctx context.Context,
	docs []document.Document,
) (lifecycle.UpsertResult, error) {
	var res lifecycle.UpsertResult
	if s.coll == nil {
		return res, NotConnectedError()
	}

	batchSize := max(s.cfg.BatchSize, 1)
	opts := options.BulkWrite().SetOrdered(true)

	for i := 0; i < len(docs); i += batchSize {
		end := min(i+batchSize, len(docs))
		models := make([]mongo.WriteModel, 0, end-i)
		for _, doc := range docs[i:end] {
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.D{{Key: "_id", Value: doc.DocID()}}).
				SetReplacement(doc).
				SetUpsert(true))
		}

		bwr, err := s.coll.BulkWrite(ctx, models, opts)
		if bwr != nil {
			res = res.Add(lifecycle.UpsertResult{
				Matched:  bwr.MatchedCount,
				Modified: bwr.ModifiedCount,
				Upserted: bwr.UpsertedCount,
			})
		}
		if err != nil {
			return res, WriteError(s.collection, i, err)
		}
		slog.Debug("Upserted documents batch",
			"collection", s.collection, "from", i, "to", end)
	}

	return res, nil
}

// Close disconnects from MongoDB.
func (s *sink) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.coll = nil
	return err
}
