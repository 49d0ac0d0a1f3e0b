package iomongo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/internal/iomongo"
	"github.com/gnames/gnmusic/internal/iotesting"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/document"
	"github.com/gnames/gnmusic/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConnected(t *testing.T) {
	s := iomongo.NewSink(config.New().Mongo, "artists")
	_, err := s.Upsert(context.Background(), []document.Document{
		document.ArtistDoc{ID: "a1"},
	})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MongoNotConnectedError, gnErr.Code)
	assert.NoError(t, s.Close(context.Background()))
}

func TestWriteError(t *testing.T) {
	cause := errors.New("duplicate")
	gnErr := iomongo.WriteError("tracks", 20, cause).(*gn.Error)
	assert.Equal(t, errcode.DocumentWriteError, gnErr.Code)
	assert.Equal(t, []any{"tracks", 20}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, cause)
}

func TestUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	cfg := iotesting.MongoConfig(t)
	cfg.BatchSize = 2
	ctx := context.Background()

	s := iomongo.NewSink(*cfg, "artists_test")
	require.NoError(t, s.Connect(ctx))
	defer s.Close(ctx)

	docs := []document.Document{
		document.ArtistDoc{ID: "test-a1", ArtistName: "One"},
		document.ArtistDoc{ID: "test-a2", ArtistName: "Two"},
		document.ArtistDoc{ID: "test-a3", ArtistName: "Three"},
	}
	_, err := s.Upsert(ctx, docs)
	require.NoError(t, err)

	docs[0] = document.ArtistDoc{ID: "test-a1", ArtistName: "One again"}
	res, err := s.Upsert(ctx, docs)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Matched)
	assert.Equal(t, int64(1), res.Modified)
	assert.Zero(t, res.Upserted)
}
