package ioetl

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/internal/ioprogress"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/document"
	"github.com/gnames/gnmusic/pkg/errcode"
	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/gnames/gnmusic/pkg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	ioprogress.Quiet = true
}

func testConfig(t *testing.T, opts ...config.Option) *config.Config {
	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputPath(filepath.Join(dir, "music.csv")),
		config.OptLoadRelationalEngine("sqlite"),
		config.OptSQLitePath(filepath.Join(dir, "music.sqlite")),
		config.OptMongoURI("mongodb://localhost:27017"),
		config.OptJobsNumber(2),
	})
	cfg.Update(opts)
	return cfg
}

func generate(t *testing.T, cfg *config.Config, rows int) {
	sc := synth.NewConfig(rows)
	sc.Seed = 7
	sc.Artists = 5
	n, err := New(cfg).Generate(context.Background(), sc, cfg.Input.Path)
	require.NoError(t, err)
	require.Equal(t, rows, n)
}

func count(t *testing.T, path, table string) int64 {
	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	defer db.Close()

	var res int64
	err = db.QueryRow("SELECT count(*) FROM " + table).Scan(&res)
	require.NoError(t, err)
	return res
}

func tableRows(rep lifecycle.LoadReport) map[string]int64 {
	res := make(map[string]int64)
	for _, v := range rep.Tables {
		res[v.Table] = v.Rows
	}
	return res
}

func TestGenerateInvalid(t *testing.T) {
	cfg := testConfig(t)
	_, err := New(cfg).Generate(
		context.Background(), synth.NewConfig(0), cfg.Input.Path,
	)
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.GenerateConfigError, gnErr.Code)
}

func TestCreate(t *testing.T) {
	assert := assert.New(t)
	cfg := testConfig(t)
	e := New(cfg)

	rep, err := e.Create(context.Background())
	require.NoError(t, err)
	assert.Equal([]string{"artists", "albums", "tracks"}, rep.Created)

	rep, err = e.Create(context.Background())
	require.NoError(t, err)
	assert.Empty(rep.Created)
	assert.Equal([]string{"artists", "albums", "tracks"}, rep.Existing)
}

func TestLoadRelational(t *testing.T) {
	assert := assert.New(t)
	cfg := testConfig(t, config.OptLoadSinglesIDs("stable"))
	generate(t, cfg, 200)
	ctx := context.Background()

	s, err := New(cfg).Load(ctx, config.TargetRelational)
	require.NoError(t, err)
	assert.Equal(200, s.Rows)
	rows := tableRows(s.Relational)
	assert.Equal(int64(5), rows["artists"])
	assert.Equal(int64(200), rows["tracks"])
	albums := count(t, cfg.SQLite.Path, "albums")
	assert.Equal(rows["albums"], albums)

	_, err = New(cfg).Load(ctx, config.TargetRelational)
	require.NoError(t, err)
	assert.Equal(int64(5), count(t, cfg.SQLite.Path, "artists"))
	assert.Equal(albums, count(t, cfg.SQLite.Path, "albums"))
	assert.Equal(int64(200), count(t, cfg.SQLite.Path, "tracks"))
}

func TestLoadRelationalRandomSingles(t *testing.T) {
	assert := assert.New(t)
	cfg := testConfig(t, config.OptLoadSinglesIDs("random"))
	generate(t, cfg, 200)
	ctx := context.Background()

	_, err := New(cfg).Load(ctx, config.TargetRelational)
	require.NoError(t, err)
	albums := count(t, cfg.SQLite.Path, "albums")

	_, err = New(cfg).Load(ctx, config.TargetRelational)
	require.NoError(t, err)
	// tracks move to the new "Singles" albums, old ones stay
	assert.Greater(count(t, cfg.SQLite.Path, "albums"), albums)
	assert.Equal(int64(200), count(t, cfg.SQLite.Path, "tracks"))
}

// memSink keeps documents in memory.
type memSink struct {
	docs map[string]document.Document
}

func (m *memSink) Connect(context.Context) error { return nil }

func (m *memSink) Close(context.Context) error { return nil }

func (m *memSink) Upsert(
	_ context.Context,
	docs []document.Document,
) (lifecycle.UpsertResult, error) {
	var res lifecycle.UpsertResult
	for _, d := range docs {
		if _, ok := m.docs[d.DocID()]; ok {
			res.Matched++
		} else {
			res.Upserted++
		}
		m.docs[d.DocID()] = d
	}
	return res, nil
}

func TestLoadDocuments(t *testing.T) {
	assert := assert.New(t)
	cfg := testConfig(t)
	generate(t, cfg, 100)

	sinks := make(map[string]*memSink)
	e := New(cfg)
	e.documentSink = func(coll string) lifecycle.DocumentSink {
		if _, ok := sinks[coll]; !ok {
			sinks[coll] = &memSink{docs: make(map[string]document.Document)}
		}
		return sinks[coll]
	}
	ctx := context.Background()

	s, err := e.Load(ctx, config.TargetArtists)
	require.NoError(t, err)
	assert.Equal(int64(5), s.Documents.Upserted)
	var tracks int
	for _, d := range sinks["artists"].docs {
		tracks += d.(document.ArtistDoc).TrackCount()
	}
	assert.Equal(100, tracks)

	s, err = e.Load(ctx, config.TargetTracks)
	require.NoError(t, err)
	assert.Equal(int64(100), s.Documents.Upserted)

	s, err = e.Load(ctx, config.TargetTracks)
	require.NoError(t, err)
	assert.Equal(int64(100), s.Documents.Matched)
	assert.Zero(s.Documents.Upserted)
	assert.Len(sinks["tracks"].docs, 100)
}

func TestLoadInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Mongo.URI = ""
	_, err := New(cfg).Load(context.Background(), config.TargetTracks)
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ConfigError, gnErr.Code)
}

func TestLoadMissingInput(t *testing.T) {
	cfg := testConfig(t)
	_, err := New(cfg).Load(context.Background(), config.TargetRelational)
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.SourceNotFoundError, gnErr.Code)
}

func TestSinglesIDFunc(t *testing.T) {
	cfg := testConfig(t, config.OptLoadSinglesIDs("stable"))
	f := SinglesIDFunc(cfg)
	assert.Equal(t, f("a1"), f("a1"))

	cfg = testConfig(t)
	f = SinglesIDFunc(cfg)
	assert.NotEqual(t, f("a1"), f("a1"))
}
