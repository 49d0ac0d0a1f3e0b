package synth_test

import (
	"slices"
	"testing"
	"time"

	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/gnames/gnmusic/pkg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func generate(cfg synth.Config) []catalog.Track {
	return slices.Collect(synth.New(cfg).Generate())
}

func TestNew(t *testing.T) {
	tests := []struct {
		msg     string
		cfg     synth.Config
		artists int
	}{
		{"default artists", synth.Config{Rows: 100}, 5},
		{"few rows", synth.Config{Rows: 3}, 1},
		{"explicit", synth.Config{Rows: 100, Artists: 7}, 7},
		{"more artists than rows", synth.Config{Rows: 4, Artists: 10}, 4},
	}
	for _, v := range tests {
		cfg := synth.New(v.cfg).Config()
		assert.Equal(t, v.artists, cfg.Artists, v.msg)
		assert.False(t, cfg.Now.IsZero(), v.msg)
	}
}

func TestGenerateCounts(t *testing.T) {
	cfg := synth.NewConfig(103)
	cfg.Artists = 5
	cfg.Seed = 7
	cfg.Now = now
	rows := generate(cfg)
	require.Len(t, rows, 103)

	artists := make(map[string]int)
	var last string
	var blocks int
	for _, row := range rows {
		artists[row.ArtistID]++
		if row.ArtistID != last {
			blocks++
			last = row.ArtistID
		}
	}
	assert.Len(t, artists, 5)
	assert.Equal(t, 5, blocks, "artists occupy contiguous blocks")
	for _, n := range artists {
		assert.True(t, n == 20 || n == 21)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := synth.NewConfig(50)
	cfg.Seed = 42
	cfg.Now = now
	rows1 := generate(cfg)
	rows2 := generate(cfg)
	assert.Equal(t, rows1, rows2)

	cfg.Seed = 43
	rows3 := generate(cfg)
	assert.NotEqual(t, rows1[0].TrackID, rows3[0].TrackID)
}

func TestGenerateConsistency(t *testing.T) {
	assert := assert.New(t)
	cfg := synth.NewConfig(500)
	cfg.Seed = 1
	cfg.Now = now
	rows := generate(cfg)

	type albumInfo struct {
		name, artist string
		date         time.Time
	}
	albums := make(map[string]albumInfo)
	tracks := make(map[string]struct{})
	var singles int

	for _, row := range rows {
		_, dup := tracks[row.TrackID]
		assert.False(dup, "track ids are unique")
		tracks[row.TrackID] = struct{}{}

		assert.NotEmpty(row.TrackTitle)
		assert.True(row.Genre.Valid)
		assert.Contains(synth.Genres, row.Genre.V)
		assert.GreaterOrEqual(row.DurationSeconds.V, int64(120))
		assert.LessOrEqual(row.DurationSeconds.V, int64(600))
		assert.GreaterOrEqual(row.TotalStreams.V, int64(50_000))
		assert.GreaterOrEqual(row.PopularityRating.V, 1.0)
		assert.LessOrEqual(row.PopularityRating.V, 10.0)
		assert.True(row.ReleaseDate.Valid)
		assert.False(row.ReleaseDate.V.After(now))
		assert.True(row.ReleaseDate.V.After(now.AddDate(-10, 0, -1)))

		if row.IsSingle {
			singles++
			assert.False(row.AlbumID.Valid)
			assert.Equal(synth.SingleAlbumName, row.AlbumName)
			continue
		}

		require.True(t, row.AlbumID.Valid)
		info := albumInfo{row.AlbumName, row.ArtistID, row.ReleaseDate.V}
		if prev, ok := albums[row.AlbumID.V]; ok {
			assert.Equal(prev, info, "album attributes are shared")
		}
		albums[row.AlbumID.V] = info
	}

	assert.Greater(singles, 50)
	assert.Less(singles, 200)
	assert.NotEmpty(albums)
}

func TestGenerateLazy(t *testing.T) {
	cfg := synth.NewConfig(1_000_000)
	cfg.Seed = 3
	var n int
	for range synth.New(cfg).Generate() {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestGenerateEmpty(t *testing.T) {
	rows := generate(synth.Config{})
	assert.Empty(t, rows)
}
