// Package synth generates fake but internally consistent catalog rows.
package synth

import (
	"iter"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gnames/gnmusic/pkg/catalog"
)

// Genres used for generated tracks.
var Genres = []string{
	"Pop", "Rock", "Hip Hop", "R&B", "Electronic", "Country", "Jazz",
	"Classical", "Indie", "Folk", "Reggae", "Metal",
}

// SingleAlbumName is the album name of generated singles.
const SingleAlbumName = "Single"

// Config sets the shape of generated data.
type Config struct {
	// Rows is the number of tracks to generate.
	Rows int

	// Artists is the number of distinct artists. If zero, there is one
	// artist per 20 rows.
	Artists int

	// Seed makes the output reproducible. Zero means a random seed.
	Seed uint64

	// SinglesRatio is the probability of a track to be a single.
	SinglesRatio float64

	// ExplicitChance is the probability of a track to be explicit.
	ExplicitChance float64

	// MinAlbumSize and MaxAlbumSize limit the number of tracks in an album.
	MinAlbumSize int
	MaxAlbumSize int

	// Now is the end of the release dates range. Release dates fall into
	// the preceding 10 years.
	Now time.Time
}

// NewConfig returns a configuration with defaults for the given number
// of rows.
func NewConfig(rows int) Config {
	return Config{
		Rows:           rows,
		SinglesRatio:   0.25,
		ExplicitChance: 0.2,
		MinAlbumSize:   5,
		MaxAlbumSize:   15,
	}
}

// Generator creates catalog rows.
type Generator struct {
	cfg Config
}

// New creates a Generator. Invalid settings are replaced by defaults.
func New(cfg Config) *Generator {
	if cfg.Rows < 0 {
		cfg.Rows = 0
	}
	if cfg.Artists <= 0 {
		cfg.Artists = max(cfg.Rows/20, 1)
	}
	if cfg.Rows > 0 && cfg.Artists > cfg.Rows {
		cfg.Artists = cfg.Rows
	}
	if cfg.MinAlbumSize < 1 {
		cfg.MinAlbumSize = 1
	}
	if cfg.MaxAlbumSize < cfg.MinAlbumSize {
		cfg.MaxAlbumSize = cfg.MinAlbumSize
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	return &Generator{cfg: cfg}
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// album is the album currently being filled with tracks.
type album struct {
	id    string
	name  string
	date  time.Time
	size  int
	count int
}

// Generate returns a lazy sequence of rows. Every artist gets a
// contiguous block of rows. Albums are filled track by track and share
// their release date. With a non-zero seed every call yields the same
// sequence.
func (g *Generator) Generate() iter.Seq[catalog.Track] {
	return func(yield func(catalog.Track) bool) {
		f := gofakeit.New(g.cfg.Seed)
		now := g.cfg.Now.UTC()
		from := now.AddDate(-10, 0, 0)

		if g.cfg.Rows == 0 {
			return
		}
		base := g.cfg.Rows / g.cfg.Artists
		extra := g.cfg.Rows % g.cfg.Artists

		for i := range g.cfg.Artists {
			num := base
			if i < extra {
				num++
			}
			artistID := f.UUID()
			artistName := f.Name()

			var alb *album
			for range num {
				row := catalog.Track{
					TrackID:    f.UUID(),
					TrackTitle: title(f.Verb(), f.Adjective(), f.Noun()),
					ArtistID:   artistID,
					ArtistName: artistName,
					Genre:      catalog.Some(f.RandomString(Genres)),
				}

				if f.Float64() < g.cfg.SinglesRatio {
					row.IsSingle = true
					row.AlbumName = SingleAlbumName
					row.ReleaseDate = catalog.Some(day(f.DateRange(from, now)))
				} else {
					if alb == nil || alb.count >= alb.size {
						alb = &album{
							id:   f.UUID(),
							name: title(f.Adjective(), f.Noun()),
							date: day(f.DateRange(from, now)),
							size: f.IntRange(g.cfg.MinAlbumSize, g.cfg.MaxAlbumSize),
						}
					}
					alb.count++
					row.AlbumID = catalog.Some(alb.id)
					row.AlbumName = alb.name
					row.ReleaseDate = catalog.Some(alb.date)
				}

				streams := int64(f.IntRange(50_000, 1_000_000_000))
				row.TotalStreams = catalog.Some(streams)
				row.PopularityRating = catalog.Some(popularity(f, streams))
				row.DurationSeconds = catalog.Some(int64(f.IntRange(120, 600)))
				row.IsExplicit = f.Float64() < g.cfg.ExplicitChance

				if !yield(row) {
					return
				}
			}
		}
	}
}

// popularity is loosely tied to streams, with some noise.
func popularity(f *gofakeit.Faker, streams int64) float64 {
	res := round2(float64(streams)/1e7 + f.Float64Range(-1, 5))
	switch {
	case res > 10:
		res = 10
	case res < 1:
		res = round2(f.Float64Range(1, 3))
	}
	return res
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func title(words ...string) string {
	res := strings.Join(words, " ")
	r, size := utf8.DecodeRuneInString(res)
	if r == utf8.RuneError {
		return res
	}
	return string(unicode.ToUpper(r)) + res[size:]
}
