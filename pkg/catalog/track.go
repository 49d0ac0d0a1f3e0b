// Package catalog describes the flat input table: one row per track with
// artist and album fields repeated on every row.
package catalog

import (
	"database/sql"
	"time"
)

// SinglesAlbumName is the name given to the album that collects all
// singles of an artist.
const SinglesAlbumName = "Singles"

// Track is one row of the input table.
type Track struct {
	// TrackID is the unique key of the row.
	TrackID string

	TrackTitle string

	// ArtistID identifies the artist. Never empty.
	ArtistID string

	ArtistName string

	// AlbumID is missing for singles. After normalization it always
	// holds a value.
	AlbumID sql.Null[string]

	AlbumName string

	// IsSingle marks a track that has no real album.
	IsSingle bool

	Genre sql.Null[string]

	// ReleaseDate is missing when the source cell was empty, the null
	// token or not a date.
	ReleaseDate sql.Null[time.Time]

	DurationSeconds sql.Null[int64]

	PopularityRating sql.Null[float64]

	TotalStreams sql.Null[int64]

	IsExplicit bool
}

// Single returns true if the track has to be placed into the artist's
// "Singles" album. Tracks without an album ID are treated as singles even
// if they are not flagged as such, otherwise they would have no album.
func (t Track) Single() bool {
	return t.IsSingle || !t.AlbumID.Valid || t.AlbumID.V == ""
}

// Some returns a valid sql.Null value.
func Some[T any](v T) sql.Null[T] {
	return sql.Null[T]{V: v, Valid: true}
}
