// Package transform reshapes flat catalog rows into normalized relational
// row-sets and denormalized documents. All functions are pure, so the same
// input always yields the same output for a given singles id generator.
package transform

import (
	"database/sql"
	"time"

	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// SinglesIDFunc returns an album id for the "Singles" album of an artist.
// It is called once per artist per normalization.
type SinglesIDFunc func(artistID string) string

// RandomSinglesID generates a new random id on every call. Ids stay the
// same within one run, but differ between runs.
func RandomSinglesID(string) string {
	return uuid.NewString()
}

// StableSinglesID derives the id from the artist id, so repeated runs over
// the same data produce the same "Singles" albums.
func StableSinglesID(artistID string) string {
	return gnuuid.New("singles:" + artistID).String()
}

// Normalized contains rows where every track belongs to an album.
type Normalized struct {
	// Rows are copies of input rows. Singles have their album_id replaced
	// by the id of the artist's "Singles" album, their album name set to
	// "Singles" and release date removed.
	Rows []catalog.Track

	// Singles maps artist_id to the id of the artist's "Singles" album.
	Singles map[string]string

	// SinglesOrder lists artists with singles in order of first appearance.
	SinglesOrder []string
}

// NormalizeSingles assigns a synthetic "Singles" album to every artist
// that has at least one single and moves all singles of the artist into
// it. Rows that are not singles are kept unchanged. A row without an
// album_id is treated as a single. Input rows are not modified.
func NormalizeSingles(
	rows []catalog.Track,
	newID SinglesIDFunc,
) Normalized {
	if newID == nil {
		newID = RandomSinglesID
	}

	res := Normalized{
		Rows:    make([]catalog.Track, len(rows)),
		Singles: make(map[string]string),
	}

	for i, row := range rows {
		if row.Single() {
			id, ok := res.Singles[row.ArtistID]
			if !ok {
				id = newID(row.ArtistID)
				res.Singles[row.ArtistID] = id
				res.SinglesOrder = append(res.SinglesOrder, row.ArtistID)
			}
			row.IsSingle = true
			row.AlbumID = catalog.Some(id)
			row.AlbumName = catalog.SinglesAlbumName
			row.ReleaseDate = sql.Null[time.Time]{}
		}
		res.Rows[i] = row
	}

	return res
}
