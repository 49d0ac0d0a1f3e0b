package transform

import (
	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/gnames/gnmusic/pkg/schema"
)

// RowSets are disjoint row-sets for artists, albums and tracks tables.
type RowSets struct {
	Artists []schema.Artist
	Albums  []schema.Album
	Tracks  []schema.Track
}

// Len returns the total number of rows.
func (r RowSets) Len() int {
	return len(r.Artists) + len(r.Albums) + len(r.Tracks)
}

// Relational splits normalized rows into artists, albums and tracks.
// Every row-set is deduplicated by its key, keeping the first occurrence.
// Genuine albums come before synthesized "Singles" albums, so a
// "Singles" album never replaces a real album with the same id.
func Relational(norm Normalized) RowSets {
	var res RowSets

	artists := make(map[string]struct{})
	albums := make(map[string]struct{})
	tracks := make(map[string]struct{})

	for _, row := range norm.Rows {
		if _, ok := artists[row.ArtistID]; !ok {
			artists[row.ArtistID] = struct{}{}
			res.Artists = append(res.Artists, schema.Artist{
				ArtistID:   row.ArtistID,
				ArtistName: row.ArtistName,
			})
		}

		if !row.IsSingle {
			if _, ok := albums[row.AlbumID.V]; !ok {
				albums[row.AlbumID.V] = struct{}{}
				res.Albums = append(res.Albums, albumRow(row))
			}
		}

		if _, ok := tracks[row.TrackID]; !ok {
			tracks[row.TrackID] = struct{}{}
			res.Tracks = append(res.Tracks, trackRow(row))
		}
	}

	for _, artistID := range norm.SinglesOrder {
		albumID := norm.Singles[artistID]
		if _, ok := albums[albumID]; ok {
			continue
		}
		albums[albumID] = struct{}{}
		res.Albums = append(res.Albums, schema.Album{
			AlbumID:   albumID,
			AlbumName: catalog.SinglesAlbumName,
			ArtistID:  artistID,
		})
	}

	return res
}

func albumRow(row catalog.Track) schema.Album {
	return schema.Album{
		AlbumID:     row.AlbumID.V,
		AlbumName:   row.AlbumName,
		ReleaseDate: row.ReleaseDate,
		ArtistID:    row.ArtistID,
	}
}

func trackRow(row catalog.Track) schema.Track {
	return schema.Track{
		TrackID:          row.TrackID,
		TrackTitle:       row.TrackTitle,
		DurationSeconds:  row.DurationSeconds,
		IsExplicit:       row.IsExplicit,
		Genre:            row.Genre,
		PopularityRating: row.PopularityRating,
		TotalStreams:     row.TotalStreams,
		AlbumID:          row.AlbumID.V,
		ArtistID:         row.ArtistID,
	}
}
