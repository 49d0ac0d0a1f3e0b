package transform

import (
	"context"
	"database/sql"

	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/gnames/gnmusic/pkg/document"
	"golang.org/x/sync/errgroup"
)

// artistGroup keeps rows of one artist grouped by album in order of
// first appearance.
type artistGroup struct {
	id     string
	name   string
	albums []*albumGroup
	index  map[string]int
}

type albumGroup struct {
	id     string
	tracks []catalog.Track
}

// groupByArtist performs two-level grouping: by artist_id, then by
// album_id. Keys keep the order of their first occurrence.
func groupByArtist(rows []catalog.Track) []*artistGroup {
	var res []*artistGroup
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.ArtistID]
		if !ok {
			i = len(res)
			index[row.ArtistID] = i
			res = append(res, &artistGroup{
				id:    row.ArtistID,
				name:  row.ArtistName,
				index: make(map[string]int),
			})
		}
		ag := res[i]

		j, ok := ag.index[row.AlbumID.V]
		if !ok {
			j = len(ag.albums)
			ag.index[row.AlbumID.V] = j
			ag.albums = append(ag.albums, &albumGroup{id: row.AlbumID.V})
		}
		ag.albums[j].tracks = append(ag.albums[j].tracks, row)
	}
	return res
}

// ArtistDocuments builds one artist-centric document per artist. Albums
// are nested inside artists and tracks inside albums. Artists are
// independent from each other, so documents are built concurrently by up
// to jobs workers. The order of documents, albums and tracks follows the
// first appearance of their keys in the input.
func ArtistDocuments(
	ctx context.Context,
	norm Normalized,
	jobs int,
) ([]document.ArtistDoc, error) {
	groups := groupByArtist(norm.Rows)
	res := make([]document.ArtistDoc, len(groups))
	if jobs < 1 {
		jobs = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, ag := range groups {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res[i] = artistDoc(ag)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, TransformCancelledError(err)
	}
	return res, nil
}

func artistDoc(ag *artistGroup) document.ArtistDoc {
	res := document.ArtistDoc{
		ID:         ag.id,
		ArtistName: ag.name,
		Albums:     make([]document.AlbumDoc, 0, len(ag.albums)),
	}

	for _, alb := range ag.albums {
		first := alb.tracks[0]
		ad := document.AlbumDoc{
			AlbumID:     alb.id,
			AlbumName:   first.AlbumName,
			ReleaseDate: ptr(first.ReleaseDate),
			Tracks:      make([]document.TrackDoc, len(alb.tracks)),
		}
		for i, row := range alb.tracks {
			ad.Tracks[i] = document.TrackDoc{
				TrackID:          row.TrackID,
				TrackTitle:       row.TrackTitle,
				DurationSeconds:  ptr(row.DurationSeconds),
				IsExplicit:       row.IsExplicit,
				Genre:            ptr(row.Genre),
				PopularityRating: ptr(row.PopularityRating),
				TotalStreams:     ptr(row.TotalStreams),
			}
		}
		res.Albums = append(res.Albums, ad)
	}
	return res
}

// TrackDocuments builds one self-contained document per input row with
// artist and album summaries embedded.
func TrackDocuments(norm Normalized) []document.TrackCentric {
	res := make([]document.TrackCentric, len(norm.Rows))
	for i, row := range norm.Rows {
		res[i] = document.TrackCentric{
			ID:               row.TrackID,
			TrackTitle:       row.TrackTitle,
			DurationSeconds:  ptr(row.DurationSeconds),
			IsExplicit:       row.IsExplicit,
			Genre:            ptr(row.Genre),
			PopularityRating: ptr(row.PopularityRating),
			TotalStreams:     ptr(row.TotalStreams),
			Artist: document.ArtistInfo{
				ArtistID:   row.ArtistID,
				ArtistName: row.ArtistName,
			},
			Album: document.AlbumInfo{
				AlbumID:     row.AlbumID.V,
				AlbumName:   row.AlbumName,
				ReleaseDate: ptr(row.ReleaseDate),
			},
		}
	}
	return res
}

func ptr[T any](n sql.Null[T]) *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}
