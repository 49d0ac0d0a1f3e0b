package catalog

// Column names of the input table.
const (
	ColTrackID          = "track_id"
	ColTrackTitle       = "track_title"
	ColArtistID         = "artist_id"
	ColArtistName       = "artist_name"
	ColAlbumID          = "album_id"
	ColAlbumName        = "album_name"
	ColIsSingle         = "is_single"
	ColGenre            = "genre"
	ColReleaseDate      = "release_date"
	ColDurationSeconds  = "duration_seconds"
	ColPopularityRating = "popularity_rating"
	ColTotalStreams     = "total_streams"
	ColIsExplicit       = "is_explicit"
)

// DateLayout is the layout of release dates in the input table.
const DateLayout = "2006-01-02"

// Columns returns all input columns in the order used for writing files.
func Columns() []string {
	return []string{
		ColTrackID,
		ColTrackTitle,
		ColArtistID,
		ColArtistName,
		ColAlbumID,
		ColAlbumName,
		ColIsSingle,
		ColGenre,
		ColReleaseDate,
		ColDurationSeconds,
		ColPopularityRating,
		ColTotalStreams,
		ColIsExplicit,
	}
}
