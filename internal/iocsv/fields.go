package iocsv

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnmusic/pkg/catalog"
)

// dateLayouts are tried in order when parsing release dates.
var dateLayouts = []string{
	catalog.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// fieldError is a failure to parse a particular cell.
type fieldError struct {
	column string
	err    error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("column %s: %s", e.column, e.err)
}

func (e *fieldError) Unwrap() error {
	return e.err
}

func missingColumnsError(cols []string) error {
	return fmt.Errorf("missing columns: %s", strings.Join(cols, ", "))
}

// parseRow converts a record to a track. Cells equal to the null token
// are missing values. Unparseable dates become missing values, other
// unparseable cells are errors.
func (r *Reader) parseRow(
	rec []string,
	cols map[string]int,
) (catalog.Track, error) {
	var res catalog.Track
	var err error
	cell := func(col string) sql.Null[string] {
		v := rec[cols[col]]
		if v == r.null {
			return sql.Null[string]{}
		}
		return catalog.Some(v)
	}

	id := cell(catalog.ColTrackID)
	if !id.Valid || id.V == "" {
		return res, &fieldError{catalog.ColTrackID, fmt.Errorf("track id is required")}
	}
	res.TrackID = id.V

	artist := cell(catalog.ColArtistID)
	if !artist.Valid || artist.V == "" {
		return res, &fieldError{catalog.ColArtistID, fmt.Errorf("artist id is required")}
	}
	res.ArtistID = artist.V

	res.TrackTitle = cell(catalog.ColTrackTitle).V
	res.ArtistName = cell(catalog.ColArtistName).V
	res.AlbumName = cell(catalog.ColAlbumName).V
	res.AlbumID = cell(catalog.ColAlbumID)
	res.Genre = cell(catalog.ColGenre)

	if res.IsSingle, err = parseBool(cell(catalog.ColIsSingle)); err != nil {
		return res, &fieldError{catalog.ColIsSingle, err}
	}
	if res.IsExplicit, err = parseBool(cell(catalog.ColIsExplicit)); err != nil {
		return res, &fieldError{catalog.ColIsExplicit, err}
	}
	if res.DurationSeconds, err = parseInt(cell(catalog.ColDurationSeconds)); err != nil {
		return res, &fieldError{catalog.ColDurationSeconds, err}
	}
	if res.TotalStreams, err = parseInt(cell(catalog.ColTotalStreams)); err != nil {
		return res, &fieldError{catalog.ColTotalStreams, err}
	}
	if res.PopularityRating, err = parseFloat(cell(catalog.ColPopularityRating)); err != nil {
		return res, &fieldError{catalog.ColPopularityRating, err}
	}
	res.ReleaseDate = parseDate(res.TrackID, cell(catalog.ColReleaseDate))

	return res, nil
}

// parseBool treats missing values as false.
func parseBool(s sql.Null[string]) (bool, error) {
	if !s.Valid || s.V == "" {
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s.V))
}

// parseInt also accepts integral floats like "245.0", which appear
// when numbers went through a floating point column.
func parseInt(s sql.Null[string]) (sql.Null[int64], error) {
	var res sql.Null[int64]
	if !s.Valid || s.V == "" {
		return res, nil
	}
	v := strings.TrimSpace(s.V)
	i, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		return catalog.Some(i), nil
	}
	f, ferr := strconv.ParseFloat(v, 64)
	if ferr != nil || f != math.Trunc(f) {
		return res, err
	}
	return catalog.Some(int64(f)), nil
}

func parseFloat(s sql.Null[string]) (sql.Null[float64], error) {
	var res sql.Null[float64]
	if !s.Valid || s.V == "" {
		return res, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s.V), 64)
	if err != nil {
		return res, err
	}
	return catalog.Some(f), nil
}

// parseDate never fails: a value that is not a date becomes missing.
func parseDate(trackID string, s sql.Null[string]) sql.Null[time.Time] {
	var res sql.Null[time.Time]
	if !s.Valid || s.V == "" {
		return res
	}
	v := strings.TrimSpace(s.V)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, v); err == nil {
			y, m, d := t.Date()
			return catalog.Some(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
		}
	}
	slog.Debug("Cannot parse release date, using null",
		"track_id", trackID, "value", v)
	return res
}
