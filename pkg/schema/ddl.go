package schema

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	t := modelType(model)

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns column names of a model in the order of its fields.
func Columns(model any) []string {
	t := modelType(model)

	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// Rows converts models to rows of values ready for bulk copy.
func Rows[M Model](ms []M) [][]any {
	res := make([][]any, len(ms))
	for i := range ms {
		res[i] = ms[i].Values()
	}
	return res
}

func modelType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func nullValue[T any](n sql.Null[T]) any {
	if n.Valid {
		return n.V
	}
	return nil
}

// Artist DDL methods
func (a Artist) TableDDL() string {
	return generateDDL(a, a.TableName())
}

func (a Artist) IndexDDL() []string {
	return []string{}
}

func (a Artist) TableName() string {
	return "artists"
}

func (a Artist) KeyColumn() string {
	return "artist_id"
}

func (a Artist) Values() []any {
	return []any{a.ArtistID, a.ArtistName}
}

// Album DDL methods
func (a Album) TableDDL() string {
	return generateDDL(a, a.TableName())
}

func (a Album) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_albums_artist_id ON albums(artist_id);",
	}
}

func (a Album) TableName() string {
	return "albums"
}

func (a Album) KeyColumn() string {
	return "album_id"
}

func (a Album) Values() []any {
	var date any
	if a.ReleaseDate.Valid {
		date = a.ReleaseDate.V.UTC().Truncate(24 * time.Hour)
	}
	return []any{a.AlbumID, a.AlbumName, date, a.ArtistID}
}

// Track DDL methods
func (t Track) TableDDL() string {
	return generateDDL(t, t.TableName())
}

func (t Track) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_tracks_album_id ON tracks(album_id);",
		"CREATE INDEX IF NOT EXISTS idx_tracks_artist_id ON tracks(artist_id);",
	}
}

func (t Track) TableName() string {
	return "tracks"
}

func (t Track) KeyColumn() string {
	return "track_id"
}

func (t Track) Values() []any {
	return []any{
		t.TrackID,
		t.TrackTitle,
		nullValue(t.DurationSeconds),
		t.IsExplicit,
		nullValue(t.Genre),
		nullValue(t.PopularityRating),
		nullValue(t.TotalStreams),
		t.AlbumID,
		t.ArtistID,
	}
}
