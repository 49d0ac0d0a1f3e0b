// Package schema provides relational models of the normalized catalog.
// Models carry their column names and DDL in struct tags, so the same
// definitions drive table creation and bulk loading.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE IF NOT EXISTS statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX IF NOT EXISTS statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Model is a row of one of the normalized tables.
type Model interface {
	DDLGenerator

	// KeyColumn is the primary key column used as the upsert target.
	KeyColumn() string

	// Values returns column values in the order of Columns(). Missing
	// values are returned as nil.
	Values() []any
}

// Artist is a row of the artists table.
type Artist struct {
	ArtistID   string `db:"artist_id"   ddl:"VARCHAR(255) PRIMARY KEY"`
	ArtistName string `db:"artist_name" ddl:"VARCHAR(255) NOT NULL"`
}

// Album is a row of the albums table. "Singles" albums have no release
// date.
type Album struct {
	AlbumID     string              `db:"album_id"     ddl:"VARCHAR(255) PRIMARY KEY"`
	AlbumName   string              `db:"album_name"   ddl:"VARCHAR(255) NOT NULL"`
	ReleaseDate sql.Null[time.Time] `db:"release_date" ddl:"DATE"`
	ArtistID    string              `db:"artist_id"    ddl:"VARCHAR(255) REFERENCES artists(artist_id)"`
}

// Track is a row of the tracks table.
type Track struct {
	TrackID          string            `db:"track_id"          ddl:"VARCHAR(255) PRIMARY KEY"`
	TrackTitle       string            `db:"track_title"       ddl:"VARCHAR(255) NOT NULL"`
	DurationSeconds  sql.Null[int64]   `db:"duration_seconds"  ddl:"INTEGER"`
	IsExplicit       bool              `db:"is_explicit"       ddl:"BOOLEAN"`
	Genre            sql.Null[string]  `db:"genre"             ddl:"VARCHAR(100)"`
	PopularityRating sql.Null[float64] `db:"popularity_rating" ddl:"REAL"`
	TotalStreams     sql.Null[int64]   `db:"total_streams"     ddl:"BIGINT"`
	AlbumID          string            `db:"album_id"          ddl:"VARCHAR(255) REFERENCES albums(album_id)"`
	ArtistID         string            `db:"artist_id"         ddl:"VARCHAR(255) REFERENCES artists(artist_id)"`
}

// AllModels returns all models in foreign key dependency order:
// artists have no dependencies, albums depend on artists, tracks depend
// on both.
func AllModels() []Model {
	return []Model{
		Artist{},
		Album{},
		Track{},
	}
}
