// Package document provides the denormalized shapes of the catalog
// written to document stores.
package document

import "time"

// Document is anything that can be upserted by its identity.
type Document interface {
	DocID() string
}

// ArtistDoc is an artist-centric document. Albums and tracks keep the
// order of their first appearance in the input.
type ArtistDoc struct {
	ID         string     `bson:"_id"         json:"_id"`
	ArtistName string     `bson:"artist_name" json:"artist_name"`
	Albums     []AlbumDoc `bson:"albums"      json:"albums"`
}

// AlbumDoc is an album nested in ArtistDoc.
type AlbumDoc struct {
	AlbumID     string     `bson:"album_id"     json:"album_id"`
	AlbumName   string     `bson:"album_name"   json:"album_name"`
	ReleaseDate *time.Time `bson:"release_date" json:"release_date"`
	Tracks      []TrackDoc `bson:"tracks"       json:"tracks"`
}

// TrackDoc is a track nested in AlbumDoc.
type TrackDoc struct {
	TrackID          string   `bson:"track_id"          json:"track_id"`
	TrackTitle       string   `bson:"track_title"       json:"track_title"`
	DurationSeconds  *int64   `bson:"duration_seconds"  json:"duration_seconds"`
	IsExplicit       bool     `bson:"is_explicit"       json:"is_explicit"`
	Genre            *string  `bson:"genre"             json:"genre"`
	PopularityRating *float64 `bson:"popularity_rating" json:"popularity_rating"`
	TotalStreams     *int64   `bson:"total_streams"     json:"total_streams"`
}

// TrackCentric is a track document with embedded artist and album
// summaries.
type TrackCentric struct {
	ID               string     `bson:"_id"               json:"_id"`
	TrackTitle       string     `bson:"track_title"       json:"track_title"`
	DurationSeconds  *int64     `bson:"duration_seconds"  json:"duration_seconds"`
	IsExplicit       bool       `bson:"is_explicit"       json:"is_explicit"`
	Genre            *string    `bson:"genre"             json:"genre"`
	PopularityRating *float64   `bson:"popularity_rating" json:"popularity_rating"`
	TotalStreams     *int64     `bson:"total_streams"     json:"total_streams"`
	Artist           ArtistInfo `bson:"artist"            json:"artist"`
	Album            AlbumInfo  `bson:"album"             json:"album"`
}

// ArtistInfo summarizes the artist of a track.
type ArtistInfo struct {
	ArtistID   string `bson:"artist_id"   json:"artist_id"`
	ArtistName string `bson:"artist_name" json:"artist_name"`
}

// AlbumInfo summarizes the album of a track.
type AlbumInfo struct {
	AlbumID     string     `bson:"album_id"     json:"album_id"`
	AlbumName   string     `bson:"album_name"   json:"album_name"`
	ReleaseDate *time.Time `bson:"release_date" json:"release_date"`
}

func (d ArtistDoc) DocID() string {
	return d.ID
}

func (d TrackCentric) DocID() string {
	return d.ID
}

// TrackCount returns the number of tracks across all albums.
func (d ArtistDoc) TrackCount() int {
	var res int
	for i := range d.Albums {
		res += len(d.Albums[i].Tracks)
	}
	return res
}
