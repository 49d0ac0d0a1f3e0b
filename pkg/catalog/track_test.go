package catalog_test

import (
	"database/sql"
	"testing"

	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSingle(t *testing.T) {
	tests := []struct {
		msg   string
		track catalog.Track
		res   bool
	}{
		{"flagged", catalog.Track{IsSingle: true, AlbumID: catalog.Some("alb1")}, true},
		{"album", catalog.Track{AlbumID: catalog.Some("alb1")}, false},
		{"no album id", catalog.Track{AlbumID: sql.Null[string]{}}, true},
		{"empty album id", catalog.Track{AlbumID: catalog.Some("")}, true},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.track.Single(), v.msg)
	}
}

func TestColumns(t *testing.T) {
	cols := catalog.Columns()
	assert.Len(t, cols, 13)
	assert.Equal(t, catalog.ColTrackID, cols[0])
	assert.Equal(t, catalog.ColIsExplicit, cols[len(cols)-1])
}
