package iocsv_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/internal/iocsv"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/gnames/gnmusic/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "track_id,track_title,artist_id,artist_name,album_id,album_name," +
	"is_single,genre,release_date,duration_seconds,popularity_rating," +
	"total_streams,is_explicit\n"

func inputConfig() config.InputConfig {
	return config.New().Input
}

func decode(t *testing.T, data string) error {
	t.Helper()
	r := iocsv.NewReader(inputConfig())
	_, err := r.Decode(context.Background(), strings.NewReader(data))
	return err
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be *gn.Error")
	return gnErr.Code
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)
	data := "\uFEFF" + header +
		"t1,Lonely,a1,Artist A,none,Single,True,Pop,2021-03-04,200,5.5,100000,False\n" +
		"t2,None,a1,Artist A,alb1,Real Album,False,none,2020-01-01,none,none,none,True\n"

	r := iocsv.NewReader(inputConfig())
	rows, err := r.Decode(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	single := rows[0]
	assert.Equal("t1", single.TrackID)
	assert.Equal("Lonely", single.TrackTitle)
	assert.True(single.IsSingle)
	assert.False(single.AlbumID.Valid, "null token becomes null")
	assert.Equal("Pop", single.Genre.V)
	assert.Equal("2021-03-04", single.ReleaseDate.V.Format("2006-01-02"))
	assert.Equal(int64(200), single.DurationSeconds.V)
	assert.Equal(5.5, single.PopularityRating.V)
	assert.Equal(int64(100000), single.TotalStreams.V)
	assert.False(single.IsExplicit)

	regular := rows[1]
	assert.Equal("None", regular.TrackTitle, "None is a valid string")
	assert.Equal("alb1", regular.AlbumID.V)
	assert.False(regular.Genre.Valid)
	assert.False(regular.DurationSeconds.Valid)
	assert.False(regular.PopularityRating.Valid)
	assert.False(regular.TotalStreams.Valid)
	assert.True(regular.IsExplicit)
}

func TestDecodeColumnOrder(t *testing.T) {
	data := "is_explicit,total_streams,popularity_rating,duration_seconds," +
		"release_date,genre,is_single,album_name,album_id,artist_name," +
		"artist_id,track_title,track_id\n" +
		"1,10,1.5,300,2019-12-31,Jazz,0,LP,al1,Art,a1,Song,t1\n"

	r := iocsv.NewReader(inputConfig())
	rows, err := r.Decode(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "t1", rows[0].TrackID)
	assert.Equal(t, "Song", rows[0].TrackTitle)
	assert.True(t, rows[0].IsExplicit)
	assert.Equal(t, int64(10), rows[0].TotalStreams.V)
}

func TestDecodeDates(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
		res   string
	}{
		{"2020-01-01", true, "2020-01-01"},
		{"2020-01-01T10:00:00Z", true, "2020-01-01"},
		{"2020-01-01 10:00:00", true, "2020-01-01"},
		{"01/02/2020", false, ""},
		{"not a date", false, ""},
		{"2020-13-45", false, ""},
		{"none", false, ""},
		{"", false, ""},
	}

	for _, v := range tests {
		data := header +
			"t1,S,a1,A,al1,L,False,Pop," + v.date + ",100,1,1,False\n"
		r := iocsv.NewReader(inputConfig())
		rows, err := r.Decode(context.Background(), strings.NewReader(data))
		require.NoError(t, err, v.date)
		require.Len(t, rows, 1, v.date)
		assert.Equal(t, v.valid, rows[0].ReleaseDate.Valid, v.date)
		if v.valid {
			assert.Equal(t, v.res, rows[0].ReleaseDate.V.Format("2006-01-02"))
		}
	}
}

func TestDecodeNumbers(t *testing.T) {
	data := header +
		"t1,S,a1,A,al1,L,False,Pop,2020-01-01,245.0,3,1e3,False\n"
	r := iocsv.NewReader(inputConfig())
	rows, err := r.Decode(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(245), rows[0].DurationSeconds.V)
	assert.Equal(t, 3.0, rows[0].PopularityRating.V)
	assert.Equal(t, int64(1000), rows[0].TotalStreams.V)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		msg  string
		data string
		code gn.ErrorCode
	}{
		{"empty", "", errcode.ReadHeaderError},
		{"missing column", "track_id,artist_id\nt1,a1\n", errcode.ReadHeaderError},
		{"bad int", header +
			"t1,S,a1,A,al1,L,False,Pop,2020-01-01,long,1,1,False\n",
			errcode.ReadRowError},
		{"fractional int", header +
			"t1,S,a1,A,al1,L,False,Pop,2020-01-01,10.5,1,1,False\n",
			errcode.ReadRowError},
		{"bad bool", header +
			"t1,S,a1,A,al1,L,maybe,Pop,2020-01-01,10,1,1,False\n",
			errcode.ReadRowError},
		{"bad float", header +
			"t1,S,a1,A,al1,L,False,Pop,2020-01-01,10,high,1,False\n",
			errcode.ReadRowError},
		{"null track id", header +
			"none,S,a1,A,al1,L,False,Pop,2020-01-01,10,1,1,False\n",
			errcode.ReadRowError},
		{"null artist id", header +
			"t1,S,none,A,al1,L,False,Pop,2020-01-01,10,1,1,False\n",
			errcode.ReadRowError},
		{"wrong field count", header + "t1,S,a1\n", errcode.ReadRowError},
	}

	for _, v := range tests {
		err := decode(t, v.data)
		require.Error(t, err, v.msg)
		assert.Equal(t, v.code, errCode(t, err), v.msg)
	}
}

func TestReadRowErrorPosition(t *testing.T) {
	data := header +
		"t1,S,a1,A,al1,L,False,Pop,2020-01-01,10,1,1,False\n" +
		"t2,S,a1,A,al1,L,False,Pop,2020-01-01,10,1,oops,False\n"
	err := decode(t, data)
	require.Error(t, err)
	gnErr := err.(*gn.Error)
	require.Len(t, gnErr.Vars, 3)
	assert.Equal(t, 3, gnErr.Vars[0])
	assert.Equal(t, "total_streams", gnErr.Vars[2])
}

func TestReadAllMissingFile(t *testing.T) {
	cfg := inputConfig()
	cfg.Path = filepath.Join(t.TempDir(), "absent.csv")
	_, err := iocsv.NewReader(cfg).ReadAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.SourceNotFoundError, errCode(t, err))
}

func TestReadAllTabs(t *testing.T) {
	cfg := inputConfig()
	cfg.Path = filepath.Join(t.TempDir(), "music.tsv")
	cfg.Delimiter = `\t`
	data := strings.ReplaceAll(header, ",", "\t") +
		"t1\tS, with comma\ta1\tA\tal1\tL\tFalse\tPop\t2020-01-01\t10\t1\t1\tFalse\n"
	require.NoError(t, os.WriteFile(cfg.Path, []byte(data), 0644))

	r := iocsv.NewReader(cfg)
	assert.Equal(t, cfg.Path, r.Path())
	rows, err := r.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "S, with comma", rows[0].TrackTitle)
}

func TestDecodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data := header + "t1,S,a1,A,al1,L,False,Pop,2020-01-01,10,1,1,False\n"
	_, err := iocsv.NewReader(inputConfig()).Decode(ctx, strings.NewReader(data))
	assert.ErrorIs(t, err, context.Canceled)
}
