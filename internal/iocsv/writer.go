package iocsv

import (
	"bufio"
	"context"
	"encoding/csv"
	"iter"
	"os"
	"strconv"

	"github.com/gnames/gnmusic/internal/ioprogress"
	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/gnames/gnmusic/pkg/config"
)

// Writer saves catalog rows in the format understood by Reader.
type Writer struct {
	path  string
	comma rune
	null  string
}

// NewWriter creates a Writer for the output file at path. Delimiter and
// null token are taken from the input configuration.
func NewWriter(path string, cfg config.InputConfig) *Writer {
	return &Writer{
		path:  path,
		comma: delimiter(cfg.Delimiter),
		null:  cfg.NullToken,
	}
}

// Write creates the file and writes a header and all rows from the
// sequence. Total is used for the progress bar only. Returns the number
// of written rows.
func (w *Writer) Write(
	ctx context.Context,
	rows iter.Seq[catalog.Track],
	total int,
) (int, error) {
	f, err := os.Create(w.path)
	if err != nil {
		return 0, WriteFileError(w.path, err)
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 256*1024)
	cw := csv.NewWriter(bw)
	cw.Comma = w.comma

	if err = cw.Write(catalog.Columns()); err != nil {
		return 0, WriteFileError(w.path, err)
	}

	bar := ioprogress.New(total, "Writing rows: ")
	defer bar.Finish()

	var count int
	rec := make([]string, len(catalog.Columns()))
	for row := range rows {
		if count%checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				return count, err
			}
		}
		w.record(row, rec)
		if err = cw.Write(rec); err != nil {
			return count, WriteFileError(w.path, err)
		}
		count++
		bar.Increment()
	}

	cw.Flush()
	if err = cw.Error(); err != nil {
		return count, WriteFileError(w.path, err)
	}
	if err = bw.Flush(); err != nil {
		return count, WriteFileError(w.path, err)
	}
	if err = f.Sync(); err != nil {
		return count, WriteFileError(w.path, err)
	}
	return count, nil
}

// record fills rec with cells of row in the order of catalog.Columns.
func (w *Writer) record(row catalog.Track, rec []string) {
	rec[0] = row.TrackID
	rec[1] = row.TrackTitle
	rec[2] = row.ArtistID
	rec[3] = row.ArtistName
	rec[4] = w.text(row.AlbumID.V, row.AlbumID.Valid)
	rec[5] = row.AlbumName
	rec[6] = formatBool(row.IsSingle)
	rec[7] = w.text(row.Genre.V, row.Genre.Valid)
	rec[8] = w.text(row.ReleaseDate.V.Format(catalog.DateLayout), row.ReleaseDate.Valid)
	rec[9] = w.text(strconv.FormatInt(row.DurationSeconds.V, 10), row.DurationSeconds.Valid)
	rec[10] = w.text(strconv.FormatFloat(row.PopularityRating.V, 'f', -1, 64), row.PopularityRating.Valid)
	rec[11] = w.text(strconv.FormatInt(row.TotalStreams.V, 10), row.TotalStreams.Valid)
	rec[12] = formatBool(row.IsExplicit)
}

func (w *Writer) text(s string, valid bool) string {
	if !valid {
		return w.null
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
