// Package iocsv reads and writes delimited files with one track per row.
package iocsv

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnmusic/pkg/catalog"
	"github.com/gnames/gnmusic/pkg/config"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// checkEvery is the number of rows between context checks.
const checkEvery = 10_000

// Reader parses a delimited file into catalog rows.
type Reader struct {
	path  string
	comma rune
	null  string
}

// NewReader creates a Reader for the input described by the
// configuration.
func NewReader(cfg config.InputConfig) *Reader {
	return &Reader{
		path:  cfg.Path,
		comma: delimiter(cfg.Delimiter),
		null:  cfg.NullToken,
	}
}

// Path returns the path of the input file.
func (r *Reader) Path() string {
	return r.path
}

// ReadAll reads all rows of the file. The file must have a header. The
// order of columns does not matter.
func (r *Reader) ReadAll(ctx context.Context) ([]catalog.Track, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, SourceNotFoundError(r.path, err)
		}
		return nil, ReadFileError(r.path, err)
	}
	defer f.Close()

	return r.Decode(ctx, f)
}

// Decode reads rows from src.
func (r *Reader) Decode(
	ctx context.Context,
	src io.Reader,
) ([]catalog.Track, error) {
	cr := csv.NewReader(bufio.NewReaderSize(src, 256*1024))
	cr.Comma = r.comma
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, ReadHeaderError(r.path, err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, ReadHeaderError(r.path, err)
	}

	var res []catalog.Track
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var line int
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, ReadRowError(r.path, line, "", err)
		}

		if len(res)%checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}

		row, err := r.parseRow(rec, cols)
		if err != nil {
			line, _ := cr.FieldPos(0)
			var fe *fieldError
			if errors.As(err, &fe) {
				return nil, ReadRowError(r.path, line, fe.column, fe.err)
			}
			return nil, ReadRowError(r.path, line, "", err)
		}
		res = append(res, row)
	}

	slog.Info("Read input file", "path", r.path, "rows", len(res))
	return res, nil
}

// mapColumns finds the position of every required column in the header.
func mapColumns(header []string) (map[string]int, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	idx := make(map[string]int, len(header))
	for i, v := range header {
		idx[strings.TrimSpace(v)] = i
	}

	res := make(map[string]int, len(header))
	var missing []string
	for _, col := range catalog.Columns() {
		i, ok := idx[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		res[col] = i
	}
	if len(missing) > 0 {
		return nil, missingColumnsError(missing)
	}
	return res, nil
}

// delimiter converts configured delimiter to a rune.
func delimiter(s string) rune {
	if s == `\t` {
		return '\t'
	}
	for _, r := range s {
		return r
	}
	return ','
}
