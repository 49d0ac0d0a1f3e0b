package iocsv

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
)

// SourceNotFoundError is returned when the input file does not exist.
func SourceNotFoundError(path string, err error) error {
	msg := `Input file <em>%s</em> not found

<em>How to fix:</em>
  1. Provide the file as an argument
  2. Or set input.path in config.yaml (GNMUSIC_INPUT_PATH)
  3. Or create it with: gnmusic generate`
	return &gn.Error{
		Code: errcode.SourceNotFoundError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("input file %s not found: %w", path, err),
	}
}

// ReadFileError is returned when the input file cannot be opened.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// ReadHeaderError is returned when the header is absent or lacks
// required columns.
func ReadHeaderError(path string, err error) error {
	msg := `Cannot use the header of <em>%s</em>

Required columns: track_id, track_title, artist_id, artist_name,
album_id, album_name, is_single, genre, release_date, duration_seconds,
popularity_rating, total_streams, is_explicit`
	return &gn.Error{
		Code: errcode.ReadHeaderError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("bad header in %s: %w", path, err),
	}
}

// ReadRowError is returned when a row cannot be parsed.
func ReadRowError(path string, line int, column string, err error) error {
	msg := "Cannot parse line <em>%d</em> of <em>%s</em>"
	vars := []any{line, path}
	if column != "" {
		msg += ", column <em>%s</em>"
		vars = append(vars, column)
	}
	return &gn.Error{
		Code: errcode.ReadRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s:%d: %w", path, line, err),
	}
}

// WriteFileError is returned when the output file cannot be written.
func WriteFileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
