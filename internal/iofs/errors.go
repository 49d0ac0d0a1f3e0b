package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
)

// CreateDirError is returned when a directory cannot be created.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

Check that the home directory is writable.`

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: []any{dir},
		Err:  fmt.Errorf("mkdir %s: %w", dir, err),
	}
}

// CopyFileError is returned when the config template cannot be written.
func CopyFileError(file string, err error) error {
	msg := "Cannot write config template to <em>%s</em>"

	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: []any{file},
		Err:  fmt.Errorf("write %s: %w", file, err),
	}
}
