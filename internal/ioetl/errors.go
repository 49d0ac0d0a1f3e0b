package ioetl

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
)

// GenerateConfigError is returned when generator settings are invalid.
func GenerateConfigError(field string, val int) error {
	msg := `Invalid generator setting <em>%s</em>: %d

Number of rows must be positive, number of artists cannot be negative.`

	return &gn.Error{
		Code: errcode.GenerateConfigError,
		Msg:  msg,
		Vars: []any{field, val},
		Err:  fmt.Errorf("invalid %s: %d", field, val),
	}
}
